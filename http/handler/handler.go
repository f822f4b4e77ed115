package handler

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/birdpass/http/resp"
	"github.com/xy-planning-network/birdpass/http/router"
	"github.com/xy-planning-network/birdpass/logger"
	"github.com/xy-planning-network/birdpass/passphrase"
)

const (
	GeneratePath    = "/generate"
	APIGeneratePath = "/api/generate"
	HealthPath      = "/healthz"
)

// Handler shares the initialized Responder across all responses.
type Handler struct {
	*resp.Responder
	gen *passphrase.Generator
}

// New constructs a Handler generating passphrases with gen.
func New(gen *passphrase.Generator, r *resp.Responder) *Handler {
	return &Handler{Responder: r, gen: gen}
}

// Routes lists every route a Handler answers.
func (h *Handler) Routes() []router.Route {
	return []router.Route{
		{
			Path:    GeneratePath,
			Methods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			Handler: http.HandlerFunc(h.Generate),
		},
		{
			Path:    APIGeneratePath,
			Methods: []string{http.MethodPost},
			Handler: http.HandlerFunc(h.Generate),
		},
		{
			Path:    HealthPath,
			Methods: []string{http.MethodGet},
			Handler: http.HandlerFunc(h.Health),
		},
	}
}

// Generate responds with a freshly assembled passphrase as plain text.
//
// Preflight requests the CORS middleware did not answer receive an empty 204.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	pass, err := h.gen.Generate()
	if err != nil {
		h.Err(w, r, fmt.Errorf("could not generate passphrase: %w", err))
		return
	}

	if err := h.Text(w, r, pass); err != nil {
		writeFailed(r, err)
	}
}

type health struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

// Health reports whether the corpus holds enough words to assemble passphrases.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	n := h.gen.Words().Len()
	if n < passphrase.Parts {
		if err := h.Json(w, r, resp.Code(http.StatusServiceUnavailable), resp.Data(health{"unavailable", n})); err != nil {
			writeFailed(r, err)
		}
		return
	}

	if err := h.Json(w, r, resp.Data(health{"ok", n})); err != nil {
		writeFailed(r, err)
	}
}

// writeFailed logs a response that broke off after its header went out.
// The status line is already on the wire, so nothing more is written.
func writeFailed(r *http.Request, err error) {
	logger.FromContext(r.Context()).Warn("could not write response", "error", err)
}
