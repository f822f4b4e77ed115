package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/xy-planning-network/birdpass/logger"
)

const (
	jsonMediaType = "application/json; charset=UTF-8"
	textMediaType = "text/plain; charset=utf-8"

	responderFrames = 0
)

// Responder maintains reusable pieces for responding to HTTP requests.
// It exposes common methods for writing data as an HTTP response.
// These are the forms of response Responder can execute:
//
//	Err
//	Json
//	Text
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
//
// When handling a specific HTTP request, calling code supplies additional data, structure,
// and so forth through Fn functions.
type Responder struct {
	logger logger.SkipLogger

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New(nil)
	}

	d.logger = d.logger.AddSkip(d.logger.Skip() + responderFrames)

	return d
}

// Err wraps http.Error(), logging the error causing the failure state.
//
// The status code defaults to 500 unless Code sets another.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append([]Fn{Err(err)}, opts...)...)
	if nested != nil {
		err = fmt.Errorf("%w: %s", err, nested)
	}

	var msg string
	if err != nil {
		msg = err.Error()
	}

	code := http.StatusInternalServerError
	if rr != nil && rr.code != 0 {
		code = rr.code
	}

	http.Error(w, msg, code)
}

// Json responds with the value Data set, encoded as JSON, and sets appropriate headers.
//
// The status code defaults to 200 unless Code sets another.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(rr.data); err != nil {
		doer.Err(w, r, err)
		return err
	}

	w.Header().Set("Content-Type", jsonMediaType)
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// Text responds with body as plain text.
//
// The status code defaults to 200 unless Code sets another.
func (doer *Responder) Text(w http.ResponseWriter, r *http.Request, body string, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	w.Header().Set("Content-Type", textMediaType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(rr.code)
	if _, err := io.WriteString(w, body); err != nil {
		return err
	}

	return nil
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// do stops at the first option returning an error
// or once the request context is done.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{w: w, r: r}

	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			if err := opt(*doer, resp); err != nil {
				return resp, err
			}
		}
	}

	return resp, nil
}
