package passphrase

// A Generator binds a corpus to a way of obtaining a Source for each passphrase.
// A Generator is safe for concurrent use as long as its Words are not written to.
type Generator struct {
	words     Words
	newSource func() Source
}

// A GeneratorOptFn configures a Generator when constructing a new one.
type GeneratorOptFn func(*Generator)

// WithSource sets the function called for a Source on every Generate.
// Unless the function returns a new Source each time,
// the Source it returns must be safe for concurrent use.
func WithSource(fn func() Source) GeneratorOptFn {
	return func(g *Generator) {
		g.newSource = fn
	}
}

// NewGenerator constructs a Generator drawing from words with NewSource.
func NewGenerator(words Words, opts ...GeneratorOptFn) *Generator {
	g := &Generator{words: words, newSource: NewSource}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate assembles a passphrase with a fresh Source.
func (g *Generator) Generate() (string, error) { return Generate(g.words, g.newSource()) }

// Words exposes the corpus the Generator draws from.
func (g *Generator) Words() Words { return g.words }
