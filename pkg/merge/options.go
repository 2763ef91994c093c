package merge

// Options controls a feed-set merge.
type Options struct {
	// HeaderMode picks the reference header for every table.
	HeaderMode HeaderMode

	// SkipHeaderless skips a table whose files all lack a header row
	// instead of aborting the merge.
	SkipHeaderless bool
}

// Option is a function that configures merge Options.
type Option func(*Options)

// Defaults returns the default merge options.
func Defaults() *Options {
	return &Options{
		HeaderMode:     HeaderDefault,
		SkipHeaderless: false,
	}
}

// Apply applies the given options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithHeaderMode sets the header selection mode.
func WithHeaderMode(mode HeaderMode) Option {
	return func(o *Options) {
		o.HeaderMode = ParseHeaderMode(string(mode))
	}
}

// WithSkipHeaderless configures whether headerless tables are skipped.
func WithSkipHeaderless(skip bool) Option {
	return func(o *Options) {
		o.SkipHeaderless = skip
	}
}
