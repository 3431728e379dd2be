package lossless

// config holds settings shared by the encoder and decoder
type config struct {
	origin     OriginRule
	concurrent bool
}

func defaultConfig() config {
	return config{
		origin:     OriginZero,
		concurrent: true,
	}
}

// Option configures Encode and Decode
type Option func(*config)

// WithOriginRule selects the top-left prediction rule (encode only)
func WithOriginRule(rule OriginRule) Option {
	return func(c *config) {
		c.origin = rule
	}
}

// WithConcurrency codes channels in parallel when enabled (the default).
// Output is identical either way.
func WithConcurrency(enabled bool) Option {
	return func(c *config) {
		c.concurrent = enabled
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
