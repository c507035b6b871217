package linked

// DefaultCapacity is the number of node slots pre-allocated by New.
const DefaultCapacity = 16

// Option configures a tree created by New.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-allocates room for n nodes. Negative values are treated
// as 0.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		cfg.capacity = n
	}
}

func (cfg config) normalized() config {
	if cfg.capacity < 0 {
		cfg.capacity = 0
	}
	return cfg
}

func makeConfig(opts []Option) config {
	cfg := config{capacity: DefaultCapacity}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg.normalized()
}
