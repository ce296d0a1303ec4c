package apecs

import (
	"go.uber.org/zap"
)

// Builder configures a world before construction.
// Use NewBuilder() to create a builder and chain configuration methods.
type Builder struct {
	cfg   Config
	log   *zap.Logger
	binds []func(*World)
}

// NewBuilder creates a new world builder with the default configuration and
// a no-op logger.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
		log: zap.NewNop(),
	}
}

// Config replaces the builder's configuration.
func (b *Builder) Config(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

// Logger sets the logger the world will use.
func (b *Builder) Logger(log *zap.Logger) *Builder {
	b.log = log
	return b
}

// With queues a binding callback to run against the world at Init time.
// Component bindings are generic functions and cannot be builder methods,
// so they are queued as callbacks:
//
//	w := apecs.NewBuilder().
//	    With(func(w *apecs.World) {
//	        apecs.UseDense[Position](w)
//	        apecs.UseMap[Health](w)
//	    }).
//	    Init()
func (b *Builder) With(bind func(*World)) *Builder {
	b.binds = append(b.binds, bind)
	return b
}

// Init constructs the world with the configured settings and runs all
// queued bindings. An invalid configuration is a construction bug and
// panics.
func (b *Builder) Init() *World {
	if err := b.cfg.Validate(); err != nil {
		panic("apecs: invalid config: " + err.Error())
	}
	w := newWorld(b.cfg, b.log)
	for _, bind := range b.binds {
		bind(w)
	}
	return w
}
