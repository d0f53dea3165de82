package engine

import "time"

// Option configures an engine service at construction time.
type Option func(*options)

type options struct {
	latency time.Duration
}

// WithLatency makes a service pause for the given duration before
// returning, emulating the response time of a remote model backend.
// The delay never affects output values; the default is zero.
func WithLatency(d time.Duration) Option {
	return func(o *options) {
		o.latency = d
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) wait() {
	if o.latency > 0 {
		time.Sleep(o.latency)
	}
}
