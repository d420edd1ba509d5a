package services

import (
	"log/slog"
	"time"
)

type serviceOptions struct {
	logger       *slog.Logger
	now          func() time.Time
	baseCurrency string
}

// ServiceOption is a functional option shared by the service constructors
type ServiceOption func(*serviceOptions)

// WithLogger sets the logger used when a request carries none
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) ServiceOption {
	return func(o *serviceOptions) {
		o.now = now
	}
}

// WithBaseCurrency sets the currency of journals that do not name one
func WithBaseCurrency(code string) ServiceOption {
	return func(o *serviceOptions) {
		o.baseCurrency = code
	}
}

func buildServiceOptions(options []ServiceOption) serviceOptions {
	opts := serviceOptions{
		logger:       slog.Default(),
		now:          time.Now,
		baseCurrency: "USD",
	}
	for _, option := range options {
		option(&opts)
	}
	return opts
}
