package mirror

import "log/slog"

// EffectOption configures an Effect during creation.
// Use functional options to customize Effect behavior.
//
// Example:
//
//	// Active effect logging through the package logger
//	fx := mirror.NewEffect(mirror.Vertical)
//
//	// Disabled effect with its own logger
//	fx := mirror.NewEffect(mirror.Vertical,
//	    mirror.WithActive(false),
//	    mirror.WithLogger(logger))
type EffectOption func(*effectOptions)

// effectOptions holds optional configuration for Effect creation.
type effectOptions struct {
	active bool
	logger *slog.Logger
}

// defaultOptions returns the default effect options.
func defaultOptions() effectOptions {
	return effectOptions{
		active: true,
		logger: nil, // Falls back to the package logger
	}
}

// WithActive sets whether the effect starts enabled.
func WithActive(active bool) EffectOption {
	return func(o *effectOptions) {
		o.active = active
	}
}

// WithLogger sets a logger for this effect only, overriding the package
// logger configured with SetLogger.
func WithLogger(l *slog.Logger) EffectOption {
	return func(o *effectOptions) {
		o.logger = l
	}
}
