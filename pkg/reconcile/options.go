package reconcile

import "github.com/rs/zerolog"

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithSiteName sets the site name stamped on every output record.
func WithSiteName(name string) Option {
	return func(r *Reconciler) {
		r.siteName = name
	}
}

// WithLogger sets the logger used for progress reporting.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}
