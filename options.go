package projmap

import (
	"github.com/rs/zerolog"

	"github.com/chartops/projmap/pkg/export"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithServer sets the server URL.
func WithServer(url string) Option {
	return func(p *Pipeline) {
		p.serverURL = url
	}
}

// WithSite sets the site content URL. Empty means the default site.
func WithSite(site string) Option {
	return func(p *Pipeline) {
		p.site = site
	}
}

// WithToken sets the personal access token used to sign in.
func WithToken(name, value string) Option {
	return func(p *Pipeline) {
		p.tokenName = name
		p.tokenValue = value
	}
}

// WithAPIVersion overrides the REST API version.
func WithAPIVersion(version string) Option {
	return func(p *Pipeline) {
		p.apiVersion = version
	}
}

// WithOutputPath sets the output file path.
func WithOutputPath(path string) Option {
	return func(p *Pipeline) {
		p.outputPath = path
	}
}

// WithFormat sets the output format.
func WithFormat(format export.Format) Option {
	return func(p *Pipeline) {
		p.format = format
	}
}

// WithBare emits the bare record list instead of the metadata envelope.
func WithBare() Option {
	return func(p *Pipeline) {
		p.bare = true
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}
