// Package projmap exports a denormalized, analytics-ready inventory of
// Tableau Server projects. It joins the documented REST API project
// collection (authoritative for access control) with the internal
// portal API collection (authoritative for hierarchy and ownership),
// computes each project's depth and top-level ancestor, and writes the
// enriched record set to a file.
//
// Example usage:
//
//	pipeline, err := projmap.New(
//	    projmap.WithServer("https://tableau.example.com"),
//	    projmap.WithSite("analytics"),
//	    projmap.WithToken("ci-token", os.Getenv("TABLEAU_PAT_VALUE")),
//	    projmap.WithOutputPath("output/projects.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := pipeline.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package projmap

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/chartops/projmap/internal/client"
	"github.com/chartops/projmap/pkg/errors"
	"github.com/chartops/projmap/pkg/export"
	"github.com/chartops/projmap/pkg/logging"
	"github.com/chartops/projmap/pkg/reconcile"
)

// Pipeline runs one snapshot export: sign in, fetch both collections,
// reconcile, write output.
type Pipeline struct {
	serverURL  string
	site       string
	tokenName  string
	tokenValue string
	apiVersion string

	outputPath string
	format     export.Format
	bare       bool

	logger *zerolog.Logger
}

// New creates a Pipeline with options.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		outputPath: "output/projects.json",
		format:     export.FormatJSON,
		logger:     logging.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.serverURL == "" {
		return nil, &errors.ValidationError{Field: "server", Message: "server URL is required"}
	}
	if p.tokenName == "" || p.tokenValue == "" {
		return nil, &errors.AuthenticationError{
			Server:  p.serverURL,
			Method:  "pat",
			Message: "personal access token name and value are required",
			Err:     errors.ErrTokenRequired,
		}
	}

	return p, nil
}

// Run executes the export and returns the reconciliation summary.
// All fetches complete before reconciliation begins, and output is
// written only after reconciliation fully succeeds.
func (p *Pipeline) Run(ctx context.Context) (*reconcile.Result, error) {
	ctx = logging.WithLogger(ctx, p.logger)

	sessionOpts := []client.Option{client.WithLogger(p.logger)}
	if p.apiVersion != "" {
		sessionOpts = append(sessionOpts, client.WithAPIVersion(p.apiVersion))
	}

	session, err := client.NewSession(p.serverURL, p.site, p.tokenName, p.tokenValue, sessionOpts...)
	if err != nil {
		return nil, err
	}

	if err := session.SignIn(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err := session.SignOut(ctx); err != nil {
			p.logger.Warn().Err(err).Msg("Sign-out failed")
		}
	}()

	restProjects, err := session.FetchRestProjects(ctx)
	if err != nil {
		return nil, err
	}

	portalProjects, users, err := session.FetchPortalProjects(ctx)
	if err != nil {
		return nil, err
	}

	p.logger.Info().
		Int("rest_projects", len(restProjects)).
		Int("portal_projects", len(portalProjects)).
		Int("users", len(users)).
		Msg("Fetched project collections")

	reconciler := reconcile.New(
		reconcile.WithSiteName(p.site),
		reconcile.WithLogger(p.logger),
	)

	result, err := reconciler.Reconcile(ctx, restProjects, portalProjects, users)
	if err != nil {
		return nil, err
	}

	writerOpts := []export.Option{export.WithFormat(p.format)}
	if p.bare {
		writerOpts = append(writerOpts, export.WithBare())
	}

	if err := export.New(writerOpts...).Write(p.outputPath, p.site, portalProjects); err != nil {
		return nil, err
	}

	p.logger.Info().
		Str("path", p.outputPath).
		Int("projects", result.Projects).
		Msg("Export written")

	return result, nil
}
