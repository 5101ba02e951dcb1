package reconcile

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/chartops/projmap/pkg/errors"
	"github.com/chartops/projmap/pkg/logging"
	"github.com/chartops/projmap/pkg/tableau"
)

// Reconciler joins the portal project collection against the REST
// collection and user reference set, enriching every portal project in
// place. Any missing join target aborts the run: a partial result would
// carry meaningless depth and ancestor fields.
type Reconciler struct {
	siteName string
	logger   *zerolog.Logger
}

// New creates a Reconciler with options.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile enriches every project in projects, in two passes.
//
// Pass 1, in the collection's natural order: stamp the site name, join
// access-control data from rest by LUID, resolve the owner from users,
// and compute level and root ancestor. Pass 2, only after pass 1 has
// completed for all projects: attach each project's parent record by
// reference, so embedded parents are always fully enriched.
//
// rest and users are read-only; projects is mutated in place.
func (r *Reconciler) Reconcile(ctx context.Context, rest []tableau.RestProject, projects []*tableau.Project, users []tableau.User) (*Result, error) {
	logger := r.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	start := time.Now()

	restIx := newRestIndex(rest)
	userIx := newUserIndex(users)
	w := newWalker(projects)

	result := &Result{Projects: len(projects)}
	owners := make(map[string]bool)

	// Pass 1: join, resolve owner, walk hierarchy.
	for _, project := range projects {
		project.SiteName = r.siteName

		restProject, ok := restIx.lookup(project.LUID)
		if !ok {
			return nil, &errors.ProjectJoinError{LUID: project.LUID}
		}
		project.ContentPermissions = restProject.ContentPermissions

		owner, ok := userIx.lookup(project.OwnerID)
		if !ok {
			return nil, &errors.UnknownOwnerError{ProjectID: project.ID, OwnerID: project.OwnerID}
		}
		project.OwnerName = owner.DisplayName
		project.OwnerDSID = owner.Username
		owners[owner.ID] = true

		level, rootLUID, err := w.Walk(project)
		if err != nil {
			return nil, err
		}
		project.ProjectLevel = level
		project.RootProjectLUID = rootLUID

		if level == 0 {
			result.TopLevel++
		}
		if level > result.MaxLevel {
			result.MaxLevel = level
		}

		logger.Debug().
			Str("project", project.Name).
			Str("luid", project.LUID).
			Int("level", level).
			Msg("Enriched project")
	}

	// Pass 2: attach parent records. Runs only after every project is
	// fully enriched, since a parent may appear after its children in
	// pass-1 order. Parents are attached by reference, not copied.
	for _, project := range projects {
		if project.ParentID == nil {
			project.Parent = nil
			continue
		}

		parent, ok := w.ix.lookup(*project.ParentID)
		if !ok {
			return nil, &errors.HierarchyError{
				ProjectID: project.ID,
				ParentID:  *project.ParentID,
				Steps:     1,
				Message:   "parent project not found",
			}
		}
		project.Parent = parent
	}

	result.Users = len(owners)
	result.Duration = time.Since(start)

	logger.Info().
		Int("projects", result.Projects).
		Int("top_level", result.TopLevel).
		Int("max_level", result.MaxLevel).
		Dur("duration", result.Duration).
		Msg("Reconciliation complete")

	return result, nil
}
