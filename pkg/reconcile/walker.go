package reconcile

import (
	"github.com/chartops/projmap/pkg/errors"
	"github.com/chartops/projmap/pkg/tableau"
)

// walker computes a project's depth below its top-level ancestor and
// that ancestor's LUID by following parent pointers through the portal
// index.
type walker struct {
	ix index[*tableau.Project]

	// maxSteps bounds the walk. The parent graph of a valid snapshot is
	// acyclic, so no chain can be longer than the collection itself;
	// exceeding the bound means a cycle.
	maxSteps int
}

func newWalker(projects []*tableau.Project) *walker {
	return &walker{
		ix:       newProjectIndex(projects),
		maxSteps: len(projects),
	}
}

// Walk returns (level, rootLUID) for p. A top-level project is level 0
// and its own root. Otherwise the walk follows parent IDs until it
// reaches a top-level project, whose LUID becomes the root.
func (w *walker) Walk(p *tableau.Project) (int, string, error) {
	if p.TopLevel() {
		return 0, p.LUID, nil
	}

	current := p
	for level := 1; level <= w.maxSteps; level++ {
		if current.ParentID == nil {
			return 0, "", &errors.HierarchyError{
				ProjectID: p.ID,
				Steps:     level,
				Message:   "non-top-level project has no parent",
			}
		}

		parent, ok := w.ix.lookup(*current.ParentID)
		if !ok {
			return 0, "", &errors.HierarchyError{
				ProjectID: p.ID,
				ParentID:  *current.ParentID,
				Steps:     level,
				Message:   "parent project not found",
			}
		}

		if parent.TopLevel() {
			return level, parent.LUID, nil
		}
		current = parent
	}

	return 0, "", &errors.HierarchyError{
		ProjectID: p.ID,
		Steps:     w.maxSteps,
		Message:   "parent chain does not reach a top-level project (cycle?)",
	}
}
