package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/chartops/projmap/pkg/errors"
	"github.com/chartops/projmap/pkg/tableau"
)

func TestWalkTopLevelIdentity(t *testing.T) {
	p := &tableau.Project{ID: "1", LUID: "luid-1", TopLevelProject: true}
	w := newWalker([]*tableau.Project{p})

	level, root, err := w.Walk(p)
	require.NoError(t, err)
	assert.Equal(t, 0, level)
	// A top-level project is its own ancestor, by identity rather than
	// parent traversal.
	assert.Equal(t, "luid-1", root)
}

func TestWalkChain(t *testing.T) {
	root := &tableau.Project{ID: "1", LUID: "luid-1", TopLevelProject: true}
	mid := &tableau.Project{ID: "2", LUID: "luid-2", ParentID: strptr("1")}
	leaf := &tableau.Project{ID: "3", LUID: "luid-3", ParentID: strptr("2")}
	w := newWalker([]*tableau.Project{root, mid, leaf})

	level, rootLUID, err := w.Walk(mid)
	require.NoError(t, err)
	assert.Equal(t, 1, level)
	assert.Equal(t, "luid-1", rootLUID)

	level, rootLUID, err = w.Walk(leaf)
	require.NoError(t, err)
	assert.Equal(t, 2, level)
	assert.Equal(t, "luid-1", rootLUID)
}

func TestWalkDanglingParent(t *testing.T) {
	p := &tableau.Project{ID: "1", LUID: "luid-1", ParentID: strptr("missing")}
	w := newWalker([]*tableau.Project{p})

	_, _, err := w.Walk(p)
	require.Error(t, err)

	var hierErr *pkgerrors.HierarchyError
	require.ErrorAs(t, err, &hierErr)
	assert.Equal(t, "1", hierErr.ProjectID)
	assert.Equal(t, "missing", hierErr.ParentID)
}

func TestWalkMissingParentID(t *testing.T) {
	// Not top level, but no parent pointer either.
	p := &tableau.Project{ID: "1", LUID: "luid-1"}
	w := newWalker([]*tableau.Project{p})

	_, _, err := w.Walk(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrInconsistentSnapshot))
}

func TestWalkCycleTerminates(t *testing.T) {
	a := &tableau.Project{ID: "1", LUID: "luid-a", ParentID: strptr("2")}
	b := &tableau.Project{ID: "2", LUID: "luid-b", ParentID: strptr("1")}
	w := newWalker([]*tableau.Project{a, b})

	_, _, err := w.Walk(a)
	require.Error(t, err)

	var hierErr *pkgerrors.HierarchyError
	require.ErrorAs(t, err, &hierErr)
	assert.Equal(t, 2, hierErr.Steps)
}

func TestWalkSelfParentTerminates(t *testing.T) {
	p := &tableau.Project{ID: "1", LUID: "luid-1", ParentID: strptr("1")}
	w := newWalker([]*tableau.Project{p})

	_, _, err := w.Walk(p)
	require.Error(t, err)
}
