// Package reconcile implements the hierarchy reconciliation and
// enrichment algorithm: it joins the portal project collection against
// the authoritative REST collection by LUID, resolves owner identities,
// computes each project's depth and top-level ancestor from parent
// pointers, and attaches resolved parent records in a second pass.
package reconcile

import "github.com/chartops/projmap/pkg/tableau"

// The Find* resolvers are pure first-match lookups. Collections are
// expected to hold at most one entity per identifier; if duplicates
// exist, the first in iteration order wins.

// FindRestProject returns the first REST project whose LUID matches id.
func FindRestProject(projects []tableau.RestProject, id string) (*tableau.RestProject, bool) {
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], true
		}
	}
	return nil, false
}

// FindUser returns the first user whose ID matches id.
func FindUser(users []tableau.User, id string) (*tableau.User, bool) {
	for i := range users {
		if users[i].ID == id {
			return &users[i], true
		}
	}
	return nil, false
}

// FindProject returns the first portal project whose portal ID matches
// id. Used for parent lookups.
func FindProject(projects []*tableau.Project, id string) (*tableau.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// index maps identifiers to entities for O(1) parent and join lookups.
// Built once per run; first occurrence wins on duplicate identifiers,
// matching the Find* resolvers.
type index[T any] map[string]T

func newIndex[T any](size int) index[T] {
	return make(index[T], size)
}

func (ix index[T]) add(id string, entity T) {
	if _, exists := ix[id]; !exists {
		ix[id] = entity
	}
}

func (ix index[T]) lookup(id string) (T, bool) {
	entity, ok := ix[id]
	return entity, ok
}

// newProjectIndex indexes portal projects by portal ID.
func newProjectIndex(projects []*tableau.Project) index[*tableau.Project] {
	ix := newIndex[*tableau.Project](len(projects))
	for _, p := range projects {
		ix.add(p.ID, p)
	}
	return ix
}

// newRestIndex indexes REST projects by LUID.
func newRestIndex(projects []tableau.RestProject) index[*tableau.RestProject] {
	ix := newIndex[*tableau.RestProject](len(projects))
	for i := range projects {
		ix.add(projects[i].ID, &projects[i])
	}
	return ix
}

// newUserIndex indexes users by ID.
func newUserIndex(users []tableau.User) index[*tableau.User] {
	ix := newIndex[*tableau.User](len(users))
	for i := range users {
		ix.add(users[i].ID, &users[i])
	}
	return ix
}
