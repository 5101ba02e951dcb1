// Package tableau defines the data model for Tableau Server project
// inventory records. Two independently fetched collections describe the
// same projects: the documented REST API carries the authoritative
// access-control metadata, while the internal portal API carries the
// hierarchy and ownership metadata. The reconciler joins them by LUID
// into the denormalized Project record that this tool exports.
package tableau

import "time"

// ContentPermissions is a project's content permissions mode as reported
// by the REST API.
type ContentPermissions string

// Content permissions modes.
const (
	// ContentPermissionsManagedByOwner lets content owners manage
	// permissions on their own content.
	ContentPermissionsManagedByOwner ContentPermissions = "ManagedByOwner"

	// ContentPermissionsLockedToProject locks content permissions to the
	// project defaults.
	ContentPermissionsLockedToProject ContentPermissions = "LockedToProject"

	// ContentPermissionsLockedToProjectWithoutNested locks permissions at
	// the project level but not for nested projects.
	ContentPermissionsLockedToProjectWithoutNested ContentPermissions = "LockedToProjectWithoutNested"
)

// String returns the string representation of the permissions mode.
func (c ContentPermissions) String() string {
	return string(c)
}

// RestProject is a project as returned by the documented REST API.
// It is the authoritative source for access-control metadata and is
// read-only during reconciliation.
type RestProject struct {
	// ID is the project LUID, the join key shared with Project.LUID.
	ID string `json:"id"`

	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	ContentPermissions ContentPermissions `json:"contentPermissions"`
	CreatedAt          time.Time          `json:"createdAt,omitempty"`
	UpdatedAt          time.Time          `json:"updatedAt,omitempty"`
}

// Project is a project as returned by the internal portal API, plus the
// fields filled in by reconciliation. It is the output record of a run.
//
// ID and ParentID are portal-internal identifiers; LUID is the
// server-wide identifier that joins against RestProject.ID. ParentID is
// nil exactly when the project is top level.
type Project struct {
	ID              string  `json:"id"`
	LUID            string  `json:"luid"`
	Name            string  `json:"name"`
	ParentID        *string `json:"parentProjectId,omitempty"`
	TopLevelProject bool    `json:"topLevelProject"`
	OwnerID         string  `json:"ownerId"`

	// Fields below are populated by the reconciler.

	SiteName           string             `json:"siteName,omitempty"`
	ContentPermissions ContentPermissions `json:"contentPermissions,omitempty"`
	OwnerName          string             `json:"ownerName,omitempty"`
	OwnerDSID          string             `json:"ownerDSID,omitempty"`

	// ProjectLevel is the project's depth below its top-level ancestor;
	// zero for top-level projects.
	ProjectLevel int `json:"projectLevel"`

	// RootProjectLUID is the LUID of the project's top-level ancestor;
	// a top-level project is its own root.
	RootProjectLUID string `json:"rootProjectId,omitempty"`

	// Parent is the fully reconciled parent record, attached by
	// reference in the reconciler's second pass. Nil for top-level
	// projects.
	Parent *Project `json:"parentProject,omitempty"`
}

// TopLevel reports whether the project is a top-level project.
func (p *Project) TopLevel() bool {
	return p.TopLevelProject
}

// User is a portal user record, used only to resolve project owners.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
}
