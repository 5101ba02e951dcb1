package tableau

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The JSON field names are the output contract of the exporter; renames
// here break downstream analytics consumers.
func TestProjectJSONFieldNames(t *testing.T) {
	parent := "1"
	p := Project{
		ID:                 "2",
		LUID:               "luid-b",
		Name:               "Reports",
		ParentID:           &parent,
		OwnerID:            "u1",
		SiteName:           "analytics",
		ContentPermissions: ContentPermissionsManagedByOwner,
		OwnerName:          "Alice",
		OwnerDSID:          "alice@x",
		ProjectLevel:       1,
		RootProjectLUID:    "luid-a",
	}

	data, err := json.Marshal(&p)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, key := range []string{
		"id", "luid", "name", "parentProjectId", "topLevelProject",
		"ownerId", "siteName", "contentPermissions", "ownerName",
		"ownerDSID", "projectLevel", "rootProjectId",
	} {
		assert.Contains(t, fields, key)
	}

	assert.NotContains(t, fields, "parentProject", "nil parent should be omitted")
}

func TestProjectJSONOmitsParentlessFields(t *testing.T) {
	p := Project{ID: "1", LUID: "luid-a", Name: "Finance", TopLevelProject: true}

	data, err := json.Marshal(&p)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.NotContains(t, fields, "parentProjectId")
	assert.Equal(t, true, fields["topLevelProject"])
}

func TestUserUnmarshal(t *testing.T) {
	raw := `{"id":"u1","displayName":"Alice","username":"alice@x"}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))
	assert.Equal(t, "Alice", u.DisplayName)
	assert.Equal(t, "alice@x", u.Username)
}
