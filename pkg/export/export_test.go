package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartops/projmap/pkg/errors"
	"github.com/chartops/projmap/pkg/tableau"
)

func sampleProjects() []*tableau.Project {
	return []*tableau.Project{
		{ID: "2", LUID: "luid-b", Name: "Marketing", SiteName: "analytics"},
		{ID: "1", LUID: "luid-a", Name: "Finance", SiteName: "analytics"},
		{ID: "3", LUID: "luid-c", Name: "finance ops", SiteName: "analytics"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.True(t, errors.IsValidationError(err), "ParseFormat(%q)", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "ParseFormat(%q)", tt.input)
	}
}

func TestWriteJSONEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "projects.json")

	err := New().Write(path, "analytics", sampleProjects())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "analytics", doc.SiteName)
	assert.Equal(t, 3, doc.Count)
	require.Len(t, doc.Projects, 3)

	_, err = uuid.Parse(doc.RunID)
	assert.NoError(t, err, "run ID should be a UUID")
	assert.NotEmpty(t, doc.GeneratedAt)

	// Collated name order: case folding puts "finance ops" next to
	// "Finance", ahead of "Marketing".
	assert.Equal(t, "Finance", doc.Projects[0].Name)
	assert.Equal(t, "finance ops", doc.Projects[1].Name)
	assert.Equal(t, "Marketing", doc.Projects[2].Name)
}

func TestWriteDoesNotReorderInput(t *testing.T) {
	projects := sampleProjects()
	path := filepath.Join(t.TempDir(), "projects.json")

	require.NoError(t, New().Write(path, "analytics", projects))

	assert.Equal(t, "Marketing", projects[0].Name)
	assert.Equal(t, "Finance", projects[1].Name)
}

func TestWriteBareList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")

	err := New(WithBare()).Write(path, "analytics", sampleProjects())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var list []*tableau.Project
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 3)
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")

	err := New(WithFormat(FormatYAML)).Write(path, "analytics", sampleProjects())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.Contains(text, "siteName: analytics"), "yaml should use json field names:\n%s", text)
	assert.True(t, strings.Contains(text, "luid: luid-a"), "yaml should contain records:\n%s", text)
}

func TestWriteNoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")

	require.NoError(t, New().Write(path, "analytics", sampleProjects()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "projects.json", entries[0].Name())
}
