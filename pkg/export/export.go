// Package export serializes the reconciled project collection to disk.
// Records are ordered by collated project name so repeated runs over
// the same snapshot produce byte-identical output regardless of fetch
// order.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/chartops/projmap/pkg/errors"
	"github.com/chartops/projmap/pkg/tableau"
)

// Format is an output serialization format.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", &errors.ValidationError{
			Field:   "format",
			Value:   s,
			Message: "must be json or yaml",
		}
	}
}

// Document is the export envelope wrapping the record set with run
// metadata.
type Document struct {
	RunID       string             `json:"runId"`
	SiteName    string             `json:"siteName"`
	GeneratedAt string             `json:"generatedAt"`
	Count       int                `json:"count"`
	Projects    []*tableau.Project `json:"projects"`
}

// outputFilePermissions is the mode for written export files.
const outputFilePermissions = 0o644

// Writer serializes reconciled projects to a file.
type Writer struct {
	format   Format
	bare     bool
	collator *collate.Collator
}

// New creates a Writer with options.
func New(opts ...Option) *Writer {
	w := &Writer{
		format:   FormatJSON,
		collator: collate.New(language.English),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write serializes projects to path. The parent directory is created if
// needed, and the file is written via a temp file plus rename so a
// failed run never leaves a truncated export behind.
func (w *Writer) Write(path, siteName string, projects []*tableau.Project) error {
	ordered := w.order(projects)

	var payload any
	if w.bare {
		payload = ordered
	} else {
		payload = &Document{
			RunID:       uuid.NewString(),
			SiteName:    siteName,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Count:       len(ordered),
			Projects:    ordered,
		}
	}

	data, err := w.marshal(payload)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.WrapIO("write", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("write", tmpName, err)
	}
	if err := os.Chmod(tmpName, outputFilePermissions); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("write", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("rename", path, err)
	}

	return nil
}

// order returns a name-collated copy of projects. The input slice is
// left untouched; records themselves are shared, not copied.
func (w *Writer) order(projects []*tableau.Project) []*tableau.Project {
	ordered := make([]*tableau.Project, len(projects))
	copy(ordered, projects)

	sort.SliceStable(ordered, func(i, j int) bool {
		if c := w.collator.CompareString(ordered[i].Name, ordered[j].Name); c != 0 {
			return c < 0
		}
		return ordered[i].LUID < ordered[j].LUID
	})

	return ordered
}

func (w *Writer) marshal(payload any) ([]byte, error) {
	data, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		return nil, errors.WrapParse("json", "export", err)
	}

	if w.format == FormatYAML {
		// Route through JSON so the yaml output honors the same field
		// names as the json struct tags.
		out, err := yaml.JSONToYAML(data)
		if err != nil {
			return nil, errors.WrapParse("yaml", "export", err)
		}
		return out, nil
	}

	return append(data, '\n'), nil
}
