package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperifyio/jamfrolesync/internal/schema"
)

// Output file names, fixed by the downstream role-building pipeline.
const (
	RolesFile      = "jamf-roles.json"
	ClassicFile    = "classic-api-roles.json"
	ProFile        = "jamf-pro-api-roles.json"
	CategoriesFile = "privilege-categories.json"
)

// writeArtifacts writes the root schema and its three projections as
// indented JSON. All four documents are marshalled and staged to .tmp
// siblings before the first rename, so a failure cannot leave a half-written
// set behind.
func writeArtifacts(dir string, s *schema.RoleSchema) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	docs := []struct {
		name string
		v    any
	}{
		{RolesFile, s},
		{ClassicFile, s.ClassicDocument()},
		{ProFile, s.ProDocument()},
		{CategoriesFile, s.CategoriesDocument()},
	}
	staged := make([]string, 0, len(docs))
	for _, d := range docs {
		tmp := filepath.Join(dir, d.name+".tmp")
		if err := writeJSON(tmp, d.v); err != nil {
			removeFiles(staged)
			return err
		}
		staged = append(staged, tmp)
	}
	for i, d := range docs {
		if err := os.Rename(staged[i], filepath.Join(dir, d.name)); err != nil {
			removeFiles(staged[i:])
			return fmt.Errorf("rename %s: %w", d.name, err)
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func removeFiles(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}
