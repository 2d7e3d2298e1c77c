// Package schema aggregates extracted endpoint rows into the versioned role
// schema consumed by the role-building pipeline.
package schema

import (
	"sort"
	"strings"
	"time"

	"github.com/hyperifyio/jamfrolesync/internal/extract"
)

// Version is the schema version stamped into every output document.
const Version = "1.0.0"

const (
	rootDescription    = "Jamf Pro API Role and Privilege Mappings"
	sourceDescription  = "Jamf Developer Documentation"
	classicDescription = "Classic API (XML-based) endpoints and required privileges"
	proDescription     = "Jamf Pro API (REST-based) endpoints and required privileges"

	// Category for privilege strings without an "Action - Resource" shape.
	otherCategory = "Other"

	categorySeparator = " - "
)

// Metadata describes the provenance of a generated schema.
type Metadata struct {
	Description       string   `json:"description"`
	Source            string   `json:"source"`
	DocumentationURLs []string `json:"documentation_urls"`
}

// ClassicSection and ProSection group each API family's endpoints.
type ClassicSection struct {
	Description string               `json:"description"`
	Endpoints   []extract.ClassicRow `json:"endpoints"`
}

type ProSection struct {
	Description string           `json:"description"`
	Endpoints   []extract.ProRow `json:"endpoints"`
}

// RoleSchema is the persisted root artifact.
type RoleSchema struct {
	Version             string              `json:"version"`
	LastUpdated         string              `json:"last_updated"`
	Metadata            Metadata            `json:"metadata"`
	PrivilegeCategories map[string][]string `json:"privilege_categories"`
	AllPrivileges       []string            `json:"all_privileges"`
	ClassicAPI          ClassicSection      `json:"classic_api"`
	JamfProAPI          ProSection          `json:"jamf_pro_api"`
}

// ClassicDocument, ProDocument and CategoriesDocument are the three derived
// views written alongside the root schema. They are projections of an
// assembled RoleSchema, never rebuilt from disk.
type ClassicDocument struct {
	Version     string               `json:"version"`
	LastUpdated string               `json:"last_updated"`
	Endpoints   []extract.ClassicRow `json:"endpoints"`
}

type ProDocument struct {
	Version     string           `json:"version"`
	LastUpdated string           `json:"last_updated"`
	Endpoints   []extract.ProRow `json:"endpoints"`
}

type CategoriesDocument struct {
	Version       string              `json:"version"`
	Categories    map[string][]string `json:"categories"`
	AllPrivileges []string            `json:"all_privileges"`
}

// Build assembles the role schema from both sources' extracted rows. The
// privilege universe is the union of every row's privileges; categories are
// partitioned on the "Action - Resource" naming convention. Category-internal
// resource lists keep insertion order (distinct privileges are visited in
// sorted order, so the result is deterministic), while AllPrivileges is the
// flat sorted union.
func Build(classic []extract.ClassicRow, pro []extract.ProRow, proURL, classicURL string, now time.Time) *RoleSchema {
	if classic == nil {
		classic = []extract.ClassicRow{}
	}
	if pro == nil {
		pro = []extract.ProRow{}
	}

	universe := make(map[string]struct{})
	for _, r := range classic {
		for _, p := range r.Privileges {
			universe[p] = struct{}{}
		}
	}
	for _, r := range pro {
		for _, p := range r.Privileges {
			universe[p] = struct{}{}
		}
	}
	all := make([]string, 0, len(universe))
	for p := range universe {
		all = append(all, p)
	}
	sort.Strings(all)

	categories := make(map[string][]string)
	for _, p := range all {
		action, resource := splitPrivilege(p)
		if !containsString(categories[action], resource) {
			categories[action] = append(categories[action], resource)
		}
	}

	return &RoleSchema{
		Version:     Version,
		LastUpdated: now.Format(time.RFC3339),
		Metadata: Metadata{
			Description:       rootDescription,
			Source:            sourceDescription,
			DocumentationURLs: []string{proURL, classicURL},
		},
		PrivilegeCategories: categories,
		AllPrivileges:       all,
		ClassicAPI:          ClassicSection{Description: classicDescription, Endpoints: classic},
		JamfProAPI:          ProSection{Description: proDescription, Endpoints: pro},
	}
}

// ClassicDocument projects the classic-only view.
func (s *RoleSchema) ClassicDocument() *ClassicDocument {
	return &ClassicDocument{Version: s.Version, LastUpdated: s.LastUpdated, Endpoints: s.ClassicAPI.Endpoints}
}

// ProDocument projects the pro-only view.
func (s *RoleSchema) ProDocument() *ProDocument {
	return &ProDocument{Version: s.Version, LastUpdated: s.LastUpdated, Endpoints: s.JamfProAPI.Endpoints}
}

// CategoriesDocument projects the categories-only view.
func (s *RoleSchema) CategoriesDocument() *CategoriesDocument {
	return &CategoriesDocument{Version: s.Version, Categories: s.PrivilegeCategories, AllPrivileges: s.AllPrivileges}
}

// splitPrivilege splits "Read - Computers" into ("Read", "Computers").
// Strings without the separator fall into the Other category whole.
func splitPrivilege(p string) (action, resource string) {
	if i := strings.Index(p, categorySeparator); i >= 0 {
		return strings.TrimSpace(p[:i]), p[i+len(categorySeparator):]
	}
	return otherCategory, p
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
