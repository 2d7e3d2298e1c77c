package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/jamfrolesync/internal/extract"
)

func TestBuild_EndToEnd(t *testing.T) {
	classic := []extract.ClassicRow{
		{Endpoint: "GET /computers", Operation: "GET", Privileges: []string{"Read - Computers"}},
		{Endpoint: "POST /computers", Operation: "CREATE", Privileges: []string{"Create - Computers", "Update - Computers"}},
	}
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	s := Build(classic, nil, "https://example.test/pro", "https://example.test/classic", now)

	assert.Equal(t, "1.0.0", s.Version)
	assert.Equal(t, "2026-08-28T12:00:00Z", s.LastUpdated)
	assert.Equal(t, []string{"https://example.test/pro", "https://example.test/classic"}, s.Metadata.DocumentationURLs)

	assert.Equal(t, []string{"Create - Computers", "Read - Computers", "Update - Computers"}, s.AllPrivileges)
	assert.Equal(t, map[string][]string{
		"Create": {"Computers"},
		"Read":   {"Computers"},
		"Update": {"Computers"},
	}, s.PrivilegeCategories)

	assert.Equal(t, classic, s.ClassicAPI.Endpoints)
	require.NotNil(t, s.JamfProAPI.Endpoints)
	assert.Empty(t, s.JamfProAPI.Endpoints)
}

func TestBuild_OtherCategoryAndDedup(t *testing.T) {
	classic := []extract.ClassicRow{
		{Endpoint: "/a", Operation: "GET", Privileges: []string{"FullAdmin", "Read - Computers"}},
	}
	pro := []extract.ProRow{
		{Endpoint: "/v1/a", Operation: "GET", Privileges: []string{"Read - Computers", "Read - Buildings"}},
	}

	s := Build(classic, pro, "p", "c", time.Now())

	// Union is duplicate-free and sorted.
	assert.Equal(t, []string{"FullAdmin", "Read - Buildings", "Read - Computers"}, s.AllPrivileges)
	// Separator-less strings land whole under Other; category resource
	// order follows the sorted privilege order.
	assert.Equal(t, map[string][]string{
		"Other": {"FullAdmin"},
		"Read":  {"Buildings", "Computers"},
	}, s.PrivilegeCategories)
}

func TestBuild_SplitsOnFirstSeparatorOnly(t *testing.T) {
	classic := []extract.ClassicRow{
		{Endpoint: "/a", Operation: "GET", Privileges: []string{"Read - Advanced - Searches"}},
	}

	s := Build(classic, nil, "p", "c", time.Now())

	assert.Equal(t, map[string][]string{"Read": {"Advanced - Searches"}}, s.PrivilegeCategories)
}

func TestProjections_ShareSchemaState(t *testing.T) {
	depr := "2026-01-01"
	classic := []extract.ClassicRow{{Endpoint: "/a", Operation: "GET", Privileges: []string{"Read - A"}}}
	pro := []extract.ProRow{{Endpoint: "/v1/a", Operation: "GET", Privileges: []string{"Read - A"}, DeprecationDate: &depr}}

	s := Build(classic, pro, "p", "c", time.Now())

	cd := s.ClassicDocument()
	assert.Equal(t, s.Version, cd.Version)
	assert.Equal(t, s.LastUpdated, cd.LastUpdated)
	assert.Equal(t, s.ClassicAPI.Endpoints, cd.Endpoints)

	pd := s.ProDocument()
	assert.Equal(t, s.JamfProAPI.Endpoints, pd.Endpoints)

	gd := s.CategoriesDocument()
	assert.Equal(t, s.PrivilegeCategories, gd.Categories)
	assert.Equal(t, s.AllPrivileges, gd.AllPrivileges)
}

func TestMarshal_EmptyListsNotNull(t *testing.T) {
	s := Build(nil, nil, "p", "c", time.Now())

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"all_privileges":[]`)
	assert.Contains(t, string(b), `"endpoints":[]`)
	assert.NotContains(t, string(b), `"endpoints":null`)
}

func TestMarshal_NullDeprecationExplicit(t *testing.T) {
	pro := []extract.ProRow{{Endpoint: "/v1/a", Operation: "GET", Privileges: []string{}}}

	b, err := json.Marshal(Build(nil, pro, "p", "c", time.Now()).ProDocument())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"deprecation_date":null`)
}
