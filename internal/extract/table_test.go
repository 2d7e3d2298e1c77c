package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseDoc(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := ParseHTML([]byte(page), "text/html; charset=utf-8")
	require.NoError(t, err)
	return doc
}

func mustTable(t *testing.T, page string, required []string) *Table {
	t.Helper()
	tab, err := FindTable(parseDoc(t, page), required)
	require.NoError(t, err)
	return tab
}

func TestFindTable_PicksOnlyQualifyingTable(t *testing.T) {
	// Three tables; only the middle one covers the required fragments, with
	// reordered columns, extra wording, and mixed case.
	page := `<html><body>
	<table><tr><th>Name</th><th>Value</th></tr><tr><td>a</td><td>b</td></tr></table>
	<table>
	  <thead><tr><th>HTTP Operation</th><th>API Endpoint</th><th>Required Privileges</th></tr></thead>
	  <tbody><tr><td>get</td><td>/computers</td><td>Read - Computers</td></tr></tbody>
	</table>
	<table><tr><th>Endpoint</th><th>Notes</th></tr><tr><td>/x</td><td>y</td></tr></table>
	</body></html>`

	tab, err := FindTable(parseDoc(t, page), []string{"Endpoint", "Operation", "Required Privilege"})
	require.NoError(t, err)
	assert.Equal(t, []string{"http operation", "api endpoint", "required privileges"}, tab.Headers)

	rows, err := tab.ClassicRows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "/computers", rows[0].Endpoint)
}

func TestFindTable_NotFoundOnPartialCoverage(t *testing.T) {
	page := `<html><body>
	<table><tr><th>Endpoint</th><th>Operation</th></tr><tr><td>/x</td><td>GET</td></tr></table>
	</body></html>`

	_, err := FindTable(parseDoc(t, page), []string{"Endpoint", "Operation", "Required Privilege"})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestFindTable_SkipsTablesWithoutHeaderCells(t *testing.T) {
	// First table has matching text but uses <td> in its first row; second is
	// the real header table.
	page := `<html><body>
	<table><tr><td>Endpoint</td><td>Operation</td><td>Required Privilege</td></tr></table>
	<table><tr><th>Endpoint</th><th>Operation</th><th>Required Privilege</th></tr>
	  <tr><td>/a</td><td>GET</td><td>Read - A</td></tr></table>
	</body></html>`

	tab := mustTable(t, page, []string{"Endpoint", "Operation", "Required Privilege"})
	rows, err := tab.ClassicRows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "/a", rows[0].Endpoint)
}

func TestFindTable_NormalizesHeaderText(t *testing.T) {
	page := `<html><body><table>
	<tr><th>  Endpoint  </th><th>Opera
tion</th><th>Required&#160;Privilege</th></tr>
	<tr><td>/a</td><td>GET</td><td></td></tr>
	</table></body></html>`

	tab := mustTable(t, page, []string{"Endpoint", "Required Privilege"})
	assert.Equal(t, []string{"endpoint", "opera tion", "required privilege"}, tab.Headers)
}

func TestColumn_SubstringResolution(t *testing.T) {
	tab := &Table{Headers: []string{"api endpoint", "http operation", "required privileges"}}

	assert.Equal(t, 0, tab.Column("endpoint"))
	assert.Equal(t, 1, tab.Column("operation"))
	assert.Equal(t, 2, tab.Column("required"))
	assert.Equal(t, -1, tab.Column("deprecation"))
}
