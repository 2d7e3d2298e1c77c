package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ErrTableNotFound indicates that no table in the document covers the
// required header fragments. This usually means the page layout changed.
var ErrTableNotFound = errors.New("no table matches required headers")

// HeaderError reports a located table whose header row failed to resolve one
// or more required fields to a column position. The labels actually found are
// carried for diagnosing layout drift.
type HeaderError struct {
	Missing []string
	Headers []string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("table headers unexpected: missing %v in %v", e.Missing, e.Headers)
}

// Table is a located privilege table: the <table> node plus its normalized,
// lower-cased header labels in physical column order.
type Table struct {
	Headers []string
	node    *html.Node
}

// ParseHTML decodes body according to the response content type and parses it
// into a document tree.
func ParseHTML(body []byte, contentType string) (*html.Node, error) {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, fmt.Errorf("decode charset: %w", err)
	}
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// FindTable returns the first table in document order whose header row
// covers every required fragment: for each fragment (lower-cased), at least
// one header label must contain it as a substring. Tables without rows or
// without header cells are skipped. Substring matching is deliberate — the
// documentation pages rename and reorder columns over time, and exact-match
// lookups would break on every edit.
func FindTable(doc *html.Node, required []string) (*Table, error) {
	fragments := make([]string, 0, len(required))
	for _, r := range required {
		fragments = append(fragments, strings.ToLower(r))
	}

	var found *Table
	var dfs func(*html.Node)
	dfs = func(n *html.Node) {
		if found != nil {
			return
		}
		if isElement(n, "table") {
			if t := qualify(n, fragments); t != nil {
				found = t
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if found != nil {
				return
			}
		}
	}
	dfs(doc)

	if found == nil {
		return nil, ErrTableNotFound
	}
	return found, nil
}

// qualify reads the candidate's header row and checks fragment coverage.
func qualify(table *html.Node, fragments []string) *Table {
	headerRow := findFirst(table, "tr")
	if headerRow == nil {
		return nil
	}
	var labels []string
	eachElement(headerRow, "th", func(th *html.Node) {
		labels = append(labels, strings.ToLower(Normalize(nodeText(th))))
	})
	if len(labels) == 0 {
		return nil
	}
	for _, f := range fragments {
		if indexContaining(labels, f) < 0 {
			return nil
		}
	}
	return &Table{Headers: labels, node: table}
}

// Column returns the index of the first header label containing fragment
// (case-insensitive substring), or -1 when no label matches.
func (t *Table) Column(fragment string) int {
	return indexContaining(t.Headers, strings.ToLower(fragment))
}

// eachRow visits every data row of the table, passing the normalized text of
// its <td> cells in column order. Rows without data cells (e.g. the header
// row) are not visited.
func (t *Table) eachRow(fn func(cells []string)) {
	eachElement(t.node, "tr", func(tr *html.Node) {
		var cells []string
		eachElement(tr, "td", func(td *html.Node) {
			cells = append(cells, Normalize(nodeText(td)))
		})
		if len(cells) == 0 {
			return
		}
		fn(cells)
	})
}

func indexContaining(labels []string, fragment string) int {
	for i, l := range labels {
		if strings.Contains(l, fragment) {
			return i
		}
	}
	return -1
}

func isElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && strings.EqualFold(n.Data, tag)
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

// eachElement visits matching descendants of n in document order without
// descending into a match.
func eachElement(n *html.Node, tag string, fn func(*html.Node)) {
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			fn(cur)
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dfs(c)
	}
}

// nodeText concatenates the text content under n, separating adjacent text
// nodes with spaces. Callers normalize the result.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			b.WriteByte(' ')
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return b.String()
}
