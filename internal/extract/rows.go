package extract

import "strings"

// ClassicRow is one endpoint/operation mapping from the Classic API table.
type ClassicRow struct {
	Endpoint   string   `json:"endpoint"`
	Operation  string   `json:"operation"`
	Privileges []string `json:"privileges"`
}

// ProRow is one endpoint/operation mapping from the Jamf Pro API table.
// DeprecationDate is nil when the page documents the endpoint as "N/A"
// (not deprecated); otherwise the cell text is kept verbatim.
type ProRow struct {
	Endpoint        string   `json:"endpoint"`
	Operation       string   `json:"operation"`
	Privileges      []string `json:"privileges"`
	DeprecationDate *string  `json:"deprecation_date"`
}

// ClassicRows extracts the Classic API rows from a located table. Rows with
// too few cells or with an empty endpoint or operation are skipped; exact
// duplicates collapse to their first occurrence, preserving order.
func (t *Table) ClassicRows() ([]ClassicRow, error) {
	iEndpoint := t.Column("endpoint")
	iOperation := t.Column("operation")
	iPriv := t.Column("required")
	if err := t.checkResolved(
		field{"endpoint", iEndpoint},
		field{"operation", iOperation},
		field{"required", iPriv},
	); err != nil {
		return nil, err
	}
	maxIdx := maxIndex(iEndpoint, iOperation, iPriv)

	var out []ClassicRow
	seen := make(map[string]struct{})
	t.eachRow(func(cells []string) {
		if maxIdx >= len(cells) {
			return
		}
		endpoint := cells[iEndpoint]
		operation := strings.ToUpper(cells[iOperation])
		if endpoint == "" || operation == "" {
			return
		}
		privs := splitPrivileges(cells[iPriv])
		key := dedupKey(endpoint, operation, privs, "")
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, ClassicRow{Endpoint: endpoint, Operation: operation, Privileges: privs})
	})
	return out, nil
}

// ProRows extracts the Jamf Pro API rows from a located table. Same row
// handling as ClassicRows, plus deprecation-date resolution; the deprecation
// value participates in deduplication.
func (t *Table) ProRows() ([]ProRow, error) {
	iEndpoint := t.Column("endpoint")
	iOperation := t.Column("operation")
	iPriv := t.Column("privilege")
	iDepr := t.Column("deprecation")
	if err := t.checkResolved(
		field{"endpoint", iEndpoint},
		field{"operation", iOperation},
		field{"privilege", iPriv},
		field{"deprecation", iDepr},
	); err != nil {
		return nil, err
	}
	maxIdx := maxIndex(iEndpoint, iOperation, iPriv, iDepr)

	var out []ProRow
	seen := make(map[string]struct{})
	t.eachRow(func(cells []string) {
		if maxIdx >= len(cells) {
			return
		}
		endpoint := cells[iEndpoint]
		operation := strings.ToUpper(cells[iOperation])
		if endpoint == "" || operation == "" {
			return
		}
		privs := splitPrivileges(cells[iPriv])
		depr := deprecation(cells[iDepr])
		key := dedupKey(endpoint, operation, privs, deref(depr))
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, ProRow{Endpoint: endpoint, Operation: operation, Privileges: privs, DeprecationDate: depr})
	})
	return out, nil
}

type field struct {
	name string
	idx  int
}

func (t *Table) checkResolved(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if f.idx < 0 {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &HeaderError{Missing: missing, Headers: t.Headers}
	}
	return nil
}

// splitPrivileges splits a privileges cell on commas, trimming fragments and
// dropping empty ones. Order is preserved; the result may be empty but is
// never nil so it serializes as an empty list.
func splitPrivileges(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// deprecation maps an empty cell or a literal "N/A" (any case) to nil; any
// other text passes through verbatim, with no date-format validation.
func deprecation(cell string) *string {
	if cell == "" || strings.EqualFold(cell, "N/A") {
		return nil
	}
	return &cell
}

func dedupKey(endpoint, operation string, privs []string, depr string) string {
	return endpoint + "\x00" + operation + "\x00" + strings.Join(privs, ",") + "\x00" + depr
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func maxIndex(idx ...int) int {
	m := -1
	for _, i := range idx {
		if i > m {
			m = i
		}
	}
	return m
}
