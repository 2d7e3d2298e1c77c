package app

import "time"

// Default documentation sources and fetch settings.
const (
	DefaultClassicURL = "https://developer.jamf.com/jamf-pro/docs/classic-api-minimum-required-privileges-and-endpoint-mapping"
	DefaultProURL     = "https://developer.jamf.com/jamf-pro/docs/privileges-and-deprecations"
	DefaultUserAgent  = "jamfrolesync/1.0 (+https://github.com/hyperifyio/jamfrolesync)"
	DefaultOutDir     = "roles"
	DefaultTimeout    = 30 * time.Second
)

// DefaultClassicHeaders and DefaultProHeaders are the header fragments that
// identify each source's privilege table. These are the knobs to adjust when
// a page's layout drifts.
func DefaultClassicHeaders() []string {
	return []string{"Endpoint", "Operation", "Required Privilege"}
}

func DefaultProHeaders() []string {
	return []string{"Endpoint", "Operation", "Privilege Requirements", "Deprecation Date"}
}

// Config holds runtime configuration for one sync run.
type Config struct {
	ClassicURL string
	ProURL     string

	// OutDir receives the four JSON documents.
	OutDir string
	// ReportPDF, when set, additionally renders a catalog summary PDF.
	ReportPDF string

	UserAgent string
	// Timeout bounds each of the two fetches.
	Timeout time.Duration

	// Required header fragments used to locate each source's table.
	ClassicHeaders []string
	ProHeaders     []string

	Verbose bool
}

func (c Config) withDefaults() Config {
	if c.ClassicURL == "" {
		c.ClassicURL = DefaultClassicURL
	}
	if c.ProURL == "" {
		c.ProURL = DefaultProURL
	}
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if len(c.ClassicHeaders) == 0 {
		c.ClassicHeaders = DefaultClassicHeaders()
	}
	if len(c.ProHeaders) == 0 {
		c.ProHeaders = DefaultProHeaders()
	}
	return c
}
