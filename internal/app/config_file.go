package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the optional config file schema, mirroring the CLI
// flags. Nested sections map naturally to the flag names.
type FileConfig struct {
	Classic struct {
		URL     string   `yaml:"url"`
		Headers []string `yaml:"headers"`
	} `yaml:"classic"`

	Pro struct {
		URL     string   `yaml:"url"`
		Headers []string `yaml:"headers"`
	} `yaml:"pro"`

	Out struct {
		Dir string `yaml:"dir"`
	} `yaml:"out"`

	Report struct {
		PDF string `yaml:"pdf"`
	} `yaml:"report"`

	UserAgent string        `yaml:"ua"`
	Timeout   time.Duration `yaml:"timeout"`
	Verbose   bool          `yaml:"verbose"`
}

// LoadConfigFile reads YAML into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their flag defaults. Flags should already have been parsed; this
// lets file config supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.ClassicURL == "" || cfg.ClassicURL == DefaultClassicURL) && fc.Classic.URL != "" {
		cfg.ClassicURL = fc.Classic.URL
	}
	if (cfg.ProURL == "" || cfg.ProURL == DefaultProURL) && fc.Pro.URL != "" {
		cfg.ProURL = fc.Pro.URL
	}
	if len(cfg.ClassicHeaders) == 0 && len(fc.Classic.Headers) > 0 {
		cfg.ClassicHeaders = append([]string{}, fc.Classic.Headers...)
	}
	if len(cfg.ProHeaders) == 0 && len(fc.Pro.Headers) > 0 {
		cfg.ProHeaders = append([]string{}, fc.Pro.Headers...)
	}
	if (cfg.OutDir == "" || cfg.OutDir == DefaultOutDir) && fc.Out.Dir != "" {
		cfg.OutDir = fc.Out.Dir
	}
	if cfg.ReportPDF == "" && fc.Report.PDF != "" {
		cfg.ReportPDF = fc.Report.PDF
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if (cfg.Timeout == 0 || cfg.Timeout == DefaultTimeout) && fc.Timeout > 0 {
		cfg.Timeout = fc.Timeout
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
