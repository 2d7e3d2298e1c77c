// Package app orchestrates one sync run: fetch both documentation pages,
// extract the privilege tables, build the role schema, write the artifacts.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/hyperifyio/jamfrolesync/internal/extract"
	"github.com/hyperifyio/jamfrolesync/internal/fetch"
	"github.com/hyperifyio/jamfrolesync/internal/report"
	"github.com/hyperifyio/jamfrolesync/internal/schema"
)

type App struct {
	cfg    Config
	client *fetch.Client
}

func New(cfg Config) *App {
	cfg = cfg.withDefaults()
	return &App{
		cfg: cfg,
		client: &fetch.Client{
			UserAgent:         cfg.UserAgent,
			PerRequestTimeout: cfg.Timeout,
		},
	}
}

// Run executes the pipeline sequentially. Any fetch or extraction failure
// aborts before anything is written, so the previous run's artifacts stay
// intact.
func (a *App) Run(ctx context.Context) error {
	log.Info().Str("url", a.cfg.ClassicURL).Msg("fetching Classic API privileges")
	classicDoc, err := a.fetchDocument(ctx, a.cfg.ClassicURL)
	if err != nil {
		return fmt.Errorf("classic source: %w", err)
	}
	log.Info().Str("url", a.cfg.ProURL).Msg("fetching Jamf Pro API privileges")
	proDoc, err := a.fetchDocument(ctx, a.cfg.ProURL)
	if err != nil {
		return fmt.Errorf("pro source: %w", err)
	}

	classicRows, err := extractClassic(classicDoc, a.cfg.ClassicHeaders)
	if err != nil {
		return fmt.Errorf("classic source: %w", err)
	}
	proRows, err := extractPro(proDoc, a.cfg.ProHeaders)
	if err != nil {
		return fmt.Errorf("pro source: %w", err)
	}
	log.Info().Int("classic", len(classicRows)).Int("pro", len(proRows)).Msg("extracted endpoint rows")

	s := schema.Build(classicRows, proRows, a.cfg.ProURL, a.cfg.ClassicURL, time.Now())

	if err := writeArtifacts(a.cfg.OutDir, s); err != nil {
		return err
	}
	log.Info().Str("dir", a.cfg.OutDir).Int("files", 4).Msg("wrote role schema artifacts")

	if a.cfg.ReportPDF != "" {
		if err := report.WritePDF(s, a.cfg.ReportPDF); err != nil {
			return fmt.Errorf("write catalog report: %w", err)
		}
		log.Info().Str("path", a.cfg.ReportPDF).Msg("wrote catalog report")
	}
	return nil
}

func (a *App) fetchDocument(ctx context.Context, url string) (*html.Node, error) {
	body, contentType, err := a.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return extract.ParseHTML(body, contentType)
}

func extractClassic(doc *html.Node, headers []string) ([]extract.ClassicRow, error) {
	t, err := extract.FindTable(doc, headers)
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("headers", t.Headers).Msg("classic table located")
	return t.ClassicRows()
}

func extractPro(doc *html.Node, headers []string) ([]extract.ProRow, error) {
	t, err := extract.FindTable(doc, headers)
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("headers", t.Headers).Msg("pro table located")
	return t.ProRows()
}
