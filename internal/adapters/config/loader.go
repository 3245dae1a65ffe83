// Package config provides the configuration loader for lithos.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/lithos/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the site configuration file.
const ConfigFileName = "lithos.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load walks up from cwd to find lithos.yaml, parses and validates it.
// The site directory resolves relative to the config file's location.
func (l *Loader) Load(cwd string) (*domain.SiteConfig, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // Path discovered from trusted cwd
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return l.toDomain(&file, filepath.Dir(configPath))
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		currentDir = parent
	}
}

func (l *Loader) toDomain(file *File, baseDir string) (*domain.SiteConfig, error) {
	cfg := &domain.SiteConfig{
		Directory:    baseDir,
		Endpoint:     file.Site.Endpoint,
		Parallelism:  file.Site.Parallelism,
		TrackChanges: file.Site.TrackChanges,
	}
	if file.Site.Directory != "" && file.Site.Directory != "." {
		if filepath.IsAbs(file.Site.Directory) {
			cfg.Directory = file.Site.Directory
		} else {
			cfg.Directory = filepath.Join(baseDir, file.Site.Directory)
		}
	}

	if file.Site.SlowQueryWarning != "" {
		d, err := time.ParseDuration(file.Site.SlowQueryWarning)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", "slow_query_warning")
		}
		cfg.SlowQueryWarning = d
	}

	seenPaths := make(map[string]struct{}, len(file.Pages))
	for _, p := range file.Pages {
		if !strings.HasPrefix(p.Path, "/") {
			return nil, zerr.With(domain.ErrInvalidPagePath, "path", p.Path)
		}
		if _, dup := seenPaths[p.Path]; dup {
			return nil, zerr.With(domain.ErrDuplicatePagePath, "path", p.Path)
		}
		seenPaths[p.Path] = struct{}{}
		if p.Component == "" {
			return nil, zerr.With(domain.ErrMissingComponent, "path", p.Path)
		}
		cfg.Pages = append(cfg.Pages, domain.Page{
			Path:          p.Path,
			ComponentPath: p.Component,
			Query:         p.Query,
			Context:       p.Context,
			Plugin:        p.Plugin,
		})
	}

	for _, sq := range file.StaticQueries {
		if sq.ID == "" {
			return nil, zerr.With(domain.ErrMissingQueryID, "component", sq.Component)
		}
		if sq.Component == "" {
			return nil, zerr.With(domain.ErrMissingComponent, "id", sq.ID)
		}
		cfg.StaticQueries = append(cfg.StaticQueries, domain.StaticQuery{
			ID:            sq.ID,
			ComponentPath: sq.Component,
			Query:         sq.Query,
			Plugin:        sq.Plugin,
		})
	}

	if cfg.Endpoint == "" && l.hasQueries(cfg) {
		return nil, domain.ErrMissingEndpoint
	}

	return cfg, nil
}

// hasQueries reports whether any configured page or static query carries
// a non-empty query. Empty queries never hit the engine, so a site of
// query-less pages needs no endpoint.
func (l *Loader) hasQueries(cfg *domain.SiteConfig) bool {
	for _, p := range cfg.Pages {
		if p.Query != "" {
			return true
		}
	}
	for _, sq := range cfg.StaticQueries {
		if sq.Query != "" {
			return true
		}
	}
	return false
}
