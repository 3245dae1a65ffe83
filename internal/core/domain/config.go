package domain

import (
	"strings"
	"time"
)

// DefaultSlowQueryWarning is the delay before a still-running query is
// reported as slow.
const DefaultSlowQueryWarning = 15 * time.Second

// DefaultPluginID is the owner recorded for queries registered directly
// by the site rather than a plugin.
const DefaultPluginID = "default-site-plugin"

// SiteConfig is the validated build configuration.
type SiteConfig struct {
	// Directory is the site root; all output paths are resolved under it.
	Directory string
	// Endpoint is the URL of the external query execution engine.
	Endpoint string
	// Parallelism bounds concurrent query jobs. Zero means one per CPU.
	Parallelism int
	// SlowQueryWarning is the delay before a slow-query warning fires.
	SlowQueryWarning time.Duration
	// TrackChanges enables hash-change notifications for page queries.
	TrackChanges bool
	// Pages are the routable pages of the site.
	Pages []Page
	// StaticQueries are the non-page queries owned by reusable templates.
	StaticQueries []StaticQuery
}

// Page declares one routable page and its bound query.
type Page struct {
	Path          string
	ComponentPath string
	Query         string
	Context       map[string]any
	Plugin        string
}

// StaticQuery declares one non-page query owned by a template.
type StaticQuery struct {
	ID            string
	ComponentPath string
	Query         string
	Plugin        string
}

// Jobs expands the configured pages and static queries into executable
// query jobs.
func (c *SiteConfig) Jobs() []*Job {
	jobs := make([]*Job, 0, len(c.Pages)+len(c.StaticQueries))
	now := time.Now().UnixMilli()

	for _, p := range c.Pages {
		plugin := p.Plugin
		if plugin == "" {
			plugin = DefaultPluginID
		}
		pc := &PageContext{
			Path:                  p.Path,
			InternalComponentName: InternalComponentName(p.Path),
			ComponentChunkName:    ComponentChunkName(p.ComponentPath),
			ComponentPath:         p.ComponentPath,
			UpdatedAt:             now,
			PluginCreator:         plugin,
			PluginCreatorID:       plugin,
			Context:               p.Context,
		}
		jobs = append(jobs, &Job{
			ID:              p.Path,
			Hash:            HashQueryText(p.Query),
			Query:           p.Query,
			ComponentPath:   p.ComponentPath,
			Context:         pc.ExecutionVars(),
			PageContext:     pc,
			IsPage:          true,
			PluginCreatorID: plugin,
		})
	}

	for _, sq := range c.StaticQueries {
		jobs = append(jobs, &Job{
			ID:              sq.ID,
			Hash:            HashQueryText(sq.Query),
			Query:           sq.Query,
			ComponentPath:   sq.ComponentPath,
			IsPage:          false,
			PluginCreatorID: sq.Plugin,
		})
	}

	return jobs
}

// InternalComponentName derives the generated component symbol for a page
// path. The root path maps to ComponentIndex.
func InternalComponentName(pagePath string) string {
	if pagePath == "/" {
		return "ComponentIndex"
	}
	var b strings.Builder
	b.WriteString("Component")
	upper := true
	for _, r := range pagePath {
		if r == '/' || r == '-' || r == '_' || r == '.' {
			upper = true
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ComponentChunkName derives the bundler chunk name for a component path.
func ComponentChunkName(componentPath string) string {
	replaced := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, componentPath)
	return "component---" + strings.Trim(replaced, "-")
}
