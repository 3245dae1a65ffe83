package config

// File represents the structure of the lithos.yaml configuration file.
type File struct {
	Version       string           `yaml:"version"`
	Site          SiteDTO          `yaml:"site"`
	Pages         []PageDTO        `yaml:"pages"`
	StaticQueries []StaticQueryDTO `yaml:"static_queries"`
}

// SiteDTO holds the site-wide settings.
type SiteDTO struct {
	Directory        string `yaml:"directory"`
	Endpoint         string `yaml:"endpoint"`
	Parallelism      int    `yaml:"parallelism"`
	SlowQueryWarning string `yaml:"slow_query_warning"`
	TrackChanges     bool   `yaml:"track_changes"`
}

// PageDTO represents a page declaration in the configuration.
type PageDTO struct {
	Path      string         `yaml:"path"`
	Component string         `yaml:"component"`
	Query     string         `yaml:"query"`
	Context   map[string]any `yaml:"context"`
	Plugin    string         `yaml:"plugin"`
}

// StaticQueryDTO represents a non-page query declaration.
type StaticQueryDTO struct {
	ID        string `yaml:"id"`
	Component string `yaml:"component"`
	Query     string `yaml:"query"`
	Plugin    string `yaml:"plugin"`
}
