// Package labs defines the lab catalog: curriculum units with starter
// trees, description text, and a grader key.
package labs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Lab is one curriculum unit.
type Lab struct {
	// Slug is the URL-safe identifier, e.g. "first-image".
	Slug string `json:"slug"`
	// Title is the human-readable name.
	Title string `json:"title"`
	// Summary is a one-line description for listings.
	Summary string `json:"summary"`
	// Port is the container port the lab's service must listen on.
	Port int `json:"port"`
	// GraderKey selects the grader module; usually equals Slug.
	GraderKey string `json:"-"`
	// StarterDir is the starter tree seeded into new workspaces,
	// relative to the catalog root.
	StarterDir string `json:"-"`
}

// Summary is the listing shape for GET /labs.
type Summary struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Detail is the shape for GET /labs/:slug, including the full markdown
// description.
type Detail struct {
	Summary
	Description string `json:"description"`
	Port        int    `json:"port"`
}

// Catalog is the registry of known labs. The shipped catalog is fixed;
// Register allows extension before the server starts serving.
type Catalog struct {
	mu      sync.RWMutex
	rootDir string
	labs    map[string]*Lab
}

// NewCatalog creates a catalog rooted at rootDir (description files and
// starter trees live under rootDir/<slug>/).
func NewCatalog(rootDir string) *Catalog {
	return &Catalog{
		rootDir: rootDir,
		labs:    make(map[string]*Lab),
	}
}

// NewShippedCatalog returns the catalog with the built-in labs registered.
func NewShippedCatalog(rootDir string) *Catalog {
	c := NewCatalog(rootDir)
	for _, lab := range shippedLabs {
		c.Register(lab)
	}
	return c
}

// Register adds a lab to the catalog, replacing any prior lab with the
// same slug.
func (c *Catalog) Register(lab *Lab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if lab.GraderKey == "" {
		lab.GraderKey = lab.Slug
	}
	if lab.StarterDir == "" {
		lab.StarterDir = filepath.Join(lab.Slug, "starter")
	}
	c.labs[lab.Slug] = lab
}

// Get returns the lab for slug, or false.
func (c *Catalog) Get(slug string) (*Lab, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	lab, ok := c.labs[slug]
	return lab, ok
}

// List returns lab summaries ordered by slug.
func (c *Catalog) List() []Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Summary, 0, len(c.labs))
	for _, lab := range c.labs {
		out = append(out, Summary{Slug: lab.Slug, Title: lab.Title, Summary: lab.Summary})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Describe returns the lab detail including its markdown description,
// read from <root>/<slug>/README.md. A missing description file falls back
// to the summary line.
func (c *Catalog) Describe(slug string) (*Detail, error) {
	lab, ok := c.Get(slug)
	if !ok {
		return nil, fmt.Errorf("lab %q not in catalog", slug)
	}

	description := lab.Summary
	descPath := filepath.Join(c.rootDir, lab.Slug, "README.md")
	if data, err := os.ReadFile(descPath); err == nil {
		description = string(data)
	}

	return &Detail{
		Summary:     Summary{Slug: lab.Slug, Title: lab.Title, Summary: lab.Summary},
		Description: description,
		Port:        lab.Port,
	}, nil
}

// StarterPath returns the starter tree path for slug, joined under the
// catalog's root directory; it is relative when that root is relative.
func (c *Catalog) StarterPath(slug string) (string, bool) {
	lab, ok := c.Get(slug)
	if !ok {
		return "", false
	}
	return filepath.Join(c.rootDir, lab.StarterDir), true
}

// shippedLabs is the fixed catalog this build ships with.
var shippedLabs = []*Lab{
	{
		Slug:    "first-image",
		Title:   "Your First Image",
		Summary: "Write a Dockerfile and .dockerignore for a small Python web service.",
		Port:    8000,
	},
	{
		Slug:    "layer-cache",
		Title:   "Layer Caching",
		Summary: "Order Dockerfile steps so dependency installs hit the build cache.",
		Port:    8000,
	},
	{
		Slug:    "multi-stage",
		Title:   "Multi-Stage Builds",
		Summary: "Split build and runtime stages to ship a small final image.",
		Port:    8000,
	},
}
