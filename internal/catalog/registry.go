package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned when a registry has no catalog with a given ID.
var ErrNotFound = errors.New("catalog not found")

// Registry holds loaded catalogs in registration order.
type Registry struct {
	catalogs []*Catalog
	byID     map[string]*Catalog
}

// NewRegistry creates a registry from already parsed catalogs.
func NewRegistry(catalogs ...*Catalog) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Catalog)}
	for _, c := range catalogs {
		if err := r.Add(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Builtin returns a registry holding the catalogs embedded in the binary.
func Builtin() (*Registry, error) {
	r, _ := NewRegistry()
	if err := r.loadFS(builtinFS, "data"); err != nil {
		return nil, fmt.Errorf("load built-in catalogs: %w", err)
	}
	return r, nil
}

// Add registers a catalog. Catalog IDs must be unique within a registry.
func (r *Registry) Add(c *Catalog) error {
	if c == nil {
		return fmt.Errorf("add catalog: nil catalog")
	}
	if _, dup := r.byID[c.ID]; dup {
		return fmt.Errorf("duplicate catalog ID: %q", c.ID)
	}
	r.catalogs = append(r.catalogs, c)
	r.byID[c.ID] = c
	return nil
}

// LoadDir parses every *.yaml / *.yml file in dir and adds it to the registry.
func (r *Registry) LoadDir(dir string) error {
	return r.loadFS(os.DirFS(dir), ".")
}

func (r *Registry) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read catalog dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	for _, name := range names {
		data, err := fs.ReadFile(fsys, filepath.ToSlash(filepath.Join(dir, name)))
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		c, err := Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := r.Add(c); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Get returns a catalog by ID, or error if not found.
func (r *Registry) Get(id string) (*Catalog, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c, nil
}

// All returns all catalogs in registration order.
func (r *Registry) All() []*Catalog {
	return slices.Clone(r.catalogs)
}

// Len returns the number of registered catalogs.
func (r *Registry) Len() int {
	return len(r.catalogs)
}
