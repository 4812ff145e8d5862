package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Source yields the value for a configuration key, or "" when the source
// does not know the key.
type Source interface {
	Lookup(key string) string
	Name() string
}

// Resolver walks an ordered list of sources and returns the first
// non-empty value. Earlier sources take precedence, so a hosted secrets
// file wins over local environment variables.
type Resolver struct {
	sources []Source
}

// NewResolver creates a Resolver over the given sources, in priority order.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Resolve returns the first non-empty value for key across the sources.
// A key present in no source is a hard configuration error.
func (r *Resolver) Resolve(key string) (string, error) {
	for _, src := range r.sources {
		if val := strings.TrimSpace(src.Lookup(key)); val != "" {
			return val, nil
		}
	}

	names := make([]string, 0, len(r.sources))
	for _, src := range r.sources {
		names = append(names, src.Name())
	}
	return "", fmt.Errorf("config: %s not found in any source (%s)", key, strings.Join(names, ", "))
}

type fileSource struct {
	path   string
	values map[string]string
}

// FileSource reads a key=value secrets file. A missing or unreadable file
// is treated as an empty source so local runs fall through to the
// environment.
func FileSource(path string) Source {
	values, err := godotenv.Read(path)
	if err != nil {
		values = map[string]string{}
	}
	return &fileSource{path: path, values: values}
}

func (s *fileSource) Lookup(key string) string {
	return s.values[key]
}

func (s *fileSource) Name() string {
	return "secrets file " + s.path
}

type envSource struct{}

// EnvSource reads from process environment variables.
func EnvSource() Source {
	return envSource{}
}

func (envSource) Lookup(key string) string {
	return os.Getenv(key)
}

func (envSource) Name() string {
	return "environment"
}
