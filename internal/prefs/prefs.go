// Package prefs reads user preferences from a flat yaml key-value file.
// The engine only consumes the keys it recognizes and ignores everything
// else stored alongside them.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tgrenier/jellysub/internal/style"
)

// appearance keys recognized by the subtitle engine
const (
	KeySize       = "subtitles.size"
	KeyColor      = "subtitles.color"
	KeyPosition   = "subtitles.position"
	KeyBackground = "subtitles.background"
)

// Store is an in-memory snapshot of the preference file.
type Store struct {
	values map[string]string
}

// Load reads the preference file. A missing file yields an empty store:
// preferences are optional everywhere they are consumed.
func Load(path string) (*Store, error) {
	s := &Store{values: map[string]string{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preference file %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse preference file %s: %w", path, err)
	}

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			s.values[key] = v
		case int:
			s.values[key] = strconv.Itoa(v)
		case float64:
			s.values[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			s.values[key] = strconv.FormatBool(v)
		}
		// nested structures belong to other consumers and are skipped
	}
	return s, nil
}

// Get returns the stored value for key, or def when absent.
func (s *Store) Get(key, def string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// Set overrides a value in the snapshot. It does not write the file back.
func (s *Store) Set(key, value string) {
	s.values[key] = value
}

// Appearance extracts the subtitle appearance fields from the store.
// Absent keys are left empty so the overlay keeps its current values.
func (s *Store) Appearance() style.Config {
	return style.Config{
		Size:             s.Get(KeySize, ""),
		Color:            s.Get(KeyColor, ""),
		VerticalPosition: s.Get(KeyPosition, ""),
		BackgroundMode:   s.Get(KeyBackground, ""),
	}
}
