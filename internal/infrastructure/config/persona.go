package config

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sleepystudio/terminai/internal/domain"
	"github.com/sleepystudio/terminai/internal/pkg/filesystem"
	"github.com/sleepystudio/terminai/internal/ports"
)

// PersonaStore reads ~/.terminai/persona.yaml. The file is written by the
// init path; an absent or unparsable file is a valid empty persona, never an
// error.
type PersonaStore struct {
	overridePath string
}

// NewPersonaStore builds a persona store.
func NewPersonaStore(path string) *PersonaStore {
	return &PersonaStore{overridePath: path}
}

// Load implements ports.PersonaProvider.
func (s *PersonaStore) Load(context.Context) domain.Personality {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return domain.Personality{}
	}
	var persona domain.Personality
	if err := yaml.Unmarshal(data, &persona); err != nil {
		return domain.Personality{}
	}
	return persona
}

// Path returns the resolved persona file path.
func (s *PersonaStore) Path() string {
	if s.overridePath != "" {
		return s.overridePath
	}
	return filepath.Join(filesystem.UserHomeDir(), ".terminai", "persona.yaml")
}

// Save writes the persona file, creating the state directory.
func (s *PersonaStore) Save(persona domain.Personality) error {
	path := s.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	raw, err := yaml.Marshal(persona)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

var _ ports.PersonaProvider = (*PersonaStore)(nil)
