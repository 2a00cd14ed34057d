package script

import (
	"fmt"
	"os"

	"github.com/tripinvoice/tripinvoice/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLLoader implements domain.ScriptLoader for YAML edit scripts.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads and validates the edit script at path.
func (l *YAMLLoader) Load(path string) (*domain.EditScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(data)
}

// Parse decodes an edit script from YAML.
func Parse(data []byte) (*domain.EditScript, error) {
	var s domain.EditScript
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}
