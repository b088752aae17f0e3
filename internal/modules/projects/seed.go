package projects

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var seedYAML []byte

type seedFile struct {
	Version  string    `yaml:"version"`
	Projects []Project `yaml:"projects"`
}

// ParseSeed decodes and validates a YAML project list
func ParseSeed(data []byte) ([]Project, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode project seed: %w", err)
	}
	if file.Version == "" {
		return nil, fmt.Errorf("project seed version is required")
	}

	seen := make(map[int64]bool, len(file.Projects))
	for _, p := range file.Projects {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid project %d: %w", p.ID, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
	}
	return file.Projects, nil
}

// DefaultSeed returns the built-in project list
func DefaultSeed() ([]Project, error) {
	return ParseSeed(seedYAML)
}
