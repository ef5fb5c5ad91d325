package parser

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/statuswatch/statuswatch/internal/models"
)

// ParseTargets reads a YAML file mapping component names to required uptime
// percentages:
//
//	targets:
//	  API: 99.9
//	  Mobile App: 99.5
func ParseTargets(reader io.Reader) (map[string]float64, error) {
	var data models.TargetsFile
	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse targets file: %w", err)
	}

	for name, target := range data.Targets {
		if target < 0 || target > 100 {
			return nil, fmt.Errorf("target for %s must be between 0 and 100, got %v", name, target)
		}
	}

	return data.Targets, nil
}
