package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes one benchmark case. Zero tolerance and iteration
// fields fall through to the solver defaults.
type Scenario struct {
	Name          string  `yaml:"name"`
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	Cond          float64 `yaml:"cond"`
	AbsTolerance  float64 `yaml:"abs_tolerance"`
	RelTolerance  float64 `yaml:"rel_tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

func (s *Scenario) validate() error {
	if s.Rows < 1 || s.Cols < 1 {
		return fmt.Errorf("scenario %q: rows and cols must be >= 1", s.Name)
	}
	if s.Cond != 0 && s.Cond < 1 {
		return fmt.Errorf("scenario %q: cond must be >= 1", s.Name)
	}
	return nil
}

// loadScenarios reads a YAML scenario file of the form
//
//	scenarios:
//	  - name: tall
//	    rows: 2048
//	    cols: 512
//	    cond: 100
func loadScenarios(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: no scenarios", path)
	}
	for i := range file.Scenarios {
		s := &file.Scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("%dx%d", s.Rows, s.Cols)
		}
		if err := s.validate(); err != nil {
			return nil, err
		}
	}
	return file.Scenarios, nil
}
