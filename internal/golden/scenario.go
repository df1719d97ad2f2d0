// Package golden runs recorded kvshell transcripts and compares the output
// with what was recorded. Scenarios are YAML files holding command lines and
// the output each one is expected to print.
package golden

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is one recorded transcript.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Requires is a semantic version constraint on the running build.
	Requires string `yaml:"requires,omitempty"`
	Steps    []Step `yaml:"steps"`

	// Path is the file the scenario was loaded from.
	Path string `yaml:"-"`
}

// Step is a command line and the output it printed, without the trailing
// newline.
type Step struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Load reads a scenario file. A missing name defaults to the file name.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	sc.Path = path
	return &sc, nil
}

// LoadDir loads every .yaml and .yml file in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		sc, err := Load(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// Save writes the scenario back to its file.
func (s *Scenario) Save() error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode scenario %s: %w", s.Name, err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scenario %s: %w", s.Path, err)
	}
	return nil
}

// Inputs returns the command lines of the scenario.
func (s *Scenario) Inputs() []string {
	inputs := make([]string, len(s.Steps))
	for i, step := range s.Steps {
		inputs[i] = step.Input
	}
	return inputs
}

// Transcript renders the steps as "> input" lines followed by their output.
func Transcript(steps []Step) string {
	var sb strings.Builder
	for _, step := range steps {
		sb.WriteString("> ")
		sb.WriteString(step.Input)
		sb.WriteByte('\n')
		if step.Output != "" {
			sb.WriteString(step.Output)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
