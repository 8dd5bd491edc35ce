package harness

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/lintpreset/pkg/core"
)

// Scenario is one self-test case.
type Scenario struct {
	Name   string `yaml:"name" json:"name"`
	Suite  string `yaml:"suite,omitempty" json:"suite,omitempty"`
	Path   string `yaml:"path" json:"path"`
	Source string `yaml:"source,omitempty" json:"source,omitempty"`

	// ExpectIgnored checks the global ignore verdict for Path.
	ExpectIgnored *bool `yaml:"ignored,omitempty" json:"ignored,omitempty"`

	// ExpectRules maps rule names to the expected effective severity name.
	ExpectRules map[string]string `yaml:"rules,omitempty" json:"rules,omitempty"`

	// ExpectAbsent lists rules that must not be declared for Path.
	ExpectAbsent []string `yaml:"absent,omitempty" json:"absent,omitempty"`

	// ExpectPass runs Source through the engine: true expects no
	// error-severity findings, false expects at least one.
	ExpectPass *bool `yaml:"pass,omitempty" json:"pass,omitempty"`
}

// NeedsEngine reports whether the scenario lints its source.
func (s Scenario) NeedsEngine() bool {
	return s.ExpectPass != nil
}

// hasConfigChecks reports whether anything can be checked without an engine.
func (s Scenario) hasConfigChecks() bool {
	return s.ExpectIgnored != nil || len(s.ExpectRules) > 0 || len(s.ExpectAbsent) > 0
}

// Validate checks that the scenario is runnable.
func (s Scenario) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("scenario has no name"))
	}
	if s.Path == "" {
		errs = append(errs, fmt.Errorf("scenario %q has no path", s.Name))
	}
	if !s.hasConfigChecks() && !s.NeedsEngine() {
		errs = append(errs, fmt.Errorf("scenario %q has no expectations", s.Name))
	}
	for _, name := range sortedRuleNames(s.ExpectRules) {
		if _, ok := core.ParseSeverity(s.ExpectRules[name]); !ok {
			errs = append(errs, fmt.Errorf("scenario %q: rule %s: invalid severity %q", s.Name, name, s.ExpectRules[name]))
		}
	}
	return errors.Join(errs...)
}

// Suite groups scenarios under a name.
type Suite struct {
	Name      string     `yaml:"suite"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Flatten returns the scenarios of all suites in order, each tagged with
// its suite name when it has none.
func Flatten(suites ...Suite) []Scenario {
	var out []Scenario
	for _, s := range suites {
		for _, sc := range s.Scenarios {
			if sc.Suite == "" {
				sc.Suite = s.Name
			}
			out = append(out, sc)
		}
	}
	return out
}

// LoadScenarios reads a scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	scenarios, err := ParseScenarios(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// ParseScenarios decodes scenarios from YAML. The document is either a list
// of suites or a single suite:
//
//	suite: react
//	scenarios:
//	  - name: self-closing components
//	    path: src/App.tsx
//	    rules:
//	      react/self-closing-comp: error
func ParseScenarios(data []byte) ([]Scenario, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var suites []Suite
	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&suites); err != nil {
			return nil, fmt.Errorf("failed to decode suites: %w", err)
		}
	case yaml.MappingNode:
		var suite Suite
		if err := root.Decode(&suite); err != nil {
			return nil, fmt.Errorf("failed to decode suite: %w", err)
		}
		suites = []Suite{suite}
	default:
		return nil, fmt.Errorf("failed to decode scenarios: line %d: expected a suite or a list of suites", root.Line)
	}

	scenarios := Flatten(suites...)
	var errs []error
	for _, sc := range scenarios {
		if err := sc.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return scenarios, nil
}

func sortedRuleNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
