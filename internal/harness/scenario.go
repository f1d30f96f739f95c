package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario: a named table of conversion
// cases executed against the timestamp parser.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Cases is the conversion table.
	Cases []Case `yaml:"cases"`
}

// Case is a single conversion expectation. Exactly one of the success
// fields (Canonical/Epoch/MJD) or Err must be set.
type Case struct {
	// Parse is the input string handed to the parser.
	Parse string `yaml:"parse"`

	// Canonical is the expected canonical serialization
	// (YYYY-MM-DDTHH:MM:SS). Empty means unchecked.
	Canonical string `yaml:"canonical,omitempty"`

	// Epoch is the expected UNIX epoch seconds. Nil means unchecked.
	Epoch *float64 `yaml:"epoch,omitempty"`

	// MJD is the expected Modified Julian Date. Nil means unchecked.
	MJD *float64 `yaml:"mjd,omitempty"`

	// Err is the expected error kind: "parse" or "range". Empty means
	// the case must succeed.
	Err string `yaml:"err,omitempty"`
}

// Error kind constants for Case.Err.
const (
	ErrKindParse = "parse"
	ErrKindRange = "range"
)

// LoadScenario reads and parses a scenario YAML file. Returns an error
// if the file doesn't exist, is malformed, contains unknown fields
// (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "case:" vs "cases:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Parse == "" {
			return fmt.Errorf("cases[%d]: parse is required", i)
		}
		if c.Err != "" {
			if c.Err != ErrKindParse && c.Err != ErrKindRange {
				return fmt.Errorf("cases[%d]: unknown err kind %q", i, c.Err)
			}
			if c.Canonical != "" || c.Epoch != nil || c.MJD != nil {
				return fmt.Errorf("cases[%d]: err cases must not set expected values", i)
			}
			continue
		}
		if c.Canonical == "" && c.Epoch == nil && c.MJD == nil {
			return fmt.Errorf("cases[%d]: at least one of canonical, epoch or mjd is required", i)
		}
	}
	return nil
}
