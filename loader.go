package validkit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlRule mirrors Rule for declarative rule files. Function-valued fields
// (When, Inline, Checker, IsEmpty) have no file representation; file-declared
// rules must use registered type aliases.
type yamlRule struct {
	Name        string         `yaml:"name"`
	Attributes  []string       `yaml:"attributes"`
	Type        string         `yaml:"type"`
	On          []string       `yaml:"on"`
	Except      []string       `yaml:"except"`
	SkipOnEmpty *bool          `yaml:"skipOnEmpty"`
	SkipOnError *bool          `yaml:"skipOnError"`
	Batch       bool           `yaml:"batch"`
	Message     string         `yaml:"message"`
	Params      map[string]any `yaml:"params"`
}

// ParseRules decodes a YAML list of rule specifications:
//
//	- attributes: [name, email]
//	  type: required
//	  on: [create]
//	- attributes: [email]
//	  type: email
//	  message: "{attribute} does not look like an email."
//
// A top-level message is folded into Params["message"]. Structural problems
// surface later, at materialization, exactly as for rules declared in code.
func ParseRules(data []byte) ([]Rule, error) {
	var raw []yamlRule
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing rule file: %w", err)
	}

	rules := make([]Rule, 0, len(raw))
	for _, yr := range raw {
		params := yr.Params
		if yr.Message != "" {
			if params == nil {
				params = make(map[string]any, 1)
			}
			params["message"] = yr.Message
		}
		rules = append(rules, Rule{
			Name:        yr.Name,
			Attributes:  yr.Attributes,
			Type:        yr.Type,
			On:          yr.On,
			Except:      yr.Except,
			SkipOnEmpty: yr.SkipOnEmpty,
			SkipOnError: yr.SkipOnError,
			Batch:       yr.Batch,
			Params:      params,
		})
	}
	return rules, nil
}
