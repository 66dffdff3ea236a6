package snapshot

import (
	"gopkg.in/yaml.v3"
)

// Document represents a resolution snapshot file.
type Document struct {
	Configurations map[string][]ModuleDTO `yaml:"configurations"`
}

// ModuleDTO is one resolved module. It is written either as a
// "group:module:version" scalar or as a mapping with module and dependents.
type ModuleDTO struct {
	Module     string   `yaml:"module"`
	Dependents []string `yaml:"dependents"`

	line int
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (m *ModuleDTO) UnmarshalYAML(node *yaml.Node) error {
	m.line = node.Line
	if node.Kind == yaml.ScalarNode {
		m.Module = node.Value
		return nil
	}

	type plain ModuleDTO
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	m.Module = p.Module
	m.Dependents = p.Dependents
	return nil
}
