// SPDX-License-Identifier: MIT

package emitter

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// File is the YAML representation of a Table.
//
//	name: CO
//	mol_wgt: 28
//	partition_function: 1   # optional constant override
//	levels:
//	  - {energy_k: 0,    weight: 1}
//	  - {energy_k: 5.53, weight: 3}
//	lines:
//	  - {upper: 1, lower: 0, einstein_a: 7.2e-8, freq_hz: 1.1527e11}
type File struct {
	Name              string   `yaml:"name"`
	MolWgt            float64  `yaml:"mol_wgt"`
	PartitionFunction *float64 `yaml:"partition_function,omitempty"`
	Levels            []Level  `yaml:"levels"`
	Lines             []Line   `yaml:"lines"`
}

// Build validates f and returns the corresponding Table.
func (f File) Build() (*Table, error) {
	var opts []Option
	if f.PartitionFunction != nil {
		if !(*f.PartitionFunction > 0) {
			return nil, fmt.Errorf("%w: partition function override %g", ErrInvalidTable, *f.PartitionFunction)
		}
		opts = append(opts, WithConstantPartitionFunc(*f.PartitionFunction))
	}

	return NewTable(f.Name, f.MolWgt, f.Levels, f.Lines, opts...)
}

// LoadYAML decodes a File from r and builds the Table. Unknown keys are
// rejected so that typos do not silently drop data.
func LoadYAML(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("emitter: decode yaml: %w", err)
	}

	return f.Build()
}
