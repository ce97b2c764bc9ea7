// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crout/matrix"
)

// errNoRHS is returned when solve is asked for a system without "rhs".
var errNoRHS = errors.New("crout: system has no rhs")

// System is the YAML input of every subcommand:
//
//	matrix:
//	  - [4, 3]
//	  - [6, 3]
//	rhs: [1, 2]
type System struct {
	Matrix [][]float64 `yaml:"matrix"`
	RHS    []float64   `yaml:"rhs,omitempty"`
}

// ParseSystem decodes and validates a System. The matrix must be square,
// non-empty and finite; rhs, when present, must have one entry per row.
func ParseSystem(data []byte) (System, error) {
	var s System
	if err := yaml.Unmarshal(data, &s); err != nil {
		return System{}, fmt.Errorf("failed to parse the system: %w", err)
	}
	if len(s.Matrix) == 0 {
		return System{}, fmt.Errorf("matrix: %w", matrix.ErrInvalidDimensions)
	}
	for i, row := range s.Matrix {
		if len(row) != len(s.Matrix) {
			return System{}, fmt.Errorf("matrix row %d has %d entries, want %d: %w",
				i, len(row), len(s.Matrix), matrix.ErrDimensionMismatch)
		}
	}
	if s.RHS != nil && len(s.RHS) != len(s.Matrix) {
		return System{}, fmt.Errorf("rhs has %d entries, want %d: %w",
			len(s.RHS), len(s.Matrix), matrix.ErrDimensionMismatch)
	}

	return s, nil
}

// LoadSystem reads a System from path, or from stdin when path is "-".
func LoadSystem(path string, stdin io.Reader) (System, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return System{}, fmt.Errorf("failed to read the system file: %w", err)
	}

	return ParseSystem(data)
}

// Dense copies the matrix into fresh storage; it rejects NaN and Inf.
func (s System) Dense() (*matrix.Dense[float64], error) {
	return matrix.NewDenseFrom(s.Matrix)
}
