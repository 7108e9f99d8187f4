// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"strings"
)

// GeneratingVectorsID selects a precomputed lattice table.
type GeneratingVectorsID int

const (
	// DefaultGeneratingVectors leaves the table choice to the integrator.
	DefaultGeneratingVectors GeneratingVectorsID = 0
	// CBCPTDN1_100 is the component-by-component table for up to 100 dimensions.
	CBCPTDN1_100 GeneratingVectorsID = 1
	// CBCPTDN2_6 is the order-2 table for up to 6 dimensions.
	CBCPTDN2_6 GeneratingVectorsID = 2
	// CBCPTCFFTW1_6 is the FFT-constructed table for up to 6 dimensions.
	CBCPTCFFTW1_6 GeneratingVectorsID = 3
	// CBCPTCFFTW2_10 is the order-2 FFT-constructed table for up to 10 dimensions.
	CBCPTCFFTW2_10 GeneratingVectorsID = 4
)

var vectorNames = map[GeneratingVectorsID]string{
	CBCPTDN1_100:   "cbcpt_dn1_100",
	CBCPTDN2_6:     "cbcpt_dn2_6",
	CBCPTCFFTW1_6:  "cbcpt_cfftw1_6",
	CBCPTCFFTW2_10: "cbcpt_cfftw2_10",
}

var vectorMaxDims = map[GeneratingVectorsID]int{
	CBCPTDN1_100:   100,
	CBCPTDN2_6:     6,
	CBCPTCFFTW1_6:  6,
	CBCPTCFFTW2_10: 10,
}

// String returns the table name, or "default".
func (id GeneratingVectorsID) String() string {
	if name, ok := vectorNames[id]; ok {
		return name
	}
	if id == DefaultGeneratingVectors {
		return "default"
	}

	return "unknown"
}

// MaxDimension returns the largest dimension the table covers, or 0 for the
// default and unknown ids.
func (id GeneratingVectorsID) MaxDimension() int { return vectorMaxDims[id] }

// ResolveGeneratingVectors validates id. DefaultGeneratingVectors is returned
// unchanged; the integrator keeps its built-in table for it.
func ResolveGeneratingVectors(id GeneratingVectorsID) (GeneratingVectorsID, error) {
	if id == DefaultGeneratingVectors {
		return id, nil
	}
	if _, ok := vectorNames[id]; !ok {
		return 0, fmt.Errorf("generating vectors id %d: %w", int(id), ErrUnknownGeneratingVectors)
	}

	return id, nil
}

// ParseGeneratingVectors maps a table name to its id.
func ParseGeneratingVectors(name string) (GeneratingVectorsID, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" || s == "default" {
		return DefaultGeneratingVectors, nil
	}
	for id, n := range vectorNames {
		if n == s {
			return id, nil
		}
	}

	return 0, fmt.Errorf("generating vectors %q: %w", name, ErrUnknownGeneratingVectors)
}
