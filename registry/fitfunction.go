// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"strings"
)

// FitFunctionID selects the singularity-removing fit applied before quadrature.
type FitFunctionID int

const (
	// DefaultFitFunction leaves the choice to the integrator (no fit).
	DefaultFitFunction FitFunctionID = 0
	// NoFit disables fitting.
	NoFit FitFunctionID = -1
	// PolySingular selects the singularity-removing polynomial fit.
	PolySingular FitFunctionID = 1
)

// FitKind is the resolved fit function.
type FitKind int

const (
	// FitNone applies no fit.
	FitNone FitKind = iota
	// FitPolySingular fits a polynomial with singular terms.
	FitPolySingular
)

// String returns the fit name.
func (k FitKind) String() string {
	switch k {
	case FitNone:
		return "none"
	case FitPolySingular:
		return "polysingular"
	default:
		return "unknown"
	}
}

// ResolveFitFunction maps id to the fit it selects. DefaultFitFunction
// resolves to FitNone.
func ResolveFitFunction(id FitFunctionID) (FitKind, error) {
	switch id {
	case DefaultFitFunction, NoFit:
		return FitNone, nil
	case PolySingular:
		return FitPolySingular, nil
	default:
		return FitNone, fmt.Errorf("fit function id %d: %w", int(id), ErrUnknownFitFunction)
	}
}

// ParseFitFunction maps "", "default", "none", "polysingular" to ids.
func ParseFitFunction(name string) (FitFunctionID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultFitFunction, nil
	case "none", "no_fit":
		return NoFit, nil
	case "polysingular":
		return PolySingular, nil
	default:
		return 0, fmt.Errorf("fit function %q: %w", name, ErrUnknownFitFunction)
	}
}

// AllFitFunctions lists every fit-function id including the default.
func AllFitFunctions() []FitFunctionID {
	return []FitFunctionID{DefaultFitFunction, NoFit, PolySingular}
}
