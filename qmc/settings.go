// SPDX-License-Identifier: MIT

package qmc

import (
	"fmt"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/qmc/registry"
)

// ErrorMode selects how the error of a complex estimate is tested.
type ErrorMode int

const (
	// ErrorModeAll requires every component to meet the tolerance.
	ErrorModeAll ErrorMode = 1
	// ErrorModeLargest requires only the largest component error to meet
	// the tolerance of the largest component.
	ErrorModeLargest ErrorMode = 2
)

// String returns "all" or "largest".
func (m ErrorMode) String() string {
	switch m {
	case ErrorModeAll:
		return "all"
	case ErrorModeLargest:
		return "largest"
	default:
		return "unknown"
	}
}

// UnmarshalText accepts an integer or one of "default", "all", "largest".
func (m *ErrorMode) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if n, err := strconv.Atoi(s); err == nil {
		*m = ErrorMode(n)
		return nil
	}
	switch s {
	case "", "default":
		*m = 0
	case "all":
		*m = ErrorModeAll
	case "largest":
		*m = ErrorModeLargest
	default:
		return fmt.Errorf("qmc: unknown error mode %q", string(text))
	}

	return nil
}

// HostDevice is the device id that stands for the host.
const HostDevice = -1

// Default tuning values.
const (
	DefaultEpsRel              = 0.01
	DefaultEpsAbs              = 1e-7
	DefaultMaxEval             = 1_000_000
	DefaultErrorMode           = ErrorModeAll
	DefaultEvaluateMinN        = 100_000
	DefaultMinN                = 8191
	DefaultMinM                = 32
	DefaultMaxNPerPackage      = 1
	DefaultMaxMPerPackage      = 1024
	DefaultCUDABlocks          = 1024
	DefaultCUDAThreadsPerBlock = 256
	DefaultVerbosity           = 0
	DefaultSeed                = 5489
	DefaultGeneratingVectors   = registry.CBCPTDN1_100
)

// Settings are the tuning parameters of an Integrator.
//
// EvaluateMinN is the lattice size a fit would sample at; it is validated
// and carried but not read, as no fitting is performed. CUDABlocks times
// CUDAThreadsPerBlock is the lane count of the default HostAccelerator on
// device targets, capped at the number of CPUs; a custom Accelerator may read
// both from Integrator.Settings.
type Settings struct {
	EpsRel              float64
	EpsAbs              float64
	MaxEval             uint64
	ErrorMode           ErrorMode
	EvaluateMinN        uint64
	MinN                uint64
	MinM                uint64
	MaxNPerPackage      uint64
	MaxMPerPackage      uint64
	CPUThreads          int
	CUDABlocks          uint64
	CUDAThreadsPerBlock uint64
	Verbosity           int
	Seed                uint64
	GeneratingVectors   registry.GeneratingVectorsID
	Devices             []int
}

// DefaultSettings returns the built-in tuning; CPUThreads is the number of
// logical CPUs and Devices is the host alone.
func DefaultSettings() Settings {
	return Settings{
		EpsRel:              DefaultEpsRel,
		EpsAbs:              DefaultEpsAbs,
		MaxEval:             DefaultMaxEval,
		ErrorMode:           DefaultErrorMode,
		EvaluateMinN:        DefaultEvaluateMinN,
		MinN:                DefaultMinN,
		MinM:                DefaultMinM,
		MaxNPerPackage:      DefaultMaxNPerPackage,
		MaxMPerPackage:      DefaultMaxMPerPackage,
		CPUThreads:          runtime.NumCPU(),
		CUDABlocks:          DefaultCUDABlocks,
		CUDAThreadsPerBlock: DefaultCUDAThreadsPerBlock,
		Verbosity:           DefaultVerbosity,
		Seed:                DefaultSeed,
		GeneratingVectors:   DefaultGeneratingVectors,
		Devices:             []int{HostDevice},
	}
}

// Clone returns a copy that does not share Devices.
func (s Settings) Clone() Settings {
	s.Devices = slices.Clone(s.Devices)
	return s
}

// Validate checks ranges. The device set is checked against target.
func (s Settings) Validate(target registry.TargetKind) error {
	switch {
	case s.EpsRel < 0 || s.EpsAbs < 0:
		return fmt.Errorf("%w: negative tolerance (epsrel=%g, epsabs=%g)", ErrInvalidSettings, s.EpsRel, s.EpsAbs)
	case s.MaxEval == 0:
		return fmt.Errorf("%w: maxeval must be positive", ErrInvalidSettings)
	case s.ErrorMode != ErrorModeAll && s.ErrorMode != ErrorModeLargest:
		return fmt.Errorf("%w: errormode %d", ErrInvalidSettings, int(s.ErrorMode))
	case s.MinN == 0:
		return fmt.Errorf("%w: minn must be positive", ErrInvalidSettings)
	case s.MinM < 2:
		return fmt.Errorf("%w: minm %d, need at least 2 shifts", ErrInvalidSettings, s.MinM)
	case s.MaxNPerPackage == 0 || s.MaxMPerPackage == 0:
		return fmt.Errorf("%w: package sizes must be positive", ErrInvalidSettings)
	case s.CPUThreads < 1:
		return fmt.Errorf("%w: cputhreads %d", ErrInvalidSettings, s.CPUThreads)
	case s.Verbosity < 0:
		return fmt.Errorf("%w: verbosity %d", ErrInvalidSettings, s.Verbosity)
	}
	if _, err := registry.ResolveGeneratingVectors(s.GeneratingVectors); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if !target.Valid() {
		return fmt.Errorf("%w: target %d", ErrInvalidSettings, int(target))
	}
	switch target {
	case registry.SingleDevice:
		if len(s.Devices) != 1 {
			return fmt.Errorf("%w: single-device target needs exactly one device, got %d", ErrInvalidSettings, len(s.Devices))
		}
	case registry.MultiDevice:
		if len(s.Devices) == 0 {
			return fmt.Errorf("%w: multi-device target needs at least one device", ErrInvalidSettings)
		}
	}

	return nil
}
