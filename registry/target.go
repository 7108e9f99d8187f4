// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"strings"
)

// TargetKind is the execution target an integrator evaluates under.
type TargetKind int

const (
	// SingleThread evaluates on the calling goroutine.
	SingleThread TargetKind = iota
	// MultiThread evaluates on a pool of worker goroutines.
	MultiThread
	// SingleDevice evaluates on one accelerator.
	SingleDevice
	// MultiDevice spreads evaluation over a set of accelerators.
	MultiDevice
)

var targetNames = [...]string{"single-thread", "multi-thread", "single-device", "multi-device"}

// String returns the hyphenated target name.
func (k TargetKind) String() string {
	if k.Valid() {
		return targetNames[k]
	}

	return "unknown"
}

// Valid reports whether k is one of the four targets.
func (k TargetKind) Valid() bool { return k >= SingleThread && k <= MultiDevice }

// UsesDevices reports whether the target carries a device set.
func (k TargetKind) UsesDevices() bool { return k == SingleDevice || k == MultiDevice }

// ParseTarget maps a target name to its kind. "" means SingleThread.
func ParseTarget(name string) (TargetKind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return SingleThread, nil
	}
	for i, n := range targetNames {
		if n == s {
			return TargetKind(i), nil
		}
	}

	return 0, fmt.Errorf("target %q: %w", name, ErrUnknownTarget)
}
