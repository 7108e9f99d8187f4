// SPDX-License-Identifier: MIT

package registry

import (
	"strconv"
	"strings"
)

// The ids below decode from either their integer value or their name, so
// configuration files may say `transform: korobov3x2` or `transform: 14`.
// Integers are taken as-is; range checks belong to the caller.

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *TransformID) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if n, err := strconv.Atoi(s); err == nil {
		*id = TransformID(n)
		return nil
	}
	v, err := ParseTransform(s)
	if err != nil {
		return err
	}
	*id = v

	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *FitFunctionID) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if n, err := strconv.Atoi(s); err == nil {
		*id = FitFunctionID(n)
		return nil
	}
	v, err := ParseFitFunction(s)
	if err != nil {
		return err
	}
	*id = v

	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *GeneratingVectorsID) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if n, err := strconv.Atoi(s); err == nil {
		*id = GeneratingVectorsID(n)
		return nil
	}
	v, err := ParseGeneratingVectors(s)
	if err != nil {
		return err
	}
	*id = v

	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TargetKind) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if n, err := strconv.Atoi(s); err == nil {
		*k = TargetKind(n)
		return nil
	}
	v, err := ParseTarget(s)
	if err != nil {
		return err
	}
	*k = v

	return nil
}
