// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxDegree bounds every degree axis of the degree-parameterized transforms.
const MaxDegree = 6

// DefaultKorobovDegree is the degree pair DefaultTransform resolves to.
const DefaultKorobovDegree = 3

// TransformKind is the family of a periodizing transform.
type TransformKind int

const (
	// TransformNone applies no change of variables.
	TransformNone TransformKind = iota
	// TransformBaker is the tent (baker's) transform.
	TransformBaker
	// TransformKorobov is the polynomial family with two degrees.
	TransformKorobov
	// TransformSidi is the trigonometric family with one degree.
	TransformSidi
)

// String returns the lower-case family name.
func (k TransformKind) String() string {
	switch k {
	case TransformNone:
		return "none"
	case TransformBaker:
		return "baker"
	case TransformKorobov:
		return "korobov"
	case TransformSidi:
		return "sidi"
	default:
		return "unknown"
	}
}

// TransformID is the integer id of a fully specified transform.
type TransformID int

const (
	// DefaultTransform leaves the choice to the integrator (korobov3x3).
	DefaultTransform TransformID = 0
	// NoTransform selects the identity transform.
	NoTransform TransformID = -1
	// Baker selects the baker's transform.
	Baker TransformID = -2
)

// KorobovID returns the id of korobov<r0>x<r1>. Panics if a degree is
// outside 1..MaxDegree.
func KorobovID(r0, r1 int) TransformID {
	if r0 < 1 || r0 > MaxDegree || r1 < 1 || r1 > MaxDegree {
		panic(fmt.Sprintf("registry: KorobovID(%d, %d): degree out of range", r0, r1))
	}

	return TransformID(MaxDegree*(r0-1) + r1)
}

// SidiID returns the id of sidi<r>. Panics if r is outside 1..MaxDegree.
func SidiID(r int) TransformID {
	if r < 1 || r > MaxDegree {
		panic(fmt.Sprintf("registry: SidiID(%d): degree out of range", r))
	}

	return TransformID(-10 - r)
}

// TransformSpec is a resolved transform: its kind and degrees. Degrees that
// do not apply to the kind are zero.
type TransformSpec struct {
	Kind    TransformKind
	Degree1 int
	Degree2 int
}

// ID returns the id of the spec.
func (s TransformSpec) ID() TransformID {
	switch s.Kind {
	case TransformBaker:
		return Baker
	case TransformKorobov:
		return KorobovID(s.Degree1, s.Degree2)
	case TransformSidi:
		return SidiID(s.Degree1)
	default:
		return NoTransform
	}
}

// String renders the spec the way transforms are named on the command line,
// e.g. "korobov3x2", "sidi4", "baker", "none".
func (s TransformSpec) String() string {
	switch s.Kind {
	case TransformKorobov:
		return fmt.Sprintf("korobov%dx%d", s.Degree1, s.Degree2)
	case TransformSidi:
		return fmt.Sprintf("sidi%d", s.Degree1)
	default:
		return s.Kind.String()
	}
}

// ResolveTransform maps id to its spec. DefaultTransform resolves to
// korobov3x3. Unknown ids return ErrUnknownTransform.
func ResolveTransform(id TransformID) (TransformSpec, error) {
	switch {
	case id == DefaultTransform:
		return TransformSpec{Kind: TransformKorobov, Degree1: DefaultKorobovDegree, Degree2: DefaultKorobovDegree}, nil
	case id == NoTransform:
		return TransformSpec{Kind: TransformNone}, nil
	case id == Baker:
		return TransformSpec{Kind: TransformBaker}, nil
	case id >= 1 && id <= MaxDegree*MaxDegree:
		n := int(id) - 1
		return TransformSpec{Kind: TransformKorobov, Degree1: n/MaxDegree + 1, Degree2: n%MaxDegree + 1}, nil
	case id <= -11 && id >= -10-MaxDegree:
		return TransformSpec{Kind: TransformSidi, Degree1: -10 - int(id)}, nil
	default:
		return TransformSpec{}, fmt.Errorf("transform id %d: %w", int(id), ErrUnknownTransform)
	}
}

// ParseTransform maps a transform name to its id. Accepted forms are
// "none", "baker", "korobov<a>x<b>", "korobov<a>" (symmetric degrees),
// "sidi<r>" and "" or "default".
func ParseTransform(name string) (TransformID, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "", "default":
		return DefaultTransform, nil
	case "none", "no_transform":
		return NoTransform, nil
	case "baker":
		return Baker, nil
	}

	if rest, ok := strings.CutPrefix(s, "korobov"); ok {
		a, b, found := strings.Cut(rest, "x")
		if !found {
			b = a
		}
		r0, err0 := strconv.Atoi(a)
		r1, err1 := strconv.Atoi(b)
		if err0 == nil && err1 == nil && validDegree(r0) && validDegree(r1) {
			return KorobovID(r0, r1), nil
		}
	}
	if rest, ok := strings.CutPrefix(s, "sidi"); ok {
		if r, err := strconv.Atoi(rest); err == nil && validDegree(r) {
			return SidiID(r), nil
		}
	}

	return 0, fmt.Errorf("transform %q: %w", name, ErrUnknownTransform)
}

// AllTransforms lists every well-formed non-default transform id in a fixed
// order: none, baker, korobov1x1..korobov6x6, sidi1..sidi6.
func AllTransforms() []TransformID {
	ids := make([]TransformID, 0, 2+MaxDegree*MaxDegree+MaxDegree)
	ids = append(ids, NoTransform, Baker)
	for r0 := 1; r0 <= MaxDegree; r0++ {
		for r1 := 1; r1 <= MaxDegree; r1++ {
			ids = append(ids, KorobovID(r0, r1))
		}
	}
	for r := 1; r <= MaxDegree; r++ {
		ids = append(ids, SidiID(r))
	}

	return ids
}

func validDegree(r int) bool { return r >= 1 && r <= MaxDegree }
