package memsys

import "fmt"

// Mode selects the memory topology. ModeDEF covers the D, E, and F letters of the
// external configuration surface: all three are per-core split L1, shared L2,
// virtually addressed, and identical at this level — the letters differ only in
// DRAM timing parameters, which are ordinary DRAM-policy configuration, not a
// distinct code path.
type Mode int

const (
	ModeA Mode = iota
	ModeB
	ModeC
	ModeDEF
)

func (m Mode) String() string {
	switch m {
	case ModeA:
		return "A"
	case ModeB:
		return "B"
	case ModeC:
		return "C"
	case ModeDEF:
		return "DEF"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the single-letter mode names from the external configuration
// surface. D, E, and F all parse to ModeDEF.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "A", "a":
		return ModeA, nil
	case "B", "b":
		return ModeB, nil
	case "C", "c":
		return ModeC, nil
	case "D", "d", "E", "e", "F", "f", "DEF", "def":
		return ModeDEF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// RefType is the kind of reference the orchestrator dispatches on.
type RefType int

const (
	IFetch RefType = iota
	Load
	Store
)

func (t RefType) String() string {
	switch t {
	case IFetch:
		return "IFETCH"
	case Load:
		return "LOAD"
	case Store:
		return "STORE"
	default:
		return fmt.Sprintf("RefType(%d)", int(t))
	}
}

// IsWrite reports whether t should mark the line it touches dirty.
func (t RefType) IsWrite() bool { return t == Store }
