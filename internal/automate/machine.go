package automate

import "github.com/osse101/AutomateGardenPot_Go/internal/domain"

// MachineState is the processing state a machine reports when polled
type MachineState int

const (
	// Disabled machines are skipped entirely
	Disabled MachineState = iota
	// Empty machines are waiting for input
	Empty
	// Processing machines are busy
	Processing
	// Done machines have output ready
	Done
)

// String implements fmt.Stringer
func (s MachineState) String() string {
	switch s {
	case Disabled:
		return StateNameDisabled
	case Empty:
		return StateNameEmpty
	case Processing:
		return StateNameProcessing
	case Done:
		return StateNameDone
	default:
		return StateNameUnknown
	}
}

// Machine is a world object the automation loop can poll, feed, and empty.
//
// MachineTypeID must be identical for any two machines with the same input
// logic; the loop uses it to skip further empty machines of a type once one
// of them could not find input.
type Machine interface {
	MachineTypeID() string
	Location() *domain.Location
	TileArea() domain.Rectangle

	GetState() MachineState
	// GetOutput must only be called when GetState reports Done
	GetOutput() Output
	SetInput(input Storage) bool
}

// Factory builds machines for the world objects it recognises
type Factory interface {
	GetFor(obj domain.Placeable, location *domain.Location, tile domain.Vector2) (Machine, bool)
}

// API is the surface other mods use to extend automation
type API interface {
	AddFactory(factory Factory)
}
