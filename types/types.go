package types

import (
	"MicroGlue/constants"
)

// BoardControl is the surface the simulator view drives: key presses become
// button events and the display frame is read back for rendering.
type BoardControl interface {
	Press(component constants.ComponentID)
	Release(component constants.ComponentID)
	Click(component constants.ComponentID)
	TouchPin(component constants.ComponentID, touched bool)
	Frame() [][]int
	Brightness() int
	ScrollText() string
}
