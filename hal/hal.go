// Package hal declares the driver interfaces the glue layer calls into.
// Platform code supplies the implementations; hal/sim carries the in-memory
// board used by the terminal simulator and the tests.
package hal

import (
	"MicroGlue/constants"
)

const (
	DisplayWidth  = 5
	DisplayHeight = 5
)

// PinID identifies an I/O pin on the edge connector.
type PinID int

type PinDriver interface {
	DigitalRead(pin PinID) (int, error)
	DigitalWrite(pin PinID, value int) error
	AnalogRead(pin PinID) (int, error)
	AnalogWrite(pin PinID, value int) error
	SetAnalogPeriodUs(pin PinID, period int) error
	IsTouched(pin PinID) (bool, error)
}

// Frame is a row-major grid of pixel values, 0 for off.
type Frame [][]int

type DisplayDriver interface {
	SetPixel(x int, y int, value int) error
	Pixel(x int, y int) (int, error)
	Show(frame Frame) error
	Scroll(text string, delayMs int) error
	SetBrightness(percentage int) error
	Brightness() int
	Clear()
	Snapshot() Frame
}

// I2CAddress is a 7-bit device address.
type I2CAddress int

type I2CDriver interface {
	Write(address I2CAddress, data []byte) error
	Read(address I2CAddress, length int) ([]byte, error)
}

type SensorDriver interface {
	Acceleration(dimension int) (int, error)
	CompassHeading() (int, error)
}

// Board bundles the drivers of one physical (or simulated) device.
type Board interface {
	Pins() PinDriver
	Display() DisplayDriver
	I2C() I2CDriver
	Sensors() SensorDriver
	IsButtonPressed(component constants.ComponentID) (bool, error)
	RunningTime() int
}
