package sim

import (
	glueerror "MicroGlue/GlueError"
	"MicroGlue/constants"
	"MicroGlue/dto"
	"MicroGlue/events"
	"MicroGlue/hal"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

func NewBoard(bus *events.MessageBus, logger *zap.Logger) *Board {
	frame := make(hal.Frame, hal.DisplayHeight)
	for row := range frame {
		frame[row] = make([]int, hal.DisplayWidth)
	}
	board := &Board{
		bus:        bus,
		logger:     logger,
		start:      time.Now(),
		frame:      frame,
		brightness: 100,
		pins:       make(map[hal.PinID]*pinState),
		buttons:    make(map[constants.ComponentID]bool),
		devices:    make(map[hal.I2CAddress]I2CDevice),
	}
	return board
}

type pinState struct {
	digital  int
	analog   int
	periodUs int
	touched  bool
}

// Board is the in-memory device behind the terminal simulator. Button and pin
// transitions publish the same event records real hardware would put on the
// message bus.
type Board struct {
	bus    *events.MessageBus
	logger *zap.Logger
	start  time.Time

	mutex      sync.Mutex
	frame      hal.Frame
	brightness int
	scrollText string
	pins       map[hal.PinID]*pinState
	buttons    map[constants.ComponentID]bool
	devices    map[hal.I2CAddress]I2CDevice

	accelX, accelY, accelZ int
	heading                int
}

func (instance *Board) Pins() hal.PinDriver {
	return instance
}

func (instance *Board) Display() hal.DisplayDriver {
	return instance
}

func (instance *Board) I2C() hal.I2CDriver {
	return instance
}

func (instance *Board) Sensors() hal.SensorDriver {
	return instance
}

func (instance *Board) RunningTime() int {
	return int(time.Since(instance.start).Milliseconds())
}

func (instance *Board) IsButtonPressed(component constants.ComponentID) (bool, error) {
	switch component {
	case constants.ComponentButtonA, constants.ComponentButtonB, constants.ComponentButtonAB:
	default:
		return false, glueerror.Wrap(nil, glueerror.FailHalAccess, fmt.Sprintf("%s is not a button", component))
	}
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	return instance.buttons[component], nil
}

func (instance *Board) Press(component constants.ComponentID) {
	instance.mutex.Lock()
	instance.buttons[component] = true
	instance.mutex.Unlock()
	instance.bus.Publish(dto.EventData{ComponentID: component, EventID: constants.EventButtonDown})
}

func (instance *Board) Release(component constants.ComponentID) {
	instance.mutex.Lock()
	instance.buttons[component] = false
	instance.mutex.Unlock()
	instance.bus.Publish(dto.EventData{ComponentID: component, EventID: constants.EventButtonUp})
	instance.bus.Publish(dto.EventData{ComponentID: component, EventID: constants.EventButtonClick})
}

func (instance *Board) Click(component constants.ComponentID) {
	instance.Press(component)
	instance.Release(component)
}

func (instance *Board) TouchPin(component constants.ComponentID, touched bool) {
	pin, ok := pinForComponent(component)
	if !ok {
		return
	}
	instance.mutex.Lock()
	instance.pinState(pin).touched = touched
	instance.mutex.Unlock()
	if touched {
		instance.bus.Publish(dto.EventData{ComponentID: component, EventID: constants.EventButtonDown})
		return
	}
	instance.bus.Publish(dto.EventData{ComponentID: component, EventID: constants.EventButtonUp})
	instance.bus.Publish(dto.EventData{ComponentID: component, EventID: constants.EventButtonClick})
}

func pinForComponent(component constants.ComponentID) (hal.PinID, bool) {
	switch component {
	case constants.ComponentPin0:
		return 0, true
	case constants.ComponentPin1:
		return 1, true
	case constants.ComponentPin2:
		return 2, true
	default:
		return 0, false
	}
}

// pinState must be called with the mutex held.
func (instance *Board) pinState(pin hal.PinID) *pinState {
	state, exists := instance.pins[pin]
	if !exists {
		state = &pinState{}
		instance.pins[pin] = state
	}
	return state
}

func (instance *Board) DigitalRead(pin hal.PinID) (int, error) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	return instance.pinState(pin).digital, nil
}

func (instance *Board) DigitalWrite(pin hal.PinID, value int) error {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	if value != 0 {
		value = 1
	}
	instance.pinState(pin).digital = value
	return nil
}

func (instance *Board) AnalogRead(pin hal.PinID) (int, error) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	return instance.pinState(pin).analog, nil
}

func (instance *Board) AnalogWrite(pin hal.PinID, value int) error {
	if value < 0 || value > 1023 {
		return glueerror.Wrap(nil, glueerror.FailHalAccess, fmt.Sprintf("analog value %d out of range", value))
	}
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.pinState(pin).analog = value
	return nil
}

func (instance *Board) SetAnalogPeriodUs(pin hal.PinID, period int) error {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.pinState(pin).periodUs = period
	return nil
}

func (instance *Board) IsTouched(pin hal.PinID) (bool, error) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	return instance.pinState(pin).touched, nil
}

func (instance *Board) SetPixel(x int, y int, value int) error {
	if x < 0 || x >= hal.DisplayWidth || y < 0 || y >= hal.DisplayHeight {
		return glueerror.Wrap(nil, glueerror.FailHalAccess, fmt.Sprintf("pixel (%d,%d) off screen", x, y))
	}
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.frame[y][x] = value
	return nil
}

func (instance *Board) Pixel(x int, y int) (int, error) {
	if x < 0 || x >= hal.DisplayWidth || y < 0 || y >= hal.DisplayHeight {
		return 0, glueerror.Wrap(nil, glueerror.FailHalAccess, fmt.Sprintf("pixel (%d,%d) off screen", x, y))
	}
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	return instance.frame[y][x], nil
}

func (instance *Board) Show(frame hal.Frame) error {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	for y := 0; y < hal.DisplayHeight; y++ {
		for x := 0; x < hal.DisplayWidth; x++ {
			value := 0
			if y < len(frame) && x < len(frame[y]) {
				value = frame[y][x]
			}
			instance.frame[y][x] = value
		}
	}
	return nil
}

func (instance *Board) Scroll(text string, delayMs int) error {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.scrollText = text
	return nil
}

func (instance *Board) SetBrightness(percentage int) error {
	if percentage < 0 || percentage > 100 {
		return glueerror.Wrap(nil, glueerror.FailHalAccess, fmt.Sprintf("brightness %d out of range", percentage))
	}
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.brightness = percentage
	return nil
}

func (instance *Board) Brightness() int {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	return instance.brightness
}

func (instance *Board) Clear() {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	for y := range instance.frame {
		for x := range instance.frame[y] {
			instance.frame[y][x] = 0
		}
	}
}

func (instance *Board) Snapshot() hal.Frame {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	snapshot := make(hal.Frame, len(instance.frame))
	for y, row := range instance.frame {
		snapshot[y] = make([]int, len(row))
		copy(snapshot[y], row)
	}
	return snapshot
}

// Frame implements types.BoardControl for the view.
func (instance *Board) Frame() [][]int {
	return instance.Snapshot()
}

func (instance *Board) ScrollText() string {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	return instance.scrollText
}

// RegisterDevice attaches an emulated peripheral at the given address.
func (instance *Board) RegisterDevice(address hal.I2CAddress, device I2CDevice) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.devices[address] = device
}

func (instance *Board) Write(address hal.I2CAddress, data []byte) error {
	instance.mutex.Lock()
	device, exists := instance.devices[address]
	instance.mutex.Unlock()
	if !exists {
		return glueerror.Wrap(nil, glueerror.FailHalAccess, fmt.Sprintf("no i2c device at 0x%02x", int(address)))
	}
	return device.Write(data)
}

func (instance *Board) Read(address hal.I2CAddress, length int) ([]byte, error) {
	instance.mutex.Lock()
	device, exists := instance.devices[address]
	instance.mutex.Unlock()
	if !exists {
		return nil, glueerror.Wrap(nil, glueerror.FailHalAccess, fmt.Sprintf("no i2c device at 0x%02x", int(address)))
	}
	return device.Read(length)
}

func (instance *Board) SetAcceleration(x int, y int, z int) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.accelX, instance.accelY, instance.accelZ = x, y, z
}

func (instance *Board) SetCompassHeading(heading int) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.heading = heading
}

func (instance *Board) Acceleration(dimension int) (int, error) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	switch dimension {
	case 0:
		return instance.accelX, nil
	case 1:
		return instance.accelY, nil
	case 2:
		return instance.accelZ, nil
	default:
		return 0, glueerror.Wrap(nil, glueerror.FailHalAccess, fmt.Sprintf("acceleration dimension %d", dimension))
	}
}

func (instance *Board) CompassHeading() (int, error) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	return instance.heading, nil
}
