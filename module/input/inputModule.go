package input

import (
	glueerror "MicroGlue/GlueError"
	"MicroGlue/constants"
	"MicroGlue/dto"
	"MicroGlue/events"
	"MicroGlue/hal"
	"MicroGlue/manager/handler"
	"time"

	"go.uber.org/zap"
)

func NewInputModule(board hal.Board, bus *events.MessageBus, handlers *handler.HandlerManager, logger *zap.Logger) *InputModule {
	return &InputModule{
		board:    board,
		bus:      bus,
		handlers: handlers,
		logger:   logger,
	}
}

// InputModule exposes buttons, pins, sensors and the event surface to
// generated code. Registration goes through the handler manager so each
// (component, event) pair keeps a single active callback; reads forward into
// the board drivers with a logged fallback on failure.
type InputModule struct {
	board    hal.Board
	bus      *events.MessageBus
	handlers *handler.HandlerManager
	logger   *zap.Logger
	pitchPin hal.PinID
}

func (instance *InputModule) warn(err error) {
	if err != nil {
		instance.logger.Warn("", zap.Error(glueerror.Wrap(err, glueerror.FailHalAccess, "Fail Hal Access")))
	}
}

func (instance *InputModule) IsButtonPressed(component constants.ComponentID) bool {
	pressed, err := instance.board.IsButtonPressed(component)
	instance.warn(err)
	return err == nil && pressed
}

func (instance *InputModule) OnButtonPressed(component constants.ComponentID, action handler.Action) {
	instance.handlers.Register(component, constants.EventButtonClick, action)
}

func (instance *InputModule) OnButtonPressedExt(component constants.ComponentID, event constants.EventID, action handler.Action) {
	instance.handlers.Register(component, event, action)
}

func (instance *InputModule) DigitalReadPin(pin hal.PinID) int {
	value, err := instance.board.Pins().DigitalRead(pin)
	instance.warn(err)
	return value
}

func (instance *InputModule) DigitalWritePin(pin hal.PinID, value int) {
	instance.warn(instance.board.Pins().DigitalWrite(pin, value))
}

func (instance *InputModule) AnalogReadPin(pin hal.PinID) int {
	value, err := instance.board.Pins().AnalogRead(pin)
	instance.warn(err)
	return value
}

func (instance *InputModule) AnalogWritePin(pin hal.PinID, value int) {
	instance.warn(instance.board.Pins().AnalogWrite(pin, value))
}

func (instance *InputModule) SetAnalogPeriodUs(pin hal.PinID, period int) {
	instance.warn(instance.board.Pins().SetAnalogPeriodUs(pin, period))
}

func (instance *InputModule) IsPinTouched(pin hal.PinID) bool {
	touched, err := instance.board.Pins().IsTouched(pin)
	instance.warn(err)
	return err == nil && touched
}

func (instance *InputModule) OnPinPressed(component constants.ComponentID, action handler.Action) {
	instance.handlers.Register(component, constants.EventButtonClick, action)
}

func (instance *InputModule) GenerateEvent(component constants.ComponentID, event constants.EventID) {
	instance.bus.Publish(dto.EventData{
		ComponentID: component,
		EventID:     event,
		Payload:     int(event),
		TimeStamp:   time.Now(),
	})
}

// OnEvent fires for every event of the component; the callback receives the
// payload.
func (instance *InputModule) OnEvent(component constants.ComponentID, action handler.ActionWithValue) {
	instance.handlers.RegisterWithValue(component, constants.EventAny, action)
}

func (instance *InputModule) RemoteControl(event constants.EventID) {
	instance.GenerateEvent(constants.ComponentRemoteControl, event)
}

func (instance *InputModule) Camera(event constants.EventID) {
	instance.GenerateEvent(constants.ComponentCamera, event)
}

func (instance *InputModule) AudioRecorder(event constants.EventID) {
	instance.GenerateEvent(constants.ComponentAudioRecorder, event)
}

func (instance *InputModule) Alert(event constants.EventID) {
	instance.GenerateEvent(constants.ComponentAlert, event)
}

func (instance *InputModule) RunInBackground(action handler.Action) {
	if action == nil {
		return
	}
	go func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				instance.logger.Error("", zap.Any("recover", recovered),
					zap.Error(glueerror.Wrap(
						nil,
						glueerror.FailHandleEvent,
						"Fail Background Action",
					)))
			}
		}()
		action()
	}()
}

// Forever runs the action in a background loop with the scheduler-friendly
// pause the board firmware uses between iterations.
func (instance *InputModule) Forever(action handler.Action) {
	if action == nil {
		return
	}
	instance.RunInBackground(func() {
		for {
			action()
			instance.Pause(20)
		}
	})
}

func (instance *InputModule) Pause(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func (instance *InputModule) RunningTime() int {
	return instance.board.RunningTime()
}

func (instance *InputModule) CompassHeading() int {
	heading, err := instance.board.Sensors().CompassHeading()
	instance.warn(err)
	return heading
}

func (instance *InputModule) GetAcceleration(dimension int) int {
	value, err := instance.board.Sensors().Acceleration(dimension)
	instance.warn(err)
	return value
}

func (instance *InputModule) EnablePitch(pin hal.PinID) {
	instance.pitchPin = pin
}

// Pitch plays a tone by driving the pitch pin's PWM at the note's period.
func (instance *InputModule) Pitch(frequency int, ms int) {
	if frequency <= 0 {
		return
	}
	instance.SetAnalogPeriodUs(instance.pitchPin, 1000000/frequency)
	instance.AnalogWritePin(instance.pitchPin, 512)
	instance.Pause(ms)
	instance.AnalogWritePin(instance.pitchPin, 0)
}
