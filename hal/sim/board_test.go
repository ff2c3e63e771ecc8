package sim

import (
	"MicroGlue/config"
	"MicroGlue/constants"
	"MicroGlue/dto"
	"MicroGlue/events"
	"MicroGlue/hal"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingListener struct {
	mutex  sync.Mutex
	events []dto.EventData
}

func (instance *recordingListener) HandleEvent(event dto.EventData) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.events = append(instance.events, event)
}

func (instance *recordingListener) received() []dto.EventData {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	copyed := make([]dto.EventData, len(instance.events))
	copy(copyed, instance.events)
	return copyed
}

func createTestBoard(t *testing.T) (*Board, *events.MessageBus) {
	t.Helper()
	bus, err := events.NewMessageBus(config.BusConfig{PoolSize: 10}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(bus.Close)
	return NewBoard(bus, zap.NewNop()), bus
}

func TestBoardClickPublishesButtonEvents(t *testing.T) {
	board, bus := createTestBoard(t)

	listener := &recordingListener{}
	bus.Listen(constants.ComponentButtonA, constants.EventAny, listener)

	board.Click(constants.ComponentButtonA)

	assert.Eventually(t, func() bool {
		return len(listener.received()) == 3
	}, time.Second, 10*time.Millisecond)

	seen := map[constants.EventID]bool{}
	for _, event := range listener.received() {
		assert.Equal(t, constants.ComponentButtonA, event.ComponentID)
		seen[event.EventID] = true
	}
	assert.True(t, seen[constants.EventButtonDown])
	assert.True(t, seen[constants.EventButtonUp])
	assert.True(t, seen[constants.EventButtonClick])
}

func TestBoardIsButtonPressed(t *testing.T) {
	board, _ := createTestBoard(t)

	pressed, err := board.IsButtonPressed(constants.ComponentButtonB)
	require.NoError(t, err)
	assert.False(t, pressed)

	board.Press(constants.ComponentButtonB)

	pressed, err = board.IsButtonPressed(constants.ComponentButtonB)
	require.NoError(t, err)
	assert.True(t, pressed)

	_, err = board.IsButtonPressed(constants.ComponentDisplay)
	assert.Error(t, err)
}

func TestBoardTouchPinPublishesPinEvents(t *testing.T) {
	board, bus := createTestBoard(t)

	listener := &recordingListener{}
	bus.Listen(constants.ComponentPin1, constants.EventButtonClick, listener)

	board.TouchPin(constants.ComponentPin1, true)

	touched, err := board.IsTouched(1)
	require.NoError(t, err)
	assert.True(t, touched)

	board.TouchPin(constants.ComponentPin1, false)

	assert.Eventually(t, func() bool {
		return len(listener.received()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestBoardDisplayPixels(t *testing.T) {
	board, _ := createTestBoard(t)

	require.NoError(t, board.SetPixel(2, 3, 1))

	value, err := board.Pixel(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, value)

	assert.Error(t, board.SetPixel(5, 0, 1))
	assert.Error(t, board.SetPixel(0, -1, 1))
	_, err = board.Pixel(9, 9)
	assert.Error(t, err)

	board.Clear()
	value, err = board.Pixel(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, value)
}

func TestBoardShowAndSnapshot(t *testing.T) {
	board, _ := createTestBoard(t)

	frame := hal.Frame{
		{1, 0, 1},
		{0, 1},
	}
	require.NoError(t, board.Show(frame))

	snapshot := board.Snapshot()
	assert.Equal(t, 1, snapshot[0][0])
	assert.Equal(t, 0, snapshot[0][1])
	assert.Equal(t, 1, snapshot[0][2])
	assert.Equal(t, 1, snapshot[1][1])
	assert.Equal(t, 0, snapshot[4][4])

	// Snapshot is a copy, not a view.
	snapshot[0][0] = 9
	value, err := board.Pixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestBoardBrightness(t *testing.T) {
	board, _ := createTestBoard(t)

	assert.Equal(t, 100, board.Brightness())

	require.NoError(t, board.SetBrightness(40))
	assert.Equal(t, 40, board.Brightness())

	assert.Error(t, board.SetBrightness(-1))
	assert.Error(t, board.SetBrightness(101))
	assert.Equal(t, 40, board.Brightness())
}

func TestBoardPins(t *testing.T) {
	board, _ := createTestBoard(t)

	require.NoError(t, board.DigitalWrite(0, 7))
	value, err := board.DigitalRead(0)
	require.NoError(t, err)
	assert.Equal(t, 1, value)

	require.NoError(t, board.AnalogWrite(1, 512))
	value, err = board.AnalogRead(1)
	require.NoError(t, err)
	assert.Equal(t, 512, value)

	assert.Error(t, board.AnalogWrite(1, 2048))

	require.NoError(t, board.SetAnalogPeriodUs(1, 1000))
}

func TestBoardI2CRouting(t *testing.T) {
	board, _ := createTestBoard(t)

	device := NewDS1307()
	board.RegisterDevice(0x68, device)

	require.NoError(t, board.Write(0x68, []byte{0, 1, 2, 3}))

	require.NoError(t, board.Write(0x68, []byte{0}))
	data, err := board.Read(0x68, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	assert.Error(t, board.Write(0x10, []byte{0}))
	_, err = board.Read(0x10, 1)
	assert.Error(t, err)
}

func TestBoardSensors(t *testing.T) {
	board, _ := createTestBoard(t)

	board.SetAcceleration(10, -20, 1024)
	board.SetCompassHeading(270)

	for dimension, expected := range []int{10, -20, 1024} {
		value, err := board.Acceleration(dimension)
		require.NoError(t, err)
		assert.Equal(t, expected, value)
	}

	_, err := board.Acceleration(3)
	assert.Error(t, err)

	heading, err := board.CompassHeading()
	require.NoError(t, err)
	assert.Equal(t, 270, heading)
}

func TestBoardRunningTime(t *testing.T) {
	board, _ := createTestBoard(t)

	first := board.RunningTime()
	time.Sleep(20 * time.Millisecond)
	second := board.RunningTime()

	assert.GreaterOrEqual(t, second, first+10)
}
