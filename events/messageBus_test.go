package events

import (
	"MicroGlue/config"
	"MicroGlue/constants"
	"MicroGlue/dto"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type funcListener struct {
	handle func(event dto.EventData)
}

func (instance *funcListener) HandleEvent(event dto.EventData) {
	instance.handle(event)
}

func createTestBus(t *testing.T) *MessageBus {
	t.Helper()
	bus, err := NewMessageBus(config.BusConfig{PoolSize: 100}, zap.NewNop())
	require.NoError(t, err)
	return bus
}

func TestNewMessageBus(t *testing.T) {
	logger := zap.NewNop()
	config := config.BusConfig{
		PoolSize: 100,
	}

	bus, err := NewMessageBus(config, logger)

	require.NoError(t, err)
	assert.NotNil(t, bus)
	assert.NotNil(t, bus.listeners)
	assert.Equal(t, logger, bus.logger)
	assert.NotNil(t, bus.pool)

	bus.Close()
}

func TestNewMessageBusFromDefaultConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	loaded := config.LoadConfig()
	bus, err := NewMessageBus(loaded.BusConfig, zap.NewNop())

	require.NoError(t, err)
	assert.NotNil(t, bus)

	bus.Close()
}

func TestNewMessageBusWithInvalidPoolSize(t *testing.T) {
	logger := zap.NewNop()
	config := config.BusConfig{
		PoolSize: -2,
	}

	bus, err := NewMessageBus(config, logger)

	assert.Error(t, err)
	assert.Nil(t, bus)
}

func TestMessageBusListen(t *testing.T) {
	bus := createTestBus(t)
	defer bus.Close()

	var receivedEvent dto.EventData
	var wg sync.WaitGroup
	wg.Add(1)

	listener := &funcListener{handle: func(event dto.EventData) {
		receivedEvent = event
		wg.Done()
	}}

	bus.Listen(constants.ComponentButtonA, constants.EventButtonClick, listener)
	bus.Publish(dto.EventData{
		ComponentID: constants.ComponentButtonA,
		EventID:     constants.EventButtonClick,
		Payload:     42,
	})

	wg.Wait()

	assert.Equal(t, constants.ComponentButtonA, receivedEvent.ComponentID)
	assert.Equal(t, constants.EventButtonClick, receivedEvent.EventID)
	assert.Equal(t, 42, receivedEvent.Payload)
	assert.False(t, receivedEvent.TraceID.IsNil())
	assert.False(t, receivedEvent.TimeStamp.IsZero())
}

func TestMessageBusIgnore(t *testing.T) {
	bus := createTestBus(t)
	defer bus.Close()

	handlerCalled := false
	listener := &funcListener{handle: func(event dto.EventData) {
		handlerCalled = true
	}}

	bus.Listen(constants.ComponentButtonA, constants.EventButtonClick, listener)
	bus.Ignore(constants.ComponentButtonA, constants.EventButtonClick, listener)

	bus.Publish(dto.EventData{
		ComponentID: constants.ComponentButtonA,
		EventID:     constants.EventButtonClick,
	})

	time.Sleep(100 * time.Millisecond)

	assert.False(t, handlerCalled)
}

func TestMessageBusIgnore_RemovesOnlyGivenListener(t *testing.T) {
	bus := createTestBus(t)
	defer bus.Close()

	var wg sync.WaitGroup
	wg.Add(1)

	firstCalled := false
	first := &funcListener{handle: func(event dto.EventData) {
		firstCalled = true
	}}
	second := &funcListener{handle: func(event dto.EventData) {
		wg.Done()
	}}

	bus.Listen(constants.ComponentButtonB, constants.EventButtonDown, first)
	bus.Listen(constants.ComponentButtonB, constants.EventButtonDown, second)
	bus.Ignore(constants.ComponentButtonB, constants.EventButtonDown, first)

	bus.Publish(dto.EventData{
		ComponentID: constants.ComponentButtonB,
		EventID:     constants.EventButtonDown,
	})

	wg.Wait()
	time.Sleep(50 * time.Millisecond)

	assert.False(t, firstCalled)
}

func TestMessageBusMultipleListeners(t *testing.T) {
	bus := createTestBus(t)
	defer bus.Close()

	var wg sync.WaitGroup
	wg.Add(2)

	var mutex sync.Mutex
	count := 0
	makeListener := func() *funcListener {
		return &funcListener{handle: func(event dto.EventData) {
			mutex.Lock()
			count++
			mutex.Unlock()
			wg.Done()
		}}
	}

	bus.Listen(constants.ComponentButtonA, constants.EventButtonClick, makeListener())
	bus.Listen(constants.ComponentButtonA, constants.EventButtonClick, makeListener())

	bus.Publish(dto.EventData{
		ComponentID: constants.ComponentButtonA,
		EventID:     constants.EventButtonClick,
	})

	wg.Wait()
	assert.Equal(t, 2, count)
}

func TestMessageBusEventAnyListener(t *testing.T) {
	bus := createTestBus(t)
	defer bus.Close()

	var wg sync.WaitGroup
	wg.Add(1)

	var receivedEvent dto.EventData
	listener := &funcListener{handle: func(event dto.EventData) {
		receivedEvent = event
		wg.Done()
	}}

	bus.Listen(constants.ComponentRemoteControl, constants.EventAny, listener)
	bus.Publish(dto.EventData{
		ComponentID: constants.ComponentRemoteControl,
		EventID:     constants.EventButtonClick,
		Payload:     7,
	})

	wg.Wait()
	assert.Equal(t, constants.EventButtonClick, receivedEvent.EventID)
	assert.Equal(t, 7, receivedEvent.Payload)
}

func TestMessageBusIgnore_DrainsInFlightDelivery(t *testing.T) {
	bus := createTestBus(t)
	defer bus.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	listener := &funcListener{handle: func(event dto.EventData) {
		close(started)
		<-release
	}}

	bus.Listen(constants.ComponentButtonA, constants.EventButtonClick, listener)
	bus.Publish(dto.EventData{
		ComponentID: constants.ComponentButtonA,
		EventID:     constants.EventButtonClick,
	})

	<-started

	ignoreDone := make(chan struct{})
	go func() {
		bus.Ignore(constants.ComponentButtonA, constants.EventButtonClick, listener)
		close(ignoreDone)
	}()

	select {
	case <-ignoreDone:
		t.Fatal("Ignore returned while a delivery was still in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	select {
	case <-ignoreDone:
	case <-time.After(time.Second):
		t.Fatal("Ignore did not return after the delivery drained")
	}
}

func TestMessageBusRecoversFromPanic(t *testing.T) {
	bus := createTestBus(t)
	defer bus.Close()

	var wg sync.WaitGroup
	wg.Add(1)

	panicking := &funcListener{handle: func(event dto.EventData) {
		panic("listener failure")
	}}
	healthy := &funcListener{handle: func(event dto.EventData) {
		wg.Done()
	}}

	bus.Listen(constants.ComponentButtonA, constants.EventButtonClick, panicking)
	bus.Listen(constants.ComponentButtonA, constants.EventButtonClick, healthy)

	bus.Publish(dto.EventData{
		ComponentID: constants.ComponentButtonA,
		EventID:     constants.EventButtonClick,
	})

	wg.Wait()

	assert.Eventually(t, func() bool {
		return bus.Stats().Recovered == 1
	}, time.Second, 10*time.Millisecond)
}

func TestMessageBusStats(t *testing.T) {
	bus := createTestBus(t)
	defer bus.Close()

	var wg sync.WaitGroup
	wg.Add(3)

	listener := &funcListener{handle: func(event dto.EventData) {
		wg.Done()
	}}
	bus.Listen(constants.ComponentButtonA, constants.EventButtonClick, listener)

	for i := 0; i < 3; i++ {
		bus.Publish(dto.EventData{
			ComponentID: constants.ComponentButtonA,
			EventID:     constants.EventButtonClick,
		})
	}

	wg.Wait()

	stats := bus.Stats()
	assert.Equal(t, int64(3), stats.Published)
	assert.Equal(t, int64(3), stats.Dispatched)
	assert.Equal(t, int64(0), stats.Recovered)
}
