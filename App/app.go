package app

import (
	glueerror "MicroGlue/GlueError"
	"MicroGlue/config"
	"MicroGlue/events"
	"MicroGlue/hal"
	"MicroGlue/hal/sim"
	"MicroGlue/manager/handler"
	"MicroGlue/module/clock"
	"MicroGlue/module/display"
	"MicroGlue/module/input"
	"MicroGlue/viewinterface"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func NewApp() (*App, error) {
	viper.SetConfigFile("env.toml")
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, glueerror.Wrap(err, glueerror.FailLoggerSetup, "Fail LoggerSetup")
	}
	if err := viper.ReadInConfig(); err != nil {
		return nil, glueerror.Wrap(err, glueerror.FailReadConfig, "Fail Read Config")
	}
	config := config.LoadConfig()
	bus, err := events.NewMessageBus(config.BusConfig, logger)
	if err != nil {
		return nil, err
	}
	board := sim.NewBoard(bus, logger)
	board.RegisterDevice(hal.I2CAddress(config.ClockConfig.Address), sim.NewDS1307())
	handlers := handler.NewHandlerManager(bus, logger)
	app := &App{
		bus:           bus,
		board:         board,
		handlers:      handlers,
		model:         viewinterface.NewMainModel(board, config.ViewConfig, logger),
		displayModule: display.NewDisplayModule(board, config.DisplayConfig, logger),
		inputModule:   input.NewInputModule(board, bus, handlers, logger),
		clockModule:   clock.NewClockModule(board, config.ClockConfig, logger),
		logger:        logger,
	}
	return app, nil
}

type App struct {
	bus           *events.MessageBus
	board         *sim.Board
	handlers      *handler.HandlerManager
	model         *viewinterface.MainModel
	displayModule *display.DisplayModule
	inputModule   *input.InputModule
	clockModule   *clock.ClockModule
	logger        *zap.Logger
}

func (instance *App) Display() *display.DisplayModule {
	return instance.displayModule
}

func (instance *App) Input() *input.InputModule {
	return instance.inputModule
}

func (instance *App) Clock() *clock.ClockModule {
	return instance.clockModule
}

func (instance *App) Run() {
	program := tea.NewProgram(
		instance.model,
	)
	instance.model.SetProgram(program)
	defer func() {
		instance.bus.Close()
	}()
	if _, err := program.Run(); err != nil {
		instance.logger.Error("", zap.Error(glueerror.Wrap(err, glueerror.FailRunApp, "Fail Run App")))
		return
	}
}
