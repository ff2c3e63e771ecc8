package viewinterface

import (
	"MicroGlue/config"
	"MicroGlue/constants"
	"MicroGlue/types"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type TickMsg time.Time

func NewMainModel(board types.BoardControl, config config.ViewConfig, logger *zap.Logger) *MainModel {
	return &MainModel{
		Board:     board,
		Keys:      NewDefaultBoardKeyMap(),
		SessionID: types.NewSessionID(),
		Config:    config,
		logger:    logger,
	}
}

// MainModel renders the simulated board: the LED matrix, the text currently
// scrolling across it, and the key bindings that stand in for the hardware
// buttons and pins.
type MainModel struct {
	Board     types.BoardControl
	Keys      BoardKeyMap
	SessionID types.SessionID
	Program   *tea.Program
	Config    config.ViewConfig
	logger    *zap.Logger
}

func (instance *MainModel) SetProgram(program *tea.Program) {
	instance.Program = program
}

func (instance *MainModel) Init() tea.Cmd {
	return instance.tick()
}

func (instance *MainModel) tick() tea.Cmd {
	return tea.Tick(time.Duration(instance.Config.TickMs)*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (instance *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, instance.Keys.Exit):
			return instance, tea.Quit
		case key.Matches(msg, instance.Keys.ButtonA):
			instance.Board.Click(constants.ComponentButtonA)
		case key.Matches(msg, instance.Keys.ButtonB):
			instance.Board.Click(constants.ComponentButtonB)
		case key.Matches(msg, instance.Keys.ButtonsAB):
			instance.Board.Click(constants.ComponentButtonAB)
		case key.Matches(msg, instance.Keys.TouchPin0):
			instance.tapPin(constants.ComponentPin0)
		case key.Matches(msg, instance.Keys.TouchPin1):
			instance.tapPin(constants.ComponentPin1)
		case key.Matches(msg, instance.Keys.TouchPin2):
			instance.tapPin(constants.ComponentPin2)
		}
	case TickMsg:
		return instance, instance.tick()
	}
	return instance, nil
}

func (instance *MainModel) tapPin(component constants.ComponentID) {
	instance.Board.TouchPin(component, true)
	instance.Board.TouchPin(component, false)
}

func (instance *MainModel) View() string {
	list := make([]string, 0, 3)
	list = append(list, DefaultStyles.Screen.Render(instance.renderMatrix()))
	if scrollText := instance.Board.ScrollText(); scrollText != "" {
		list = append(list, DefaultStyles.Scroll.Render("≫ "+scrollText))
	}
	list = append(list, DefaultStyles.Help.Render("a/b/c buttons · 0/1/2 pins · esc quit"))
	return lipgloss.JoinVertical(lipgloss.Left, list...)
}

func (instance *MainModel) renderMatrix() string {
	frame := instance.Board.Frame()
	var builder strings.Builder
	for y, row := range frame {
		if y > 0 {
			builder.WriteString("\n")
		}
		for x, value := range row {
			if x > 0 {
				builder.WriteString(" ")
			}
			if value != 0 {
				builder.WriteString(DefaultStyles.LedOn.Render(instance.Config.OnChar))
			} else {
				builder.WriteString(DefaultStyles.LedOff.Render(instance.Config.OffChar))
			}
		}
	}
	return builder.String()
}
