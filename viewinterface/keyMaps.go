package viewinterface

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type BoardKeyMap struct {
	ButtonA   key.Binding
	ButtonB   key.Binding
	ButtonsAB key.Binding
	TouchPin0 key.Binding
	TouchPin1 key.Binding
	TouchPin2 key.Binding
	Exit      key.Binding
}

func NewDefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		ButtonA: key.NewBinding(
			key.WithKeys("a"),
		),
		ButtonB: key.NewBinding(
			key.WithKeys("b"),
		),
		ButtonsAB: key.NewBinding(
			key.WithKeys("c"),
		),
		TouchPin0: key.NewBinding(
			key.WithKeys("0"),
		),
		TouchPin1: key.NewBinding(
			key.WithKeys("1"),
		),
		TouchPin2: key.NewBinding(
			key.WithKeys("2"),
		),
		Exit: key.NewBinding(
			key.WithKeys(tea.KeyCtrlC.String(), tea.KeyEsc.String()),
		),
	}
}
