package actionhandlers

import (
	minidock "github.com/minidock/go-minidock"
)

// ColorAction fills the pressed key with a fixed color.
type ColorAction struct {
	Red, Green, Blue int
}

func (action *ColorAction) Pressed(keyIndex int, d *minidock.Device) {
	d.WriteColorToButton(keyIndex, action.Red, action.Green, action.Blue)
}

func NewColorAction(red, green, blue int) *ColorAction {
	return &ColorAction{Red: red, Green: green, Blue: blue}
}

// ChainAction runs several actions in order.
type ChainAction struct {
	Actions []minidock.Action
}

func (action *ChainAction) Pressed(keyIndex int, d *minidock.Device) {
	for _, a := range action.Actions {
		a.Pressed(keyIndex, d)
	}
}

func NewChainAction(actions ...minidock.Action) *ChainAction {
	return &ChainAction{Actions: actions}
}
