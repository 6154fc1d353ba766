package actionhandlers

import (
	"os/exec"

	minidock "github.com/minidock/go-minidock"
)

type ExecAction struct {
	Command *exec.Cmd
}

func (action *ExecAction) Pressed(keyIndex int, d *minidock.Device) {
	action.Command.Start()
}

func NewExecAction(command *exec.Cmd) *ExecAction {
	return &ExecAction{Command: command}
}
