package ui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// showInPager hands the terminal to ov until the user quits it
func showInPager(program *tea.Program, content string) error {
	if program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Writing on exit would leave the pager content on our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// pagerCmd shows content in the pager, pausing rendering meanwhile
func (m *Model) pagerCmd(what, content string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		if program == nil {
			return pagerMsg{what: what, err: errNoProgram}
		}
		program.Send(pauseRenderingMsg{})
		err := showInPager(program, content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}
