package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// Scan progress - bubbletea model for long-running aggregate scans
// =============================================================================

// progressMsg carries a scan progress update into the model.
type progressMsg struct {
	done  int
	total int
}

// doneMsg signals that the scan finished.
type doneMsg struct{}

// scanModel renders a one-line progress display while a scan runs.
type scanModel struct {
	label string
	done  int
	total int
	frame int
}

var scanFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m scanModel) Init() tea.Cmd {
	return nil
}

func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done, m.total = msg.done, msg.total
		m.frame++
		return m, nil
	case doneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m scanModel) View() string {
	frame := styleIconSpinner.Render(scanFrames[m.frame%len(scanFrames)])
	if m.total == 0 {
		return fmt.Sprintf("%s %s\n", frame, styleDim.Render(m.label))
	}
	percent := 100 * m.done / m.total
	return fmt.Sprintf("%s %s  %s\n",
		frame,
		styleDim.Render(m.label),
		styleNumber.Render(fmt.Sprintf("%d/%d (%d%%)", m.done, m.total, percent)))
}

// runWithProgress runs fn in the background while displaying its progress.
// fn receives a context and a callback to report (done, total) steps. An
// interactive interrupt (q / ctrl+c) cancels the context; fn is expected
// to stop at its next context check and return the cancellation error.
func runWithProgress(ctx context.Context, label string, fn func(ctx context.Context, progress func(done, total int)) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(scanModel{label: label}, tea.WithOutput(os.Stderr))

	result := make(chan error, 1)
	go func() {
		result <- fn(ctx, func(done, total int) {
			p.Send(progressMsg{done: done, total: total})
		})
		p.Send(doneMsg{})
	}()

	_, runErr := p.Run()

	// Quitting the view early cancels the scan; a finished scan makes
	// this a no-op. Either way fn returns and the channel delivers.
	cancel()
	if err := <-result; err != nil {
		return err
	}
	return runErr
}
