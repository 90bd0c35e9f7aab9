package tracker

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/stepsquad/stepsquad/stepcounter"
)

func (m *Model) handleSnapshot(snap stepcounter.Snapshot) (tea.Model, tea.Cmd) {
	if m.log.Enabled(context.Background(), slog.LevelDebug) {
		m.log.Debug("snapshot received", slog.String("msg", spew.Sdump(snap)))
	}

	m.snap = snap

	m.record(snap)

	cmds := []tea.Cmd{
		waitForSnapshot(m.updates),
		m.progress.SetPercent(m.percent()),
	}

	if m.goalJustReached(snap) {
		cmds = append(cmds, m.celebrate(snap))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		return m.handleSnapshot(stepcounter.Snapshot(msg))

	case closedMsg:
		m.quitting = true
		return m, tea.Quit

	case goalDoneMsg:
		if msg.err != nil {
			m.log.Error("goal actions failed", slog.Any("error", msg.err))
		}

		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, defaultKeymap.quit) {
			m.quitting = true
			m.opts.Engine.Stop()

			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}
