// Package tracker renders the live step count in the terminal and records
// the day's progress as it changes
package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stepsquad/stepsquad/internal/models"
	"github.com/stepsquad/stepsquad/internal/timeutil"
	"github.com/stepsquad/stepsquad/stepcounter"
)

const (
	padding  = 2
	maxWidth = 80
)

// Engine is the part of the step counter the tracker drives.
type Engine interface {
	Snapshot() stepcounter.Snapshot
	Watch() <-chan stepcounter.Snapshot
	Stop()
}

// History records the day's progress.
type History interface {
	UpdateDay(day *models.Day) error
}

// Options configures a Model.
type Options struct {
	Engine  Engine
	History History
	Logger  *slog.Logger
	Now     func() time.Time
	// OnGoal runs once, the first time the goal is reached while tracking
	OnGoal    func(ctx context.Context, snap stepcounter.Snapshot) error
	DarkTheme bool
}

// Model is the bubbletea model of the live step view.
type Model struct {
	opts     Options
	log      *slog.Logger
	updates  <-chan stepcounter.Snapshot
	style    Style
	progress progress.Model
	help     help.Model
	recorded *models.Day
	snap     stepcounter.Snapshot
	// reached is the goal state of the first granted snapshot seen
	reached    bool
	seen       bool
	celebrated bool
	quitting   bool
}

type (
	snapshotMsg stepcounter.Snapshot
	closedMsg   struct{}
	goalDoneMsg struct {
		err error
	}
)

// New returns a Model that follows opts.Engine.
func New(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Model{
		opts:     opts,
		log:      opts.Logger.With(slog.String("component", "tracker")),
		updates:  opts.Engine.Watch(),
		style:    NewStyle(opts.DarkTheme),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		snap:     opts.Engine.Snapshot(),
	}
}

// waitForSnapshot blocks until the engine publishes a new snapshot.
func waitForSnapshot(updates <-chan stepcounter.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return closedMsg{}
		}

		return snapshotMsg(snap)
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

// record writes today's history row when the count or goal changed since
// the last write.
func (m *Model) record(snap stepcounter.Snapshot) {
	if m.opts.History == nil || snap.SensorStatus == stepcounter.StatusChecking {
		return
	}

	now := m.opts.Now()

	day := &models.Day{
		Date:      timeutil.RoundToStart(now),
		UpdatedAt: now,
		Steps:     snap.CurrentStepCount,
		Goal:      snap.StepGoal,
	}

	if r := m.recorded; r != nil && r.Date.Equal(day.Date) &&
		r.Steps == day.Steps && r.Goal == day.Goal {
		return
	}

	err := m.opts.History.UpdateDay(day)
	if err != nil {
		m.log.Error("unable to record daily history", slog.Any("error", err))
		return
	}

	m.recorded = day
}

// goalJustReached reports whether snap completes the goal for the first time
// in this session. A goal already met when tracking began does not count.
func (m *Model) goalJustReached(snap stepcounter.Snapshot) bool {
	if snap.SensorStatus != stepcounter.StatusGranted {
		return false
	}

	if !m.seen {
		m.seen = true
		m.reached = snap.GoalReached

		return false
	}

	if m.celebrated || m.reached || !snap.GoalReached {
		m.reached = snap.GoalReached
		return false
	}

	m.reached = true
	m.celebrated = true

	return true
}

func (m *Model) celebrate(snap stepcounter.Snapshot) tea.Cmd {
	if m.opts.OnGoal == nil {
		return nil
	}

	return func() tea.Msg {
		return goalDoneMsg{err: m.opts.OnGoal(context.Background(), snap)}
	}
}

func (m *Model) percent() float64 {
	if m.snap.StepGoal <= 0 {
		return 0
	}

	return min(float64(m.snap.CurrentStepCount)/float64(m.snap.StepGoal), 1)
}
