package tracker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/stepsquad/stepsquad/stepcounter"
)

const (
	checkingMsg    = "Checking pedometer availability..."
	deniedMsg      = "Motion permission denied. Allow step counting to track your steps."
	unavailableMsg = "Step counting is not available on this device."
)

func (m *Model) statusView() string {
	switch m.snap.SensorStatus {
	case stepcounter.StatusChecking:
		return m.style.Secondary.Render(checkingMsg)
	case stepcounter.StatusDenied:
		return m.style.Warning.Render(deniedMsg)
	case stepcounter.StatusUnavailable:
		return m.style.Warning.Render(unavailableMsg)
	default:
		return ""
	}
}

func (m *Model) countView() string {
	var s strings.Builder

	s.WriteString(m.style.Main.Render(fmt.Sprintf("%d", m.snap.CurrentStepCount)))
	s.WriteString(m.style.Hint.Render(fmt.Sprintf(" / %d steps", m.snap.StepGoal)))

	if m.snap.GoalReached {
		s.WriteString("  " + m.style.Success.Render("Goal reached!"))
	}

	s.WriteString("\n\n")
	s.WriteString(m.progress.View())

	return s.String()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	if status := m.statusView(); status != "" {
		s.WriteString(status + "\n\n")
	}

	if m.snap.SensorStatus != stepcounter.StatusChecking {
		s.WriteString(m.countView())
	}

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.quit,
	}))

	return m.style.Base.Render(s.String())
}
