package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/examforge/internal/registry"
	"github.com/abhisek/examforge/internal/router"
	"github.com/abhisek/examforge/internal/screen"
	"github.com/abhisek/examforge/internal/screens/summary"
	sess "github.com/abhisek/examforge/internal/session"
	"github.com/abhisek/examforge/internal/ui/components"
	"github.com/abhisek/examforge/internal/ui/layout"
)

const answerPlaceholder = "Type your answer..."

// SessionScreen implements screen.Screen for a practice run over a fixed
// question set.
type SessionScreen struct {
	state       *sess.State
	reg         *registry.Registry
	input       components.AnswerInput
	started     bool
	quitConfirm bool
	ended       bool
	saveErr     string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen over state. Topic names are looked up in reg,
// which defaults to the built-in registry.
func New(state *sess.State, reg *registry.Registry) *SessionScreen {
	if reg == nil {
		reg = registry.Default()
	}
	return &SessionScreen{
		state: state,
		reg:   reg,
		input: components.NewAnswerInput(answerPlaceholder, 40),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	state := s.state
	return tea.Batch(
		func() tea.Msg {
			return sessionStartedMsg{Err: sess.Start(context.Background(), state)}
		},
		s.input.Init(),
	)
}

func (s *SessionScreen) Title() string {
	return "Practice"
}

func (s *SessionScreen) Status() string {
	if !s.started {
		return ""
	}
	return fmt.Sprintf("✓ %d/%d  ★ %d", s.state.TotalCorrect, s.state.TotalQuestions, s.state.Streak)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case !s.started:
		return nil
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.state.Phase == sess.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "End"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	switch {
	case !s.started:
		return renderLoading(width)
	case s.quitConfirm:
		return renderQuitConfirm(width)
	case s.state.Phase == sess.PhaseFeedback:
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return s.handleStarted(msg)

	case timerTickMsg:
		if s.ended {
			return s, nil
		}
		s.state.Elapsed = time.Since(s.state.StartTime)
		return s, tickCmd()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.started && s.state.Phase == sess.PhaseActive && !s.quitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	s.started = true
	if msg.Err != nil {
		// Attempts cannot reference a session row that was never written.
		s.state.EventRepo = nil
		s.saveErr = "History not saved: " + msg.Err.Error()
	}
	now := time.Now()
	s.state.StartTime = now
	s.state.QuestionStartTime = now

	if s.state.Phase == sess.PhaseSummary {
		return s, endCmd
	}
	return s, tickCmd()
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if !s.started || s.ended {
		return s, nil
	}
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, endCmd
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch s.state.Phase {
	case sess.PhaseFeedback:
		if !sess.Advance(s.state) {
			return s, endCmd
		}
		s.input.Reset()
		return s, s.input.Init()

	case sess.PhaseActive:
		switch key {
		case "esc":
			s.quitConfirm = true
			return s, nil
		case "enter":
			return s.submitAnswer()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submitAnswer checks and records the typed answer. Blank input is ignored.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	response := s.input.Value()
	if strings.TrimSpace(response) == "" {
		return s, nil
	}
	correct, err := sess.HandleAnswer(context.Background(), s.state, response)
	if err != nil {
		s.saveErr = err.Error()
	}
	s.input.Submit(correct)
	return s, nil
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.ended {
		return s, nil
	}
	s.ended = true

	notice := s.saveErr
	if err := sess.Finish(context.Background(), s.state); err != nil {
		notice = "History not saved: " + err.Error()
	}
	next := summary.New(sess.BuildSummary(s.state), s.reg, notice)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func endCmd() tea.Msg {
	return sessionEndMsg{}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
