package test

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/assessment"
	"github.com/abhisek/intervet/internal/router"
	"github.com/abhisek/intervet/internal/screen"
	"github.com/abhisek/intervet/internal/screens/results"
	"github.com/abhisek/intervet/internal/store"
	"github.com/abhisek/intervet/internal/ui/components"
	"github.com/abhisek/intervet/internal/ui/layout"
)

// testDurationSecs is the full test window: 30 minutes.
const testDurationSecs = 30 * 60

// TestScreen runs the timed assessment. The countdown never pauses;
// when it reaches zero the test submits itself. Submission happens
// exactly once whether triggered by the timer, the submit key, or
// both racing.
type TestScreen struct {
	gateway     api.Gateway
	eventRepo   store.EventRepo
	homeFactory func() screen.Screen
	profile     *assessment.ParsedProfile
	userID      string
	choice      assessment.LevelChoice

	questions []assessment.FlatQuestion
	answers   *assessment.AnswerSheet
	attemptID string

	idx        int
	choiceList components.ChoiceList
	remaining  int
	finalized  bool
	confirming bool
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)

// New creates the test screen over an already flattened question
// sequence. An empty sequence puts the screen into a guard state: no
// timer, no network, the only edge is back to difficulty selection.
func New(gateway api.Gateway, eventRepo store.EventRepo, homeFactory func() screen.Screen, profile *assessment.ParsedProfile, userID string, choice assessment.LevelChoice, questions []assessment.FlatQuestion) *TestScreen {
	t := &TestScreen{
		gateway:     gateway,
		eventRepo:   eventRepo,
		homeFactory: homeFactory,
		profile:     profile,
		userID:      userID,
		choice:      choice,
		questions:   questions,
		answers:     assessment.NewAnswerSheet(),
		attemptID:   uuid.NewString(),
		remaining:   testDurationSecs,
	}
	if len(questions) > 0 {
		t.choiceList = components.NewChoiceList(questions[0].Question.Options)
	}
	return t
}

func (t *TestScreen) guarded() bool {
	return len(t.questions) == 0
}

func (t *TestScreen) Init() tea.Cmd {
	if t.guarded() {
		return nil
	}
	return tea.Batch(t.recordStart(), tick())
}

func (t *TestScreen) Title() string {
	return "Test"
}

func (t *TestScreen) KeyHints() []layout.KeyHint {
	if t.guarded() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back to difficulty"},
		}
	}
	if t.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit now"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/A-D", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "S", Description: "Submit"},
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(ts time.Time) tea.Msg {
		return tickMsg(ts)
	})
}

func (t *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if t.finalized {
			// The screen was submitted between ticks; let the loop die.
			return t, nil
		}
		t.remaining--
		if t.remaining <= 0 {
			t.remaining = 0
			return t, t.finalize()
		}
		return t, tick()

	case persistedMsg:
		if msg.Err != nil {
			fmt.Fprintln(os.Stderr, "history not recorded:", msg.Err)
		}
		return t, nil

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	return t, nil
}

func (t *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if t.guarded() {
		if msg.String() == "esc" {
			// The instructions screen sits between this one and
			// difficulty selection, so pop both frames.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return t, tea.Batch(pop, pop)
		}
		return t, nil
	}

	if t.finalized {
		return t, nil
	}

	if t.confirming {
		switch msg.String() {
		case "y", "Y", "enter":
			return t, t.finalize()
		case "n", "N", "esc":
			t.confirming = false
		}
		return t, nil
	}

	switch msg.String() {
	case "esc", "s", "S":
		t.confirming = true
		return t, nil
	case "right", "tab":
		t.gotoQuestion(t.idx + 1)
		return t, nil
	case "left", "shift+tab":
		t.gotoQuestion(t.idx - 1)
		return t, nil
	}

	var changed bool
	t.choiceList, changed = t.choiceList.Update(msg)
	if changed {
		t.answers.Record(t.questions[t.idx].ID, t.choiceList.ChosenOption())
	}
	return t, nil
}

// gotoQuestion moves the cursor, wrapping at the ends, and restores
// the stored answer for the target question.
func (t *TestScreen) gotoQuestion(i int) {
	n := len(t.questions)
	i = ((i % n) + n) % n
	t.idx = i
	q := t.questions[i]
	t.choiceList = components.NewChoiceList(q.Question.Options)
	if sel, ok := t.answers.Get(q.ID); ok {
		t.choiceList.SetChosen(sel)
	}
}

// finalize scores the sheet and swaps in the results screen. Runs at
// most once per attempt.
func (t *TestScreen) finalize() tea.Cmd {
	if t.finalized {
		return nil
	}
	t.finalized = true

	report := assessment.BuildReport(t.questions, t.answers, t.profile)
	duration := testDurationSecs - t.remaining

	next := results.New(t.gateway, t.eventRepo, t.homeFactory, report, t.attemptID, duration)

	return tea.Batch(
		t.recordEnd(report, duration),
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		},
	)
}

// recordStart appends the attempt-start event.
func (t *TestScreen) recordStart() tea.Cmd {
	if t.eventRepo == nil {
		return nil
	}
	data := store.AttemptEventData{
		AttemptID:       t.attemptID,
		Action:          "start",
		CandidateID:     t.userID,
		CandidateName:   t.candidateName(),
		AptitudeLevel:   string(t.choice.Aptitude),
		ReasoningLevel:  string(t.choice.Reasoning),
		CodingLevel:     string(t.choice.Coding),
		QuestionsServed: len(t.questions),
	}
	return func() tea.Msg {
		return persistedMsg{Err: t.eventRepo.AppendAttemptEvent(context.Background(), data)}
	}
}

// recordEnd appends the attempt-end event and one event per answer.
func (t *TestScreen) recordEnd(report *assessment.Report, durationSecs int) tea.Cmd {
	if t.eventRepo == nil {
		return nil
	}
	end := store.AttemptEventData{
		AttemptID:       t.attemptID,
		Action:          "end",
		CandidateID:     t.userID,
		CandidateName:   t.candidateName(),
		AptitudeLevel:   string(t.choice.Aptitude),
		ReasoningLevel:  string(t.choice.Reasoning),
		CodingLevel:     string(t.choice.Coding),
		QuestionsServed: report.Totals.TotalQuestions,
		CorrectAnswers:  report.Totals.Overall,
		AccuracyPct:     report.Behavior.Accuracy,
		Consistency:     report.Behavior.Consistency,
		DurationSecs:    durationSecs,
	}

	questions := t.questions
	answers := report.Answers
	attemptID := t.attemptID

	return func() tea.Msg {
		ctx := context.Background()
		if err := t.eventRepo.AppendAttemptEvent(ctx, end); err != nil {
			return persistedMsg{Err: err}
		}
		for i, a := range answers {
			data := store.AnswerEventData{
				AttemptID:       attemptID,
				QuestionID:      questions[i].ID,
				Domain:          string(a.Domain),
				Difficulty:      string(a.Difficulty),
				QuestionText:    a.Question,
				CorrectAnswer:   a.Correct,
				CandidateAnswer: a.Selected,
				Correct:         a.IsCorrect,
			}
			if err := t.eventRepo.AppendAnswerEvent(ctx, data); err != nil {
				return persistedMsg{Err: err}
			}
		}
		return persistedMsg{}
	}
}

func (t *TestScreen) candidateName() string {
	if t.profile == nil {
		return ""
	}
	return t.profile.Name
}
