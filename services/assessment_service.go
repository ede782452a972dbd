package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ManasaYK17/MindPulse-AI/models"
	"github.com/ManasaYK17/MindPulse-AI/repository"
	"github.com/ManasaYK17/MindPulse-AI/session"
)

// FlowStage tags the assessment flow state held in session storage.
type FlowStage string

const (
	StageIntro    FlowStage = "intro"
	StageQuestion FlowStage = "question"
)

// flowState is the per-user assessment progress. It is created on first
// entry to the flow, mutated on each submission, and deleted once results
// are computed. State is read-then-written per request with no locking: two
// near-simultaneous submissions from the same user can double-append an
// answer. The flow accepts that race rather than serializing requests.
type flowState struct {
	Stage   FlowStage `json:"stage"`
	Index   int       `json:"index"`
	Answers []int     `json:"answers"`
}

// StepView is what the flow presents for the current state.
type StepView struct {
	Stage           FlowStage                  `json:"stage"`
	Question        *models.AssessmentQuestion `json:"question,omitempty"`
	Number          int                        `json:"number,omitempty"` // 1-based position of the shown question
	Total           int                        `json:"total"`
	AwaitingResults bool                       `json:"awaiting_results"` // all questions answered, results not yet requested
	AssistReply     string                     `json:"assist_reply,omitempty"`
}

// ErrAssessmentNotFinished is returned when results are requested before
// every question has been answered.
var ErrAssessmentNotFinished = errors.New("assessment is not finished yet")

// AssessmentService walks a user through the ordered PHQ-9/GAD-7 question
// list, collects answers, and computes the scored result.
type AssessmentService interface {
	// CurrentStep returns the view for the user's current flow state,
	// creating the intro state on first entry.
	CurrentStep(ctx context.Context, userID uint) (*StepView, error)
	// Submit feeds one form submission into the flow. While the intro is
	// showing, any input starts the questions. A digit in {0,1,2,3} answers
	// the current question and advances. Other digit-only or empty input is
	// a no-op. Any other text is routed to the AI assist side-channel and
	// never mutates the flow state.
	Submit(ctx context.Context, userID uint, input string) (*StepView, error)
	// FinishAssessment handles the explicit "view results" signal: it
	// computes both sub-scores, classifies risk, stores the result in the
	// session, and clears the flow state.
	FinishAssessment(ctx context.Context, userID uint) (*models.ScoreResult, error)
	// ConsumeResult returns the stored result and deletes it (read-once).
	// It returns (nil, nil) when no result is pending.
	ConsumeResult(ctx context.Context, userID uint) (*models.ScoreResult, error)
}

type assessmentService struct {
	questions repository.QuestionRepository
	sessions  session.Store
	assist    AssistService
}

// NewAssessmentService creates a new instance of AssessmentService.
func NewAssessmentService(questions repository.QuestionRepository, sessions session.Store, assist AssistService) AssessmentService {
	return &assessmentService{questions: questions, sessions: sessions, assist: assist}
}

func flowKey(userID uint) string   { return fmt.Sprintf("assessment:flow:%d", userID) }
func resultKey(userID uint) string { return fmt.Sprintf("assessment:result:%d", userID) }

func (s *assessmentService) loadState(ctx context.Context, userID uint) (*flowState, bool, error) {
	var state flowState
	found, err := s.sessions.Get(ctx, flowKey(userID), &state)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return &flowState{Stage: StageIntro, Answers: []int{}}, false, nil
	}
	return &state, true, nil
}

// buildView renders the flow state against the current question list. When
// the index has run past the end, the final question is presented again with
// the results affordance; the machine never auto-advances past it.
func buildView(state *flowState, questions []models.AssessmentQuestion) *StepView {
	total := len(questions)
	view := &StepView{Stage: state.Stage, Total: total}
	if state.Stage == StageIntro {
		return view
	}
	if total == 0 {
		// Empty question store: nothing to answer, results immediately available.
		view.AwaitingResults = true
		return view
	}
	idx := state.Index
	if idx >= total {
		idx = total - 1
		view.AwaitingResults = true
	}
	q := questions[idx]
	view.Question = &q
	view.Number = idx + 1
	return view
}

func (s *assessmentService) CurrentStep(ctx context.Context, userID uint) (*StepView, error) {
	questions, err := s.questions.ListQuestions()
	if err != nil {
		return nil, err
	}
	state, found, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		if err := s.sessions.Set(ctx, flowKey(userID), state); err != nil {
			return nil, err
		}
		log.Printf("INFO: [AssessmentService] Started new assessment flow for user %d (%d questions).", userID, len(questions))
	}
	return buildView(state, questions), nil
}

func (s *assessmentService) Submit(ctx context.Context, userID uint, input string) (*StepView, error) {
	questions, err := s.questions.ListQuestions()
	if err != nil {
		return nil, err
	}
	state, _, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}

	if state.Stage == StageIntro {
		// Any submission while the intro shows starts the questions; the
		// submitted content is discarded.
		state.Stage = StageQuestion
		state.Index = 0
		state.Answers = []int{}
		if err := s.sessions.Set(ctx, flowKey(userID), state); err != nil {
			return nil, err
		}
		return buildView(state, questions), nil
	}

	total := len(questions)
	trimmed := strings.TrimSpace(input)
	switch {
	case isValidAnswer(trimmed) && state.Index < total:
		state.Answers = append(state.Answers, int(trimmed[0]-'0'))
		state.Index++
		if err := s.sessions.Set(ctx, flowKey(userID), state); err != nil {
			return nil, err
		}
		return buildView(state, questions), nil

	case trimmed == "" || isAllDigits(trimmed):
		// Missing or out-of-range numeric input: re-render the same
		// question, no state change.
		return buildView(state, questions), nil

	default:
		// Free text goes to the AI assist side-channel. Observation only:
		// index and answers must never change on this branch.
		view := buildView(state, questions)
		if view.Question == nil {
			return view, nil
		}
		prompt := fmt.Sprintf(
			"A student is taking a mental health assessment. The current question is: %q. The student asks: %q. Please answer as a supportive mental health assistant.",
			view.Question.Text, trimmed,
		)
		view.AssistReply = s.assist.Ask(ctx, prompt, "mental health assistant")
		return view, nil
	}
}

func (s *assessmentService) FinishAssessment(ctx context.Context, userID uint) (*models.ScoreResult, error) {
	questions, err := s.questions.ListQuestions()
	if err != nil {
		return nil, err
	}
	state, found, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found || state.Stage == StageIntro || state.Index < len(questions) {
		return nil, ErrAssessmentNotFinished
	}

	// Sub-scores are derived by filtering questions per category, so an
	// uneven category split in the store can never misalign the scores.
	var phq9, gad7 int
	for i, q := range questions {
		if i >= len(state.Answers) {
			break
		}
		switch q.Category {
		case models.CategoryPHQ9:
			phq9 += state.Answers[i]
		case models.CategoryGAD7:
			gad7 += state.Answers[i]
		}
	}

	result := &models.ScoreResult{
		PHQ9Score: phq9,
		GAD7Score: gad7,
		RiskLevel: ClassifyRisk(phq9, gad7),
	}
	if err := s.sessions.Set(ctx, resultKey(userID), result); err != nil {
		return nil, err
	}
	if err := s.sessions.Delete(ctx, flowKey(userID)); err != nil {
		return nil, err
	}
	log.Printf("INFO: [AssessmentService] User %d finished assessment: PHQ-9=%d, GAD-7=%d, risk=%s.", userID, phq9, gad7, result.RiskLevel)
	return result, nil
}

func (s *assessmentService) ConsumeResult(ctx context.Context, userID uint) (*models.ScoreResult, error) {
	var result models.ScoreResult
	found, err := s.sessions.Get(ctx, resultKey(userID), &result)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if err := s.sessions.Delete(ctx, resultKey(userID)); err != nil {
		return nil, err
	}
	return &result, nil
}

// isValidAnswer reports whether the input is one of the four valid answer
// values for a PHQ-9/GAD-7 item.
func isValidAnswer(s string) bool {
	return s == "0" || s == "1" || s == "2" || s == "3"
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
