package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/talentgrid/interview-management-api/internal/constants"
	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/repository"
	"github.com/talentgrid/interview-management-api/internal/scoring"
	"gorm.io/gorm"
)

var (
	ErrInterviewNotFound         = errors.New("interview not found")
	ErrInterviewQuestionNotFound = errors.New("interview question not found")
	ErrCandidateNotFound         = errors.New("candidate not found")
	ErrInvalidTransition         = errors.New("invalid interview status transition")
	ErrInterviewTerminal         = errors.New("interview is already completed or cancelled")
	ErrScoreOutOfRange           = errors.New("score must be between 0 and 5")
	ErrInvalidDecision           = errors.New("decision must be hired or rejected")
	ErrTitleRequired             = errors.New("title is required")
)

// InterviewService handles the interview aggregate: lifecycle transitions,
// attached question rows and score aggregation.
type InterviewService struct {
	interviewRepo repository.InterviewRepository
	candidateRepo repository.CandidateRepository
	questionRepo  repository.QuestionRepository
}

// NewInterviewService creates a new InterviewService.
func NewInterviewService(interviewRepo repository.InterviewRepository, candidateRepo repository.CandidateRepository, questionRepo repository.QuestionRepository) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
		candidateRepo: candidateRepo,
		questionRepo:  questionRepo,
	}
}

// CreateInterviewInput represents input for scheduling an interview.
type CreateInterviewInput struct {
	Title          string
	CandidateID    uint64
	Date           time.Time
	AssigneeID     *uint64
	Notes          string
	CreatedByAdmin bool
}

// CreateInterview schedules a new interview for an existing candidate. All
// score fields start nil.
func (s *InterviewService) CreateInterview(input CreateInterviewInput) (*models.Interview, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	if _, err := s.candidateRepo.FindByID(input.CandidateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	interview := &models.Interview{
		Title:          input.Title,
		CandidateID:    input.CandidateID,
		Date:           input.Date,
		Status:         models.InterviewStatusScheduled,
		AssigneeID:     input.AssigneeID,
		Notes:          input.Notes,
		CreatedByAdmin: input.CreatedByAdmin,
	}

	if err := s.interviewRepo.Create(interview); err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	return interview, nil
}

// ListInterviewsFor returns the interviews visible to the given user.
// Admin, HR and director see everything; a technical interviewer sees only
// interviews assigned to them; any other role gets an empty list.
func (s *InterviewService) ListInterviewsFor(user *models.User) ([]models.Interview, error) {
	var filter repository.InterviewFilter

	switch user.Role {
	case models.RoleAdmin, models.RoleHR, models.RoleDirector:
		// no constraint
	case models.RoleTechnicalInterviewer:
		filter.AssigneeID = &user.ID
	default:
		return []models.Interview{}, nil
	}

	interviews, err := s.interviewRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

// GetInterview retrieves an interview with its candidate, assignee and
// question rows.
func (s *InterviewService) GetInterview(id uint64) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(id, "Candidate", "Assignee", "Questions", "Questions.Question")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}
	return interview, nil
}

// UpdateInterviewInput represents a partial edit of interview metadata.
type UpdateInterviewInput struct {
	Title      *string
	Date       *time.Time
	AssigneeID *uint64
	Notes      *string
}

// UpdateInterview applies a partial metadata edit. Status and scores are
// changed only through their dedicated flows.
func (s *InterviewService) UpdateInterview(id uint64, input UpdateInterviewInput) (*models.Interview, error) {
	interview, err := s.GetInterview(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		interview.Title = *input.Title
	}
	if input.Date != nil {
		interview.Date = *input.Date
	}
	if input.AssigneeID != nil {
		interview.AssigneeID = input.AssigneeID
	}
	if input.Notes != nil {
		interview.Notes = *input.Notes
	}

	if err := s.interviewRepo.Update(interview); err != nil {
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}
	return interview, nil
}

// StartInterview moves a scheduled interview to in_progress.
func (s *InterviewService) StartInterview(id uint64) (*models.Interview, error) {
	return s.transition(id, models.InterviewStatusInProgress)
}

// CancelInterview cancels a non-terminal interview. Scores are left as-is.
func (s *InterviewService) CancelInterview(id uint64) (*models.Interview, error) {
	return s.transition(id, models.InterviewStatusCancelled)
}

func (s *InterviewService) transition(id uint64, next models.InterviewStatus) (*models.Interview, error) {
	interview, err := s.GetInterview(id)
	if err != nil {
		return nil, err
	}

	if !interview.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	interview.Status = next
	if err := s.interviewRepo.Update(interview); err != nil {
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}
	return interview, nil
}

// DeleteInterview deletes an interview and its question rows.
func (s *InterviewService) DeleteInterview(id uint64) error {
	if _, err := s.GetInterview(id); err != nil {
		return err
	}
	if err := s.interviewRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
	}
	return nil
}

// AttachQuestion attaches a bank question to a non-terminal interview.
func (s *InterviewService) AttachQuestion(interviewID, questionID uint64) (*models.InterviewQuestion, error) {
	interview, err := s.GetInterview(interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Status.IsTerminal() {
		return nil, ErrInterviewTerminal
	}

	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	iq := &models.InterviewQuestion{
		InterviewID: interviewID,
		QuestionID:  questionID,
	}
	if err := s.interviewRepo.CreateQuestion(iq); err != nil {
		return nil, fmt.Errorf("failed to attach question: %w", err)
	}
	return iq, nil
}

// ListInterviewQuestions returns the interview's question rows.
func (s *InterviewService) ListInterviewQuestions(interviewID uint64) ([]models.InterviewQuestion, error) {
	if _, err := s.GetInterview(interviewID); err != nil {
		return nil, err
	}
	questions, err := s.interviewRepo.ListQuestions(interviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interview questions: %w", err)
	}
	return questions, nil
}

// GetInterviewQuestion retrieves one question row with its parent
// interview and question preloaded.
func (s *InterviewService) GetInterviewQuestion(id uint64) (*models.InterviewQuestion, error) {
	iq, err := s.interviewRepo.FindQuestionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find interview question: %w", err)
	}
	return iq, nil
}

// UpdateInterviewQuestionInput represents a partial edit of a question row.
type UpdateInterviewQuestionInput struct {
	Score   *int
	Notes   *string
	Skipped *bool
}

// UpdateInterviewQuestion applies a partial edit to one question row. This
// is the incremental scoring path: it never recomputes the parent
// interview's aggregate. Finalization happens once, via GenerateSummary.
func (s *InterviewService) UpdateInterviewQuestion(id uint64, input UpdateInterviewQuestionInput) (*models.InterviewQuestion, error) {
	iq, err := s.interviewRepo.FindQuestionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find interview question: %w", err)
	}

	if input.Score != nil {
		if *input.Score < constants.MinScore || *input.Score > constants.MaxScore {
			return nil, ErrScoreOutOfRange
		}
		iq.Score = input.Score
	}
	if input.Notes != nil {
		iq.Notes = *input.Notes
	}
	if input.Skipped != nil {
		iq.Skipped = *input.Skipped
	}

	if err := s.interviewRepo.UpdateQuestion(iq); err != nil {
		return nil, fmt.Errorf("failed to update interview question: %w", err)
	}
	return iq, nil
}

// DeleteInterviewQuestion detaches a question row from its interview.
func (s *InterviewService) DeleteInterviewQuestion(id uint64) error {
	if _, err := s.interviewRepo.FindQuestionByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInterviewQuestionNotFound
		}
		return fmt.Errorf("failed to find interview question: %w", err)
	}
	if err := s.interviewRepo.DeleteQuestion(id); err != nil {
		return fmt.Errorf("failed to delete interview question: %w", err)
	}
	return nil
}

// GenerateSummary is the batch scoring path. It recomputes the per-skill,
// overall and recommendation fields from the current scored, non-skipped
// question set, persists them and marks the interview completed. With no
// scoreable questions the interview is returned unchanged; that is a
// valid no-op, not an error. The computation is a pure function of the
// loaded snapshot, so repeated calls are idempotent.
func (s *InterviewService) GenerateSummary(interviewID uint64) (*models.Interview, error) {
	interview, err := s.GetInterview(interviewID)
	if err != nil {
		return nil, err
	}

	// Cancelled is terminal; a summary must not resurrect it as completed.
	if interview.Status == models.InterviewStatusCancelled {
		return nil, ErrInvalidTransition
	}

	rows, err := s.interviewRepo.ListQuestions(interviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to load interview questions: %w", err)
	}

	questions := make([]scoring.QuestionScore, len(rows))
	for i, row := range rows {
		qs := scoring.QuestionScore{
			Score:   row.Score,
			Skipped: row.Skipped,
		}
		// A deleted parent question leaves the row orphaned; it then
		// evaluates no skills and cannot influence any subset.
		if row.Question != nil {
			qs.EvaluatesTechnical = row.Question.EvaluatesTechnical
			qs.EvaluatesProblemSolving = row.Question.EvaluatesProblemSolving
			qs.EvaluatesCommunication = row.Question.EvaluatesCommunication
		}
		questions[i] = qs
	}

	summary, ok := scoring.Summarize(questions)
	if !ok {
		return interview, nil
	}

	interview.TechnicalScore = summary.Technical
	interview.ProblemSolvingScore = summary.ProblemSolving
	interview.CommunicationScore = summary.Communication
	interview.OverallScore = summary.Overall
	interview.Recommendation = summary.Recommendation
	interview.Status = models.InterviewStatusCompleted

	if err := s.interviewRepo.Update(interview); err != nil {
		return nil, fmt.Errorf("failed to persist summary: %w", err)
	}
	return interview, nil
}

// DecideInput represents the HR hire/reject decision on an interview.
type DecideInput struct {
	Hired   bool
	HRNotes string
}

// Decide records the HR decision: it sets hrNotes, completes an
// in-progress interview and moves the candidate to hired or rejected.
func (s *InterviewService) Decide(interviewID uint64, input DecideInput) (*models.Interview, error) {
	interview, err := s.GetInterview(interviewID)
	if err != nil {
		return nil, err
	}

	switch interview.Status {
	case models.InterviewStatusInProgress, models.InterviewStatusCompleted:
		// decidable
	default:
		return nil, ErrInvalidTransition
	}

	interview.HRNotes = input.HRNotes
	interview.Status = models.InterviewStatusCompleted
	if err := s.interviewRepo.Update(interview); err != nil {
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}

	candidate, err := s.candidateRepo.FindByID(interview.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	if input.Hired {
		candidate.Status = models.CandidateStatusHired
	} else {
		candidate.Status = models.CandidateStatusRejected
	}
	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}

	return interview, nil
}
