package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/talentgrid/interview-management-api/internal/dto"
	apierrors "github.com/talentgrid/interview-management-api/internal/errors"
	"github.com/talentgrid/interview-management-api/internal/middleware"
	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/scoring"
	"github.com/talentgrid/interview-management-api/internal/services"
)

// InterviewHandler coordinates interview HTTP handlers.
type InterviewHandler struct {
	interviewService *services.InterviewService
}

// NewInterviewHandler creates a new InterviewHandler.
func NewInterviewHandler(interviewService *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

// ListInterviews returns the interviews visible to the current user:
// admin/hr/director see all, a technical interviewer sees only their own
// assignments, anything else gets an empty list.
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	role, exists := middleware.GetUserRole(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	interviews, err := h.interviewService.ListInterviewsFor(&models.User{ID: userID, Role: role})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"interviews": dto.ToInterviewDTOs(interviews)})
}

// CreateInterview schedules a new interview.
func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	type CreateInterviewRequest struct {
		Title       string    `json:"title" binding:"required"`
		CandidateID uint64    `json:"candidate_id" binding:"required"`
		Date        time.Time `json:"date" binding:"required"`
		AssigneeID  *uint64   `json:"assignee_id"`
		Notes       string    `json:"notes"`
	}

	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	role, _ := middleware.GetUserRole(c)

	interview, err := h.interviewService.CreateInterview(services.CreateInterviewInput{
		Title:          req.Title,
		CandidateID:    req.CandidateID,
		Date:           req.Date,
		AssigneeID:     req.AssigneeID,
		Notes:          req.Notes,
		CreatedByAdmin: role == models.RoleAdmin,
	})
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInterviewDTO(*interview))
}

// GetInterview returns one interview with its question rows.
func (h *InterviewHandler) GetInterview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interview ID")
		return
	}

	interview, err := h.interviewService.GetInterview(id)
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInterviewDTO(*interview))
}

// UpdateInterview applies a partial metadata edit.
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	type UpdateInterviewRequest struct {
		Title      *string    `json:"title"`
		Date       *time.Time `json:"date"`
		AssigneeID *uint64    `json:"assignee_id"`
		Notes      *string    `json:"notes"`
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interview ID")
		return
	}

	var req UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	interview, err := h.interviewService.UpdateInterview(id, services.UpdateInterviewInput{
		Title:      req.Title,
		Date:       req.Date,
		AssigneeID: req.AssigneeID,
		Notes:      req.Notes,
	})
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInterviewDTO(*interview))
}

// DeleteInterview deletes an interview and its question rows.
func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interview ID")
		return
	}

	if err := h.interviewService.DeleteInterview(id); err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Interview deleted successfully",
	})
}

// StartInterview moves a scheduled interview to in_progress.
func (h *InterviewHandler) StartInterview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interview ID")
		return
	}

	interview, err := h.interviewService.StartInterview(id)
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInterviewDTO(*interview))
}

// CancelInterview cancels a non-terminal interview.
func (h *InterviewHandler) CancelInterview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interview ID")
		return
	}

	interview, err := h.interviewService.CancelInterview(id)
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInterviewDTO(*interview))
}

// AttachQuestion attaches a bank question to the interview.
func (h *InterviewHandler) AttachQuestion(c *gin.Context) {
	type AttachQuestionRequest struct {
		QuestionID uint64 `json:"question_id" binding:"required"`
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interview ID")
		return
	}

	var req AttachQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	iq, err := h.interviewService.AttachQuestion(id, req.QuestionID)
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInterviewQuestionDTO(*iq))
}

// ListInterviewQuestions returns the interview's question rows.
func (h *InterviewHandler) ListInterviewQuestions(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interview ID")
		return
	}

	rows, err := h.interviewService.ListInterviewQuestions(id)
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": dto.ToInterviewQuestionDTOs(rows)})
}

// UpdateInterviewQuestion is the incremental scoring path: a partial edit
// of one question row that never touches the parent interview's aggregate.
func (h *InterviewHandler) UpdateInterviewQuestion(c *gin.Context) {
	type UpdateInterviewQuestionRequest struct {
		Score   *int    `json:"score"`
		Notes   *string `json:"notes"`
		Skipped *bool   `json:"skipped"`
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interview question ID")
		return
	}

	if !h.canTouchQuestionRow(c, id) {
		return
	}

	var req UpdateInterviewQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	iq, err := h.interviewService.UpdateInterviewQuestion(id, services.UpdateInterviewQuestionInput{
		Score:   req.Score,
		Notes:   req.Notes,
		Skipped: req.Skipped,
	})
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInterviewQuestionDTO(*iq))
}

// DeleteInterviewQuestion detaches a question row.
func (h *InterviewHandler) DeleteInterviewQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interview question ID")
		return
	}

	if !h.canTouchQuestionRow(c, id) {
		return
	}

	if err := h.interviewService.DeleteInterviewQuestion(id); err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Interview question removed successfully",
	})
}

// canTouchQuestionRow enforces the per-row authorization that the route
// group cannot express: a technical interviewer may only edit rows of
// interviews assigned to them. The response is already written on failure.
func (h *InterviewHandler) canTouchQuestionRow(c *gin.Context, id uint64) bool {
	role, exists := middleware.GetUserRole(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return false
	}
	if role != models.RoleTechnicalInterviewer {
		return true
	}

	userID, _ := middleware.GetUserID(c)
	iq, err := h.interviewService.GetInterviewQuestion(id)
	if err != nil {
		respondInterviewError(c, err)
		return false
	}
	if iq.Interview.AssigneeID == nil || *iq.Interview.AssigneeID != userID {
		apierrors.Forbidden(c, "")
		return false
	}
	return true
}

// GenerateSummary runs the batch aggregation path and returns the
// finalized interview. With nothing scored the interview comes back
// unchanged.
func (h *InterviewHandler) GenerateSummary(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interview ID")
		return
	}

	interview, err := h.interviewService.GenerateSummary(id)
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInterviewDTO(*interview))
}

// PreviewScore echoes the client-side running average so the SPA and any
// other consumer share one definition of the preview. It deliberately does
// not reuse the batch aggregation.
func (h *InterviewHandler) PreviewScore(c *gin.Context) {
	type PreviewRequest struct {
		Technical      int `json:"technical"`
		ProblemSolving int `json:"problem_solving"`
		Communication  int `json:"communication"`
	}

	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	c.JSON(http.StatusOK, dto.ScorePreviewResponse{
		PreviewOverall: scoring.PreviewOverall(req.Technical, req.ProblemSolving, req.Communication),
	})
}

// Decide records the HR hire/reject decision.
func (h *InterviewHandler) Decide(c *gin.Context) {
	type DecideRequest struct {
		Decision string `json:"decision" binding:"required"`
		HRNotes  string `json:"hr_notes"`
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interview ID")
		return
	}

	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var hired bool
	switch req.Decision {
	case "hired":
		hired = true
	case "rejected":
		hired = false
	default:
		apierrors.BadRequest(c, services.ErrInvalidDecision.Error())
		return
	}

	interview, err := h.interviewService.Decide(id, services.DecideInput{
		Hired:   hired,
		HRNotes: req.HRNotes,
	})
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInterviewDTO(*interview))
}

func respondInterviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInterviewNotFound),
		errors.Is(err, services.ErrInterviewQuestionNotFound),
		errors.Is(err, services.ErrCandidateNotFound),
		errors.Is(err, services.ErrQuestionNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInterviewTerminal),
		errors.Is(err, services.ErrScoreOutOfRange),
		errors.Is(err, services.ErrInvalidDecision),
		errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
