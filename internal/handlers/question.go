package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/talentgrid/interview-management-api/internal/dto"
	apierrors "github.com/talentgrid/interview-management-api/internal/errors"
	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/repository"
	"github.com/talentgrid/interview-management-api/internal/services"
)

// QuestionHandler coordinates question bank HTTP handlers.
type QuestionHandler struct {
	questionService *services.QuestionService
	aiService       *services.AIService
}

// NewQuestionHandler creates a new QuestionHandler. aiService may be nil
// when no API key is configured.
func NewQuestionHandler(questionService *services.QuestionService, aiService *services.AIService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		aiService:       aiService,
	}
}

func questionFilterFromQuery(c *gin.Context) (repository.QuestionFilter, error) {
	var filter repository.QuestionFilter

	for _, q := range []struct {
		name string
		dest **uint64
	}{
		{"technology_id", &filter.TechnologyID},
		{"experience_level_id", &filter.ExperienceLevelID},
		{"question_type_id", &filter.QuestionTypeID},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, errors.New("invalid " + q.name)
		}
		*q.dest = &id
	}

	return filter, nil
}

// ListQuestions returns questions matching the query filters.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	filter, err := questionFilterFromQuery(c)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	questions, err := h.questionService.ListQuestions(filter)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": dto.ToQuestionDTOs(questions)})
}

// GetRandomQuestions draws a random unique subset of the filtered bank.
func (h *QuestionHandler) GetRandomQuestions(c *gin.Context) {
	filter, err := questionFilterFromQuery(c)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	count := 0
	if raw := c.Query("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 0 {
			apierrors.BadRequest(c, "invalid count")
			return
		}
	}

	questions, err := h.questionService.GetRandomQuestions(services.RandomQuestionsInput{
		Filter: filter,
		Count:  count,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": dto.ToQuestionDTOs(questions)})
}

// GetQuestion returns one bank question.
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid question ID")
		return
	}

	question, err := h.questionService.GetQuestion(id)
	if err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionDTO(*question))
}

// CreateQuestion adds a question to the bank.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	type CreateQuestionRequest struct {
		Title                   string `json:"title" binding:"required"`
		Content                 string `json:"content" binding:"required"`
		Answer                  string `json:"answer"`
		TechnologyID            uint64 `json:"technology_id" binding:"required"`
		ExperienceLevelID       uint64 `json:"experience_level_id" binding:"required"`
		QuestionTypeID          uint64 `json:"question_type_id" binding:"required"`
		EvaluatesTechnical      bool   `json:"evaluates_technical"`
		EvaluatesProblemSolving bool   `json:"evaluates_problem_solving"`
		EvaluatesCommunication  bool   `json:"evaluates_communication"`
		IsCustom                bool   `json:"is_custom"`
	}

	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	question := &models.Question{
		Title:                   req.Title,
		Content:                 req.Content,
		Answer:                  req.Answer,
		TechnologyID:            req.TechnologyID,
		ExperienceLevelID:       req.ExperienceLevelID,
		QuestionTypeID:          req.QuestionTypeID,
		EvaluatesTechnical:      req.EvaluatesTechnical,
		EvaluatesProblemSolving: req.EvaluatesProblemSolving,
		EvaluatesCommunication:  req.EvaluatesCommunication,
		IsCustom:                req.IsCustom,
	}
	if err := h.questionService.CreateQuestion(question); err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuestionDTO(*question))
}

// UpdateQuestion applies a partial edit to a bank question.
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	type UpdateQuestionRequest struct {
		Title                   *string `json:"title"`
		Content                 *string `json:"content"`
		Answer                  *string `json:"answer"`
		TechnologyID            *uint64 `json:"technology_id"`
		ExperienceLevelID       *uint64 `json:"experience_level_id"`
		QuestionTypeID          *uint64 `json:"question_type_id"`
		EvaluatesTechnical      *bool   `json:"evaluates_technical"`
		EvaluatesProblemSolving *bool   `json:"evaluates_problem_solving"`
		EvaluatesCommunication  *bool   `json:"evaluates_communication"`
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid question ID")
		return
	}

	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	question, err := h.questionService.UpdateQuestion(id, services.UpdateQuestionInput{
		Title:                   req.Title,
		Content:                 req.Content,
		Answer:                  req.Answer,
		TechnologyID:            req.TechnologyID,
		ExperienceLevelID:       req.ExperienceLevelID,
		QuestionTypeID:          req.QuestionTypeID,
		EvaluatesTechnical:      req.EvaluatesTechnical,
		EvaluatesProblemSolving: req.EvaluatesProblemSolving,
		EvaluatesCommunication:  req.EvaluatesCommunication,
	})
	if err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionDTO(*question))
}

// DeleteQuestion removes a question. Interview rows that reference it keep
// their dangling reference and drop out of scoring.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid question ID")
		return
	}

	if err := h.questionService.DeleteQuestion(id); err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Question deleted successfully",
	})
}

// ListLookups returns the three reference tables in one response.
func (h *QuestionHandler) ListLookups(c *gin.Context) {
	technologies, err := h.questionService.ListTechnologies()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	levels, err := h.questionService.ListExperienceLevels()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	types, err := h.questionService.ListQuestionTypes()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"technologies":      technologies,
		"experience_levels": levels,
		"question_types":    types,
	})
}

// SuggestQuestions drafts custom questions with the AI service.
func (h *QuestionHandler) SuggestQuestions(c *gin.Context) {
	type SuggestRequest struct {
		Technology string `json:"technology" binding:"required"`
		Level      string `json:"level" binding:"required"`
		Count      int    `json:"count"`
	}

	if h.aiService == nil {
		apierrors.ServiceUnavailable(c, "AI suggestions are not configured")
		return
	}

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.Count <= 0 {
		req.Count = 3
	}

	drafts, err := h.aiService.DraftQuestions(c.Request.Context(), req.Technology, req.Level, req.Count)
	if err != nil {
		apierrors.InternalError(c, "Failed to draft questions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}

func respondQuestionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrQuestionNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrQuestionTitleRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
