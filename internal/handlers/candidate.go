package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/talentgrid/interview-management-api/internal/dto"
	apierrors "github.com/talentgrid/interview-management-api/internal/errors"
	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/services"
	"github.com/talentgrid/interview-management-api/internal/utils"
)

// CandidateHandler coordinates candidate HTTP handlers.
type CandidateHandler struct {
	candidateService *services.CandidateService
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(candidateService *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		candidateService: candidateService,
	}
}

// ListCandidates returns candidates with pagination.
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	candidates, total, err := h.candidateService.ListCandidates(params.Offset, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateListResponse(candidates, params.Page, params.Limit, total))
}

// GetCandidate returns one candidate.
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid candidate ID")
		return
	}

	candidate, err := h.candidateService.GetCandidate(id)
	if err != nil {
		respondCandidateError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateDTO(*candidate))
}

// CreateCandidate creates a candidate directly (HR flow, as opposed to the
// public application intake).
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	type CreateCandidateRequest struct {
		Name       string `json:"name" binding:"required"`
		Email      string `json:"email" binding:"required,email"`
		Phone      string `json:"phone"`
		Notes      string `json:"notes"`
		ResumePath string `json:"resume_path"`
	}

	var req CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	candidate, err := h.candidateService.CreateCandidate(services.CreateCandidateInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Notes:      req.Notes,
		ResumePath: req.ResumePath,
	})
	if err != nil {
		respondCandidateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCandidateDTO(*candidate))
}

// UpdateCandidate applies a partial edit.
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	type UpdateCandidateRequest struct {
		Name       *string                 `json:"name"`
		Email      *string                 `json:"email"`
		Phone      *string                 `json:"phone"`
		Notes      *string                 `json:"notes"`
		ResumePath *string                 `json:"resume_path"`
		Status     *models.CandidateStatus `json:"status"`
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid candidate ID")
		return
	}

	var req UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	candidate, err := h.candidateService.UpdateCandidate(id, services.UpdateCandidateInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Notes:      req.Notes,
		ResumePath: req.ResumePath,
		Status:     req.Status,
	})
	if err != nil {
		respondCandidateError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateDTO(*candidate))
}

// DeleteCandidate removes a candidate.
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid candidate ID")
		return
	}

	if err := h.candidateService.DeleteCandidate(id); err != nil {
		respondCandidateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Candidate deleted successfully",
	})
}

func respondCandidateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCandidateNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCandidateNameRequired),
		errors.Is(err, services.ErrCandidateEmailRequired),
		errors.Is(err, services.ErrInvalidCandidateStatus):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
