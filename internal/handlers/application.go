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
)

// ApplicationHandler coordinates the public job board and the HR side of
// application handling.
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// ListOpenPositions is the public board: open positions only.
func (h *ApplicationHandler) ListOpenPositions(c *gin.Context) {
	positions, err := h.applicationService.ListPositions(true)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"positions": dto.ToPositionDTOs(positions)})
}

// ListPositions returns all positions for HR, open or closed.
func (h *ApplicationHandler) ListPositions(c *gin.Context) {
	positions, err := h.applicationService.ListPositions(false)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"positions": dto.ToPositionDTOs(positions)})
}

// CreatePosition posts a new open position.
func (h *ApplicationHandler) CreatePosition(c *gin.Context) {
	type CreatePositionRequest struct {
		Title        string `json:"title" binding:"required"`
		Description  string `json:"description"`
		Requirements string `json:"requirements"`
	}

	var req CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	position, err := h.applicationService.CreatePosition(services.CreatePositionInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
	})
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPositionDTO(*position))
}

// UpdatePosition edits or closes a position.
func (h *ApplicationHandler) UpdatePosition(c *gin.Context) {
	type UpdatePositionRequest struct {
		Title        *string                `json:"title"`
		Description  *string                `json:"description"`
		Requirements *string                `json:"requirements"`
		Status       *models.PositionStatus `json:"status"`
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid position ID")
		return
	}

	var req UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	position, err := h.applicationService.UpdatePosition(id, services.UpdatePositionInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       req.Status,
	})
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPositionDTO(*position))
}

// DeletePosition removes a position from the board.
func (h *ApplicationHandler) DeletePosition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid position ID")
		return
	}

	if err := h.applicationService.DeletePosition(id); err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Position deleted successfully",
	})
}

// SubmitApplication is the public intake endpoint. It needs no session.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	type SubmitApplicationRequest struct {
		PositionID  uint64 `json:"position_id" binding:"required"`
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Phone       string `json:"phone"`
		CoverLetter string `json:"cover_letter"`
		ResumePath  string `json:"resume_path"`
	}

	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	application, err := h.applicationService.SubmitApplication(services.SubmitApplicationInput{
		PositionID:  req.PositionID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		ResumePath:  req.ResumePath,
	})
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToApplicationDTO(*application))
}

// ListApplications returns all applications for HR review.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.applicationService.ListApplications()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": dto.ToApplicationDTOs(applications)})
}

// GetApplication returns one application.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid application ID")
		return
	}

	application, err := h.applicationService.GetApplication(id)
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTO(*application))
}

// AcceptApplication moves the candidate into the interview pipeline.
func (h *ApplicationHandler) AcceptApplication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid application ID")
		return
	}

	application, err := h.applicationService.AcceptApplication(id)
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTO(*application))
}

// RejectApplication declines the application; the candidate re-opens as new.
func (h *ApplicationHandler) RejectApplication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid application ID")
		return
	}

	application, err := h.applicationService.RejectApplication(id)
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTO(*application))
}

func respondApplicationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPositionNotFound),
		errors.Is(err, services.ErrApplicationNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrCandidateNameRequired),
		errors.Is(err, services.ErrCandidateEmailRequired),
		errors.Is(err, services.ErrPositionClosed):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrApplicationDecided):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
