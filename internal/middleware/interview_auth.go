package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/talentgrid/interview-management-api/internal/database"
	apierrors "github.com/talentgrid/interview-management-api/internal/errors"
	"github.com/talentgrid/interview-management-api/internal/models"
)

// RequireInterviewAccess gates interview-scoped routes. Admin, HR and
// director reach any interview; a technical interviewer reaches only
// interviews assigned to them. Unknown roles are denied. Must run after
// RequireAuth.
func RequireInterviewAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		interviewIDStr := c.Param("id")
		interviewID, err := strconv.ParseUint(interviewIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid interview ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		role, exists := GetUserRole(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var interview models.Interview
		if err := database.GetDB().First(&interview, interviewID).Error; err != nil {
			apierrors.NotFound(c, "Interview not found")
			c.Abort()
			return
		}

		switch role {
		case models.RoleAdmin, models.RoleHR, models.RoleDirector:
			// full visibility
		case models.RoleTechnicalInterviewer:
			if interview.AssigneeID == nil || *interview.AssigneeID != userID {
				apierrors.Forbidden(c, "")
				c.Abort()
				return
			}
		default:
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
