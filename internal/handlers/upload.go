package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/talentgrid/interview-management-api/internal/constants"
	apierrors "github.com/talentgrid/interview-management-api/internal/errors"
)

// UploadHandler stores resume files. The server never parses their
// contents; the suggested candidate name in the response comes from the
// filename alone and is best-effort cosmetic.
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{
		uploadDir: uploadDir,
	}
}

var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// UploadResume accepts a multipart resume upload (pdf/doc/docx, up to
// 10MB), stores it under a random name and returns the stored path.
func (h *UploadHandler) UploadResume(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		apierrors.BadRequest(c, "resume file is required")
		return
	}

	if file.Size > constants.MaxResumeSizeBytes {
		apierrors.BadRequest(c, "resume must be 10MB or smaller")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedResumeExtensions[ext] {
		apierrors.BadRequest(c, "resume must be a PDF, DOC or DOCX file")
		return
	}

	storedName := uuid.NewString() + ext
	storedPath := filepath.Join(h.uploadDir, storedName)
	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		apierrors.InternalError(c, "Failed to store resume")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"path":           storedPath,
		"suggested_name": suggestNameFromFilename(file.Filename),
	})
}

// suggestNameFromFilename guesses a candidate name from a resume filename
// like "jane_doe_resume.pdf". Pure string heuristics, nothing more.
func suggestNameFromFilename(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)

	words := strings.Fields(base)
	var kept []string
	for _, word := range words {
		switch strings.ToLower(word) {
		case "resume", "cv", "curriculum", "vitae", "final", "updated":
			continue
		}
		first, size := utf8.DecodeRuneInString(word)
		kept = append(kept, string(unicode.ToUpper(first))+strings.ToLower(word[size:]))
	}
	return strings.Join(kept, " ")
}
