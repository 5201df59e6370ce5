package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestNameFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"jane_doe_resume.pdf", "Jane Doe"},
		{"john-smith-cv.docx", "John Smith"},
		{"alice.martin.updated.final.pdf", "Alice Martin"},
		{"émile_cv.pdf", "Émile"},
		{"łukasz-nowak-resume.doc", "Łukasz Nowak"},
		{"resume.pdf", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, suggestNameFromFilename(tt.filename), "filename %q", tt.filename)
	}
}
