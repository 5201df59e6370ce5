package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupQuestionService(t *testing.T) (*QuestionService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Technology{},
		&models.ExperienceLevel{},
		&models.QuestionType{},
		&models.Question{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewQuestionService(repository.NewQuestionRepository(db)), db
}

func seedQuestions(t *testing.T, db *gorm.DB, technologyID uint64, count int) []models.Question {
	t.Helper()

	questions := make([]models.Question, count)
	for i := range questions {
		questions[i] = models.Question{
			Title:              "Question",
			Content:            "Content",
			TechnologyID:       technologyID,
			ExperienceLevelID:  1,
			QuestionTypeID:     1,
			EvaluatesTechnical: true,
		}
		require.NoError(t, db.Create(&questions[i]).Error)
	}
	return questions
}

func TestGetRandomQuestions_NoDuplicatesAndBounded(t *testing.T) {
	service, db := setupQuestionService(t)
	seedQuestions(t, db, 1, 10)

	for i := 0; i < 20; i++ {
		questions, err := service.GetRandomQuestions(RandomQuestionsInput{Count: 4})
		require.NoError(t, err)
		require.Len(t, questions, 4)

		seen := make(map[uint64]bool)
		for _, q := range questions {
			require.False(t, seen[q.ID], "draw must not repeat a question")
			seen[q.ID] = true
		}
	}
}

func TestGetRandomQuestions_FewerThanRequested(t *testing.T) {
	service, db := setupQuestionService(t)
	seedQuestions(t, db, 1, 2)

	questions, err := service.GetRandomQuestions(RandomQuestionsInput{Count: 5})
	require.NoError(t, err)
	require.Len(t, questions, 2)
}

func TestGetRandomQuestions_DefaultCount(t *testing.T) {
	service, db := setupQuestionService(t)
	seedQuestions(t, db, 1, 10)

	questions, err := service.GetRandomQuestions(RandomQuestionsInput{})
	require.NoError(t, err)
	require.Len(t, questions, 3)
}

func TestGetRandomQuestions_RespectsFilter(t *testing.T) {
	service, db := setupQuestionService(t)
	seedQuestions(t, db, 1, 5)
	seedQuestions(t, db, 2, 5)

	techID := uint64(2)
	questions, err := service.GetRandomQuestions(RandomQuestionsInput{
		Filter: repository.QuestionFilter{TechnologyID: &techID},
		Count:  5,
	})
	require.NoError(t, err)
	require.Len(t, questions, 5)
	for _, q := range questions {
		require.Equal(t, techID, q.TechnologyID)
	}
}

func TestGetRandomQuestions_EmptyBank(t *testing.T) {
	service, _ := setupQuestionService(t)

	questions, err := service.GetRandomQuestions(RandomQuestionsInput{Count: 3})
	require.NoError(t, err)
	require.Empty(t, questions)
}
