package database

import (
	"fmt"
	"log"

	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/utils"
)

// Seed inserts the default admin account and the lookup tables. It is
// idempotent: existing rows are left alone.
func Seed() error {
	var adminCount int64
	if err := DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}

	if adminCount == 0 {
		hash, err := utils.HashPassword("admin12345")
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		admin := &models.User{
			Username:     "admin",
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			Active:       true,
		}
		if err := DB.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		log.Println("Seeded default admin user (change the password!)")
	}

	technologies := []models.Technology{
		{Name: "Go", Description: "Go programming language"},
		{Name: "JavaScript", Description: "JavaScript and the browser/Node ecosystem"},
		{Name: "Python", Description: "Python programming language"},
		{Name: "SQL", Description: "Relational databases and SQL"},
	}
	for _, tech := range technologies {
		if err := DB.Where(models.Technology{Name: tech.Name}).FirstOrCreate(&tech).Error; err != nil {
			return fmt.Errorf("failed to seed technology %q: %w", tech.Name, err)
		}
	}

	levels := []models.ExperienceLevel{
		{Name: "Junior", Description: "0-2 years of experience"},
		{Name: "Mid", Description: "2-5 years of experience"},
		{Name: "Senior", Description: "5+ years of experience"},
	}
	for _, level := range levels {
		if err := DB.Where(models.ExperienceLevel{Name: level.Name}).FirstOrCreate(&level).Error; err != nil {
			return fmt.Errorf("failed to seed experience level %q: %w", level.Name, err)
		}
	}

	types := []models.QuestionType{
		{Name: "Theory", Description: "Conceptual knowledge"},
		{Name: "Coding", Description: "Hands-on coding exercise"},
		{Name: "Behavioral", Description: "Working style and collaboration"},
	}
	for _, qt := range types {
		if err := DB.Where(models.QuestionType{Name: qt.Name}).FirstOrCreate(&qt).Error; err != nil {
			return fmt.Errorf("failed to seed question type %q: %w", qt.Name, err)
		}
	}

	return seedQuestions()
}

// seedQuestions inserts a small starter bank so a fresh install has
// something to draw from. Skipped entirely once any question exists.
func seedQuestions() error {
	var questionCount int64
	if err := DB.Model(&models.Question{}).Count(&questionCount).Error; err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if questionCount > 0 {
		return nil
	}

	var goTech, sqlTech models.Technology
	if err := DB.Where("name = ?", "Go").First(&goTech).Error; err != nil {
		return fmt.Errorf("failed to load Go technology: %w", err)
	}
	if err := DB.Where("name = ?", "SQL").First(&sqlTech).Error; err != nil {
		return fmt.Errorf("failed to load SQL technology: %w", err)
	}
	var mid models.ExperienceLevel
	if err := DB.Where("name = ?", "Mid").First(&mid).Error; err != nil {
		return fmt.Errorf("failed to load Mid experience level: %w", err)
	}
	var theory, behavioral models.QuestionType
	if err := DB.Where("name = ?", "Theory").First(&theory).Error; err != nil {
		return fmt.Errorf("failed to load Theory question type: %w", err)
	}
	if err := DB.Where("name = ?", "Behavioral").First(&behavioral).Error; err != nil {
		return fmt.Errorf("failed to load Behavioral question type: %w", err)
	}

	questions := []models.Question{
		{
			Title:              "Goroutines vs OS threads",
			Content:            "Explain how goroutines differ from operating system threads and when that difference matters.",
			Answer:             "Goroutines are multiplexed onto a small number of OS threads by the Go runtime scheduler; they start with small stacks that grow on demand, which makes spawning many of them cheap.",
			TechnologyID:       goTech.ID,
			ExperienceLevelID:  mid.ID,
			QuestionTypeID:     theory.ID,
			EvaluatesTechnical: true,
		},
		{
			Title:                   "Designing an index",
			Content:                 "Given a slow query over a large table, walk through how you would decide which index to add.",
			Answer:                  "Look at the query's predicates and sort order, check selectivity, consider composite index column order and the write cost of maintaining the index.",
			TechnologyID:            sqlTech.ID,
			ExperienceLevelID:       mid.ID,
			QuestionTypeID:          theory.ID,
			EvaluatesTechnical:      true,
			EvaluatesProblemSolving: true,
		},
		{
			Title:                  "Disagreement with a teammate",
			Content:                "Tell me about a time you disagreed with a teammate on a technical decision. How was it resolved?",
			TechnologyID:           goTech.ID,
			ExperienceLevelID:      mid.ID,
			QuestionTypeID:         behavioral.ID,
			EvaluatesCommunication: true,
		},
	}
	for i := range questions {
		if err := DB.Create(&questions[i]).Error; err != nil {
			return fmt.Errorf("failed to seed question %q: %w", questions[i].Title, err)
		}
	}
	log.Printf("Seeded %d starter questions", len(questions))

	return nil
}
