package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/talentgrid/interview-management-api/internal/constants"
	"github.com/talentgrid/interview-management-api/internal/database"
	"github.com/talentgrid/interview-management-api/internal/dto"
	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/repository"
	"github.com/talentgrid/interview-management-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InterviewHandlerTestSuite defines the test suite for InterviewHandler
type InterviewHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *InterviewHandler
}

// SetupTest runs before each test
func (suite *InterviewHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Technology{},
		&models.ExperienceLevel{},
		&models.QuestionType{},
		&models.Question{},
		&models.Candidate{},
		&models.Interview{},
		&models.InterviewQuestion{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	interviewRepo := repository.NewInterviewRepository(suite.db)
	candidateRepo := repository.NewCandidateRepository(suite.db)
	questionRepo := repository.NewQuestionRepository(suite.db)
	interviewService := services.NewInterviewService(interviewRepo, candidateRepo, questionRepo)
	suite.handler = NewInterviewHandler(interviewService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *InterviewHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper functions to create test data

func (suite *InterviewHandlerTestSuite) createTestUser(username string, role models.Role) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword.salt",
		Role:         role,
		Active:       true,
	}
	suite.db.Create(user)
	return user
}

func (suite *InterviewHandlerTestSuite) createTestCandidate(name string) *models.Candidate {
	candidate := &models.Candidate{
		Name:   name,
		Email:  name + "@example.com",
		Status: models.CandidateStatusNew,
	}
	suite.db.Create(candidate)
	return candidate
}

func (suite *InterviewHandlerTestSuite) createTestQuestion(title string, technical, problemSolving, communication bool) *models.Question {
	question := &models.Question{
		Title:                   title,
		Content:                 "Test content",
		TechnologyID:            1,
		ExperienceLevelID:       1,
		QuestionTypeID:          1,
		EvaluatesTechnical:      technical,
		EvaluatesProblemSolving: problemSolving,
		EvaluatesCommunication:  communication,
	}
	suite.db.Create(question)
	return question
}

func (suite *InterviewHandlerTestSuite) createTestInterview(title string, candidateID uint64, status models.InterviewStatus, assigneeID *uint64) *models.Interview {
	interview := &models.Interview{
		Title:       title,
		CandidateID: candidateID,
		Date:        time.Now().Add(24 * time.Hour),
		Status:      status,
		AssigneeID:  assigneeID,
	}
	suite.db.Create(interview)
	return interview
}

func (suite *InterviewHandlerTestSuite) attachScoredQuestion(interviewID, questionID uint64, score *int, skipped bool) *models.InterviewQuestion {
	iq := &models.InterviewQuestion{
		InterviewID: interviewID,
		QuestionID:  questionID,
		Score:       score,
		Skipped:     skipped,
	}
	suite.db.Create(iq)
	return iq
}

func (suite *InterviewHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64, role models.Role) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyUserRole, role)

	return c, w
}

func intPtr(v int) *int {
	return &v
}

// TestListInterviews_HRSeesAll tests that HR gets every interview
func (suite *InterviewHandlerTestSuite) TestListInterviews_HRSeesAll() {
	hr := suite.createTestUser("hr", models.RoleHR)
	interviewer := suite.createTestUser("interviewer", models.RoleTechnicalInterviewer)
	candidate := suite.createTestCandidate("alice")
	suite.createTestInterview("Backend screen", candidate.ID, models.InterviewStatusScheduled, &interviewer.ID)
	suite.createTestInterview("Culture fit", candidate.ID, models.InterviewStatusScheduled, nil)

	c, w := suite.createAuthContext("GET", "/api/interviews", nil, hr.ID, models.RoleHR)

	suite.handler.ListInterviews(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string][]dto.InterviewDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response["interviews"], 2)
}

// TestListInterviews_InterviewerSeesOnlyOwn tests assignee scoping
func (suite *InterviewHandlerTestSuite) TestListInterviews_InterviewerSeesOnlyOwn() {
	interviewer := suite.createTestUser("interviewer", models.RoleTechnicalInterviewer)
	other := suite.createTestUser("other", models.RoleTechnicalInterviewer)
	candidate := suite.createTestCandidate("alice")
	mine := suite.createTestInterview("Mine", candidate.ID, models.InterviewStatusScheduled, &interviewer.ID)
	suite.createTestInterview("Theirs", candidate.ID, models.InterviewStatusScheduled, &other.ID)
	suite.createTestInterview("Unassigned", candidate.ID, models.InterviewStatusScheduled, nil)

	c, w := suite.createAuthContext("GET", "/api/interviews", nil, interviewer.ID, models.RoleTechnicalInterviewer)

	suite.handler.ListInterviews(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string][]dto.InterviewDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response["interviews"], 1)
	assert.Equal(suite.T(), mine.ID, response["interviews"][0].ID)
}

// TestListInterviews_UnknownRoleGetsEmptyList tests the fail-closed default
func (suite *InterviewHandlerTestSuite) TestListInterviews_UnknownRoleGetsEmptyList() {
	user := suite.createTestUser("odd", "contractor")
	candidate := suite.createTestCandidate("alice")
	suite.createTestInterview("Something", candidate.ID, models.InterviewStatusScheduled, nil)

	c, w := suite.createAuthContext("GET", "/api/interviews", nil, user.ID, "contractor")

	suite.handler.ListInterviews(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string][]dto.InterviewDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response["interviews"])
}

// TestCreateInterview_Success tests scheduling
func (suite *InterviewHandlerTestSuite) TestCreateInterview_Success() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")

	requestBody := map[string]interface{}{
		"title":        "System design round",
		"candidate_id": candidate.ID,
		"date":         time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/interviews", body, hr.ID, models.RoleHR)

	suite.handler.CreateInterview(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.InterviewDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "System design round", response.Title)
	assert.Equal(suite.T(), models.InterviewStatusScheduled, response.Status)
	assert.Nil(suite.T(), response.OverallScore)
	assert.False(suite.T(), response.CreatedByAdmin)
}

// TestCreateInterview_CandidateMissing tests scheduling against a ghost candidate
func (suite *InterviewHandlerTestSuite) TestCreateInterview_CandidateMissing() {
	hr := suite.createTestUser("hr", models.RoleHR)

	requestBody := map[string]interface{}{
		"title":        "System design round",
		"candidate_id": 9999,
		"date":         time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/interviews", body, hr.ID, models.RoleHR)

	suite.handler.CreateInterview(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestStartInterview_Success tests scheduled -> in_progress
func (suite *InterviewHandlerTestSuite) TestStartInterview_Success() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusScheduled, nil)

	c, w := suite.createAuthContext("POST", fmt.Sprintf("/api/interviews/%d/start", interview.ID), nil, hr.ID, models.RoleHR)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", interview.ID)}}

	suite.handler.StartInterview(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.InterviewDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.InterviewStatusInProgress, response.Status)
}

// TestStartInterview_AlreadyInProgress tests the transition guard
func (suite *InterviewHandlerTestSuite) TestStartInterview_AlreadyInProgress() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusInProgress, nil)

	c, w := suite.createAuthContext("POST", fmt.Sprintf("/api/interviews/%d/start", interview.ID), nil, hr.ID, models.RoleHR)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", interview.ID)}}

	suite.handler.StartInterview(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCancelInterview_TerminalRefused tests that cancelled stays cancelled
func (suite *InterviewHandlerTestSuite) TestCancelInterview_TerminalRefused() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusCancelled, nil)

	c, w := suite.createAuthContext("POST", fmt.Sprintf("/api/interviews/%d/cancel", interview.ID), nil, hr.ID, models.RoleHR)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", interview.ID)}}

	suite.handler.CancelInterview(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestAttachQuestion_TerminalRefused tests attachment to a finished interview
func (suite *InterviewHandlerTestSuite) TestAttachQuestion_TerminalRefused() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	question := suite.createTestQuestion("Explain indexes", true, false, false)
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusCompleted, nil)

	requestBody := map[string]interface{}{"question_id": question.ID}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", fmt.Sprintf("/api/interviews/%d/questions", interview.ID), body, hr.ID, models.RoleHR)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", interview.ID)}}

	suite.handler.AttachQuestion(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateInterviewQuestion_DoesNotAggregate tests the incremental path
func (suite *InterviewHandlerTestSuite) TestUpdateInterviewQuestion_DoesNotAggregate() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	question := suite.createTestQuestion("Explain indexes", true, false, false)
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusInProgress, nil)
	iq := suite.attachScoredQuestion(interview.ID, question.ID, nil, false)

	requestBody := map[string]interface{}{"score": 5}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("PUT", fmt.Sprintf("/api/interview-questions/%d", iq.ID), body, hr.ID, models.RoleHR)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", iq.ID)}}

	suite.handler.UpdateInterviewQuestion(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// scoring a question must never touch the parent aggregate
	var stored models.Interview
	suite.db.First(&stored, interview.ID)
	assert.Nil(suite.T(), stored.TechnicalScore)
	assert.Nil(suite.T(), stored.OverallScore)
	assert.Equal(suite.T(), models.InterviewStatusInProgress, stored.Status)
}

// TestUpdateInterviewQuestion_ScoreOutOfRange tests score validation
func (suite *InterviewHandlerTestSuite) TestUpdateInterviewQuestion_ScoreOutOfRange() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	question := suite.createTestQuestion("Explain indexes", true, false, false)
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusInProgress, nil)
	iq := suite.attachScoredQuestion(interview.ID, question.ID, nil, false)

	requestBody := map[string]interface{}{"score": 6}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("PUT", fmt.Sprintf("/api/interview-questions/%d", iq.ID), body, hr.ID, models.RoleHR)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", iq.ID)}}

	suite.handler.UpdateInterviewQuestion(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateInterviewQuestion_NotAssignee tests per-row authorization
func (suite *InterviewHandlerTestSuite) TestUpdateInterviewQuestion_NotAssignee() {
	assignee := suite.createTestUser("assignee", models.RoleTechnicalInterviewer)
	intruder := suite.createTestUser("intruder", models.RoleTechnicalInterviewer)
	candidate := suite.createTestCandidate("alice")
	question := suite.createTestQuestion("Explain indexes", true, false, false)
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusInProgress, &assignee.ID)
	iq := suite.attachScoredQuestion(interview.ID, question.ID, nil, false)

	requestBody := map[string]interface{}{"score": 4}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("PUT", fmt.Sprintf("/api/interview-questions/%d", iq.ID), body, intruder.ID, models.RoleTechnicalInterviewer)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", iq.ID)}}

	suite.handler.UpdateInterviewQuestion(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestGenerateSummary_FullFlow tests the batch aggregation path end to end
func (suite *InterviewHandlerTestSuite) TestGenerateSummary_FullFlow() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	techQ1 := suite.createTestQuestion("Indexes", true, false, false)
	techQ2 := suite.createTestQuestion("Transactions", true, false, false)
	commQ := suite.createTestQuestion("Walk me through a conflict", false, false, true)
	skippedQ := suite.createTestQuestion("Skipped one", true, true, true)
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusInProgress, nil)

	suite.attachScoredQuestion(interview.ID, techQ1.ID, intPtr(3), false)
	suite.attachScoredQuestion(interview.ID, techQ2.ID, intPtr(4), false)
	suite.attachScoredQuestion(interview.ID, commQ.ID, intPtr(5), false)
	suite.attachScoredQuestion(interview.ID, skippedQ.ID, intPtr(1), true)

	c, w := suite.createAuthContext("POST", fmt.Sprintf("/api/interviews/%d/summary", interview.ID), nil, hr.ID, models.RoleHR)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", interview.ID)}}

	suite.handler.GenerateSummary(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.InterviewDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	// technical mean 3.5 rounds to 4, communication stays 5, problem
	// solving has no scored questions and remains null
	assert.Equal(suite.T(), 4, *response.TechnicalScore)
	assert.Equal(suite.T(), 5, *response.CommunicationScore)
	assert.Nil(suite.T(), response.ProblemSolvingScore)
	// overall is the rounded mean of the rounded skill scores: (4+5)/2 -> 5
	assert.Equal(suite.T(), 5, *response.OverallScore)
	assert.Equal(suite.T(), models.RecommendationStrongHire, *response.Recommendation)
	assert.Equal(suite.T(), models.InterviewStatusCompleted, response.Status)

	var stored models.Interview
	suite.db.First(&stored, interview.ID)
	assert.Equal(suite.T(), models.InterviewStatusCompleted, stored.Status)
	assert.Equal(suite.T(), 5, *stored.OverallScore)
}

// TestGenerateSummary_NothingScoreable tests the no-op contract
func (suite *InterviewHandlerTestSuite) TestGenerateSummary_NothingScoreable() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	question := suite.createTestQuestion("Indexes", true, false, false)
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusInProgress, nil)
	suite.attachScoredQuestion(interview.ID, question.ID, nil, false)
	suite.attachScoredQuestion(interview.ID, question.ID, intPtr(5), true)

	c, w := suite.createAuthContext("POST", fmt.Sprintf("/api/interviews/%d/summary", interview.ID), nil, hr.ID, models.RoleHR)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", interview.ID)}}

	suite.handler.GenerateSummary(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.Interview
	suite.db.First(&stored, interview.ID)
	assert.Equal(suite.T(), models.InterviewStatusInProgress, stored.Status)
	assert.Nil(suite.T(), stored.TechnicalScore)
	assert.Nil(suite.T(), stored.OverallScore)
	assert.Nil(suite.T(), stored.Recommendation)
}

// TestGenerateSummary_CancelledRefused tests that a cancelled interview
// with scored rows is never flipped to completed
func (suite *InterviewHandlerTestSuite) TestGenerateSummary_CancelledRefused() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	question := suite.createTestQuestion("Indexes", true, false, false)
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusCancelled, nil)
	suite.attachScoredQuestion(interview.ID, question.ID, intPtr(4), false)

	c, w := suite.createAuthContext("POST", fmt.Sprintf("/api/interviews/%d/summary", interview.ID), nil, hr.ID, models.RoleHR)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", interview.ID)}}

	suite.handler.GenerateSummary(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var stored models.Interview
	suite.db.First(&stored, interview.ID)
	assert.Equal(suite.T(), models.InterviewStatusCancelled, stored.Status)
	assert.Nil(suite.T(), stored.OverallScore)
}

// TestGenerateSummary_Idempotent tests repeated generation
func (suite *InterviewHandlerTestSuite) TestGenerateSummary_Idempotent() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	question := suite.createTestQuestion("Indexes", true, false, false)
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusInProgress, nil)
	suite.attachScoredQuestion(interview.ID, question.ID, intPtr(4), false)

	for i := 0; i < 2; i++ {
		c, w := suite.createAuthContext("POST", fmt.Sprintf("/api/interviews/%d/summary", interview.ID), nil, hr.ID, models.RoleHR)
		c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", interview.ID)}}

		suite.handler.GenerateSummary(c)

		assert.Equal(suite.T(), http.StatusOK, w.Code)
	}

	var stored models.Interview
	suite.db.First(&stored, interview.ID)
	assert.Equal(suite.T(), 4, *stored.TechnicalScore)
	assert.Equal(suite.T(), 4, *stored.OverallScore)
	assert.Equal(suite.T(), models.RecommendationHire, *stored.Recommendation)
	assert.Equal(suite.T(), models.InterviewStatusCompleted, stored.Status)
}

// TestDecide_Hired tests the HR decision flow
func (suite *InterviewHandlerTestSuite) TestDecide_Hired() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusCompleted, nil)

	requestBody := map[string]interface{}{
		"decision": "hired",
		"hr_notes": "Strong across the board",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("PUT", fmt.Sprintf("/api/interviews/%d/decision", interview.ID), body, hr.ID, models.RoleHR)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", interview.ID)}}

	suite.handler.Decide(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var storedCandidate models.Candidate
	suite.db.First(&storedCandidate, candidate.ID)
	assert.Equal(suite.T(), models.CandidateStatusHired, storedCandidate.Status)

	var storedInterview models.Interview
	suite.db.First(&storedInterview, interview.ID)
	assert.Equal(suite.T(), "Strong across the board", storedInterview.HRNotes)
}

// TestDecide_InvalidDecision tests decision validation
func (suite *InterviewHandlerTestSuite) TestDecide_InvalidDecision() {
	hr := suite.createTestUser("hr", models.RoleHR)
	candidate := suite.createTestCandidate("alice")
	interview := suite.createTestInterview("Screen", candidate.ID, models.InterviewStatusCompleted, nil)

	requestBody := map[string]interface{}{"decision": "maybe"}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("PUT", fmt.Sprintf("/api/interviews/%d/decision", interview.ID), body, hr.ID, models.RoleHR)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", interview.ID)}}

	suite.handler.Decide(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestPreviewScore tests the interactive running average endpoint
func (suite *InterviewHandlerTestSuite) TestPreviewScore() {
	hr := suite.createTestUser("hr", models.RoleHR)

	requestBody := map[string]interface{}{
		"technical":       4,
		"problem_solving": 5,
		"communication":   0,
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/interviews/score-preview", body, hr.ID, models.RoleHR)

	suite.handler.PreviewScore(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.ScorePreviewResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4.5, response.PreviewOverall)
}

// TestSuite runs the test suite
func TestInterviewHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InterviewHandlerTestSuite))
}
