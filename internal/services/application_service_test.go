package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// recordingNotifier is mutex-guarded because notifications are delivered
// from a background goroutine.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *recordingNotifier) Send(to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, to)
	return nil
}

func (n *recordingNotifier) recipients() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}

// blockingNotifier holds Send open until released so a test can observe
// whether the request path waits on delivery.
type blockingNotifier struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingNotifier() *blockingNotifier {
	return &blockingNotifier{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (n *blockingNotifier) Send(to, subject, body string) error {
	close(n.started)
	<-n.release
	return nil
}

func setupApplicationService(t *testing.T) (*ApplicationService, *recordingNotifier, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Candidate{},
		&models.Position{},
		&models.Application{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	notifier := &recordingNotifier{}
	service := NewApplicationService(
		repository.NewApplicationRepository(db),
		repository.NewCandidateRepository(db),
		notifier,
	)
	return service, notifier, db
}

func mustCreateOpenPosition(t *testing.T, s *ApplicationService, title string) *models.Position {
	t.Helper()
	position, err := s.CreatePosition(CreatePositionInput{
		Title:       title,
		Description: "A role",
	})
	require.NoError(t, err)
	return position
}

func TestSubmitApplication_CreatesCandidateAndNotifies(t *testing.T) {
	service, notifier, db := setupApplicationService(t)
	position := mustCreateOpenPosition(t, service, "Backend Engineer")

	application, err := service.SubmitApplication(SubmitApplicationInput{
		PositionID: position.ID,
		Name:       "Alice Smith",
		Email:      "alice@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatusPending, application.Status)

	var candidate models.Candidate
	require.NoError(t, db.First(&candidate, application.CandidateID).Error)
	require.Equal(t, "Alice Smith", candidate.Name)
	require.Equal(t, models.CandidateStatusNew, candidate.Status)

	require.Eventually(t, func() bool {
		return len(notifier.recipients()) == 1
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, []string{"alice@example.com"}, notifier.recipients())
}

func TestSubmitApplication_NotificationDoesNotBlockRequest(t *testing.T) {
	_, _, db := setupApplicationService(t)

	notifier := newBlockingNotifier()
	service := NewApplicationService(
		repository.NewApplicationRepository(db),
		repository.NewCandidateRepository(db),
		notifier,
	)
	position := mustCreateOpenPosition(t, service, "Backend Engineer")

	application, err := service.SubmitApplication(SubmitApplicationInput{
		PositionID: position.ID,
		Name:       "Alice Smith",
		Email:      "alice@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatusPending, application.Status)

	// The submission has already returned; delivery is still held open.
	select {
	case <-notifier.started:
	case <-time.After(time.Second):
		t.Fatal("notification was never dispatched")
	}
	close(notifier.release)
}

func TestSubmitApplication_ClosedPositionRefused(t *testing.T) {
	service, _, _ := setupApplicationService(t)
	position := mustCreateOpenPosition(t, service, "Backend Engineer")

	closed := models.PositionStatusClosed
	_, err := service.UpdatePosition(position.ID, UpdatePositionInput{Status: &closed})
	require.NoError(t, err)

	_, err = service.SubmitApplication(SubmitApplicationInput{
		PositionID: position.ID,
		Name:       "Alice Smith",
		Email:      "alice@example.com",
	})
	require.ErrorIs(t, err, ErrPositionClosed)
}

func TestAcceptApplication_MovesCandidateToInProgress(t *testing.T) {
	service, _, db := setupApplicationService(t)
	position := mustCreateOpenPosition(t, service, "Backend Engineer")

	application, err := service.SubmitApplication(SubmitApplicationInput{
		PositionID: position.ID,
		Name:       "Alice Smith",
		Email:      "alice@example.com",
	})
	require.NoError(t, err)

	accepted, err := service.AcceptApplication(application.ID)
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatusAccepted, accepted.Status)

	var candidate models.Candidate
	require.NoError(t, db.First(&candidate, application.CandidateID).Error)
	require.Equal(t, models.CandidateStatusInProgress, candidate.Status)
}

func TestDecideApplication_SecondDecisionRefused(t *testing.T) {
	service, _, _ := setupApplicationService(t)
	position := mustCreateOpenPosition(t, service, "Backend Engineer")

	application, err := service.SubmitApplication(SubmitApplicationInput{
		PositionID: position.ID,
		Name:       "Alice Smith",
		Email:      "alice@example.com",
	})
	require.NoError(t, err)

	_, err = service.RejectApplication(application.ID)
	require.NoError(t, err)

	_, err = service.AcceptApplication(application.ID)
	require.ErrorIs(t, err, ErrApplicationDecided)
}
