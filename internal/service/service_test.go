package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"churchapi/internal/database"
	"churchapi/internal/models"
	"churchapi/internal/repository"
	"churchapi/internal/security"
)

type testEnv struct {
	db            *database.DB
	users         *repository.UserRepository
	auth          *AuthService
	userSvc       *UserService
	children      *ChildService
	events        *EventService
	checkins      *CheckinService
	announcements *AnnouncementService
	prayers       *PrayerService
	donations     *DonationService
	tokens        *security.TokenService
	now           time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "church.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations(context.Background(), ""))

	env := &testEnv{
		db:     db,
		users:  repository.NewUserRepository(db),
		tokens: security.NewTokenService("test-secret"),
		now:    time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return env.now }

	childRepo := repository.NewChildRepository(db)
	eventRepo := repository.NewEventRepository(db)

	env.auth = NewAuthService(env.users, security.SHA256Hasher{}, env.tokens, nil)
	env.userSvc = NewUserService(env.users)
	env.children = NewChildService(childRepo)
	env.events = NewEventService(eventRepo)
	env.checkins = NewCheckinService(repository.NewCheckinRepository(db), childRepo, eventRepo)
	env.checkins.SetClock(clock)
	env.announcements = NewAnnouncementService(repository.NewAnnouncementRepository(db))
	env.announcements.SetClock(clock)
	env.prayers = NewPrayerService(repository.NewPrayerRepository(db))
	env.prayers.SetClock(clock)
	env.donations = NewDonationService(repository.NewDonationRepository(db))
	env.donations.SetClock(clock)
	return env
}

// register creates an account and returns the actor its token would prove
func (e *testEnv) register(t *testing.T, name, email, role string) models.Actor {
	t.Helper()

	user, err := e.auth.Register(context.Background(), RegisterInput{Name: name, Email: email, Password: "secret"})
	require.NoError(t, err)
	if role == models.RoleAdmin {
		_, err := e.userSvc.SetRole(context.Background(), email, role)
		require.NoError(t, err)
	}
	return models.Actor{UserID: user.ID, Role: role}
}

// tick advances the pinned clock
func (e *testEnv) tick(d time.Duration) {
	e.now = e.now.Add(d)
}
