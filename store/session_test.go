package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galaxydental/models"
)

func newSessionRepo(t *testing.T) (*RedisSessionRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSessionRepo(client, 30*time.Minute), mr
}

func TestSessionRepo_RoundTrip(t *testing.T) {
	repo, _ := newSessionRepo(t)
	ctx := context.Background()

	session := &models.BookingSession{
		SessionID: "abc-123",
		State:     models.StateSlot,
		Draft: models.BookingDraft{
			DoctorID:     "dr-priya",
			ServiceID:    "whitening",
			Name:         "Divya N.",
			SelectedDate: "2026-09-03",
			SelectedTime: "4:30 PM",
		},
		Cursor:        models.CalendarCursor{Year: 2026, Month: time.September},
		AutomationLog: []string{},
	}
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, "abc-123")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionRepo_MissingAndExpired(t *testing.T) {
	repo, mr := newSessionRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "never-created")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	session := &models.BookingSession{SessionID: "will-expire", State: models.StateDetails}
	require.NoError(t, repo.Save(ctx, session))

	mr.FastForward(31 * time.Minute)
	_, err = repo.Get(ctx, "will-expire")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepo_SaveRefreshesTTL(t *testing.T) {
	repo, mr := newSessionRepo(t)
	ctx := context.Background()

	session := &models.BookingSession{SessionID: "active", State: models.StateDetails}
	require.NoError(t, repo.Save(ctx, session))

	mr.FastForward(20 * time.Minute)
	require.NoError(t, repo.Save(ctx, session))
	mr.FastForward(20 * time.Minute)

	_, err := repo.Get(ctx, "active")
	assert.NoError(t, err, "an active wizard must not expire mid-flow")
}

func TestSessionRepo_Delete(t *testing.T) {
	repo, _ := newSessionRepo(t)
	ctx := context.Background()

	session := &models.BookingSession{SessionID: "gone", State: models.StateDetails}
	require.NoError(t, repo.Save(ctx, session))
	require.NoError(t, repo.Delete(ctx, "gone"))

	_, err := repo.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
