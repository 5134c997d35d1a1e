package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/apperrors"
)

type registrationFixture struct {
	service *RegistrationService
	users   *fakeUserRepo
	events  *fakeEventRepo
	regs    *fakeRegistrationRepo
	mailer  *fakeMailer
	user    *models.User
	event   *models.Event
	eventID int64
	userID  int64
	coordID int64
}

func newRegistrationFixture(t *testing.T) *registrationFixture {
	t.Helper()
	ctx := context.Background()

	users := newFakeUserRepo()
	events := newFakeEventRepo()
	regs := newFakeRegistrationRepo(events, users)
	mailer := &fakeMailer{}

	coordID, err := users.CreateUser(ctx, &models.User{
		Username: "coordinator",
		Email:    "coordinator@example.com",
		Role:     models.RoleCoordinator,
	})
	require.NoError(t, err)

	userID, err := users.CreateUser(ctx, &models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     models.RoleParticipant,
	})
	require.NoError(t, err)

	eventID, err := events.CreateEvent(ctx, &models.Event{
		Title:         "Tech Fest",
		Description:   "Annual tech fest",
		Location:      "Main Hall",
		Date:          "2026-09-15",
		Time:          "10:00:00",
		CoordinatorID: coordID,
	})
	require.NoError(t, err)

	user, err := users.GetUserByID(ctx, userID)
	require.NoError(t, err)
	event, err := events.GetEventByID(ctx, eventID)
	require.NoError(t, err)

	return &registrationFixture{
		service: NewRegistrationService(regs, events, users, mailer),
		users:   users,
		events:  events,
		regs:    regs,
		mailer:  mailer,
		user:    user,
		event:   event,
		eventID: eventID,
		userID:  userID,
		coordID: coordID,
	}
}

// racingRegistrationRepo reports no registration on the existence check so
// the insert path runs into the constraint, like a concurrent double-register
type racingRegistrationRepo struct {
	*fakeRegistrationRepo
}

func (r *racingRegistrationRepo) RegistrationExists(context.Context, int64, int64) (bool, error) {
	return false, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and sends a confirmation email", func(t *testing.T) {
		f := newRegistrationFixture(t)

		err := f.service.Register(ctx, f.userID, f.eventID)
		require.NoError(t, err)

		exists, err := f.regs.RegistrationExists(ctx, f.userID, f.eventID)
		require.NoError(t, err)
		assert.True(t, exists)

		require.Len(t, f.mailer.sent, 1)
		assert.Equal(t, "confirmation", f.mailer.sent[0].kind)
		assert.Equal(t, "alice@example.com", f.mailer.sent[0].toEmail)
		assert.Equal(t, "Tech Fest", f.mailer.sent[0].eventTitle)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newRegistrationFixture(t)

		err := f.service.Register(ctx, f.userID, 999)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.Equal(t, "Event not found.", err.Error())
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("duplicate registration sends no second email", func(t *testing.T) {
		f := newRegistrationFixture(t)

		require.NoError(t, f.service.Register(ctx, f.userID, f.eventID))

		err := f.service.Register(ctx, f.userID, f.eventID)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
		assert.Equal(t, "You have already registered for this event.", err.Error())
		assert.Len(t, f.mailer.sent, 1)
	})

	t.Run("constraint violation on concurrent insert maps to conflict", func(t *testing.T) {
		f := newRegistrationFixture(t)

		// The row appears between the existence check and the insert
		_, err := f.regs.CreateRegistration(ctx, f.userID, f.eventID)
		require.NoError(t, err)
		racing := &racingRegistrationRepo{fakeRegistrationRepo: f.regs}
		service := NewRegistrationService(racing, f.events, f.users, f.mailer)

		err = service.Register(ctx, f.userID, f.eventID)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
		assert.Equal(t, "You have already registered for this event.", err.Error())
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("mail failure does not fail the registration", func(t *testing.T) {
		f := newRegistrationFixture(t)
		f.mailer.fail = true

		err := f.service.Register(ctx, f.userID, f.eventID)
		require.NoError(t, err)

		exists, err := f.regs.RegistrationExists(ctx, f.userID, f.eventID)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels and sends a cancellation email", func(t *testing.T) {
		f := newRegistrationFixture(t)
		require.NoError(t, f.service.Register(ctx, f.userID, f.eventID))

		err := f.service.Cancel(ctx, f.userID, f.eventID)
		require.NoError(t, err)

		exists, err := f.regs.RegistrationExists(ctx, f.userID, f.eventID)
		require.NoError(t, err)
		assert.False(t, exists)

		require.Len(t, f.mailer.sent, 2)
		assert.Equal(t, "cancellation", f.mailer.sent[1].kind)
	})

	t.Run("re-registration after cancellation succeeds", func(t *testing.T) {
		f := newRegistrationFixture(t)
		require.NoError(t, f.service.Register(ctx, f.userID, f.eventID))
		require.NoError(t, f.service.Cancel(ctx, f.userID, f.eventID))

		err := f.service.Register(ctx, f.userID, f.eventID)
		require.NoError(t, err)

		exists, err := f.regs.RegistrationExists(ctx, f.userID, f.eventID)
		require.NoError(t, err)
		assert.True(t, exists)

		require.Len(t, f.mailer.sent, 3)
		assert.Equal(t, "confirmation", f.mailer.sent[2].kind)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newRegistrationFixture(t)

		err := f.service.Cancel(ctx, f.userID, 999)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.Equal(t, "Event not found.", err.Error())
	})

	t.Run("not registered", func(t *testing.T) {
		f := newRegistrationFixture(t)

		err := f.service.Cancel(ctx, f.userID, f.eventID)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotRegistered)
		assert.Equal(t, "You are not registered for this event.", err.Error())
	})

	t.Run("mail failure does not fail the cancellation", func(t *testing.T) {
		f := newRegistrationFixture(t)
		require.NoError(t, f.service.Register(ctx, f.userID, f.eventID))
		f.mailer.fail = true

		err := f.service.Cancel(ctx, f.userID, f.eventID)
		require.NoError(t, err)
	})
}

func TestGetRegisteredEvents(t *testing.T) {
	ctx := context.Background()
	f := newRegistrationFixture(t)

	events, err := f.service.GetRegisteredEvents(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, events)

	require.NoError(t, f.service.Register(ctx, f.userID, f.eventID))

	events, err = f.service.GetRegisteredEvents(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Tech Fest", events[0].Title)
}

func TestGetParticipants(t *testing.T) {
	ctx := context.Background()
	f := newRegistrationFixture(t)

	participants, err := f.service.GetParticipants(ctx, f.eventID)
	require.NoError(t, err)
	assert.Empty(t, participants)

	require.NoError(t, f.service.Register(ctx, f.userID, f.eventID))

	participants, err = f.service.GetParticipants(ctx, f.eventID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "alice", participants[0].Name)
	assert.Equal(t, "alice@example.com", participants[0].Email)
	assert.Equal(t, "Tech Fest", participants[0].EventTitle)
}

func TestGetParticipantsUnknownEvent(t *testing.T) {
	f := newRegistrationFixture(t)

	participants, err := f.service.GetParticipants(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, participants)
}
