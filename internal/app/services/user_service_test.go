package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/apperrors"
)

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	service := NewUserService(users, tokens)

	phone := "9876543210"
	id, err := users.CreateUser(ctx, &models.User{
		Username:    "alice",
		Email:       "alice@example.com",
		Role:        models.RoleParticipant,
		PhoneNumber: &phone,
	})
	require.NoError(t, err)

	profile, err := service.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	require.NotNil(t, profile.PhoneNumber)
	assert.Equal(t, "9876543210", *profile.PhoneNumber)

	_, err = service.GetProfile(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the user and revokes refresh tokens", func(t *testing.T) {
		users := newFakeUserRepo()
		tokens := newFakeTokenRepo()
		service := NewUserService(users, tokens)

		id, err := users.CreateUser(ctx, &models.User{
			Username: "alice",
			Email:    "alice@example.com",
			Role:     models.RoleParticipant,
		})
		require.NoError(t, err)
		require.NoError(t, tokens.CreateToken(ctx, "live-token", id, time.Now().Add(time.Hour)))

		username, err := service.DeleteAccount(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "alice", username)

		_, err = users.GetUserByID(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

		_, _, err = tokens.GetTokenByValue(ctx, "live-token")
		assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	})

	t.Run("cascades to coordinated events and held registrations", func(t *testing.T) {
		users := newFakeUserRepo()
		events := newFakeEventRepo()
		regs := newFakeRegistrationRepo(events, users)
		users.cascadeTo(events, regs)
		service := NewUserService(users, newFakeTokenRepo())
		eventService := NewEventService(events, users)

		bobID, err := users.CreateUser(ctx, &models.User{
			Username: "bob", Email: "bob@example.com", Role: models.RoleCoordinator,
		})
		require.NoError(t, err)
		carolID, err := users.CreateUser(ctx, &models.User{
			Username: "carol", Email: "carol@example.com", Role: models.RoleCoordinator,
		})
		require.NoError(t, err)
		aliceID, err := users.CreateUser(ctx, &models.User{
			Username: "alice", Email: "alice@example.com", Role: models.RoleParticipant,
		})
		require.NoError(t, err)

		bobEventID, err := events.CreateEvent(ctx, &models.Event{
			Title: "Tech Fest", Date: "2026-09-15", Time: "10:00:00", CoordinatorID: bobID,
		})
		require.NoError(t, err)
		carolEventID, err := events.CreateEvent(ctx, &models.Event{
			Title: "Science Expo", Date: "2026-10-01", Time: "09:00:00", CoordinatorID: carolID,
		})
		require.NoError(t, err)

		_, err = regs.CreateRegistration(ctx, aliceID, bobEventID)
		require.NoError(t, err)
		_, err = regs.CreateRegistration(ctx, aliceID, carolEventID)
		require.NoError(t, err)

		// Deleting a coordinator removes their events and the registrations
		// on those events
		_, err = service.DeleteAccount(ctx, bobID)
		require.NoError(t, err)

		listed, err := eventService.GetAllEvents(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "Science Expo", listed[0].Title)

		exists, err := regs.RegistrationExists(ctx, aliceID, bobEventID)
		require.NoError(t, err)
		assert.False(t, exists)
		exists, err = regs.RegistrationExists(ctx, aliceID, carolEventID)
		require.NoError(t, err)
		assert.True(t, exists)

		// Deleting a participant removes their registrations but not the
		// events they registered for
		_, err = service.DeleteAccount(ctx, aliceID)
		require.NoError(t, err)

		exists, err = regs.RegistrationExists(ctx, aliceID, carolEventID)
		require.NoError(t, err)
		assert.False(t, exists)

		listed, err = eventService.GetAllEvents(ctx)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := newFakeUserRepo()
		service := NewUserService(users, newFakeTokenRepo())

		_, err := service.DeleteAccount(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
