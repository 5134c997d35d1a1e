package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Amaldev1010/Archin-Eventmng/internal/app/models"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/apperrors"
)

// In-memory fakes for the repository and mailer interfaces.

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*models.User
	events *fakeEventRepo
	regs   *fakeRegistrationRepo
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

// cascadeTo makes DeleteUser behave like the schema's ON DELETE CASCADE,
// removing the user's coordinated events and held registrations.
func (r *fakeUserRepo) cascadeTo(events *fakeEventRepo, regs *fakeRegistrationRepo) {
	r.events = events
	r.regs = regs
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	stored := *user
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id int64) error {
	r.mu.Lock()
	if _, ok := r.users[id]; !ok {
		r.mu.Unlock()
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	events, regs := r.events, r.regs
	r.mu.Unlock()

	if regs != nil {
		regs.deleteByUserID(id)
	}
	if events != nil {
		for _, eventID := range events.deleteByCoordinatorID(id) {
			if regs != nil {
				regs.deleteByEventID(eventID)
			}
		}
	}
	return nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[int64]*models.Event
	nextID int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[int64]*models.Event), nextID: 1}
}

func (r *fakeEventRepo) CreateEvent(_ context.Context, event *models.Event) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	stored := *event
	stored.ID = id
	r.events[id] = &stored
	return id, nil
}

func (r *fakeEventRepo) GetEventByID(_ context.Context, id int64) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (r *fakeEventRepo) GetAllEvents(_ context.Context) ([]*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]*models.Event, 0, len(r.events))
	for _, event := range r.events {
		copied := *event
		events = append(events, &copied)
	}
	return events, nil
}

func (r *fakeEventRepo) GetEventsByCoordinatorID(_ context.Context, coordinatorID int64) ([]*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]*models.Event, 0)
	for _, event := range r.events {
		if event.CoordinatorID == coordinatorID {
			copied := *event
			events = append(events, &copied)
		}
	}
	return events, nil
}

func (r *fakeEventRepo) UpdateEvent(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	stored := *event
	r.events[event.ID] = &stored
	return nil
}

func (r *fakeEventRepo) deleteByCoordinatorID(coordinatorID int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	deleted := make([]int64, 0)
	for id, event := range r.events {
		if event.CoordinatorID == coordinatorID {
			delete(r.events, id)
			deleted = append(deleted, id)
		}
	}
	return deleted
}

func (r *fakeEventRepo) DeleteOwnedEvent(_ context.Context, id, coordinatorID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok || event.CoordinatorID != coordinatorID {
		return apperrors.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type fakeRegistrationRepo struct {
	mu     sync.Mutex
	regs   map[[2]int64]*models.Registration
	events *fakeEventRepo
	users  *fakeUserRepo
	nextID int64
}

func newFakeRegistrationRepo(events *fakeEventRepo, users *fakeUserRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		regs:   make(map[[2]int64]*models.Registration),
		events: events,
		users:  users,
		nextID: 1,
	}
}

func (r *fakeRegistrationRepo) CreateRegistration(_ context.Context, userID, eventID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]int64{userID, eventID}
	if _, ok := r.regs[key]; ok {
		return 0, apperrors.ErrAlreadyRegistered
	}
	id := r.nextID
	r.nextID++
	r.regs[key] = &models.Registration{
		ID:           id,
		UserID:       userID,
		EventID:      eventID,
		RegisteredAt: time.Now(),
	}
	return id, nil
}

func (r *fakeRegistrationRepo) RegistrationExists(_ context.Context, userID, eventID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.regs[[2]int64{userID, eventID}]
	return ok, nil
}

func (r *fakeRegistrationRepo) DeleteRegistration(_ context.Context, userID, eventID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]int64{userID, eventID}
	if _, ok := r.regs[key]; !ok {
		return apperrors.ErrNotRegistered
	}
	delete(r.regs, key)
	return nil
}

func (r *fakeRegistrationRepo) deleteByUserID(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.regs {
		if key[0] == userID {
			delete(r.regs, key)
		}
	}
}

func (r *fakeRegistrationRepo) deleteByEventID(eventID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.regs {
		if key[1] == eventID {
			delete(r.regs, key)
		}
	}
}

func (r *fakeRegistrationRepo) GetEventsByUserID(ctx context.Context, userID int64) ([]*models.Event, error) {
	r.mu.Lock()
	keys := make([][2]int64, 0)
	for key := range r.regs {
		if key[0] == userID {
			keys = append(keys, key)
		}
	}
	r.mu.Unlock()

	events := make([]*models.Event, 0, len(keys))
	for _, key := range keys {
		event, err := r.events.GetEventByID(ctx, key[1])
		if err != nil {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

func (r *fakeRegistrationRepo) GetParticipantsByEventID(ctx context.Context, eventID int64) ([]*models.Registration, error) {
	r.mu.Lock()
	regs := make([]*models.Registration, 0)
	for key, reg := range r.regs {
		if key[1] == eventID {
			copied := *reg
			regs = append(regs, &copied)
		}
	}
	r.mu.Unlock()

	for _, reg := range regs {
		user, err := r.users.GetUserByID(ctx, reg.UserID)
		if err != nil {
			return nil, err
		}
		reg.User = user
		event, err := r.events.GetEventByID(ctx, reg.EventID)
		if err != nil {
			return nil, err
		}
		reg.Event = event
	}
	return regs, nil
}

type fakeTokenRecord struct {
	userID  int64
	expiry  time.Time
	revoked bool
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*fakeTokenRecord
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*fakeTokenRecord)}
}

func (r *fakeTokenRepo) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = &fakeTokenRecord{userID: userID, expiry: expiryDate}
	return nil
}

func (r *fakeTokenRepo) GetTokenByValue(_ context.Context, token string) (int64, time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.tokens[token]
	if !ok {
		return 0, time.Time{}, apperrors.ErrTokenNotFound
	}
	if record.revoked {
		return 0, time.Time{}, apperrors.ErrTokenRevoked
	}
	if record.expiry.Before(time.Now()) {
		return 0, time.Time{}, apperrors.ErrTokenExpired
	}
	return record.userID, record.expiry, nil
}

func (r *fakeTokenRepo) RevokeToken(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	record.revoked = true
	return nil
}

func (r *fakeTokenRepo) RevokeAllUserTokens(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.tokens {
		if record.userID == userID {
			record.revoked = true
		}
	}
	return nil
}

func (r *fakeTokenRepo) CleanupExpiredTokens(_ context.Context) (int64, error) {
	return 0, nil
}

type sentMail struct {
	toEmail    string
	username   string
	eventTitle string
	kind       string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

func (m *fakeMailer) SendRegistrationConfirmation(toEmail, username, eventTitle string) error {
	return m.record(toEmail, username, eventTitle, "confirmation")
}

func (m *fakeMailer) SendCancellationNotice(toEmail, username, eventTitle string) error {
	return m.record(toEmail, username, eventTitle, "cancellation")
}

func (m *fakeMailer) record(toEmail, username, eventTitle, kind string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{toEmail: toEmail, username: username, eventTitle: eventTitle, kind: kind})
	return nil
}
