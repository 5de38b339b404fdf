package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"campus-connect/dto"
	"campus-connect/internal/models"
	"campus-connect/internal/repository"
)

// fakeEventStore keeps events in memory and shares its state with
// fakeRegistrationStore so RegisterAtomic can mutate the counter the way the
// database transaction does.
type fakeEventStore struct {
	mu     sync.Mutex
	events map[bson.ObjectID]*models.Event
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[bson.ObjectID]*models.Event)}
}

func (f *fakeEventStore) Insert(_ context.Context, event models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[event.ID] = &event
	return nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id bson.ObjectID) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventStore) List(_ context.Context) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

type fakeRegistrationStore struct {
	store         *fakeEventStore
	mu            sync.Mutex
	registrations map[string]models.EventRegistration // eventID.Hex() + "/" + userID
}

func newFakeRegistrationStore(store *fakeEventStore) *fakeRegistrationStore {
	return &fakeRegistrationStore{
		store:         store,
		registrations: make(map[string]models.EventRegistration),
	}
}

func regKey(eventID bson.ObjectID, userID string) string {
	return eventID.Hex() + "/" + userID
}

func (f *fakeRegistrationStore) Exists(_ context.Context, eventID bson.ObjectID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.registrations[regKey(eventID, userID)]
	return ok, nil
}

// RegisterAtomic mirrors the transactional contract: capacity is re-checked
// and the increment plus the insert happen under one lock.
func (f *fakeRegistrationStore) RegisterAtomic(_ context.Context, eventID bson.ObjectID, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	event, ok := f.store.events[eventID]
	if !ok {
		return 0, repository.ErrNotFound
	}
	if event.RegisteredParticipants >= event.MaxParticipants {
		return 0, repository.ErrEventFull
	}

	event.RegisteredParticipants++
	f.registrations[regKey(eventID, userID)] = models.EventRegistration{
		ID:           bson.NewObjectID(),
		EventID:      eventID,
		UserID:       userID,
		RegisteredAt: time.Now().UTC(),
	}
	return event.RegisteredParticipants, nil
}

func (f *fakeRegistrationStore) ListByEvent(_ context.Context, eventID bson.ObjectID) ([]models.EventRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.EventRegistration, 0)
	for _, r := range f.registrations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestEventService(t *testing.T) (*EventService, *fakeEventStore, *fakeRegistrationStore) {
	t.Helper()
	events := newFakeEventStore()
	regs := newFakeRegistrationStore(events)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewEventService(events, regs, log), events, regs
}

func seedEvent(t *testing.T, svc *EventService, maxParticipants int, deadline time.Time) models.Event {
	t.Helper()
	event, err := svc.CreateEvent(context.Background(), dto.EventRequestDTO{
		Title:           "Tech Meetup",
		Description:     "Monthly meetup",
		MaxParticipants: maxParticipants,
		Deadline:        deadline,
		Date:            deadline.Add(24 * time.Hour),
		Time:            "18:00",
		Venue:           "Auditorium",
	}, "admin-1")
	require.NoError(t, err)
	return event
}

func TestCreateEventValidation(t *testing.T) {
	svc, _, _ := newTestEventService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		body dto.EventRequestDTO
	}{
		{
			name: "missing title",
			body: dto.EventRequestDTO{Description: "d", MaxParticipants: 5, Deadline: time.Now(), Date: time.Now(), Time: "10:00", Venue: "v"},
		},
		{
			name: "zero capacity",
			body: dto.EventRequestDTO{Title: "t", Description: "d", MaxParticipants: 0, Deadline: time.Now(), Date: time.Now(), Time: "10:00", Venue: "v"},
		},
		{
			name: "negative capacity",
			body: dto.EventRequestDTO{Title: "t", Description: "d", MaxParticipants: -3, Deadline: time.Now(), Date: time.Now(), Time: "10:00", Venue: "v"},
		},
		{
			name: "missing deadline",
			body: dto.EventRequestDTO{Title: "t", Description: "d", MaxParticipants: 5, Date: time.Now(), Time: "10:00", Venue: "v"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(ctx, tt.body, "admin-1")
			assert.Error(t, err)
		})
	}
}

func TestJoinEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("successful join increments counter", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)
		event := seedEvent(t, svc, 10, time.Now().Add(time.Hour))

		count, err := svc.JoinEvent(ctx, event.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = svc.JoinEvent(ctx, event.ID, "user-2")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)
		_, err := svc.JoinEvent(ctx, bson.NewObjectID(), "user-1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("duplicate registration rejected", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)
		event := seedEvent(t, svc, 10, time.Now().Add(time.Hour))

		_, err := svc.JoinEvent(ctx, event.ID, "user-1")
		require.NoError(t, err)

		_, err = svc.JoinEvent(ctx, event.ID, "user-1")
		assert.ErrorIs(t, err, ErrAlreadyRegistered)

		regs, err := svc.ListRegistrations(ctx, event.ID)
		require.NoError(t, err)
		assert.Len(t, regs, 1)
	})

	t.Run("deadline passed", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)
		event := seedEvent(t, svc, 10, time.Now().Add(time.Hour))

		svc.now = func() time.Time { return event.Deadline.Add(time.Minute) }
		_, err := svc.JoinEvent(ctx, event.ID, "user-1")
		assert.ErrorIs(t, err, ErrDeadlinePassed)
	})

	t.Run("join at exactly the deadline is allowed", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)
		event := seedEvent(t, svc, 10, time.Now().Add(time.Hour))

		svc.now = func() time.Time { return event.Deadline }
		count, err := svc.JoinEvent(ctx, event.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("full event rejected", func(t *testing.T) {
		svc, _, _ := newTestEventService(t)
		event := seedEvent(t, svc, 1, time.Now().Add(time.Hour))

		_, err := svc.JoinEvent(ctx, event.ID, "user-1")
		require.NoError(t, err)

		_, err = svc.JoinEvent(ctx, event.ID, "user-2")
		assert.ErrorIs(t, err, repository.ErrEventFull)
	})
}

// Two seats, three users: exactly two admissions regardless of arrival order.
func TestJoinEventLastSeatContention(t *testing.T) {
	ctx := context.Background()
	svc, _, regs := newTestEventService(t)
	event := seedEvent(t, svc, 2, time.Now().Add(time.Hour))

	users := []string{"alice", "bob", "carol"}
	var wg sync.WaitGroup
	errs := make([]error, len(users))
	for i, u := range users {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			_, errs[i] = svc.JoinEvent(ctx, event.ID, u)
		}(i, u)
	}
	wg.Wait()

	admitted := 0
	for _, err := range errs {
		if err == nil {
			admitted++
		} else {
			assert.ErrorIs(t, err, repository.ErrEventFull)
		}
	}
	assert.Equal(t, 2, admitted)

	stored, err := regs.ListByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	fresh, err := svc.events.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.RegisteredParticipants)
}

func TestJoinEventCapacityNeverExceeded(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestEventService(t)
	event := seedEvent(t, svc, 5, time.Now().Add(time.Hour))

	const contenders = 40
	var wg sync.WaitGroup
	var admitted int32
	var admittedMu sync.Mutex
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := svc.JoinEvent(ctx, event.ID, fmt.Sprintf("user-%d", i)); err == nil {
				admittedMu.Lock()
				admitted++
				admittedMu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 5, admitted)

	fresh, err := svc.events.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fresh.RegisteredParticipants)
	assert.True(t, fresh.RegisteredParticipants <= fresh.MaxParticipants)
}

func TestListRegistrationsUnknownEvent(t *testing.T) {
	svc, _, _ := newTestEventService(t)
	_, err := svc.ListRegistrations(context.Background(), bson.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
