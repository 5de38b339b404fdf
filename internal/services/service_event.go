package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"campus-connect/dto"
	"campus-connect/internal/models"
	"campus-connect/internal/repository"
)

var (
	// ErrDeadlinePassed is returned when a join arrives after the event's
	// registration deadline.
	ErrDeadlinePassed = errors.New("registration deadline has passed")
	// ErrAlreadyRegistered is returned on a repeat join by the same user.
	ErrAlreadyRegistered = errors.New("already registered for this event")
)

// EventStore is the slice of the document store the event service needs.
type EventStore interface {
	Insert(ctx context.Context, event models.Event) error
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
}

// RegistrationStore owns the registration documents and the atomic commit of
// a join. RegisterAtomic must re-verify capacity and perform the increment
// and the insert as one unit, returning the new counter value or
// repository.ErrEventFull.
type RegistrationStore interface {
	Exists(ctx context.Context, eventID bson.ObjectID, userID string) (bool, error)
	RegisterAtomic(ctx context.Context, eventID bson.ObjectID, userID string) (int, error)
	ListByEvent(ctx context.Context, eventID bson.ObjectID) ([]models.EventRegistration, error)
}

type EventService struct {
	events        EventStore
	registrations RegistrationStore
	log           *logrus.Logger
	now           func() time.Time
}

func NewEventService(events EventStore, registrations RegistrationStore, log *logrus.Logger) *EventService {
	return &EventService{
		events:        events,
		registrations: registrations,
		log:           log,
		now:           time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, body dto.EventRequestDTO, createdBy string) (models.Event, error) {
	if err := body.Validate(); err != nil {
		return models.Event{}, err
	}

	event := models.Event{
		ID:                     bson.NewObjectID(),
		Title:                  body.Title,
		Description:            body.Description,
		MaxParticipants:        body.MaxParticipants,
		RegisteredParticipants: 0,
		Deadline:               body.Deadline,
		Date:                   body.Date,
		Time:                   body.Time,
		Venue:                  body.Venue,
		Image:                  body.Image,
		CreatedAt:              s.now().UTC(),
		CreatedBy:              createdBy,
	}

	if err := s.events.Insert(ctx, event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.events.List(ctx)
}

// JoinEvent admits one user to an event. Preconditions are checked in order,
// each surfacing its own error: event exists, capacity remains, deadline not
// passed, user not yet registered. The capacity pre-check only short-circuits
// the obviously-full case; the authoritative check happens again inside
// RegisterAtomic, where the increment and the registration insert commit
// together. The duplicate check stays outside the transaction: two
// simultaneous joins by the same user can both pass it. That race is
// accepted, unlike the cross-user capacity race, which the transaction
// closes.
func (s *EventService) JoinEvent(ctx context.Context, eventID bson.ObjectID, userID string) (int, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return 0, err
	}

	if event.IsFull() {
		return 0, repository.ErrEventFull
	}

	if s.now().After(event.Deadline) {
		return 0, ErrDeadlinePassed
	}

	registered, err := s.registrations.Exists(ctx, eventID, userID)
	if err != nil {
		return 0, err
	}
	if registered {
		return 0, ErrAlreadyRegistered
	}

	count, err := s.registrations.RegisterAtomic(ctx, eventID, userID)
	if err != nil {
		return 0, err
	}

	s.log.WithFields(logrus.Fields{
		"event": eventID.Hex(),
		"user":  userID,
		"count": count,
	}).Info("event registration committed")

	return count, nil
}

func (s *EventService) ListRegistrations(ctx context.Context, eventID bson.ObjectID) ([]models.EventRegistration, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.registrations.ListByEvent(ctx, eventID)
}
