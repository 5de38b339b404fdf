package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"campus-connect/dto"
	"campus-connect/internal/models"
)

// ErrAlreadyMember is returned when a member submits a join request.
var ErrAlreadyMember = errors.New("already a member")

// ClubStore is the slice of the document store the club workflow needs.
// The mutation methods each map to a single document write; club operations
// carry no cross-operation isolation (concurrent admin actions on one club
// are last-write-wins, an accepted simplification at human-admin rates).
type ClubStore interface {
	Insert(ctx context.Context, club models.Club) error
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Club, error)
	List(ctx context.Context) ([]models.Club, error)
	SetPendingRequests(ctx context.Context, clubID bson.ObjectID, pending []models.JoinRequest) error
	ApproveRequest(ctx context.Context, clubID bson.ObjectID, userID string, pending []models.JoinRequest) error
	RemoveMember(ctx context.Context, clubID bson.ObjectID, userID string, pending []models.JoinRequest) error
}

type ClubService struct {
	clubs ClubStore
	log   *logrus.Logger
	now   func() time.Time
}

func NewClubService(clubs ClubStore, log *logrus.Logger) *ClubService {
	return &ClubService{clubs: clubs, log: log, now: time.Now}
}

func (s *ClubService) CreateClub(ctx context.Context, body dto.ClubRequestDTO, createdBy string) (models.Club, error) {
	if err := body.Validate(); err != nil {
		return models.Club{}, err
	}

	club := models.Club{
		ID:              bson.NewObjectID(),
		Name:            body.Name,
		Description:     body.Description,
		Lead:            body.Lead,
		Image:           body.Image,
		Members:         []string{},
		PendingRequests: []models.JoinRequest{},
		CreatedAt:       s.now().UTC(),
		CreatedBy:       createdBy,
	}

	if err := s.clubs.Insert(ctx, club); err != nil {
		return models.Club{}, err
	}
	return club, nil
}

func (s *ClubService) ListClubs(ctx context.Context) ([]models.Club, error) {
	return s.clubs.List(ctx)
}

// RequestJoin puts the user in the club's pending queue. Resubmission is
// idempotent: any prior entry for the user is dropped before the new one is
// appended, so at most one entry per user survives and the latest
// name/email wins.
func (s *ClubService) RequestJoin(ctx context.Context, clubID bson.ObjectID, userID, name, email string) error {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if club.HasMember(userID) {
		return ErrAlreadyMember
	}

	pending := append(club.WithoutPending(userID), models.JoinRequest{
		UserID: userID,
		Name:   name,
		Email:  email,
	})
	return s.clubs.SetPendingRequests(ctx, clubID, pending)
}

// Leave removes the user from members and from the pending queue together.
// Both removals are no-ops when the user is in neither.
func (s *ClubService) Leave(ctx context.Context, clubID bson.ObjectID, userID string) error {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	return s.clubs.RemoveMember(ctx, clubID, userID, club.WithoutPending(userID))
}

// Approve moves the user from the pending queue to the member set. It is not
// an error when no pending entry exists; the outcome is membership either
// way.
func (s *ClubService) Approve(ctx context.Context, clubID bson.ObjectID, userID string) error {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if err := s.clubs.ApproveRequest(ctx, clubID, userID, club.WithoutPending(userID)); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"club": clubID.Hex(), "user": userID}).Info("club join request approved")
	return nil
}

// Reject drops the user's pending entry; membership is unaffected.
func (s *ClubService) Reject(ctx context.Context, clubID bson.ObjectID, userID string) error {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	return s.clubs.SetPendingRequests(ctx, clubID, club.WithoutPending(userID))
}

// ListPendingRequests returns the clubs whose pending queue is non-empty,
// each annotated with its full pending list. Pure read projection.
func (s *ClubService) ListPendingRequests(ctx context.Context) ([]dto.PendingClubDTO, error) {
	clubs, err := s.clubs.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.PendingClubDTO, 0)
	for _, club := range clubs {
		if len(club.PendingRequests) == 0 {
			continue
		}
		result = append(result, dto.PendingClubDTO{
			ID:              club.ID.Hex(),
			Name:            club.Name,
			Description:     club.Description,
			Lead:            club.Lead,
			Image:           club.Image,
			Members:         club.Members,
			PendingRequests: club.PendingRequests,
		})
	}
	return result, nil
}
