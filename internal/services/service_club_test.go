package services

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"campus-connect/dto"
	"campus-connect/internal/models"
	"campus-connect/internal/repository"
)

type fakeClubStore struct {
	mu    sync.Mutex
	clubs map[bson.ObjectID]*models.Club
}

func newFakeClubStore() *fakeClubStore {
	return &fakeClubStore{clubs: make(map[bson.ObjectID]*models.Club)}
}

func (f *fakeClubStore) Insert(_ context.Context, club models.Club) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clubs[club.ID] = &club
	return nil
}

func (f *fakeClubStore) GetByID(_ context.Context, id bson.ObjectID) (*models.Club, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	club, ok := f.clubs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *club
	copied.Members = append([]string(nil), club.Members...)
	copied.PendingRequests = append([]models.JoinRequest(nil), club.PendingRequests...)
	return &copied, nil
}

func (f *fakeClubStore) List(_ context.Context) ([]models.Club, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Club, 0, len(f.clubs))
	for _, c := range f.clubs {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeClubStore) SetPendingRequests(_ context.Context, clubID bson.ObjectID, pending []models.JoinRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	club, ok := f.clubs[clubID]
	if !ok {
		return repository.ErrNotFound
	}
	club.PendingRequests = pending
	return nil
}

func (f *fakeClubStore) ApproveRequest(_ context.Context, clubID bson.ObjectID, userID string, pending []models.JoinRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	club, ok := f.clubs[clubID]
	if !ok {
		return repository.ErrNotFound
	}
	club.PendingRequests = pending
	if !club.HasMember(userID) {
		club.Members = append(club.Members, userID)
	}
	return nil
}

func (f *fakeClubStore) RemoveMember(_ context.Context, clubID bson.ObjectID, userID string, pending []models.JoinRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	club, ok := f.clubs[clubID]
	if !ok {
		return repository.ErrNotFound
	}
	club.PendingRequests = pending
	members := club.Members[:0]
	for _, m := range club.Members {
		if m != userID {
			members = append(members, m)
		}
	}
	club.Members = members
	return nil
}

func newTestClubService(t *testing.T) (*ClubService, *fakeClubStore) {
	t.Helper()
	store := newFakeClubStore()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewClubService(store, log), store
}

func seedClub(t *testing.T, svc *ClubService) models.Club {
	t.Helper()
	club, err := svc.CreateClub(context.Background(), dto.ClubRequestDTO{
		Name:        "Robotics Club",
		Description: "We build robots",
		Lead:        "prof-x",
	}, "admin-1")
	require.NoError(t, err)
	return club
}

func pendingUserIDs(club *models.Club) []string {
	ids := make([]string, 0, len(club.PendingRequests))
	for _, r := range club.PendingRequests {
		ids = append(ids, r.UserID)
	}
	return ids
}

func TestRequestJoin(t *testing.T) {
	ctx := context.Background()

	t.Run("queues a pending request", func(t *testing.T) {
		svc, store := newTestClubService(t)
		club := seedClub(t, svc)

		err := svc.RequestJoin(ctx, club.ID, "user-1", "Alice", "alice@example.com")
		require.NoError(t, err)

		got, err := store.GetByID(ctx, club.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"user-1"}, pendingUserIDs(got))
		assert.Empty(t, got.Members)
	})

	t.Run("resubmission keeps one entry and latest details", func(t *testing.T) {
		svc, store := newTestClubService(t)
		club := seedClub(t, svc)

		require.NoError(t, svc.RequestJoin(ctx, club.ID, "user-1", "Alice", "alice@example.com"))
		require.NoError(t, svc.RequestJoin(ctx, club.ID, "user-1", "Alice B", "alice.b@example.com"))

		got, err := store.GetByID(ctx, club.ID)
		require.NoError(t, err)
		require.Len(t, got.PendingRequests, 1)
		assert.Equal(t, "Alice B", got.PendingRequests[0].Name)
		assert.Equal(t, "alice.b@example.com", got.PendingRequests[0].Email)
	})

	t.Run("member cannot rejoin", func(t *testing.T) {
		svc, _ := newTestClubService(t)
		club := seedClub(t, svc)

		require.NoError(t, svc.RequestJoin(ctx, club.ID, "user-1", "Alice", "alice@example.com"))
		require.NoError(t, svc.Approve(ctx, club.ID, "user-1"))

		err := svc.RequestJoin(ctx, club.ID, "user-1", "Alice", "alice@example.com")
		assert.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("unknown club", func(t *testing.T) {
		svc, _ := newTestClubService(t)
		err := svc.RequestJoin(ctx, bson.NewObjectID(), "user-1", "Alice", "alice@example.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("moves user from pending to members", func(t *testing.T) {
		svc, store := newTestClubService(t)
		club := seedClub(t, svc)

		require.NoError(t, svc.RequestJoin(ctx, club.ID, "user-1", "Alice", "alice@example.com"))
		require.NoError(t, svc.RequestJoin(ctx, club.ID, "user-2", "Bob", "bob@example.com"))
		require.NoError(t, svc.Approve(ctx, club.ID, "user-1"))

		got, err := store.GetByID(ctx, club.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"user-1"}, got.Members)
		assert.Equal(t, []string{"user-2"}, pendingUserIDs(got))
	})

	t.Run("approve without pending entry still grants membership", func(t *testing.T) {
		svc, store := newTestClubService(t)
		club := seedClub(t, svc)

		require.NoError(t, svc.Approve(ctx, club.ID, "user-1"))

		got, err := store.GetByID(ctx, club.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"user-1"}, got.Members)
	})

	t.Run("double approve keeps one membership", func(t *testing.T) {
		svc, store := newTestClubService(t)
		club := seedClub(t, svc)

		require.NoError(t, svc.RequestJoin(ctx, club.ID, "user-1", "Alice", "alice@example.com"))
		require.NoError(t, svc.Approve(ctx, club.ID, "user-1"))
		require.NoError(t, svc.Approve(ctx, club.ID, "user-1"))

		got, err := store.GetByID(ctx, club.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"user-1"}, got.Members)
	})
}

func TestReject(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestClubService(t)
	club := seedClub(t, svc)

	require.NoError(t, svc.RequestJoin(ctx, club.ID, "user-1", "Alice", "alice@example.com"))
	require.NoError(t, svc.Reject(ctx, club.ID, "user-1"))

	got, err := store.GetByID(ctx, club.ID)
	require.NoError(t, err)
	assert.Empty(t, got.PendingRequests)
	assert.Empty(t, got.Members)

	// Rejected user may apply again.
	require.NoError(t, svc.RequestJoin(ctx, club.ID, "user-1", "Alice", "alice@example.com"))
	got, err = store.GetByID(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, pendingUserIDs(got))
}

func TestLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("removes membership", func(t *testing.T) {
		svc, store := newTestClubService(t)
		club := seedClub(t, svc)

		require.NoError(t, svc.RequestJoin(ctx, club.ID, "user-1", "Alice", "alice@example.com"))
		require.NoError(t, svc.Approve(ctx, club.ID, "user-1"))
		require.NoError(t, svc.Leave(ctx, club.ID, "user-1"))

		got, err := store.GetByID(ctx, club.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Members)
		assert.Empty(t, got.PendingRequests)
	})

	t.Run("withdraws a pending request", func(t *testing.T) {
		svc, store := newTestClubService(t)
		club := seedClub(t, svc)

		require.NoError(t, svc.RequestJoin(ctx, club.ID, "user-1", "Alice", "alice@example.com"))
		require.NoError(t, svc.Leave(ctx, club.ID, "user-1"))

		got, err := store.GetByID(ctx, club.ID)
		require.NoError(t, err)
		assert.Empty(t, got.PendingRequests)
	})

	t.Run("no-op for non-member", func(t *testing.T) {
		svc, _ := newTestClubService(t)
		club := seedClub(t, svc)
		assert.NoError(t, svc.Leave(ctx, club.ID, "stranger"))
	})
}

func TestListPendingRequests(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestClubService(t)

	quiet := seedClub(t, svc)
	busy, err := svc.CreateClub(ctx, dto.ClubRequestDTO{
		Name:        "Chess Club",
		Description: "Checkmate",
		Lead:        "prof-y",
	}, "admin-1")
	require.NoError(t, err)

	require.NoError(t, svc.RequestJoin(ctx, busy.ID, "user-1", "Alice", "alice@example.com"))

	result, err := svc.ListPendingRequests(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, busy.ID.Hex(), result[0].ID)
	assert.NotEqual(t, quiet.ID.Hex(), result[0].ID)
	require.Len(t, result[0].PendingRequests, 1)
	assert.Equal(t, "user-1", result[0].PendingRequests[0].UserID)
}
