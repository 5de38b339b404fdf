package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"campus-connect/dto"
	"campus-connect/internal/models"
)

type NoteStore interface {
	Insert(ctx context.Context, note models.Note) error
	List(ctx context.Context, branch, semester string) ([]models.Note, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Note, error)
}

type NoteService struct {
	notes NoteStore
	now   func() time.Time
}

func NewNoteService(notes NoteStore) *NoteService {
	return &NoteService{notes: notes, now: time.Now}
}

func (s *NoteService) UploadNote(ctx context.Context, body dto.NoteRequestDTO, uploaderID, uploaderEmail string) (models.Note, error) {
	if err := body.Validate(); err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		ID:            bson.NewObjectID(),
		Title:         body.Title,
		Link:          body.Link,
		Branch:        body.Branch,
		Semester:      body.Semester,
		UploaderID:    uploaderID,
		UploaderEmail: uploaderEmail,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.notes.Insert(ctx, note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *NoteService) ListNotes(ctx context.Context, branch, semester string) ([]models.Note, error) {
	return s.notes.List(ctx, branch, semester)
}

func (s *NoteService) GetNote(ctx context.Context, id bson.ObjectID) (*models.Note, error) {
	return s.notes.GetByID(ctx, id)
}
