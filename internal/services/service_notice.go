package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"campus-connect/dto"
	"campus-connect/internal/models"
)

type NoticeStore interface {
	Insert(ctx context.Context, notice models.Notice) error
	List(ctx context.Context) ([]models.Notice, error)
}

type NoticeService struct {
	notices NoticeStore
	now     func() time.Time
}

func NewNoticeService(notices NoticeStore) *NoticeService {
	return &NoticeService{notices: notices, now: time.Now}
}

func (s *NoticeService) CreateNotice(ctx context.Context, body dto.NoticeRequestDTO) (models.Notice, error) {
	if err := body.Validate(); err != nil {
		return models.Notice{}, err
	}

	notice := models.Notice{
		ID:          bson.NewObjectID(),
		Title:       body.Title,
		Description: body.Description,
		Importance:  body.Importance,
		Deadline:    body.Deadline,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.notices.Insert(ctx, notice); err != nil {
		return models.Notice{}, err
	}
	return notice, nil
}

func (s *NoticeService) ListNotices(ctx context.Context) ([]models.Notice, error) {
	return s.notices.List(ctx)
}
