package dto

import (
	"errors"
	"time"
)

type NoticeRequestDTO struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Importance  string    `json:"importance"`
	Deadline    time.Time `json:"deadline"`
}

func (n NoticeRequestDTO) Validate() error {
	if n.Title == "" || n.Description == "" || n.Importance == "" || n.Deadline.IsZero() {
		return errors.New("missing required fields")
	}
	return nil
}
