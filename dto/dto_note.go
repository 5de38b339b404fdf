package dto

import "errors"

type NoteRequestDTO struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Branch   string `json:"branch"`
	Semester string `json:"semester"`
}

func (n NoteRequestDTO) Validate() error {
	if n.Title == "" || n.Link == "" || n.Branch == "" || n.Semester == "" {
		return errors.New("missing required fields")
	}
	return nil
}
