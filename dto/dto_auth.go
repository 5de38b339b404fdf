package dto

import "errors"

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"` // "user" or "admin"
	AdminCode string `json:"adminCode,omitempty"`
}

func (r RegisterRequest) Validate() error {
	if r.Email == "" || r.Password == "" || r.Role == "" {
		return errors.New("email, password, and role are required")
	}
	if r.Role != "user" && r.Role != "admin" {
		return errors.New("role must be user or admin")
	}
	if r.Role == "admin" && r.AdminCode == "" {
		return errors.New("admin code is required")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
	ID      string `json:"id"`
}
