package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"campus-connect/dto"
	"campus-connect/internal/models"
	"campus-connect/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidAdminCode   = errors.New("invalid admin code")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const tokenExpiry = time.Hour

type UserStore interface {
	Insert(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type AdminStore interface {
	Insert(ctx context.Context, admin models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	InsertCode(ctx context.Context, code models.AdminCode) error
}

type AuthService struct {
	users     UserStore
	admins    AdminStore
	jwtSecret []byte
	log       *logrus.Logger
	now       func() time.Time
}

func NewAuthService(users UserStore, admins AdminStore, jwtSecret string, log *logrus.Logger) *AuthService {
	return &AuthService{
		users:     users,
		admins:    admins,
		jwtSecret: []byte(jwtSecret),
		log:       log,
		now:       time.Now,
	}
}

// Register creates a student or, given a valid admin code, an administrator
// account. The email must be unused in both collections.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}
	if _, err := s.admins.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	if req.Role == "admin" {
		ok, err := s.admins.CodeExists(ctx, req.AdminCode)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrInvalidAdminCode
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	if req.Role == "admin" {
		admin := models.Admin{
			ID:        bson.NewObjectID(),
			Email:     email,
			Password:  string(hashed),
			CreatedAt: s.now().UTC(),
		}
		if err := s.admins.Insert(ctx, admin); err != nil {
			return "", err
		}
		return admin.ID.Hex(), nil
	}

	user := models.User{
		ID:        bson.NewObjectID(),
		Email:     email,
		Password:  string(hashed),
		CreatedAt: s.now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return "", err
	}
	return user.ID.Hex(), nil
}

// Login checks the credentials against both collections and issues a signed
// JWT carrying the principal {id, email, isAdmin}.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var (
		id      string
		hash    string
		isAdmin bool
	)

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		id, hash = user.ID.Hex(), user.Password
	case errors.Is(err, repository.ErrNotFound):
		admin, err := s.admins.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return dto.LoginResponse{}, ErrInvalidCredentials
			}
			return dto.LoginResponse{}, err
		}
		id, hash, isAdmin = admin.ID.Hex(), admin.Password, true
	default:
		return dto.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.signToken(id, email, isAdmin)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	s.log.WithFields(logrus.Fields{"user": id, "admin": isAdmin}).Info("login")

	return dto.LoginResponse{Token: token, IsAdmin: isAdmin, ID: id}, nil
}

func (s *AuthService) signToken(id, email string, isAdmin bool) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   id,
		"email": email,
		"admin": isAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenExpiry).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

// CreateAdminCode mints a new registration code for administrator sign-up.
func (s *AuthService) CreateAdminCode(ctx context.Context, createdBy string) (models.AdminCode, error) {
	code := models.AdminCode{
		ID:        bson.NewObjectID(),
		Code:      uuid.NewString(),
		CreatedAt: s.now().UTC(),
		CreatedBy: createdBy,
	}
	if err := s.admins.InsertCode(ctx, code); err != nil {
		return models.AdminCode{}, err
	}
	return code, nil
}
