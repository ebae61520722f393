package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/campus/internal/helpers"
	"github.com/joshua-takyi/campus/internal/metrics"
	"github.com/joshua-takyi/campus/internal/models"
)

type AuthService struct {
	userRepo models.UserRepo

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(userRepo models.UserRepo) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Login checks the credentials and returns the public profile. Unknown
// emails and wrong passwords yield the same ErrUnauthorized, and both paths
// pay for a bcrypt comparison.
func (as *AuthService) Login(ctx context.Context, email, password string) (profile *models.UserProfile, err error) {
	defer func() { metrics.TrackAuthOperation("login", statusOf(err)) }()

	email = helpers.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrUnauthorized
	}

	user, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			helpers.CheckPassword(as.fallbackHash(), password)
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !helpers.CheckPassword(user.PasswordHash, password) {
		return nil, ErrUnauthorized
	}
	return user.Profile(), nil
}

func (as *AuthService) Register(ctx context.Context, email, password string) (profile *models.UserProfile, err error) {
	defer func() { metrics.TrackAuthOperation("register", statusOf(err)) }()

	creds := &models.Credentials{
		Email:    helpers.NormalizeEmail(email),
		Password: password,
	}
	if err := models.Validate.Struct(creds); err != nil {
		fields, err := fieldErrors(err)
		if err != nil {
			return nil, fmt.Errorf("failed to validate credentials: %w", err)
		}
		return nil, &ValidationError{Fields: fields}
	}

	if _, err := as.userRepo.GetUserByEmail(ctx, creds.Email); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := helpers.HashPassword(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := as.userRepo.CreateUser(ctx, &models.User{
		Email:        creds.Email,
		PasswordHash: hash,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user.Profile(), nil
}

func (as *AuthService) fallbackHash() string {
	as.dummyOnce.Do(func() {
		hash, err := helpers.HashPassword(uuid.NewString())
		if err == nil {
			as.dummyHash = hash
		}
	})
	return as.dummyHash
}
