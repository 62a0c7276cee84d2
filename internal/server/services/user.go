// Package services contains server-side business logic. This file implements
// AccountService, which handles registration, credential verification,
// bearer-token issuance, and profile maintenance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/retail-hub/accounts/internal/common"
	"github.com/retail-hub/accounts/internal/cryptox"
	"github.com/retail-hub/accounts/internal/dbx"
	"github.com/retail-hub/accounts/internal/server/auth"
	"github.com/retail-hub/accounts/internal/server/config"
	"github.com/retail-hub/accounts/internal/server/models"
	"github.com/retail-hub/accounts/internal/server/repositories/repomanager"
)

// AddressInput is the optional postal address block of a registration or
// profile update request.
type AddressInput struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ProfileInput carries the optional profile block of a registration request.
type ProfileInput struct {
	GivenName  string        `json:"givenName"`
	FamilyName string        `json:"familyName"`
	AvatarURL  string        `json:"avatarUrl"`
	Address    *AddressInput `json:"address"`
}

// RegisterInput is everything needed to create an account.
type RegisterInput struct {
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Profile  *ProfileInput `json:"profile"`
}

// Session is the result of a successful login: a signed bearer token, its
// lifetime in seconds, and the authenticated user.
type Session struct {
	Token     string
	ExpiresIn int
	User      *models.User
}

// AccountService provides account-related operations:
// - Register: create users with hashed credentials
// - Login: verify credentials and mint a bearer token
// - GetUser / UpdateProfile: read and maintain the account record
type AccountService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	hashParams            cryptox.Params
}

// NewAccountService constructs an AccountService using repositories and
// server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		hashParams:            cryptox.DefaultParams(),
	}
}

// Register validates the input, hashes the password, and creates the account.
// Taken usernames or emails yield common.ErrorAlreadyExists; bad input yields
// an error wrapping common.ErrorValidation.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateRegisterInput(in); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	// Pre-check for a friendly error; the unique indexes stay the authority
	// under concurrent registrations.
	taken, err := repo.LoginTaken(ctx, in.Username, in.Email, "")
	if err != nil {
		return nil, fmt.Errorf("error checking login availability: %w", err)
	}
	if taken {
		return nil, common.ErrorAlreadyExists
	}

	hash, err := cryptox.HashPassword(in.Password, s.hashParams)
	if err != nil {
		return nil, common.ErrorInternal
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           "usr_" + uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyProfileInput(user, in.Profile)

	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a Session with a
// freshly minted bearer token. Unknown logins and wrong passwords both yield
// common.ErrorUnauthorized so callers cannot probe for account existence;
// missing fields are a validation error, not an authentication failure.
func (s *AccountService) Login(ctx context.Context, login, password string) (*Session, error) {
	if login == "" {
		return nil, fmt.Errorf("%w: usernameOrEmail is required", common.ErrorValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.IssueToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Session{
		Token:     token,
		ExpiresIn: int(s.tokenValidityDuration.Seconds()),
		User:      user,
	}, nil
}

// GetUser returns the account record for the given id.
func (s *AccountService) GetUser(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, id)
}

// UpdateProfile applies a partial update to the user's record inside a
// transaction. Changing username or email to one owned by another account
// yields common.ErrorAlreadyExists.
func (s *AccountService) UpdateProfile(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	var updated *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		newUsername := changedIdentity(upd.Username, user.Username)
		newEmail := changedIdentity(upd.Email, user.Email)
		if newUsername != "" || newEmail != "" {
			taken, err := repo.LoginTaken(ctx, newUsername, newEmail, user.ID)
			if err != nil {
				return fmt.Errorf("error checking login availability: %w", err)
			}
			if taken {
				return common.ErrorAlreadyExists
			}
		}

		user.Apply(upd)
		user.UpdatedAt = time.Now().UTC()

		if err := repo.Save(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// --- helpers below ---

// validateRegisterInput requires the three identity fields to be present.
// Their content is not policed beyond that.
func validateRegisterInput(in RegisterInput) error {
	if in.Username == "" {
		return fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if in.Email == "" {
		return fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	if in.Password == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	return nil
}

// changedIdentity returns the candidate identity value when it actually
// differs from the current one, and "" otherwise.
func changedIdentity(candidate *string, current string) string {
	if candidate == nil || *candidate == "" || *candidate == current {
		return ""
	}
	return *candidate
}

func applyProfileInput(u *models.User, p *ProfileInput) {
	if p == nil {
		return
	}
	u.GivenName = optional(p.GivenName)
	u.FamilyName = optional(p.FamilyName)
	u.AvatarURL = optional(p.AvatarURL)
	if a := p.Address; a != nil {
		u.AddressLine1 = optional(a.Line1)
		u.AddressLine2 = optional(a.Line2)
		u.AddressCity = optional(a.City)
		u.AddressState = optional(a.State)
		u.AddressPostalCode = optional(a.PostalCode)
		u.AddressCountry = optional(a.Country)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
