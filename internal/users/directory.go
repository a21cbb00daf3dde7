package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"calculation-service/internal/auth"
	"calculation-service/internal/models"
)

// Directory manages account creation, credential checks and lookups against
// the shared relational store.
type Directory struct {
	db    *gorm.DB
	codec *auth.TokenCodec
}

func NewDirectory(db *gorm.DB, codec *auth.TokenCodec) *Directory {
	return &Directory{db: db, codec: codec}
}

type RegistrationInput struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}

// Session is the outcome of a successful authentication.
type Session struct {
	Token string
	User  *models.User
}

// Register validates the input, rejects duplicate usernames or emails and
// persists a new unverified account with a hashed password.
func (d *Directory) Register(ctx context.Context, in RegistrationInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var existing models.User
	err := d.db.WithContext(ctx).
		Where("username = ? OR email = ?", in.Username, in.Email).
		First(&existing).Error
	switch {
	case err == nil:
		return nil, ErrDuplicate
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("look up existing account: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Username:       in.Username,
		HashedPassword: hash,
		IsVerified:     false,
	}
	if err := d.db.WithContext(ctx).Create(user).Error; err != nil {
		// The pre-check races against concurrent registrations; the unique
		// constraint is the authority.
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("account registered")
	return user, nil
}

// Authenticate looks up the account by username or email and checks the
// password. Unknown identifiers and wrong passwords both come back as a nil
// session with no error, so callers cannot tell which half was wrong. On
// success the account's last-login timestamp is updated and a token issued.
func (d *Directory) Authenticate(ctx context.Context, identifier, password string) (*Session, error) {
	var user models.User
	err := d.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("look up account: %w", err)
	}

	if !auth.CheckPassword(password, user.HashedPassword) {
		logrus.WithField("identifier", identifier).Warn("failed login attempt")
		return nil, nil
	}

	now := time.Now().UTC()
	if err := d.db.WithContext(ctx).Model(&user).Update("last_login", now).Error; err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	user.LastLogin = &now

	token, err := d.codec.Issue(user.ID.String(), 0)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	logrus.WithField("user_id", user.ID).Info("account authenticated")
	return &Session{Token: token, User: &user}, nil
}

// LookupByID returns the account with the given id. Malformed ids and missing
// rows are both absence, not failure.
func (d *Directory) LookupByID(ctx context.Context, id string) (*models.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	var user models.User
	err = d.db.WithContext(ctx).First(&user, "id = ?", uid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("look up account: %w", err)
	}
	return &user, nil
}

// Delete removes the account. Its calculation records go with it through the
// cascade on the foreign key.
func (d *Directory) Delete(ctx context.Context, id uuid.UUID) error {
	res := d.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete account: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	logrus.WithField("user_id", id).Info("account deleted")
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
