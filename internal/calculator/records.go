package calculator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"calculation-service/internal/models"
)

// RecordStore persists calculations for their owning account.
type RecordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Create computes the result and stores the record in a single insert. The
// caller is responsible for making sure ownerID is the authenticated account.
func (s *RecordStore) Create(ctx context.Context, a, b float64, op Operation, ownerID uuid.UUID) (*models.Calculation, error) {
	result, err := Compute(a, b, op)
	if err != nil {
		return nil, err
	}

	calc := &models.Calculation{
		A:      a,
		B:      b,
		Type:   string(op),
		Result: result,
		UserID: ownerID,
	}
	if err := s.db.WithContext(ctx).Create(calc).Error; err != nil {
		return nil, fmt.Errorf("save calculation: %w", err)
	}
	return calc, nil
}

// ListByOwner returns the account's calculations, newest first.
func (s *RecordStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Calculation, error) {
	var calcs []models.Calculation
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&calcs).Error
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return calcs, nil
}

// Get returns one record scoped to its owner, or nil when it does not exist
// or belongs to someone else.
func (s *RecordStore) Get(ctx context.Context, id, ownerID uuid.UUID) (*models.Calculation, error) {
	var calc models.Calculation
	err := s.db.WithContext(ctx).First(&calc, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("look up calculation: %w", err)
	}
	return &calc, nil
}
