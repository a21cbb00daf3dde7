package calculator

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"calculation-service/internal/models"
	"calculation-service/internal/storage"
)

func setupStore(t *testing.T) (*RecordStore, *gorm.DB, uuid.UUID) {
	t.Helper()
	db, err := storage.Open(":memory:")
	require.NoError(t, err)

	owner := &models.User{
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john.doe@example.com",
		Username:       "johndoe",
		HashedPassword: "x",
	}
	require.NoError(t, db.Create(owner).Error)

	return NewRecordStore(db), db, owner.ID
}

func TestRecordStore_Create(t *testing.T) {
	store, db, owner := setupStore(t)

	calc, err := store.Create(context.Background(), 12.5, 2.5, OpDivide, owner)
	require.NoError(t, err)
	require.NotNil(t, calc)

	assert.NotEqual(t, uuid.Nil, calc.ID)
	assert.Equal(t, 5.0, calc.Result)
	assert.Equal(t, string(OpDivide), calc.Type)
	assert.Equal(t, owner, calc.UserID)

	var stored models.Calculation
	require.NoError(t, db.First(&stored, "id = ?", calc.ID).Error)
	assert.Equal(t, 5.0, stored.Result)
}

func TestRecordStore_Create_DivisionByZero(t *testing.T) {
	store, db, owner := setupStore(t)

	_, err := store.Create(context.Background(), 10, 0, OpDivide, owner)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// Nothing is persisted when validation fails.
	var count int64
	require.NoError(t, db.Model(&models.Calculation{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecordStore_Create_UnknownOwner(t *testing.T) {
	store, _, _ := setupStore(t)

	// The foreign key rejects records without an owning account.
	_, err := store.Create(context.Background(), 1, 2, OpAdd, uuid.New())
	assert.Error(t, err)
}

func TestRecordStore_ListByOwner(t *testing.T) {
	store, db, owner := setupStore(t)

	other := &models.User{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane.doe@example.com",
		Username:       "janedoe",
		HashedPassword: "x",
	}
	require.NoError(t, db.Create(other).Error)

	_, err := store.Create(context.Background(), 1, 2, OpAdd, owner)
	require.NoError(t, err)
	_, err = store.Create(context.Background(), 3, 4, OpMultiply, owner)
	require.NoError(t, err)
	_, err = store.Create(context.Background(), 5, 6, OpAdd, other.ID)
	require.NoError(t, err)

	calcs, err := store.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, calcs, 2)
	for _, calc := range calcs {
		assert.Equal(t, owner, calc.UserID)
	}
}

func TestRecordStore_Get(t *testing.T) {
	store, db, owner := setupStore(t)

	created, err := store.Create(context.Background(), 2, 3, OpMultiply, owner)
	require.NoError(t, err)

	found, err := store.Get(context.Background(), created.ID, owner)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 6.0, found.Result)

	// Records are invisible outside their owning account.
	other := &models.User{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane.doe@example.com",
		Username:       "janedoe",
		HashedPassword: "x",
	}
	require.NoError(t, db.Create(other).Error)

	found, err = store.Get(context.Background(), created.ID, other.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = store.Get(context.Background(), uuid.New(), owner)
	require.NoError(t, err)
	assert.Nil(t, found)
}
