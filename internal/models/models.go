package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered account. Email and username are each globally unique;
// the password hash is never empty once the row exists.
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName      string     `gorm:"not null;index" json:"first_name"`
	LastName       string     `gorm:"not null;index" json:"last_name"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	HashedPassword string     `gorm:"not null" json:"-"`
	IsVerified     bool       `gorm:"default:false" json:"is_verified"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Calculations []Calculation `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Calculation is one stored arithmetic operation. Result is always derived
// from the operands, never supplied by the caller.
type Calculation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	A         float64   `gorm:"not null" json:"a"`
	B         float64   `gorm:"not null" json:"b"`
	Type      string    `gorm:"not null" json:"type"`
	Result    float64   `json:"result"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Calculation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
