package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDMixin gives a model a random UUID primary key that is assigned before insert.
type UUIDMixin struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
}

func (m *UUIDMixin) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TimeStampedMixin tracks creation and last modification time.
type TimeStampedMixin struct {
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	ModifiedAt time.Time `gorm:"autoUpdateTime" json:"modified_at"`
}

// Displayer is implemented by models that can be rendered as admin list rows.
type Displayer interface {
	DisplayValue(column string) (any, bool)
}
