package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"time"
)

// BaseModel tracks which import wrote a row. Source timestamps live on the
// entity models as opaque strings.
type BaseModel struct {
	ImportID    uuid.UUID      `gorm:"type:uuid;index"`
	ImportedAt  int64          `gorm:"autoCreateTime"`
	RefreshedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ImportID == uuid.Nil {
		b.ImportID = uuid.New()
	}
	now := time.Now().Unix()
	b.ImportedAt = now
	b.RefreshedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.RefreshedAt = time.Now().Unix()
	return nil
}
