package db_models

import "github.com/google/uuid"

// SavedPlace is a place the user pinned from an external provider. The
// composite unique index makes upserts idempotent per user and provider.
type SavedPlace struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_source_external;not null"`
	Source     string    `gorm:"uniqueIndex:idx_user_source_external;not null"`
	ExternalID string    `gorm:"uniqueIndex:idx_user_source_external;not null"`
	Name       string
	Address    string
	Lat        *float64
	Lng        *float64
}
