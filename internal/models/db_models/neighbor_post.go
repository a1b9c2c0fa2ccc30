package db_models

import "github.com/google/uuid"

type NeighborPost struct {
	BaseModel
	AuthorID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"not null"`
	Cover       string
	ContentHTML string `gorm:"type:text;not null"`
	// JSON-encoded list of image URLs, kept as text for sqlite compatibility.
	Images string `gorm:"type:text"`

	Author *Account `gorm:"foreignKey:AuthorID"`
}
