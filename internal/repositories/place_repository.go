package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"readandlead/internal/models/db_models"
)

type PlaceRepository interface {
	Upsert(ctx context.Context, place *db_models.SavedPlace) error
	FindByUser(ctx context.Context, userID string) ([]db_models.SavedPlace, error)
	FindByExternalID(ctx context.Context, userID, source, externalID string) (*db_models.SavedPlace, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{
		db: db,
	}
}

// Upsert inserts or refreshes the pinned place keyed on (user, source,
// external id).
func (p *placeRepository) Upsert(ctx context.Context, place *db_models.SavedPlace) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "source"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "address", "lat", "lng", "updated_at",
			}),
		}).
		Create(place).Error
}

func (p *placeRepository) FindByUser(ctx context.Context, userID string) ([]db_models.SavedPlace, error) {
	var places []db_models.SavedPlace
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&places).Error
	return places, err
}

func (p *placeRepository) FindByExternalID(ctx context.Context, userID, source, externalID string) (*db_models.SavedPlace, error) {
	var place db_models.SavedPlace
	err := p.db.WithContext(ctx).
		Where("user_id = ? AND source = ? AND external_id = ?", userID, source, externalID).
		First(&place).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &place, nil
}
