package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"readandlead/internal/models/db_models"
)

type PostRepository interface {
	Insert(ctx context.Context, post *db_models.NeighborPost) error
	FindById(ctx context.Context, id string) (*db_models.NeighborPost, error)
	ListRecent(ctx context.Context, limit, offset int) ([]db_models.NeighborPost, error)
	Update(ctx context.Context, post *db_models.NeighborPost) error
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db: db,
	}
}

func (p *postRepository) Insert(ctx context.Context, post *db_models.NeighborPost) error {
	return p.db.WithContext(ctx).Create(post).Error
}

func (p *postRepository) FindById(ctx context.Context, id string) (*db_models.NeighborPost, error) {
	var post db_models.NeighborPost
	err := p.db.WithContext(ctx).Preload("Author").First(&post, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (p *postRepository) ListRecent(ctx context.Context, limit, offset int) ([]db_models.NeighborPost, error) {
	var posts []db_models.NeighborPost
	err := p.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (p *postRepository) Update(ctx context.Context, post *db_models.NeighborPost) error {
	return p.db.WithContext(ctx).Save(post).Error
}

func (p *postRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&db_models.NeighborPost{}, "id = ?", id).Error
}
