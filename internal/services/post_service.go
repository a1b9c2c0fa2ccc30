package services

import (
	"context"
	"encoding/json"
	"log"

	"readandlead/internal/models/db_models"
	"readandlead/internal/models/request_models"
	"readandlead/internal/models/response_models"
	"readandlead/internal/repositories"
	"readandlead/pkg/utils"

	"github.com/google/uuid"
)

type PostServiceInterface interface {
	CreatePost(ctx context.Context, authorID string, request request_models.CreatePostRequest) (response_models.PostResponse, error)
	GetPost(ctx context.Context, id string) (response_models.PostResponse, error)
	ListPosts(ctx context.Context, limit, offset int) ([]response_models.PostResponse, error)
	UpdatePost(ctx context.Context, authorID, id string, request request_models.UpdatePostRequest) (response_models.PostResponse, error)
	DeletePost(ctx context.Context, authorID, id string) error
}

type PostService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostServiceInterface {
	return &PostService{
		postRepo: postRepo,
	}
}

func (p *PostService) CreatePost(ctx context.Context, authorID string, request request_models.CreatePostRequest) (response_models.PostResponse, error) {
	author, err := uuid.Parse(authorID)
	if err != nil {
		return response_models.PostResponse{}, utils.ErrInvalidInput
	}

	post := &db_models.NeighborPost{
		AuthorID:    author,
		Title:       request.Title,
		Cover:       request.Cover,
		ContentHTML: request.ContentHTML,
		Images:      encodeImages(request.Images),
	}
	if err := p.postRepo.Insert(ctx, post); err != nil {
		log.Printf("WARN post insert failed: %v", err)
		return response_models.PostResponse{}, utils.ErrDatabaseError
	}

	saved, err := p.postRepo.FindById(ctx, post.ID.String())
	if err != nil || saved == nil {
		return toPostResponse(post), nil
	}
	return toPostResponse(saved), nil
}

func (p *PostService) GetPost(ctx context.Context, id string) (response_models.PostResponse, error) {
	post, err := p.postRepo.FindById(ctx, id)
	if err != nil {
		return response_models.PostResponse{}, utils.ErrDatabaseError
	}
	if post == nil {
		return response_models.PostResponse{}, utils.ErrRecordNotFound
	}
	return toPostResponse(post), nil
}

func (p *PostService) ListPosts(ctx context.Context, limit, offset int) ([]response_models.PostResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := p.postRepo.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	return out, nil
}

func (p *PostService) UpdatePost(ctx context.Context, authorID, id string, request request_models.UpdatePostRequest) (response_models.PostResponse, error) {
	post, err := p.postRepo.FindById(ctx, id)
	if err != nil {
		return response_models.PostResponse{}, utils.ErrDatabaseError
	}
	if post == nil {
		return response_models.PostResponse{}, utils.ErrRecordNotFound
	}
	if post.AuthorID.String() != authorID {
		return response_models.PostResponse{}, utils.ErrForbidden
	}

	if request.Title != nil {
		post.Title = *request.Title
	}
	if request.Cover != nil {
		post.Cover = *request.Cover
	}
	if request.ContentHTML != nil {
		post.ContentHTML = *request.ContentHTML
	}
	if request.Images != nil {
		post.Images = encodeImages(*request.Images)
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return response_models.PostResponse{}, utils.ErrDatabaseError
	}
	return toPostResponse(post), nil
}

func (p *PostService) DeletePost(ctx context.Context, authorID, id string) error {
	post, err := p.postRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrRecordNotFound
	}
	if post.AuthorID.String() != authorID {
		return utils.ErrForbidden
	}
	if err := p.postRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func encodeImages(images []string) string {
	if len(images) == 0 {
		return ""
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return ""
	}
	return string(raw)
}

func decodeImages(raw string) []string {
	if raw == "" {
		return nil
	}
	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		return nil
	}
	return images
}

func toPostResponse(post *db_models.NeighborPost) response_models.PostResponse {
	author := ""
	if post.Author != nil {
		author = post.Author.DisplayName
	}
	return response_models.PostResponse{
		ID:          post.ID.String(),
		Author:      author,
		Title:       post.Title,
		Cover:       post.Cover,
		ContentHTML: post.ContentHTML,
		Images:      decodeImages(post.Images),
		Date:        post.CreatedAt.Format("2006-01-02"),
	}
}
