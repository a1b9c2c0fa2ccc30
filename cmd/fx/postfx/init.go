package postfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"readandlead/internal/repositories"
	"readandlead/internal/services"
)

var Module = fx.Provide(
	providePostService, providePostRepo)

func providePostRepo(db *gorm.DB) repositories.PostRepository {
	return repositories.NewPostRepository(db)
}

func providePostService(postRepo repositories.PostRepository) services.PostServiceInterface {
	return services.NewPostService(postRepo)
}
