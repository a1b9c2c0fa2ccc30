package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"readandlead/cmd/fx/accountfx"
	"readandlead/cmd/fx/clientsfx"
	"readandlead/cmd/fx/controllersfx"
	"readandlead/cmd/fx/dbfx"
	"readandlead/cmd/fx/discoveryfx"
	"readandlead/cmd/fx/placefx"
	"readandlead/cmd/fx/postfx"
	"readandlead/cmd/fx/tripfx"
	"readandlead/internal/api/controllers"
	"readandlead/pkg/middleware"
	"readandlead/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		dbfx.Module,
		clientsfx.Module,
		accountfx.Module,
		postfx.Module,
		placefx.Module,
		tripfx.Module,
		discoveryfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	postController *controllers.PostController,
	placeController *controllers.PlaceController,
	tripController *controllers.TripController,
	discoveryController *controllers.DiscoveryController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, postController, placeController, tripController, discoveryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	postController *controllers.PostController,
	placeController *controllers.PlaceController,
	tripController *controllers.TripController,
	discoveryController *controllers.DiscoveryController) {

	r.GET("/", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"service": "readandlead", "docs": "/api"}, "Read&Lead API")
	})

	api := r.Group("/api")

	api.GET("/ping", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"pong": true}, "pong")
	})

	authGroup := api.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	api.GET("/users/count", accountController.CountUsers)

	postsGroup := api.Group("/neighbor-posts")
	postsGroup.GET("", postController.ListPosts)
	postsGroup.GET("/:postId", postController.GetPost)
	postsGroup.POST("", middleware.JWTAuthMiddleware(), postController.CreatePost)
	postsGroup.PUT("/:postId", middleware.JWTAuthMiddleware(), postController.UpdatePost)
	postsGroup.DELETE("/:postId", middleware.JWTAuthMiddleware(), postController.DeletePost)

	placesGroup := api.Group("/places")
	placesGroup.GET("/search", placeController.SearchPlaces)
	placesGroup.GET("", middleware.JWTAuthMiddleware(), placeController.ListSavedPlaces)
	placesGroup.POST("/upsert", middleware.JWTAuthMiddleware(), placeController.UpsertPlace)

	tripsGroup := api.Group("/trips")
	tripsGroup.POST("/:tripId/plan", tripController.GeneratePlan)
	tripsGroup.POST("/stops/resolve", tripController.ResolveStop)
	tripsGroup.POST("/stops/sequence", tripController.SequenceStops)

	api.GET("/agency-trips/list", discoveryController.AgencyTrips)
	api.GET("/culture/nearby", discoveryController.CultureNearby)
	api.GET("/kopis/perform", discoveryController.Performances)
	api.GET("/tour/search", discoveryController.TourSearch)
	api.GET("/library/recommendations", discoveryController.BookRecommendations)
}
