package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/grigorishin/course-platform-api/database"
	"github.com/grigorishin/course-platform-api/handlers"
	auth_handlers "github.com/grigorishin/course-platform-api/handlers/auth"
	comment_handlers "github.com/grigorishin/course-platform-api/handlers/comment"
	country_handlers "github.com/grigorishin/course-platform-api/handlers/country"
	course_handlers "github.com/grigorishin/course-platform-api/handlers/course"
	library_handlers "github.com/grigorishin/course-platform-api/handlers/library"
	schedule_handlers "github.com/grigorishin/course-platform-api/handlers/schedule"
	"github.com/grigorishin/course-platform-api/services/storage"
	"github.com/grigorishin/course-platform-api/utils/auth"
	"github.com/grigorishin/course-platform-api/utils/cache"
	"github.com/grigorishin/course-platform-api/utils/middleware"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "course-platform-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret:        jwtSecret,
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        jwtIssuer,
	})

	db := store.DB()

	// Brute force protection is best-effort: without Redis the login
	// endpoint still works, just unthrottled.
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	var bruteForceProtection *middleware.BruteForceProtection
	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
	} else {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	var storageClient *storage.Client
	if cfg := storage.ConfigFromEnv(); cfg.IsConfigured() {
		storageClient, err = storage.NewClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize object storage: %v. Book uploads will be disabled.", err)
		}
	} else {
		log.Println("Object storage not configured. Book uploads will be disabled.")
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	commentHandler := comment_handlers.NewCommentHandler(db)
	countryHandler := country_handlers.NewCountryHandler(db)
	courseHandler := course_handlers.NewCourseHandler(db)
	libraryHandler := library_handlers.NewLibraryHandler(db, storageClient)
	scheduleHandler := schedule_handlers.NewScheduleHandler(db)

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,
		RateLimitWindow:   1 * time.Minute,
	})

	// Health check (public)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, store)
	})

	api := app.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)
	authGroup.Post("/change-password", authMiddleware.Required(), authHandler.ChangePassword)

	// Profile routes
	profileGroup := api.Group("/profile", authMiddleware.Required())
	profileGroup.Get("/", authHandler.GetProfile)
	profileGroup.Patch("/", authHandler.UpdateProfile)

	// Comments: reads public, creation needs an enrolled user, moderation
	// needs a superuser.
	comments := api.Group("/comments")
	comments.Get("/", commentHandler.ListComments)
	comments.Post("/", authMiddleware.Required(), commentHandler.CreateComment)
	comments.Patch("/:id", authMiddleware.RequireSuperuser(), commentHandler.UpdateComment)
	comments.Delete("/:id", authMiddleware.RequireSuperuser(), commentHandler.DeleteComment)

	// Countries and blocks. Block routes are registered before /:id so the
	// literal "blocks" segment wins.
	countries := api.Group("/countries")
	countries.Get("/blocks", countryHandler.ListCountryBlocks)
	countries.Post("/blocks", authMiddleware.RequireSuperuser(), countryHandler.CreateCountryBlock)
	countries.Patch("/blocks/:id", authMiddleware.RequireSuperuser(), countryHandler.UpdateCountryBlock)
	countries.Delete("/blocks/:id", authMiddleware.RequireSuperuser(), countryHandler.DeleteCountryBlock)
	countries.Get("/", countryHandler.ListCountries)
	countries.Post("/", authMiddleware.RequireSuperuser(), countryHandler.CreateCountry)
	countries.Patch("/:id", authMiddleware.RequireSuperuser(), countryHandler.UpdateCountry)
	countries.Delete("/:id", authMiddleware.RequireSuperuser(), countryHandler.DeleteCountry)

	// Courses
	courses := api.Group("/courses")
	courses.Get("/", courseHandler.ListCourses)
	courses.Get("/:id", courseHandler.GetCourse)
	courses.Post("/", authMiddleware.RequireSuperuser(), courseHandler.CreateCourse)
	courses.Patch("/:id", authMiddleware.RequireSuperuser(), courseHandler.UpdateCourse)
	courses.Delete("/:id", authMiddleware.RequireSuperuser(), courseHandler.DeleteCourse)

	// Library. Preview routes precede /:id for the same reason as blocks.
	library := api.Group("/library")
	library.Get("/preview", libraryHandler.GetPreview)
	library.Get("/preview/:id", libraryHandler.GetPreview)
	library.Post("/preview", authMiddleware.RequireSuperuser(), libraryHandler.CreatePreview)
	library.Patch("/preview/:id", authMiddleware.RequireSuperuser(), libraryHandler.UpdatePreview)
	library.Delete("/preview/:id", authMiddleware.RequireSuperuser(), libraryHandler.DeletePreview)
	library.Get("/", libraryHandler.ListBooks)
	library.Post("/", authMiddleware.RequireSuperuser(), libraryHandler.CreateBook)
	library.Post("/:id/upload", authMiddleware.RequireSuperuser(), libraryHandler.UploadBookFile)
	library.Patch("/:id", authMiddleware.RequireSuperuser(), libraryHandler.UpdateBook)
	library.Delete("/:id", authMiddleware.RequireSuperuser(), libraryHandler.DeleteBook)

	// Schedule (read-only)
	api.Get("/schedule", scheduleHandler.GetSchedule)
}
