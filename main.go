package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/clbasaran/backend-ozmevsim/configs"
	db "github.com/clbasaran/backend-ozmevsim/database"
	"github.com/clbasaran/backend-ozmevsim/handlers"
	AdminHandler "github.com/clbasaran/backend-ozmevsim/handlers/admin"
	AuthHandler "github.com/clbasaran/backend-ozmevsim/handlers/auth"
	BlogHandler "github.com/clbasaran/backend-ozmevsim/handlers/blog"
	ContactHandler "github.com/clbasaran/backend-ozmevsim/handlers/contact"
	FaqHandler "github.com/clbasaran/backend-ozmevsim/handlers/faq"
	ImageHandler "github.com/clbasaran/backend-ozmevsim/handlers/image"
	ProductHandler "github.com/clbasaran/backend-ozmevsim/handlers/product"
	ServiceHandler "github.com/clbasaran/backend-ozmevsim/handlers/service"
	TranslateHandler "github.com/clbasaran/backend-ozmevsim/handlers/translate"
	"github.com/clbasaran/backend-ozmevsim/middlewares"
	AdminRepository "github.com/clbasaran/backend-ozmevsim/repositories/admin"
	BlogRepository "github.com/clbasaran/backend-ozmevsim/repositories/blog"
	ContactRepository "github.com/clbasaran/backend-ozmevsim/repositories/contact"
	FaqRepository "github.com/clbasaran/backend-ozmevsim/repositories/faq"
	ImageRepository "github.com/clbasaran/backend-ozmevsim/repositories/image"
	ProductRepository "github.com/clbasaran/backend-ozmevsim/repositories/product"
	ServiceRepository "github.com/clbasaran/backend-ozmevsim/repositories/service"
	SessionRepository "github.com/clbasaran/backend-ozmevsim/repositories/session"
	StorageRepository "github.com/clbasaran/backend-ozmevsim/repositories/storage"
	UserRepository "github.com/clbasaran/backend-ozmevsim/repositories/user"
	"github.com/clbasaran/backend-ozmevsim/services/cache"
	"github.com/clbasaran/backend-ozmevsim/services/limiter"
	"github.com/clbasaran/backend-ozmevsim/services/translate"
)

func main() {
	// Environment Variables and Database Connection
	if err := godotenv.Load(".env"); err != nil {
		// Geliştirme ortamında .env dosyası olmayabilir, bu yüzden bu hata ihmal edilebilir
		log.Println("Warning: .env file not loaded, using environment variables")
	}

	sqlDB, err := db.Init(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
		return
	}
	defer sqlDB.Close()

	// Shared Services
	responseCache := cache.NewCache(configs.SITEMAP_CACHE_TTL)

	var limiterStore limiter.Store = limiter.NewMemoryStore()
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Error parsing REDIS_URL: %v", err)
			return
		}
		limiterStore = limiter.NewRedisStore(redis.NewClient(opts))
	}

	// Repository Initialization
	ur := UserRepository.NewRepository(sqlDB)
	sr := SessionRepository.NewRepository(sqlDB)
	pr := ProductRepository.NewRepository(sqlDB)
	svr := ServiceRepository.NewRepository(sqlDB)
	br := BlogRepository.NewRepository(sqlDB)
	fr := FaqRepository.NewRepository(sqlDB)
	cr := ContactRepository.NewRepository(sqlDB)
	ir := ImageRepository.NewRepository(sqlDB)
	ar := AdminRepository.NewRepository(sqlDB)

	str := StorageRepository.NewRepository(
		os.Getenv("R2_ACCESS_KEY_ID"),
		os.Getenv("R2_ACCESS_KEY_SECRET"),
		os.Getenv("R2_BUCKET_NAME"),
		os.Getenv("R2_FOLDER_NAME"),
		os.Getenv("R2_PUBLIC_URL"),
		os.Getenv("R2_ENDPOINT"),
	)

	// Handler Initialization
	mainHandler := handlers.NewHandler()
	authHandler := AuthHandler.NewHandler(ur, sr)
	productHandler := ProductHandler.NewHandler(pr, responseCache)
	serviceHandler := ServiceHandler.NewHandler(svr, responseCache)
	blogHandler := BlogHandler.NewHandler(br, responseCache)
	faqHandler := FaqHandler.NewHandler(fr)
	contactHandler := ContactHandler.NewHandler(cr)
	imageHandler := ImageHandler.NewHandler(ir, str)
	adminHandler := AdminHandler.NewHandler(ar, sr, responseCache)
	translateHandler := TranslateHandler.NewHandler(translate.NewService(os.Getenv("OPENAI_API_KEY")))

	// Middleware Initialization
	authRequired := middlewares.AuthMiddleware(ur, sr)
	loginLimiter := middlewares.NewRateLimitMiddleware(limiterStore, "login", configs.LOGIN_RATE_LIMIT, configs.RATE_LIMIT_WINDOW)
	contactLimiter := middlewares.NewRateLimitMiddleware(limiterStore, "contact", configs.CONTACT_RATE_LIMIT, configs.RATE_LIMIT_WINDOW)

	// Router Initialize
	router := gin.Default()
	router.Use(configs.CorsConfig())
	router.MaxMultipartMemory = configs.UPLOAD_MAX_SIZE_BYTES

	// Global Routes
	router.GET("/", mainHandler.Index)
	router.NoRoute(mainHandler.NotFound)

	// Auth Routes
	auth := router.Group("/auth")
	{
		auth.POST("/login", loginLimiter.RateLimit(), authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/logout-all", authRequired, authHandler.LogoutAll)
		auth.GET("/me", authRequired, authHandler.GetMe)
	}

	// Public Routes
	router.GET("/products", productHandler.SelectProducts)
	router.GET("/products/categories", productHandler.SelectAllCategories)
	router.GET("/products/:slug", productHandler.SelectProductBySlug)
	router.GET("/services", serviceHandler.SelectServices)
	router.GET("/services/categories", serviceHandler.SelectAllCategories)
	router.GET("/services/:slug", serviceHandler.SelectServiceBySlug)
	router.GET("/blog", blogHandler.SelectPosts)
	router.GET("/blog/categories", blogHandler.SelectAllCategories)
	router.GET("/blog/sitemap", blogHandler.SelectSitemap)
	router.GET("/blog/:slug", blogHandler.SelectPostBySlug)
	router.GET("/faq", faqHandler.SelectFaqs)
	router.GET("/faq/categories", faqHandler.SelectAllCategories)
	router.POST("/contact", contactLimiter.RateLimit(), contactHandler.SubmitContact)

	// Admin Routes
	admin := router.Group("/admin")
	admin.Use(authRequired)
	{
		admin.GET("/dashboard-stats", adminHandler.DashboardStats)

		admin.GET("/products", productHandler.SelectAllProducts)
		admin.POST("/products", middlewares.PermissionMiddleware(configs.PermissionCreateContent), productHandler.CreateProduct)
		admin.PATCH("/products/:id", middlewares.PermissionMiddleware(configs.PermissionEditContent), productHandler.UpdateProduct)
		admin.DELETE("/products/:id", middlewares.PermissionMiddleware(configs.PermissionDeleteContent), productHandler.DeleteProduct)
		admin.POST("/products/categories", middlewares.PermissionMiddleware(configs.PermissionCreateContent), productHandler.CreateCategory)

		admin.GET("/services", serviceHandler.SelectAllServices)
		admin.POST("/services", middlewares.PermissionMiddleware(configs.PermissionCreateContent), serviceHandler.CreateService)
		admin.PATCH("/services/:id", middlewares.PermissionMiddleware(configs.PermissionEditContent), serviceHandler.UpdateService)
		admin.DELETE("/services/:id", middlewares.PermissionMiddleware(configs.PermissionDeleteContent), serviceHandler.DeleteService)
		admin.POST("/services/categories", middlewares.PermissionMiddleware(configs.PermissionCreateContent), serviceHandler.CreateCategory)

		admin.GET("/blog", blogHandler.SelectAllPosts)
		admin.POST("/blog", middlewares.PermissionMiddleware(configs.PermissionCreateContent), blogHandler.CreatePost)
		admin.PATCH("/blog/:id", middlewares.PermissionMiddleware(configs.PermissionEditContent), blogHandler.UpdatePost)
		admin.PATCH("/blog/:id/status", middlewares.PermissionMiddleware(configs.PermissionEditContent), blogHandler.UpdatePostStatus)
		admin.DELETE("/blog/:id", middlewares.PermissionMiddleware(configs.PermissionDeleteContent), blogHandler.DeletePost)
		admin.POST("/blog/categories", middlewares.PermissionMiddleware(configs.PermissionCreateContent), blogHandler.CreateCategory)

		admin.GET("/faq", faqHandler.SelectAllFaqs)
		admin.POST("/faq", middlewares.PermissionMiddleware(configs.PermissionCreateContent), faqHandler.CreateFaq)
		admin.PATCH("/faq/:id", middlewares.PermissionMiddleware(configs.PermissionEditContent), faqHandler.UpdateFaq)
		admin.DELETE("/faq/:id", middlewares.PermissionMiddleware(configs.PermissionDeleteContent), faqHandler.DeleteFaq)
		admin.POST("/faq/categories", middlewares.PermissionMiddleware(configs.PermissionCreateContent), faqHandler.CreateCategory)

		admin.GET("/contacts", middlewares.PermissionMiddleware(configs.PermissionManageContacts), contactHandler.SelectContacts)
		admin.PATCH("/contacts/:id", middlewares.PermissionMiddleware(configs.PermissionManageContacts), contactHandler.UpdateContact)

		admin.GET("/images", middlewares.PermissionMiddleware(configs.PermissionUploadMedia), imageHandler.SelectImages)
		admin.POST("/images/presign", middlewares.PermissionMiddleware(configs.PermissionUploadMedia), imageHandler.PresignUpload)
		admin.POST("/images/confirm", middlewares.PermissionMiddleware(configs.PermissionUploadMedia), imageHandler.ConfirmUpload)
		admin.DELETE("/images/:id", middlewares.PermissionMiddleware(configs.PermissionUploadMedia), imageHandler.DeleteImage)

		admin.POST("/translate", middlewares.PermissionMiddleware(configs.PermissionTranslate), translateHandler.TranslateContent)

		admin.POST("/users", middlewares.PermissionMiddleware(configs.PermissionManageUsers), authHandler.CreateUser)

		admin.POST("/cache/clear", middlewares.PermissionMiddleware(configs.PermissionManageCache), adminHandler.ClearAllCache)
		admin.POST("/cache/clear-prefix", middlewares.PermissionMiddleware(configs.PermissionManageCache), adminHandler.ClearCacheWithPrefix)
		admin.POST("/sessions/cleanup", middlewares.PermissionMiddleware(configs.PermissionManageUsers), adminHandler.CleanupSessions)
	}

	// Start Server
	err = router.Run(":" + os.Getenv("PORT"))
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
