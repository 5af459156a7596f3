// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/modaluxe/backoffice/internal/config"
	"github.com/modaluxe/backoffice/internal/handlers"
	"github.com/modaluxe/backoffice/internal/middleware"
	"github.com/modaluxe/backoffice/internal/services"
	"github.com/modaluxe/backoffice/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	brandService := services.NewBrandService(db)
	productService := services.NewProductService(db)
	variantService := services.NewVariantService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	brandHandler := handlers.NewBrandHandler(brandService)
	productHandler := handlers.NewProductHandler(productService)
	variantHandler := handlers.NewVariantHandler(variantService)
	templateHandler := handlers.NewTemplateHandler()
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.ActivityLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
			auth.PUT("/password", middleware.AuthRequired(), authHandler.ChangePassword)
		}

		// Catalog administration, manager or admin role
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired())
		{
			catalog := admin.Group("")
			catalog.Use(middleware.ManagerRequired())
			{
				catalog.GET("/categories", categoryHandler.List)
				catalog.POST("/categories", categoryHandler.Create)
				catalog.PUT("/categories", categoryHandler.Update)
				catalog.DELETE("/categories", categoryHandler.Delete)

				catalog.GET("/brands", brandHandler.List)
				catalog.POST("/brands", brandHandler.Create)
				catalog.PUT("/brands", brandHandler.Update)
				catalog.DELETE("/brands", brandHandler.Delete)

				catalog.GET("/products", productHandler.List)
				catalog.POST("/products", productHandler.Create)
				catalog.PUT("/products", productHandler.Update)
				catalog.DELETE("/products", productHandler.Delete)
				catalog.GET("/products/:id", productHandler.Get)

				catalog.GET("/products/:id/variants", variantHandler.ListForProduct)
				catalog.POST("/products/:id/variants", variantHandler.Create)
				catalog.GET("/variants/:id", variantHandler.Get)
				catalog.PUT("/variants/:id", variantHandler.Update)
				catalog.DELETE("/variants/:id", variantHandler.Delete)

				catalog.GET("/variant-templates", templateHandler.List)
				catalog.GET("/variant-templates/:name", templateHandler.Get)
				catalog.GET("/attribute-options/:key", templateHandler.AttributeOptions)
			}

			// User management, admin only
			users := admin.Group("/users")
			users.Use(middleware.AdminRequired())
			{
				users.GET("", userHandler.List)
				users.POST("", userHandler.Create)
				users.PUT("", userHandler.Update)
				users.DELETE("", userHandler.Delete)
			}
		}

		// Image uploads
		upload := v1.Group("/upload")
		upload.Use(middleware.AuthRequired(), middleware.ManagerRequired(), middleware.UploadRateLimit())
		{
			upload.POST("/images", uploadHandler.UploadImage)
			upload.DELETE("/images", uploadHandler.DeleteImage)
		}
	}

	return r
}
