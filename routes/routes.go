package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wedding-backend/controllers"
	"wedding-backend/middleware"
)

// Handlers bundles every controller the router mounts.
type Handlers struct {
	Auth           *controllers.AuthController
	Services       *controllers.ServiceController
	Items          *controllers.ItemController
	Uploads        *controllers.UploadController
	PaymentMethods *controllers.PaymentMethodController
	Orders         *controllers.OrderController
	CustomRequests *controllers.CustomRequestController
	Articles       *controllers.ArticleController
	Gallery        *controllers.GalleryController
	Content        *controllers.ContentController
	Contact        *controllers.ContactController
	SuratJalan     *controllers.SuratJalanController
	AdminFeed      gin.HandlerFunc
}

type Options struct {
	JWTSecret   string
	UploadDir   string
	CORSOrigins []string
	// RateLimit guards login and the public submission forms; nil disables it.
	RateLimit gin.HandlerFunc
}

func SetupRouter(opts Options, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.MaxMultipartMemory = 8 << 20
	r.Static("/uploads", opts.UploadDir)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limited := opts.RateLimit
	if limited == nil {
		limited = func(c *gin.Context) { c.Next() }
	}
	auth := middleware.AuthRequired(opts.JWTSecret)

	if h.AdminFeed != nil {
		r.GET("/ws/admin", h.AdminFeed)
	}

	api := r.Group("/api")
	{
		api.POST("/admin/login", limited, h.Auth.Login)
		api.GET("/admin/stats", auth, h.Auth.Stats)

		services := api.Group("/services")
		{
			services.GET("", h.Services.List)
			services.GET("/:id", h.Services.Get)
			services.GET("/:id/items", h.Services.ListItems)
			services.POST("", auth, h.Services.Create)
			services.PUT("/:id", auth, h.Services.Update)
			services.DELETE("/:id", auth, h.Services.Delete)
			services.POST("/:id/items", auth, h.Services.AddItem)
		}
		api.PUT("/service-items/:id", auth, h.Services.UpdateItem)
		api.DELETE("/service-items/:id", auth, h.Services.DeleteItem)

		items := api.Group("/items")
		{
			items.GET("", h.Items.List)
			items.GET("/categories", h.Items.Categories)
			items.GET("/:id", h.Items.Get)
			items.POST("", auth, h.Items.Create)
			items.PUT("/:id", auth, h.Items.Update)
			items.DELETE("/:id", auth, h.Items.Delete)
			items.POST("/:id/images", auth, h.Items.AddImages)
			items.DELETE("/:id/images/:filename", auth, h.Items.RemoveImage)
		}
		api.POST("/uploads", auth, h.Uploads.Upload)

		payments := api.Group("/payment-methods")
		{
			payments.GET("", h.PaymentMethods.List)
			payments.POST("", auth, h.PaymentMethods.Create)
			payments.PUT("/:id", auth, h.PaymentMethods.Update)
			payments.DELETE("/:id", auth, h.PaymentMethods.Delete)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", limited, h.Orders.Create)
			orders.GET("", auth, h.Orders.List)
			orders.GET("/:id", auth, h.Orders.Get)
			orders.PUT("/:id/status", auth, h.Orders.UpdateStatus)
			orders.DELETE("/:id", auth, h.Orders.Delete)
			orders.GET("/:id/invoice", auth, h.Orders.Invoice)
		}

		requests := api.Group("/custom-requests")
		{
			requests.POST("", limited, h.CustomRequests.Create)
			requests.POST("/quote", h.CustomRequests.Quote)
			requests.GET("", auth, h.CustomRequests.List)
			requests.GET("/:id", auth, h.CustomRequests.Get)
			requests.PUT("/:id/status", auth, h.CustomRequests.UpdateStatus)
			requests.DELETE("/:id", auth, h.CustomRequests.Delete)
			requests.GET("/:id/invoice", auth, h.CustomRequests.Invoice)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", h.Articles.List)
			articles.GET("/:id", h.Articles.Get)
			articles.POST("", auth, h.Articles.Create)
			articles.PUT("/:id", auth, h.Articles.Update)
			articles.DELETE("/:id", auth, h.Articles.Delete)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("/categories", h.Gallery.ListCategories)
			gallery.POST("/categories", auth, h.Gallery.CreateCategory)
			gallery.PUT("/categories/:id", auth, h.Gallery.UpdateCategory)
			gallery.DELETE("/categories/:id", auth, h.Gallery.DeleteCategory)

			gallery.GET("/images", h.Gallery.ListImages)
			gallery.GET("/images/:id", h.Gallery.GetImage)
			gallery.POST("/images", auth, h.Gallery.CreateImage)
			gallery.PUT("/images/:id", auth, h.Gallery.UpdateImage)
			gallery.DELETE("/images/:id", auth, h.Gallery.DeleteImage)
		}

		sections := api.Group("/content-sections")
		{
			sections.GET("", h.Content.ListSections)
			sections.GET("/:name", h.Content.GetSection)
			sections.POST("", auth, h.Content.CreateSection)
			sections.PUT("/:id", auth, h.Content.UpdateSection)
			sections.DELETE("/:id", auth, h.Content.DeleteSection)
		}

		features := api.Group("/service-features")
		{
			features.GET("", h.Content.ListFeatures)
			features.POST("", auth, h.Content.CreateFeature)
			features.PUT("/:id", auth, h.Content.UpdateFeature)
			features.DELETE("/:id", auth, h.Content.DeleteFeature)
		}

		api.POST("/contact", limited, h.Contact.Create)
		api.GET("/contact-messages", auth, h.Contact.List)
		api.DELETE("/contact-messages/:id", auth, h.Contact.Delete)

		notes := api.Group("/surat-jalan", auth)
		{
			notes.GET("", h.SuratJalan.List)
			notes.GET("/:id", h.SuratJalan.Get)
			notes.POST("", h.SuratJalan.Create)
			notes.PUT("/:id", h.SuratJalan.Update)
			notes.DELETE("/:id", h.SuratJalan.Delete)
		}
	}

	return r
}
