package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"wedding-backend/config"
	"wedding-backend/controllers"
	"wedding-backend/middleware"
	"wedding-backend/realtime"
	"wedding-backend/services"
)

// App is the wired HTTP surface plus the background workers main starts.
type App struct {
	Router  *gin.Engine
	Hub     *realtime.Hub
	Sweeper *services.SuratJalanSweeper
}

// NewApp builds services, controllers and the router on one DB handle.
// rdb may be nil; the sweeper then runs without a cross-replica lock.
func NewApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	limit, err := middleware.RateLimit(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	hub := realtime.NewHub()
	images := services.NewImageStore(cfg.UploadDir)
	mailer := services.NewAdminMailer(cfg.SMTP, cfg.NotifyEmail)
	pricing := services.NewPriceResolver(services.NewGormItemCatalog(db))

	orderSvc := services.NewOrderService(db)
	requestSvc := services.NewCustomRequestService(db, pricing, mailer)
	invoiceSvc := services.NewInvoiceService(db, orderSvc, requestSvc, services.InvoiceSettings{
		Company:              cfg.Company,
		DefaultBookingAmount: cfg.DefaultBookingAmount,
	})
	noteSvc := services.NewSuratJalanService(db, images)

	var lock services.Locker
	if rdb != nil {
		lock = services.RedisLocker{Client: rdb}
	}
	sweeper := services.NewSuratJalanSweeper(noteSvc, lock, cfg.SweepInterval)

	h := Handlers{
		Auth: controllers.NewAuthController(
			services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL),
			services.NewStatsService(db),
		),
		Services:       controllers.NewServiceController(services.NewCatalogService(db)),
		Items:          controllers.NewItemController(services.NewItemService(db, images)),
		Uploads:        controllers.NewUploadController(images),
		PaymentMethods: controllers.NewPaymentMethodController(services.NewPaymentMethodService(db)),
		Orders:         controllers.NewOrderController(orderSvc, invoiceSvc, hub),
		CustomRequests: controllers.NewCustomRequestController(requestSvc, invoiceSvc, hub),
		Articles:       controllers.NewArticleController(services.NewArticleService(db)),
		Gallery:        controllers.NewGalleryController(services.NewGalleryService(db)),
		Content:        controllers.NewContentController(services.NewContentService(db)),
		Contact:        controllers.NewContactController(services.NewContactService(db, mailer), hub),
		SuratJalan:     controllers.NewSuratJalanController(noteSvc),
		AdminFeed:      realtime.ServeWS(hub, cfg.JWTSecret),
	}

	router := SetupRouter(Options{
		JWTSecret:   cfg.JWTSecret,
		UploadDir:   cfg.UploadDir,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   limit,
	}, h)

	return &App{Router: router, Hub: hub, Sweeper: sweeper}, nil
}
