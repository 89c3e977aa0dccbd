package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/madhuram-pos/pos-api/internal/application/service"
	"github.com/madhuram-pos/pos-api/internal/config"
	domainRepo "github.com/madhuram-pos/pos-api/internal/domain/repository"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/handler"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Menu     *handler.MenuHandler
	Bill     *handler.BillHandler
	Sequence *handler.SequenceHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	AuthService     *service.AuthService
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          *logrus.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Login goes through the per-IP attempt limiter.
		loginLimiter := middleware.NewLoginRateLimiter(deps.Cfg.RateLimit)
		v1.POST("/admin/login", loginLimiter.Middleware(), h.Auth.Login)

		menu := v1.Group("/menu")
		{
			menu.GET("/items", h.Menu.List)
			menu.POST("/items", h.Menu.Create)
			menu.PUT("/items/:id", h.Menu.Update)
			menu.DELETE("/items/:id", h.Menu.Delete)
		}

		bills := v1.Group("/bills")
		{
			// Finalize sits behind the idempotency layer so a retried
			// request cannot consume a second bill number.
			bills.POST("", middleware.Idempotency(deps.IdempotencyRepo, deps.Logger), h.Bill.Finalize)
			bills.GET("", h.Bill.List)
			bills.POST("/preview", h.Bill.Preview)
		}

		sequence := v1.Group("/sequence")
		{
			sequence.POST("/next", h.Sequence.Next)
		}

		printer := v1.Group("/printer")
		{
			printer.GET("/status", h.Printer.Status)
			printer.POST("/test", h.Printer.Test)
			printer.POST("/bill", h.Printer.PrintBill)
			printer.POST("/kot", h.Printer.PrintKOT)
		}

		// Admin-only operations behind the session token.
		admin := v1.Group("")
		admin.Use(middleware.AdminAuthMiddleware(deps.AuthService))
		{
			admin.DELETE("/bills", h.Bill.ClearAll)
			admin.POST("/sequence/reset", h.Sequence.Reset)
			admin.GET("/settings/:key", h.Settings.Get)
			admin.PUT("/settings/:key", h.Settings.Set)
		}
	}

	return router
}
