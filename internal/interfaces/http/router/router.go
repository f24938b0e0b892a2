package router

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mvfrios/queijaria/internal/infrastructure/config"
	"github.com/mvfrios/queijaria/internal/interfaces/http/handler"
	"github.com/mvfrios/queijaria/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles the HTTP handlers wired into the router
type Handlers struct {
	Checkout  *handler.CheckoutHandler
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Report    *handler.ReportHandler
	Sommelier *handler.SommelierHandler
}

// New builds the gin engine with middleware and all routes registered
func New(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registerValidators()

	engine := gin.New()
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
	)

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "app": cfg.App.Name})
	})

	api := engine.Group("/api/v1")
	{
		cart := api.Group("/cart")
		{
			cart.GET("", h.Checkout.GetCart)
			cart.DELETE("", h.Checkout.ClearCart)
			cart.POST("/lines", h.Checkout.AddLine)
			cart.DELETE("/lines/:id", h.Checkout.RemoveLine)
			cart.POST("/lines/:id/edit", h.Checkout.EditLine)
		}

		api.POST("/checkout", h.Checkout.Finalize)
		api.GET("/orders", h.Checkout.ListOrders)
		api.POST("/credit-payments", h.Checkout.RecordCreditPayment)

		drafts := api.Group("/drafts")
		{
			drafts.GET("", h.Checkout.ListDrafts)
			drafts.POST("", h.Checkout.SaveDraft)
			drafts.POST("/:id/resume", h.Checkout.ResumeDraft)
			drafts.DELETE("/:id", h.Checkout.DiscardDraft)
		}

		products := api.Group("/products")
		{
			products.GET("", h.Product.List)
			products.GET("/:id", h.Product.Get)
			products.PUT("/:id", h.Product.Upsert)
			products.DELETE("/:id", h.Product.Delete)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", h.Customer.List)
			customers.POST("", h.Customer.Register)
			customers.GET("/balances", h.Customer.Balances)
			customers.GET("/balances/total", h.Customer.TotalOutstanding)
		}

		statistics := api.Group("/statistics")
		{
			statistics.GET("", h.Report.Summary)
			statistics.GET("/ranking", h.Report.Ranking)
		}

		api.POST("/sommelier/ask", h.Sommelier.Ask)
	}

	return engine
}

// registerValidators adds custom binding validators
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// notblank rejects whitespace-only strings that pass "required"
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}
