package main

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/petmart/petmart_web/internal/config"
	"github.com/petmart/petmart_web/internal/handler"
	"github.com/petmart/petmart_web/internal/middleware"
	"github.com/petmart/petmart_web/internal/service"
	"github.com/petmart/petmart_web/internal/store"
)

// main is the application entrypoint for the PetMart web shop.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting petmart web")

	// Prices serialize as JSON numbers, keeping the /jsonproducts shape.
	decimal.MarshalJSONWithoutQuotes = true

	// 3. Initialize the in-memory store and seed the demo data. Everything
	// lives in this process; a restart starts over from the seed.
	st := store.New()
	st.Seed()
	log.Info().Int("products", len(st.Products())).Msg("catalog seeded")

	// 4. Initialize services
	catalogSvc := service.NewCatalogService(st)
	cartSvc := service.NewCartService(st)
	profileSvc := service.NewProfileService(st)
	authSvc := service.NewAuthService(cfg.SessionSecret, cfg.SessionTTL)

	// 5. Initialize handlers
	handlers := &Handlers{
		Health:  handler.NewHealthHandler(catalogSvc, cartSvc),
		Shop:    handler.NewShopHandler(catalogSvc, cartSvc),
		Cart:    handler.NewCartHandler(cartSvc),
		Profile: handler.NewProfileHandler(profileSvc, cartSvc),
		Auth:    handler.NewAuthHandler(authSvc),
		Admin:   handler.NewAdminHandler(catalogSvc, cartSvc, profileSvc),
	}

	// 6. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.NewSessionMiddleware(cfg.SessionSecret).Handle())
	router.Use(middleware.LoggingMiddleware())
	router.SetFuncMap(template.FuncMap{
		"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	})
	router.LoadHTMLGlob(cfg.TemplatesGlob)
	router.Static("/css", "./web/static/css")
	router.Static("/images", "./web/static/images")
	setupRoutes(router, handlers)

	// 7. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 8. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 9. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health  *handler.HealthHandler
	Shop    *handler.ShopHandler
	Cart    *handler.CartHandler
	Profile *handler.ProfileHandler
	Auth    *handler.AuthHandler
	Admin   *handler.AdminHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/healthz", h.Health.GetHealth)

	router.GET("/jsonproducts", h.Shop.ListProductsJSON)
	router.GET("/", h.Shop.Home)

	router.GET("/cart", h.Cart.ViewCart)
	router.POST("/cart/add", h.Cart.AddToCart)
	router.POST("/cart/update", h.Cart.UpdateCart)
	router.POST("/cart/clear", h.Cart.ClearCart)

	router.GET("/profile", h.Profile.ShowProfile)
	router.POST("/profile/update", h.Profile.UpdateProfile)

	router.GET("/auth", h.Auth.ShowLogin)
	router.POST("/auth/login", h.Auth.Login)

	admin := router.Group("/admin")
	{
		admin.GET("/manage", h.Admin.Manage)
		admin.POST("/add-product", h.Admin.AddProduct)
		admin.POST("/update-product", h.Admin.UpdateProduct)
		admin.POST("/delete-product", h.Admin.DeleteProduct)
		admin.POST("/update-stock", h.Admin.UpdateStock)
		admin.GET("/data", h.Admin.DataView)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
