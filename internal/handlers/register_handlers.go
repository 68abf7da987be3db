package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/ckeeling/splitledger/cmd/docs"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/middleware"
	"github.com/ckeeling/splitledger/internal/platform/config"
	"github.com/ckeeling/splitledger/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.Use(middleware.PosthogMiddleware(posthogClient))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	// Auth is bearer-token based; kept for clients that probe for a CSRF
	// cookie before logging in.
	r.GET("/csrf", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"detail": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Rate limit the credential endpoints: 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	public := r.Group("/api/v1", middleware.RateLimit(ipLimiter))

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	requireEditor := middleware.RequireEditor(services.User)

	registerAuthRoutes(public, v1, services.User, services.Token, requireEditor)
	if cfg.GoogleClientID != "" {
		registerGoogleOAuthRoutes(public, services.GoogleOAuth, services.User, services.Token)
	}

	registerPartyRoutes(v1, services.Party, requireEditor)
	registerPersonRoutes(v1, services.Person, services.Party, requireEditor)
	registerExpenseRoutes(v1, services.Expense, requireEditor)
	registerSettlementRoutes(v1, services.Settlement, requireEditor)
	RegisterFxRateRoutes(v1, services.FxRate, cfg.ReferenceCurrency, cfg.DefaultCurrency)
	RegisterSummaryRoutes(v1, services.Summary)
	registerRecentCurrencyRoutes(v1, services.RecentCurrency)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
