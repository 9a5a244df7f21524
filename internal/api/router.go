package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/glowbook/beauty-booking-backend/internal/auth"
	"github.com/glowbook/beauty-booking-backend/internal/availability"
	availabilityHttp "github.com/glowbook/beauty-booking-backend/internal/availability/http"
	"github.com/glowbook/beauty-booking-backend/internal/booking"
	bookingHttp "github.com/glowbook/beauty-booking-backend/internal/booking/http"
	"github.com/glowbook/beauty-booking-backend/internal/catalog"
	catalogHttp "github.com/glowbook/beauty-booking-backend/internal/catalog/http"
	"github.com/glowbook/beauty-booking-backend/internal/config"
	"github.com/glowbook/beauty-booking-backend/internal/media"
	mediaHttp "github.com/glowbook/beauty-booking-backend/internal/media/http"
	"github.com/glowbook/beauty-booking-backend/internal/provider"
	providerHttp "github.com/glowbook/beauty-booking-backend/internal/provider/http"
	"github.com/glowbook/beauty-booking-backend/internal/schedule"
	scheduleHttp "github.com/glowbook/beauty-booking-backend/internal/schedule/http"
	"github.com/glowbook/beauty-booking-backend/internal/timeoff"
	timeoffHttp "github.com/glowbook/beauty-booking-backend/internal/timeoff/http"
	"github.com/glowbook/beauty-booking-backend/internal/user"
	userHttp "github.com/glowbook/beauty-booking-backend/internal/user/http"
)

// Services bundles everything the router wires into HTTP handlers.
type Services struct {
	User         user.Service
	Provider     provider.Service
	Catalog      catalog.CatalogService
	Schedule     schedule.Service
	TimeOff      timeoff.Service
	Booking      booking.Service
	Availability availability.Service
	Media        media.Service
}

// NewRouter assembles global middleware (logging, recovery, CORS) and
// registers every module's routes under /v1.
func NewRouter(cfg *config.Config, svcs Services, jwtManager *auth.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(jwtManager)
	providerMiddleware := RequireProvider(svcs.User)

	userHandler := userHttp.NewHandler(svcs.User, jwtManager)
	providerHandler := providerHttp.NewHandler(svcs.Provider)
	catalogHandler := catalogHttp.NewHandler(svcs.Catalog)
	scheduleHandler := scheduleHttp.NewHandler(svcs.Schedule)
	timeoffHandler := timeoffHttp.NewHandler(svcs.TimeOff)
	bookingHandler := bookingHttp.NewHandler(svcs.Booking)
	availabilityHandler := availabilityHttp.NewHandler(svcs.Availability)
	mediaHandler := mediaHttp.NewHandler(svcs.Media)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		providerHttp.RegisterRoutes(v1, providerHandler, authMiddleware, providerMiddleware)
		catalogHttp.RegisterRoutes(v1, catalogHandler, authMiddleware, providerMiddleware)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler, authMiddleware, providerMiddleware)
		timeoffHttp.RegisterRoutes(v1, timeoffHandler, authMiddleware, providerMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		availabilityHttp.RegisterRoutes(v1, availabilityHandler, authMiddleware)
		mediaHttp.RegisterRoutes(v1, mediaHandler, authMiddleware, providerMiddleware)
	}

	return r
}
