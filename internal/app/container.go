package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/glowbook/beauty-booking-backend/internal/api"
	"github.com/glowbook/beauty-booking-backend/internal/auth"
	"github.com/glowbook/beauty-booking-backend/internal/availability"
	"github.com/glowbook/beauty-booking-backend/internal/booking"
	"github.com/glowbook/beauty-booking-backend/internal/catalog"
	"github.com/glowbook/beauty-booking-backend/internal/config"
	"github.com/glowbook/beauty-booking-backend/internal/media"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/storage"
	"github.com/glowbook/beauty-booking-backend/internal/prayer"
	"github.com/glowbook/beauty-booking-backend/internal/provider"
	"github.com/glowbook/beauty-booking-backend/internal/schedule"
	"github.com/glowbook/beauty-booking-backend/internal/slotcache"
	"github.com/glowbook/beauty-booking-backend/internal/timeoff"
	"github.com/glowbook/beauty-booking-backend/internal/user"
)

// Container holds the initialized components the entrypoint needs.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer wires every module together. redisClient may be nil, in which
// case slot caching is disabled.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)

	// User module
	userRepo := user.NewPgxRepository(pool)
	userService := user.NewService(userRepo, passwordHasher)

	// Provider module
	providerRepo := provider.NewPgxRepository(pool)
	providerService := provider.NewService(providerRepo)

	// Catalog module
	catalogRepo := catalog.NewPgxRepository(pool)
	catalogService := catalog.NewService(catalogRepo, providerService)

	// Schedule module
	scheduleRepo := schedule.NewPgxRepository(pool)
	scheduleService := schedule.NewService(scheduleRepo, providerService)

	// Time off module
	timeoffRepo := timeoff.NewPgxRepository(pool)
	timeoffService := timeoff.NewService(timeoffRepo, providerService)

	// Booking module
	bookingRepo := booking.NewPgxRepository(pool)
	bookingService := booking.NewService(bookingRepo, providerService)

	// Prayer timings resolver
	var prayerResolver prayer.Resolver = prayer.Disabled{}
	if cfg.PrayerAPIBaseURL != "" {
		prayerResolver = prayer.NewHTTPResolver(cfg.PrayerAPIBaseURL, cfg.PrayerAPITimeout)
	}

	// Slot cache
	var slotCache availability.Cache = availability.NoopCache{}
	if redisClient != nil {
		slotCache = slotcache.New(redisClient, cfg.SlotCacheTTL, logger)
	}

	// Availability engine
	availabilityService := availability.NewService(
		providerService, catalogService, scheduleService, timeoffService,
		bookingService, prayerResolver, slotCache, logger,
	)

	// Media module
	store, err := storage.NewLocalStorage(cfg.MediaRoot)
	if err != nil {
		return nil, fmt.Errorf("init media storage failed: %w", err)
	}
	mediaRepo := media.NewPgxRepository(pool)
	mediaService := media.NewService(mediaRepo, providerService, store, logger)

	router := api.NewRouter(cfg, api.Services{
		User:         userService,
		Provider:     providerService,
		Catalog:      catalogService,
		Schedule:     scheduleService,
		TimeOff:      timeoffService,
		Booking:      bookingService,
		Availability: availabilityService,
		Media:        mediaService,
	}, jwtManager)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
