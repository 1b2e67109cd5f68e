package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/fitme-app/fitme/internal/aggregation"
	"github.com/fitme-app/fitme/internal/auth"
	"github.com/fitme-app/fitme/internal/config"
	"github.com/fitme-app/fitme/internal/db"
	fitmemcp "github.com/fitme-app/fitme/internal/mcp"
	"github.com/fitme-app/fitme/internal/middleware"
	"github.com/fitme-app/fitme/internal/misc"
	"github.com/fitme-app/fitme/internal/nutrition"
	"github.com/fitme-app/fitme/internal/photos"
	"github.com/fitme-app/fitme/internal/profile"
	"github.com/fitme-app/fitme/internal/telemetry/metrics"
	"github.com/fitme-app/fitme/internal/telemetry/tracing"
	"github.com/fitme-app/fitme/internal/workouts"
)

const apiPrefix = "/api/v1"

// above the 10MB photo upload limit, multipart overhead included
const maxRequestBodyBytes = 12 << 20

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	mcpSecretHash     string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	tokenVerifier  *auth.TokenVerifier
	nutritionStore *nutrition.Store
	workoutsRepo   *workouts.Repo
	photosRepo     *photos.Repo
	profileRepo    *profile.Repo
	photoStore     *photos.S3Store // nil when s3 is not configured
	engine         *aggregation.Engine

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     *config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg, secrets := params.Config, params.Secrets

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     secrets.PostgresPassword,
		TracingEnabled: secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry, err := metrics.NewRegistry(pgxpoolCollector)
	if err != nil {
		return nil, fmt.Errorf("prometheus registry: %w", err)
	}
	metricsManager := metrics.NewManager("fitme", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, secrets.OtelServiceName, rdb)
	if err != nil {
		return nil, err
	}

	if secrets.JWTSecret == "" {
		log.Errorf("jwt secret not set, use FITME_JWT_SECRET. all bearer tokens will be rejected")
	}

	nutritionRepo := nutrition.NewRepo(dbPool)
	nutritionStore := nutrition.NewStore(
		nutritionRepo,
		nutrition.NewCachedTargets(nutritionRepo, cfg.TargetsCacheSizeMB, cfg.TargetsCacheTTL(), metricsManager),
	)
	workoutsRepo := workouts.NewRepo(dbPool)

	s := &Server{
		config:        cfg,
		versionInfo:   params.VersionInfo,
		mcpSecretHash: secrets.MCPSecretHash,
		dbPool:        dbPool,
		redisClient:   rdb,

		tokenVerifier:  auth.NewTokenVerifier(secrets.JWTSecret, auth.NewRevocationChecker(rdb)),
		nutritionStore: nutritionStore,
		workoutsRepo:   workoutsRepo,
		photosRepo:     photos.NewRepo(dbPool),
		profileRepo:    profile.NewRepo(dbPool),
		engine: aggregation.NewEngine(nutritionStore, workoutsRepo, aggregation.Options{
			Location:       cfg.DayBoundaryLocation(),
			MetricsManager: metricsManager,
		}),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if cfg.S3Enabled() {
		s.photoStore, err = photos.NewS3Store(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3PublicBaseURL)
		if err != nil {
			return nil, fmt.Errorf("new s3 photo store: %w", err)
		}
	} else {
		log.Warnln("s3 not configured, progress photo uploads disabled")
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	healthChecks := map[string]misc.HealthCheck{}
	if s.dbPool != nil {
		healthChecks["postgres"] = s.dbPool.Ping
	}
	if s.redisClient != nil {
		healthChecks["redis"] = func(ctx context.Context) error {
			return s.redisClient.Ping(ctx).Err()
		}
	}
	misc.NewHandler(s.versionInfo, healthChecks).SetupRoutes(r)

	r.Handle("/mcp", fitmemcp.NewHTTPHandler(fitmemcp.NewServer(s.engine), s.mcpSecretHash)).Name("mcp")

	api := r.PathPrefix(apiPrefix).Subrouter()
	aggregation.NewHandler(s.engine).SetupRoutes(api)
	nutrition.NewHandler(s.nutritionStore, s.metricsManager).WithLocation(s.config.DayBoundaryLocation()).SetupRoutes(api)
	workouts.NewHandler(s.workoutsRepo, s.metricsManager).WithLocation(s.config.DayBoundaryLocation()).SetupRoutes(api)
	profile.NewHandler(s.profileRepo).SetupRoutes(api)

	// a nil *S3Store must not end up as a non-nil uploader
	if s.photoStore != nil {
		photos.NewHandler(s.photosRepo, s.photoStore, s.metricsManager).SetupRoutes(api)
	} else {
		photos.NewHandler(s.photosRepo, nil, s.metricsManager).SetupRoutes(api)
	}

	// write endpoints are rate limited per user
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	api.Use(middleware.RateLimit(reqRateLimiter, "api", s.config.WriteRateLimitPerMin, s.metricsManager))

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenVerifier, s.config.AllowUserIDHeader)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainBody(maxRequestBodyBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// GracefulShutdown stops accepting requests, waits for the in-flight ones and
// releases the db and redis connections.
func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
}

func (s *Server) DBPool() *pgxpool.Pool {
	return s.dbPool
}
