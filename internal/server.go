package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/squashcoach/internal/coaching"
	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/coaching/cache"
	coachmcp "github.com/2beens/squashcoach/internal/coaching/mcp"
	"github.com/2beens/squashcoach/internal/coaching/messages"
	"github.com/2beens/squashcoach/internal/coaching/store"
	"github.com/2beens/squashcoach/internal/config"
	"github.com/2beens/squashcoach/internal/db"
	"github.com/2beens/squashcoach/internal/middleware"
	"github.com/2beens/squashcoach/internal/telemetry/metrics"
	"github.com/2beens/squashcoach/internal/telemetry/tracing"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// journal texts are the largest bodies, well under this
const maxRequestBodyBytes = 64 << 10

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	apiToken          string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	coachService *coaching.Service
	catalog      *messages.Catalog

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
	if secrets.APIToken == "" {
		log.Warnln("COACH_API_TOKEN not set, all non-public endpoints will reject requests")
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         secrets.PostgresUser,
		DBPassword:     secrets.PostgresPassword,
		TracingEnabled: secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	promRegistry := metrics.SetupPrometheus(db.PoolCollector(dbPool, cfg.PostgresDBName))
	metricsManager := metrics.NewManager("backend", "coach", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})
	if secrets.HoneycombEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown := func() {}
	if secrets.HoneycombEnabled {
		if secrets.HoneycombAPIKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
		otelShutdown, err = tracing.HoneycombSetup(secrets.OtelServiceName)
		if err != nil {
			return nil, err
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	var analysisCache cache.Cache
	switch cfg.CacheBackend {
	case config.CacheBackendLocal:
		analysisCache = cache.NewLocalCache(cfg.LocalCacheSizeMB)
	default:
		analysisCache = cache.NewRedisCache(rdb)
	}
	log.Debugf("using [%s] analysis cache, ttl %s", cfg.CacheBackend, cfg.CacheTTL)

	coachService := coaching.NewService(coaching.ServiceParams{
		Store:        store.NewRepo(dbPool),
		Cache:        analysisCache,
		Engine:       analytics.NewEngine(analytics.WithThresholds(cfg.Thresholds)),
		Metrics:      metricsManager,
		CacheTTL:     cfg.CacheTTL,
		HistoryLimit: cfg.HistoryLimit,
		MemoLimit:    cfg.MemoLimit,
	})

	return &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
		apiToken:    secrets.APIToken,

		dbPool:      dbPool,
		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),

		coachService: coachService,
		catalog:      messages.NewCatalog(messages.Language(cfg.DefaultLanguage)),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("coach-router"))

	coachHandler := coaching.NewHandler(s.coachService, s.catalog, s.versionInfo)
	coachHandler.SetupRoutes(r, s.rateLimiter, s.metricsManager, s.config.RateLimitPerMin)

	mcpServer := coachmcp.NewServer(s.coachService, s.catalog)
	r.PathPrefix("/mcp").Handler(coachmcp.NewHTTPHandler(mcpServer)).Name("mcp")

	// all the rest - unhandled paths
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(middleware.StaticToken(s.apiToken))

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest(maxRequestBodyBytes))

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
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("coach service, listen and serve: %s", err)
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

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
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
}
