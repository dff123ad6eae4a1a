package main

import (
	"context"
	"expvar"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"conecta/internal/content"
	"conecta/internal/db"
	"conecta/internal/domain/storage"
	"conecta/internal/mailer"
	"conecta/internal/places"
	"conecta/internal/ratelimiter"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "1.0.0"

// NewLogger creates a console zap logger with colored levels.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := level.Set(lvl); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", lvl, err)
		}
	}

	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), level)

	return zap.New(core).Sugar(), nil
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	v, ok := os.LookupEnv(k)
	if !ok {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %d\n", k, d)
		return d
	}
	return n
}

func getEnvBool(k string, d bool) bool {
	v, ok := os.LookupEnv(k)
	if !ok {
		return d
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %t\n", k, d)
		return d
	}
	return b
}

func getEnvDuration(k string, d time.Duration) time.Duration {
	v, ok := os.LookupEnv(k)
	if !ok {
		return d
	}
	dur, err := time.ParseDuration(v)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %s\n", k, d)
		return d
	}
	return dur
}

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	return ratelimiter.Config{
		RequestsPerTimeFrame: getEnvInt("RATELIMITER_REQUESTS_COUNT", 20),
		TimeFrame:            getEnvDuration("RATELIMITER_TIME_FRAME", 5*time.Second),
		Enabled:              getEnvBool("RATE_LIMITER_ENABLED", false),
	}
}

func loadConfig() config {
	return config{
		addr:   getEnv("ADDR", ":8080"),
		env:    getEnv("ENV", "development"),
		apiURL: getEnv("EXTERNAL_URL", "localhost:8080"),
		mapURL: getEnv("MAP_URL", "https://conectaportao.com.br/mapa"),
		db: dbConfig{
			addr:        os.Getenv("DB_ADDR"),
			maxConns:    int32(getEnvInt("DB_MAX_CONNS", 10)),
			minConns:    int32(getEnvInt("DB_MIN_CONNS", 0)),
			maxIdleTime: getEnv("DB_MAX_IDLE_TIME", "15m"),
		},
		mail: mailConfig{
			host:      os.Getenv("SMTP_HOST"),
			port:      getEnvInt("SMTP_PORT", 587),
			username:  os.Getenv("SMTP_USERNAME"),
			password:  os.Getenv("SMTP_PASSWORD"),
			fromEmail: getEnv("SMTP_FROM_EMAIL", "no-reply@conectaportao.com.br"),
		},
		auth: authConfig{
			basic: basicConfig{
				user: getEnv("AUTH_BASIC_USER", "admin"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		places: placesConfig{
			endpoint:     getEnv("OVERPASS_URL", places.DefaultOverpassURL),
			area:         getEnv("OVERPASS_AREA", places.DefaultArea),
			timeout:      getEnvDuration("OVERPASS_TIMEOUT", 25*time.Second),
			cacheTTL:     getEnvDuration("PLACES_CACHE_TTL", time.Hour),
			warmInterval: getEnvDuration("PLACES_WARM_INTERVAL", 0),
		},
		redis: redisConfig{
			addr:     os.Getenv("REDIS_ADDR"),
			password: os.Getenv("REDIS_PASSWORD"),
			db:       getEnvInt("REDIS_DB", 0),
		},
		rateLimiter: LoadRateLimiterConfig(),
	}
}

//	@title			Conecta Portão API
//	@description	Accessibility information for Portão/RS: accounts, community reviews of places, places, events and documents.

//	@contact.name	Conecta Portão

//	@BasePath	/api

func main() {
	// The .env file is optional; deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Error loading .env file:", err)
	}

	cfg := loadConfig()

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.db.addr == "" {
		logger.Fatal("DB_ADDR is required")
	}

	// Database
	pool, err := db.New(db.Config{
		Addr:        cfg.db.addr,
		MaxConns:    cfg.db.maxConns,
		MinConns:    cfg.db.minConns,
		MaxIdleTime: cfg.db.maxIdleTime,
		AppName:     "conecta-api",
	})
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	store := storage.NewContainer(pool)

	// Mailer
	var mail mailer.Client
	if cfg.mail.host != "" {
		smtpMailer, err := mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:      cfg.mail.host,
			Port:      cfg.mail.port,
			Username:  cfg.mail.username,
			Password:  cfg.mail.password,
			FromEmail: cfg.mail.fromEmail,
		})
		if err != nil {
			logger.Fatal(err)
		}
		mail = smtpMailer
	} else {
		logger.Info("SMTP_HOST not set, welcome emails disabled")
	}

	// Places cache
	var cache places.Cache = places.NewMemoryCache()
	if cfg.redis.addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.redis.addr,
			Password: cfg.redis.password,
			DB:       cfg.redis.db,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Warnw("redis unreachable, using in-memory places cache", "addr", cfg.redis.addr, "error", err)
			rdb.Close()
		} else {
			defer rdb.Close()
			cache = places.NewRedisCache(rdb)
			logger.Infow("places cache backed by redis", "addr", cfg.redis.addr)
		}
	}

	placesService := places.NewService(
		places.NewOverpassAdapter(cfg.places.endpoint, cfg.places.area, cfg.places.timeout),
		cache,
		cfg.places.cacheTTL,
		logger,
	)

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)
	done := make(chan struct{})
	defer close(done)
	go rateLimiter.Cleanup(done)

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       store,
		mailer:      mail,
		places:      placesService,
		calendar:    content.DefaultCalendar(),
		rateLimiter: rateLimiter,
	}

	if cfg.places.warmInterval > 0 {
		app.warmPlacesEvery(cfg.places.warmInterval, done)
	}

	//Metrics collected http://localhost:8080/api/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		s := pool.Stat()
		return map[string]any{
			"acquired_conns": s.AcquiredConns(),
			"idle_conns":     s.IdleConns(),
			"total_conns":    s.TotalConns(),
			"max_conns":      s.MaxConns(),
			"acquire_count":  s.AcquireCount(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	if err := app.run(mux); err != nil {
		logger.Fatal(err)
	}
}
