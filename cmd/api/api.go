package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"conecta/docs" //this is required to generate swagger docs
	"conecta/internal/content"
	"conecta/internal/domain/storage"
	"conecta/internal/mailer"
	"conecta/internal/places"
	"conecta/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	store       *storage.Container
	logger      *zap.SugaredLogger
	mailer      mailer.Client
	places      *places.Service
	calendar    *content.Calendar
	rateLimiter ratelimiter.Limiter
	wg          sync.WaitGroup
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	mapURL      string
	mail        mailConfig
	auth        authConfig
	places      placesConfig
	redis       redisConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
}

type dbConfig struct {
	addr        string
	maxConns    int32
	minConns    int32
	maxIdleTime string
}

type placesConfig struct {
	endpoint     string
	area         string
	timeout      time.Duration
	cacheTTL     time.Duration
	warmInterval time.Duration
}

type redisConfig struct {
	addr     string
	password string
	db       int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	// Registered before the routes so every subrouter inherits them.
	r.NotFound(app.notFoundRouteResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		docsURL := fmt.Sprintf("http://%s/api/docs/doc.json", app.config.apiURL)
		r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		// Account
		r.With(app.RateLimiterMiddleware).Post("/cadastrar", app.registerUserHandler)
		r.With(app.RateLimiterMiddleware).Post("/login", app.loginHandler)

		// Reviews
		r.With(app.RateLimiterMiddleware).Post("/avaliar", app.createReviewHandler)
		r.Get("/avaliacoes", app.getReviewsHandler)
		r.Get("/avaliacoes/resumo", app.getReviewStatsHandler)

		// Content
		r.Get("/locais", app.getPlacesHandler)
		r.Get("/eventos", app.getEventsHandler)
		r.Get("/documentos", app.getDocumentsHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdown <- err
			return
		}

		app.logger.Infow("waiting for background tasks to finish")
		app.wg.Wait()
		shutdown <- nil
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
