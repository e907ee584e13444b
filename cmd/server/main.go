package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/coursekit/modules/auth"
	"github.com/dmitrymomot/coursekit/pkg/config"
	"github.com/dmitrymomot/coursekit/pkg/googleauth"
	"github.com/dmitrymomot/coursekit/pkg/httpserver"
	"github.com/dmitrymomot/coursekit/pkg/jwt"
	"github.com/dmitrymomot/coursekit/pkg/logger"
	"github.com/dmitrymomot/coursekit/pkg/mongo"
	"github.com/dmitrymomot/coursekit/pkg/response"
)

type appConfig struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"coursekit"`
	Environment string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	var (
		appCfg    appConfig
		serverCfg httpserver.Config
		mongoCfg  mongo.Config
		jwtCfg    jwt.Config
		googleCfg googleauth.Config
		authCfg   auth.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&serverCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&jwtCfg)
	config.MustLoad(&googleCfg)
	config.MustLoad(&authCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Environment, appCfg.ServiceName))
	logger.SetAsDefault(log)

	ctx := context.Background()

	db, err := mongo.NewWithDatabase(ctx, mongoCfg, mongoCfg.Database)
	if err != nil {
		log.Error("failed to connect to mongodb", logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from mongodb", logger.Error(err))
		}
	}()

	store := auth.NewMongoStore(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Error("failed to ensure indexes", logger.Error(err))
		os.Exit(1)
	}

	tokens, err := jwt.NewFromConfig(jwtCfg)
	if err != nil {
		log.Error("failed to initialize token service", logger.Error(err))
		os.Exit(1)
	}

	verifier := googleauth.New(googleCfg, googleauth.WithLogger(log))

	svc := auth.NewService(store, tokens, verifier, auth.WithLogger(log))
	session := auth.NewSessionCookies(authCfg)
	mw := auth.NewMiddleware(tokens, store, session.Name(), auth.WithMiddlewareLogger(log))
	handler := auth.NewHandler(svc, session, auth.WithHandlerLogger(log))

	healthcheck := mongo.Healthcheck(db.Client())

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Mount("/api/auth", handler.Routes(mw))
	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		if err := healthcheck(req.Context()); err != nil {
			log.ErrorContext(req.Context(), "healthcheck failed", logger.Error(err))
			response.Fail(w, http.StatusServiceUnavailable, "Service unavailable")
			return
		}
		response.Message(w, http.StatusOK, "OK")
	})

	srv := httpserver.New(serverCfg, log)
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}

	log.Info("server exited")
}
