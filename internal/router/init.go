package router

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ahtasham/user-directory/config"
	"github.com/ahtasham/user-directory/internal/application"
	"github.com/ahtasham/user-directory/internal/infrastructure/mongodb"
	handlers "github.com/ahtasham/user-directory/internal/interface/http"
	"github.com/ahtasham/user-directory/internal/interface/middleware"
	"github.com/ahtasham/user-directory/internal/router/modules"
)

// Deps carries the shared infrastructure handles. Everything is injected
// explicitly; no package-level singletons.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Mongo  *mongo.Client
	DB     *mongo.Database
	Redis  *redis.Client
}

// InitModules wires repositories, services and handlers, and registers all
// modules with the router registry. Called once during startup.
func InitModules(r *Registry, d Deps) {
	userRepo := mongodb.NewUserRepository(d.DB)
	postRepo := mongodb.NewPostRepository(d.DB)

	userSvc := application.NewService(userRepo, d.Logger)
	postSvc := application.NewPostService(postRepo, userRepo)

	// One per-IP limiter shared by the API surface
	limiter := middleware.RateLimit(d.Redis, d.Cfg.RateLimitMax, d.Cfg.RateLimitWindow, middleware.KeyByIP())

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, d.Logger, d.Cfg.MaxPageSize), limiter))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, d.Logger), limiter))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(d.Mongo, d.Cfg.Env)))
}
