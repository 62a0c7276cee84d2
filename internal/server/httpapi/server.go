package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	_ "github.com/retail-hub/accounts/docs"
	"github.com/retail-hub/accounts/internal/logging"
	"github.com/retail-hub/accounts/internal/server/config"
	"github.com/retail-hub/accounts/internal/server/services"
)

// Server owns the gin engine and the underlying http.Server.
type Server struct {
	cfg        *config.Config
	log        logging.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// NewServer wires middleware, routes, and API docs into a ready-to-run
// server. Routes are mounted under cfg.BasePath; the probes are additionally
// aliased at the root for orchestrators that cannot be told a prefix.
func NewServer(cfg *config.Config, log logging.Logger, service *services.AccountService, db *sql.DB) *Server {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(RequestID())
	engine.Use(AccessLog(log))
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware(cfg))
	engine.NoRoute(NotFoundHandler())

	base := engine.Group(cfg.BasePath)

	health := NewHealthHandler(db)
	health.RegisterRoutes(base)
	health.RegisterRoutes(&engine.RouterGroup)
	engine.GET("/health", health.healthz)

	NewAuthHandler(service, cfg).RegisterRoutes(base)

	// The middleware always reads the named cookie; SessionCookieEnabled only
	// governs whether login sets one.
	protected := base.Group("", AuthRequired([]byte(cfg.SecretKey), cfg.CookieName))
	NewUserHandler(service).RegisterRoutes(protected)

	registerDocs(engine, base)

	return &Server{
		cfg:    cfg,
		log:    log,
		engine: engine,
		httpServer: &http.Server{
			Addr:         cfg.EndpointAddrHTTP,
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handler exposes the engine, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run blocks serving HTTP until Shutdown is called.
func (s *Server) Run() error {
	s.log.Info(context.Background(), "http server listening", "addr", s.cfg.EndpointAddrHTTP)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "X-Request-Id"}
	if cfg.CORSOrigin == "*" {
		// Wildcard origin cannot be combined with credentials.
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
		corsConfig.AllowCredentials = true
	}
	return cors.New(corsConfig)
}

func registerDocs(engine *gin.Engine, base *gin.RouterGroup) {
	base.GET("/openapi.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			serverErrorProblem(c)
			return
		}
		c.Data(http.StatusOK, "application/json", []byte(doc))
	})
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
}
