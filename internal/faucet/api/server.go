package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/suifaucet/faucet-backend/internal/faucet/api/handlers"
	"github.com/suifaucet/faucet-backend/internal/faucet/api/middleware"
	"github.com/suifaucet/faucet-backend/internal/faucet/config"
	"github.com/suifaucet/faucet-backend/internal/faucet/metrics"
	"github.com/suifaucet/faucet-backend/pkg/logging"
)

type Server struct {
	router *gin.Engine
	logger logging.Logger
}

// NewServer assembles the gin engine with CORS, request logging, and
// the faucet routes. Configuration and the gateway are injected once
// here; there is no other shared state across requests.
func NewServer(cfg *config.FaucetConfig, gateway handlers.Gateway, logger logging.Logger) *Server {
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigin()))
	router.Use(middleware.Logger(logger))

	metrics.StartCollection()

	handler := handlers.NewHandler(logger, cfg, gateway)

	router.POST("/api/request", handler.RequestTokens)
	router.GET("/health", handler.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{
		router: router,
		logger: logger,
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
