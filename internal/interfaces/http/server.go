package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"log/slog"

	"github.com/beaconship/backend/internal/infrastructure/config"
	"github.com/beaconship/backend/internal/infrastructure/log"
	"github.com/beaconship/backend/internal/interfaces/http/handler"
	"github.com/beaconship/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/beaconship/backend/docs" // Swagger docs
)

// HTTPServer HTTP 服务器
type HTTPServer struct {
	router          *gin.Engine
	listenAddr      string
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
}

// NewServer 创建 HTTP 服务器
func NewServer(
	shipHandler *handler.ShipHandler,
	eventsHandler *handler.EventsHandler,
	notificationHandler *handler.NotificationHandler,
	cfg *config.ServerConfig,
) *HTTPServer {
	if !log.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := log.NewModuleLogger("http", "server")

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger),
		middleware.EnsureUTF8Body(),
	)

	// 船只相关路由
	ship := router.Group("/ship")
	{
		ship.POST("", shipHandler.Heartbeat)
		ship.GET("/list", shipHandler.List)
		ship.GET("/events", eventsHandler.Stream)
		ship.GET("/:uuid", shipHandler.Get)
		ship.DELETE("/:uuid", shipHandler.Delete)
	}

	router.GET("/fleet/stats", shipHandler.Stats)
	router.GET("/notifications/recent", notificationHandler.Recent)

	// 健康检查
	router.GET("/health", shipHandler.Health)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 5 * time.Second
	}

	return &HTTPServer{
		router:          router,
		listenAddr:      cfg.ListenAddr,
		shutdownTimeout: shutdownTimeout,
		server: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Handler 返回路由，测试中不经监听直接驱动
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Start 启动服务器
// listener 为 nil 时自行监听 listenAddr；阻塞直到服务器关闭
func (s *HTTPServer) Start(listener net.Listener) error {
	var err error
	if listener != nil {
		s.logger.Info("HTTP server starting", "addr", listener.Addr().String())
		err = s.server.Serve(listener)
	} else {
		s.logger.Info("HTTP server starting", "addr", s.listenAddr)
		err = s.server.ListenAndServe()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown 优雅关闭
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Stop 停止服务器
func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.Shutdown(ctx)
}
