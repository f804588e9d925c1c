package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/metrics"
	"portfoliotracker/internal/service"
	"portfoliotracker/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db              *sql.DB
	StrategyService service.StrategyService
	IngestService   service.IngestService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to portfolio tracker"})
	})
	router.GET("/healthz", m.healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/api/overview", m.overview)
	router.POST("/api/prices/ingest", m.updatePrices)

	strategyRoutes := router.Group("/api/:strategy")
	strategyRoutes.GET("/performance", m.performance)
	strategyRoutes.GET("/assets", m.assets)
	strategyRoutes.GET("/status", m.status)
	strategyRoutes.GET("/pnl", m.assetPnL)
	strategyRoutes.GET("/execution/:date", m.execution)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) healthz(c *gin.Context) {
	if m.Db != nil {
		if err := m.Db.PingContext(c.Request.Context()); err != nil {
			returnErrorJsonCode(fmt.Errorf("%w: %w", domain.ErrLogUnavailable, err), c, http.StatusServiceUnavailable)
			return
		}
	}
	c.JSON(200, map[string]string{"status": "ok"})
}

// errorStatus maps service errors onto response codes. Upstream failures
// are the only retryable ones.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrUnknownStrategy):
		return http.StatusNotFound
	case domain.IsRetryable(err):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatus(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorw("request failed", "error", err.Error(), "status", code)
	} else {
		log.Infow("request rejected", "error", err.Error(), "status", code)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error":     err.Error(),
		"retryable": domain.IsRetryable(err),
	})
}

func strategyParam(c *gin.Context) (domain.Strategy, bool) {
	strategy, err := domain.ParseStrategy(c.Param("strategy"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("%w: %w", service.ErrUnknownStrategy, err), c, http.StatusNotFound)
		return "", false
	}
	return strategy, true
}

func dateParam(c *gin.Context, name string) (time.Time, bool) {
	date, err := util.ParseDate(c.Param(name))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid %s: %w", name, err), c, http.StatusBadRequest)
		return time.Time{}, false
	}
	return date, true
}

// logRequestMiddleware puts a request-scoped logger on the request context
// and records the outcome.
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	start := time.Now()
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}

	log := zap.S().With(
		"route", route,
		"method", c.Request.Method,
	)
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), log))

	c.Next()

	status := c.Writer.Status()
	metrics.HttpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()
	log.Debugw("request complete",
		"status", status,
		"durationMs", time.Since(start).Milliseconds(),
	)
}
