package api

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/kre8/kre8/pkg/api/middlewares"
	"github.com/kre8/kre8/pkg/backend"
	"github.com/kre8/kre8/pkg/configuration"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/wss"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"net/http"
	"time"
)

func NewApi(config *configuration.Configuration, bus *events.Bus, handler *backend.Handler, version string) *Api {
	return &Api{
		Config:  config,
		Bus:     bus,
		Hub:     wss.NewHub(),
		Backend: handler,
		Version: version,
		ctx:     context.Background(),
	}
}

func (a *Api) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middlewares.Logger())
	router.Use(middlewares.CORS())

	router.GET("/events", a.Events)
	router.GET("/metrics", a.MetricsHandle())
	router.GET("/healthz", a.Health)
	router.GET("/version", a.DisplayVersion)

	return router
}

// Serve listens on the configured address until ctx is cancelled, then closes every link.
func (a *Api) Serve(ctx context.Context) error {
	a.ctx = ctx

	server := &http.Server{
		Addr:        a.Config.Listen,
		Handler:     a.Router(),
		ReadTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		a.Hub.CloseAll()

		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdown); err != nil {
			logger.Log.Warn("backend shutdown", zap.Error(err))
		}
	}()

	logger.Log.Info("backend listening", zap.String("address", a.Config.Listen))

	err := server.ListenAndServe()

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (a *Api) MetricsHandle() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
