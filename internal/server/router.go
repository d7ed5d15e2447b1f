package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/logger"
)

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Data DataSource
	// Demo reports whether content comes from mock data; shown on /healthz.
	Demo func() bool
}

// NewRouter wires the content, page-loader and health routes.
func NewRouter(log *zap.Logger, deps RouterDependencies) *gin.Engine {
	log = logger.OrNop(log)

	router := gin.New()
	router.Use(requestID(), accessLog(log), recovery(log))

	router.GET("/healthz", func(c *gin.Context) {
		payload := gin.H{"status": "ok"}
		if deps.Demo != nil {
			payload["demo"] = deps.Demo()
		}
		c.JSON(http.StatusOK, payload)
	})

	NewContentHandler().RegisterRoutes(router)
	if deps.Data != nil {
		NewPresaleHandler(deps.Data).RegisterRoutes(router)
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Not found")
	})
	return router
}
