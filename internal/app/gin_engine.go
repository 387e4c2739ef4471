package app

import (
	"github.com/gin-gonic/gin"

	"github.com/Khaled152/tutor-kashier-integration/pkg/logger"
	"github.com/Khaled152/tutor-kashier-integration/pkg/metrics"
)

func NewGinEngine(l *logger.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(logger.CorrelationMiddleware(), metrics.GinMiddleware(), l.GinBodyLogger(), gin.Recovery())
	return engine
}
