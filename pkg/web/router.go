package web

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggofiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/placentalab/geocatalog/internal/config"
	"github.com/placentalab/geocatalog/pkg/middleware/logger"
	catalogView "github.com/placentalab/geocatalog/pkg/web/views/catalog"
	"github.com/placentalab/geocatalog/pkg/web/views/health"
)

func NewRouter(g *gin.Engine) {
	installMiddleware(g)
	installURL(g)
}

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	server := config.Global().Server
	g.Use(cors.Default())
	g.Use(otelgin.Middleware(fmt.Sprintf("%s-%s", server.Platform, server.Service)))
	g.Use(logger.LogWithWriter())
}

func installURL(g *gin.Engine) {
	api := g.Group("/api")
	api.GET("/health", health.Health)
	api.GET("/health/live", health.Live)
	api.GET("/health/ready", health.Ready)

	g.GET("/swagger/*any", ginswagger.WrapHandler(swaggofiles.Handler))

	cHandle := catalogView.NewHandle()
	{
		v1 := api.Group("/v1")

		catalogRouter := v1.Group("/catalog")
		catalogRouter.GET("/search", cHandle.Search)
		catalogRouter.GET("/studies/:gse_id", cHandle.Detail)
		catalogRouter.GET("/filters", cHandle.FilterOptions)
		catalogRouter.GET("/columns", cHandle.Columns)
	}
}
