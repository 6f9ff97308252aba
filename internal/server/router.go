package server

import (
	"counter-dapp/internal/handler"
	"counter-dapp/pkg/monitor"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewHTTPRouter 初始化并返回一个 Gin Engine
func NewHTTPRouter(counter *handler.CounterHandler) *gin.Engine {
	// 0. 初始化监控指标
	monitor.Init()

	// 1. 创建 Engine (使用默认中间件: Logger, Recovery)
	r := gin.Default()
	r.SetHTMLTemplate(handler.Templates())

	// 2. 注册通用中间件
	r.Use(monitor.PrometheusMiddleware())

	// 3. 注册基础路由
	r.GET("/health", handler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 4. 页面与表单
	r.GET("/", counter.Index)
	r.POST("/connect", counter.ConnectForm)
	r.POST("/counter/get", counter.GetCounterForm)
	r.POST("/counter/increase", counter.IncreaseCounterForm)

	// 5. JSON API
	api := r.Group("/api/v1")
	{
		api.GET("/session", counter.GetSession)
		api.POST("/session/connect", counter.Connect)
		api.GET("/counter", counter.GetCounter)
		api.POST("/counter/increase", counter.IncreaseCounter)
	}

	return r
}
