package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/welfarehub/benefits-api/internal/api/handlers"
	"github.com/welfarehub/benefits-api/internal/config"
	middlewares "github.com/welfarehub/benefits-api/internal/middleware"
	"github.com/welfarehub/benefits-api/internal/models"
)

// Handlers agrupa os handlers montados no router
type Handlers struct {
	Benefit *handlers.BenefitHandler
	Meta    *handlers.MetaHandler
	Popular *handlers.PopularHandler
	Health  *handlers.HealthHandler
}

func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(corsMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.RequestTiming())
	r.Use(middlewares.AnonymousSession())

	api := r.Group("/api")
	{
		benefits := api.Group("/benefits")
		{
			benefits.POST("/search", h.Benefit.Search)
			benefits.GET("/popular", h.Popular.Popular)
			benefits.GET("/meta/categories", h.Meta.Categories)
			benefits.GET("/meta/regions", h.Meta.Regions)
			// A rota de detalhe fica por último para não capturar as fixas
			benefits.GET("/:id", h.Benefit.GetByID)
		}

		api.GET("/health", h.Health.Health)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Not Found"})
	})

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	allowAll := len(origins) == 0
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
