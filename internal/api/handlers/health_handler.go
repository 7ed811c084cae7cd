package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Pinger verifica a conectividade com o banco; *mongo.Client satisfaz
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// HealthHandler gerencia o endpoint de health check
type HealthHandler struct {
	pinger    Pinger
	startedAt time.Time
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{
		pinger:    pinger,
		startedAt: time.Now(),
	}
}

// HealthResponse representa a resposta do health check.
// Uptime é medido em segundos desde o início do processo.
type HealthResponse struct {
	Status    string            `json:"status"`
	Uptime    int64             `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Health godoc
// @Summary Health check
// @Description Verifica a saúde da aplicação e a conectividade com o MongoDB
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ok",
		Uptime:    int64(time.Since(h.startedAt).Seconds()),
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.pinger.Ping(ctx, nil); err != nil {
		response.Checks["mongodb"] = "failed"
		response.Status = "unhealthy"
		response.Error = "MongoDB connectivity check failed"
	} else {
		response.Checks["mongodb"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
