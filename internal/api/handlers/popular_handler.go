package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/welfarehub/benefits-api/internal/models"
	"github.com/welfarehub/benefits-api/internal/services"
)

type PopularHandler struct {
	popularService *services.PopularService
	logger         *zap.Logger
}

func NewPopularHandler(popularService *services.PopularService, logger *zap.Logger) *PopularHandler {
	return &PopularHandler{popularService: popularService, logger: logger}
}

// Popular godoc
// @Summary Benefícios mais vistos
// @Description Retorna os benefícios mais vistos segundo o contador do gov24. Resposta cacheada com TTL curto.
// @Tags benefits
// @Produce json
// @Param limit query int false "Quantidade de itens" default(10)
// @Success 200 {object} map[string][]models.BenefitSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /api/benefits/popular [get]
func (h *PopularHandler) Popular(c *gin.Context) {
	limit := services.DefaultPopularLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	benefits, err := h.popularService.GetPopular(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("popular lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	if benefits == nil {
		benefits = []models.BenefitSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"benefits": benefits})
}
