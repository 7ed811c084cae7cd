package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/welfarehub/benefits-api/internal/models"
	"github.com/welfarehub/benefits-api/internal/services"
)

type MetaHandler struct {
	metaService *services.MetaService
	logger      *zap.Logger
}

func NewMetaHandler(metaService *services.MetaService, logger *zap.Logger) *MetaHandler {
	return &MetaHandler{metaService: metaService, logger: logger}
}

// Categories godoc
// @Summary Categorias disponíveis
// @Description Retorna as categorias do catálogo com a contagem de benefícios em cada uma, da maior para a menor
// @Tags meta
// @Produce json
// @Success 200 {object} map[string][]models.CategoryCount
// @Failure 500 {object} models.ErrorResponse
// @Router /api/benefits/meta/categories [get]
func (h *MetaHandler) Categories(c *gin.Context) {
	categories, err := h.metaService.Categories(c.Request.Context())
	if err != nil {
		h.logger.Error("category counts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	if categories == nil {
		categories = []models.CategoryCount{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Regions godoc
// @Summary Regiões disponíveis
// @Description Retorna as regiões do catálogo com a contagem de benefícios em cada uma, da maior para a menor
// @Tags meta
// @Produce json
// @Success 200 {object} map[string][]models.RegionCount
// @Failure 500 {object} models.ErrorResponse
// @Router /api/benefits/meta/regions [get]
func (h *MetaHandler) Regions(c *gin.Context) {
	regions, err := h.metaService.Regions(c.Request.Context())
	if err != nil {
		h.logger.Error("region counts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	if regions == nil {
		regions = []models.RegionCount{}
	}
	c.JSON(http.StatusOK, gin.H{"regions": regions})
}
