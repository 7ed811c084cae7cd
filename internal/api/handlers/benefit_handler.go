package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	middlewares "github.com/welfarehub/benefits-api/internal/middleware"
	"github.com/welfarehub/benefits-api/internal/models"
	"github.com/welfarehub/benefits-api/internal/services"
	"github.com/welfarehub/benefits-api/internal/store"
)

type BenefitHandler struct {
	searchService *services.SearchService
	detailService *services.DetailService
	logger        *zap.Logger
}

func NewBenefitHandler(searchService *services.SearchService, detailService *services.DetailService, logger *zap.Logger) *BenefitHandler {
	return &BenefitHandler{
		searchService: searchService,
		detailService: detailService,
		logger:        logger,
	}
}

// Search godoc
// @Summary Busca benefícios
// @Description Busca benefícios com filtros de elegibilidade, paginação e ordenação. Filtros ausentes não restringem o resultado.
// @Tags benefits
// @Accept json
// @Produce json
// @Param request body models.SearchRequest true "Filtros de busca"
// @Success 200 {object} models.SearchResponse
// @Failure 422 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/benefits/search [post]
func (h *BenefitHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationErrorResponse(err))
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), &req, middlewares.GetSessionHash(c))
	if err != nil {
		h.logger.Error("benefit search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetByID godoc
// @Summary Detalhe de um benefício
// @Description Retorna o benefício com os campos de detalhe, o contador de visualizações e até 3 benefícios relacionados da mesma categoria
// @Tags benefits
// @Produce json
// @Param id path string true "ID do benefício (서비스ID)"
// @Success 200 {object} models.BenefitDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/benefits/{id} [get]
func (h *BenefitHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	result, err := h.detailService.GetDetail(c.Request.Context(), id, middlewares.GetSessionHash(c))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Benefit not found"})
		return
	}
	if err != nil {
		h.logger.Error("benefit detail failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// validationErrorResponse converte o erro de bind no corpo 422. Erros de
// campo entram em fieldErrors pelo nome JSON; corpo malformado vira um
// formError único.
func validationErrorResponse(err error) models.ValidationErrorResponse {
	details := models.ValidationDetails{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			field := jsonFieldName(fe.Field())
			details.FieldErrors[field] = append(details.FieldErrors[field], validationMessage(fe))
		}
	} else {
		details.FormErrors = append(details.FormErrors, "invalid request body")
	}

	return models.ValidationErrorResponse{
		Error:   "Validation Error",
		Details: details,
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "invalid value"
}

// jsonFieldName converte o nome do campo da struct para o nome JSON
// (lowerCamel), já que as tags json seguem essa convenção em todo o modelo
func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	runes := []rune(structField)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
