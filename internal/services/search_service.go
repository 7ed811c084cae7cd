package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/welfarehub/benefits-api/internal/models"
)

const searchLogTimeout = 5 * time.Second

// SearchService executa a busca filtrada, paginada e ordenada do catálogo
type SearchService struct {
	store  BenefitStore
	logs   SearchLogStore
	logger *zap.Logger
}

func NewSearchService(store BenefitStore, logs SearchLogStore, logger *zap.Logger) *SearchService {
	return &SearchService{store: store, logs: logs, logger: logger}
}

// Search aplica os defaults, consulta o catálogo e monta a página de
// resultados. O registro da busca é assíncrono e nunca falha a resposta.
func (s *SearchService) Search(ctx context.Context, req *models.SearchRequest, sessionHash string) (*models.SearchResponse, error) {
	req.Normalize()

	benefits, total, err := s.store.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	items := make([]models.BenefitListItem, 0, len(benefits))
	for i := range benefits {
		items = append(items, benefits[i].ToListItem())
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	s.logSearch(sessionHash, req, total)

	return &models.SearchResponse{
		Benefits:     items,
		Total:        total,
		TotalCount:   total,
		Page:         req.Page,
		Limit:        req.Limit,
		TotalPages:   totalPages,
		SearchParams: req,
	}, nil
}

// logSearch grava o registro da busca em background, fora do ciclo de vida
// da requisição
func (s *SearchService) logSearch(sessionHash string, req *models.SearchRequest, total int64) {
	entry := &models.SearchLogEntry{
		ID:          uuid.NewString(),
		SessionHash: sessionHash,
		Filters:     req,
		ResultCount: total,
		CreatedAt:   time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), searchLogTimeout)
		defer cancel()
		if err := s.logs.Insert(ctx, entry); err != nil {
			s.logger.Warn("search log insert failed", zap.Error(err))
		}
	}()
}
