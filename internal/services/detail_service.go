package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/welfarehub/benefits-api/internal/models"
)

const relatedLimit = 3

// DetailService monta a visão de detalhe de um benefício: enriquecimento
// on-demand via API externa, contagem local de visualizações deduplicada
// por sessão e lista de benefícios relacionados.
type DetailService struct {
	store   BenefitStore
	fetcher DetailFetcher
	tracker SeenTracker
	logger  *zap.Logger
}

func NewDetailService(store BenefitStore, fetcher DetailFetcher, tracker SeenTracker, logger *zap.Logger) *DetailService {
	return &DetailService{store: store, fetcher: fetcher, tracker: tracker, logger: logger}
}

// GetDetail retorna o benefício com os campos de detalhe e os relacionados.
// Erros das colaborações externas (enriquecimento, contador, relacionados)
// degradam a resposta em vez de falhá-la; só a ausência do benefício vira erro.
func (s *DetailService) GetDetail(ctx context.Context, id, sessionHash string) (*models.BenefitDetailResponse, error) {
	benefit, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if benefit.DetailFetchedAt == nil {
		s.enrich(ctx, benefit)
	}

	// Primeira visita desta sessão conta visualização; sem sessão
	// identificável não há como deduplicar, então não conta nada
	if sessionHash != "" && s.tracker.MarkSeen(sessionHash, id) {
		if count, err := s.store.IncrementSiteViews(ctx, id); err != nil {
			s.logger.Warn("site view increment failed", zap.String("id", id), zap.Error(err))
		} else {
			benefit.SiteViewCount = count
		}
	}

	related, err := s.store.FindRelated(ctx, benefit.Category, id, relatedLimit)
	if err != nil {
		s.logger.Warn("related lookup failed", zap.String("id", id), zap.Error(err))
		related = nil
	}
	summaries := make([]models.BenefitSummary, 0, len(related))
	for i := range related {
		summaries = append(summaries, related[i].ToSummary())
	}

	return &models.BenefitDetailResponse{
		Benefit:         benefit,
		RelatedBenefits: summaries,
	}, nil
}

// enrich busca o detalhe externo e persiste os campos. Falha (rede, 5xx ou
// serviço desconhecido) só é logada: sem carimbo de detailFetchedAt, a
// próxima visita tenta de novo.
func (s *DetailService) enrich(ctx context.Context, benefit *models.Benefit) {
	enrichment, err := s.fetcher.FetchEnrichment(ctx, benefit.ID)
	if err != nil {
		s.logger.Warn("detail enrichment failed", zap.String("id", benefit.ID), zap.Error(err))
		return
	}

	fetchedAt := time.Now()
	if err := s.store.SaveEnrichment(ctx, benefit.ID, *enrichment, fetchedAt); err != nil {
		s.logger.Warn("detail enrichment save failed", zap.String("id", benefit.ID), zap.Error(err))
		return
	}

	benefit.RequiredDocuments = enrichment.RequiredDocuments
	benefit.OfficialConfirmDocs = enrichment.OfficialConfirmDocs
	benefit.IdentityConfirmDocs = enrichment.IdentityConfirmDocs
	benefit.OnlineApplyURL = enrichment.OnlineApplyURL
	benefit.RelatedLaws = enrichment.RelatedLaws
	benefit.DetailFetchedAt = &fetchedAt
	benefit.UpdatedAt = fetchedAt
}
