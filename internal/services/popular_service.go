package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/welfarehub/benefits-api/internal/models"
)

// DefaultPopularLimit é usado quando o cliente não informa limit
const DefaultPopularLimit = 10

// PopularService serve o ranking de benefícios mais vistos com um cache
// de slot único protegido por RWMutex e expirado por TTL.
type PopularService struct {
	store   BenefitStore
	ttl     time.Duration
	maxSize int
	logger  *zap.Logger

	mu        sync.RWMutex
	cached    []models.BenefitSummary
	expiresAt time.Time
}

func NewPopularService(store BenefitStore, ttl time.Duration, maxSize int, logger *zap.Logger) *PopularService {
	return &PopularService{store: store, ttl: ttl, maxSize: maxSize, logger: logger}
}

// GetPopular retorna os limit benefícios mais vistos. O limit é normalizado
// para a faixa [1, maxSize]; o cache sempre guarda a lista cheia e cada
// resposta é um recorte dela.
func (s *PopularService) GetPopular(ctx context.Context, limit int) ([]models.BenefitSummary, error) {
	if limit < 1 {
		limit = DefaultPopularLimit
	}
	if limit > s.maxSize {
		limit = s.maxSize
	}

	if cached, ok := s.fromCache(); ok {
		return clip(cached, limit), nil
	}

	benefits, err := s.store.TopByViewCount(ctx, s.maxSize)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.BenefitSummary, 0, len(benefits))
	for i := range benefits {
		summaries = append(summaries, benefits[i].ToSummary())
	}

	s.mu.Lock()
	s.cached = summaries
	s.expiresAt = time.Now().Add(s.ttl)
	s.mu.Unlock()

	s.logger.Debug("popular cache refreshed", zap.Int("size", len(summaries)))
	return clip(summaries, limit), nil
}

func (s *PopularService) fromCache() ([]models.BenefitSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil || time.Now().After(s.expiresAt) {
		return nil, false
	}
	return s.cached, true
}

func clip(summaries []models.BenefitSummary, limit int) []models.BenefitSummary {
	if len(summaries) > limit {
		return summaries[:limit]
	}
	return summaries
}
