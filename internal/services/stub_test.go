package services

import (
	"context"
	"time"

	"github.com/welfarehub/benefits-api/internal/models"
)

// stubBenefitStore implementa BenefitStore com comportamentos injetáveis;
// métodos sem função configurada retornam valores zero
type stubBenefitStore struct {
	searchFn      func(ctx context.Context, req *models.SearchRequest) ([]models.Benefit, int64, error)
	getByIDFn     func(ctx context.Context, id string) (*models.Benefit, error)
	saveEnrichFn  func(ctx context.Context, id string, e models.Enrichment, fetchedAt time.Time) error
	incrementFn   func(ctx context.Context, id string) (int64, error)
	findRelatedFn func(ctx context.Context, category, excludeID string, limit int) ([]models.Benefit, error)
	topFn         func(ctx context.Context, limit int) ([]models.Benefit, error)
}

func (s *stubBenefitStore) Search(ctx context.Context, req *models.SearchRequest) ([]models.Benefit, int64, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, req)
	}
	return nil, 0, nil
}

func (s *stubBenefitStore) GetByID(ctx context.Context, id string) (*models.Benefit, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubBenefitStore) SaveEnrichment(ctx context.Context, id string, e models.Enrichment, fetchedAt time.Time) error {
	if s.saveEnrichFn != nil {
		return s.saveEnrichFn(ctx, id, e, fetchedAt)
	}
	return nil
}

func (s *stubBenefitStore) IncrementSiteViews(ctx context.Context, id string) (int64, error) {
	if s.incrementFn != nil {
		return s.incrementFn(ctx, id)
	}
	return 0, nil
}

func (s *stubBenefitStore) FindRelated(ctx context.Context, category, excludeID string, limit int) ([]models.Benefit, error) {
	if s.findRelatedFn != nil {
		return s.findRelatedFn(ctx, category, excludeID, limit)
	}
	return nil, nil
}

func (s *stubBenefitStore) TopByViewCount(ctx context.Context, limit int) ([]models.Benefit, error) {
	if s.topFn != nil {
		return s.topFn(ctx, limit)
	}
	return nil, nil
}

func (s *stubBenefitStore) CategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	return nil, nil
}

func (s *stubBenefitStore) RegionCounts(ctx context.Context) ([]models.RegionCount, error) {
	return nil, nil
}

// stubLogStore entrega cada entrada inserida em um canal para o teste
// aguardar a escrita assíncrona
type stubLogStore struct {
	entries chan *models.SearchLogEntry
}

func newStubLogStore() *stubLogStore {
	return &stubLogStore{entries: make(chan *models.SearchLogEntry, 1)}
}

func (s *stubLogStore) Insert(ctx context.Context, entry *models.SearchLogEntry) error {
	s.entries <- entry
	return nil
}

// stubFetcher implementa DetailFetcher
type stubFetcher struct {
	fetchFn func(ctx context.Context, serviceID string) (*models.Enrichment, error)
	calls   int
}

func (s *stubFetcher) FetchEnrichment(ctx context.Context, serviceID string) (*models.Enrichment, error) {
	s.calls++
	if s.fetchFn != nil {
		return s.fetchFn(ctx, serviceID)
	}
	return &models.Enrichment{}, nil
}

func strValue(v string) *string { return &v }
