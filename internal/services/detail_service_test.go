package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/welfarehub/benefits-api/internal/models"
)

func TestGetDetailNotFoundPropagates(t *testing.T) {
	sentinel := errors.New("benefit not found")
	store := &stubBenefitStore{
		getByIDFn: func(ctx context.Context, id string) (*models.Benefit, error) {
			return nil, sentinel
		},
	}
	svc := NewDetailService(store, &stubFetcher{}, NewViewTracker(), zap.NewNop())

	_, err := svc.GetDetail(context.Background(), "SVC404", "session")
	if !errors.Is(err, sentinel) {
		t.Errorf("expected store error to propagate, got %v", err)
	}
}

func TestGetDetailEnrichesOnFirstVisit(t *testing.T) {
	var saved *models.Enrichment
	store := &stubBenefitStore{
		getByIDFn: func(ctx context.Context, id string) (*models.Benefit, error) {
			return &models.Benefit{ID: id, Category: "주거"}, nil
		},
		saveEnrichFn: func(ctx context.Context, id string, e models.Enrichment, fetchedAt time.Time) error {
			saved = &e
			return nil
		},
	}
	fetcher := &stubFetcher{
		fetchFn: func(ctx context.Context, serviceID string) (*models.Enrichment, error) {
			return &models.Enrichment{
				RequiredDocuments: strValue("신분증"),
				OnlineApplyURL:    strValue("https://www.gov.kr/apply"),
			}, nil
		},
	}
	svc := NewDetailService(store, fetcher, NewViewTracker(), zap.NewNop())

	resp, err := svc.GetDetail(context.Background(), "SVC001", "session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetcher.calls != 1 {
		t.Errorf("fetcher calls = %d, want 1", fetcher.calls)
	}
	if saved == nil || saved.RequiredDocuments == nil || *saved.RequiredDocuments != "신분증" {
		t.Errorf("enrichment was not persisted: %+v", saved)
	}
	if resp.Benefit.DetailFetchedAt == nil {
		t.Error("detailFetchedAt should be stamped after successful enrichment")
	}
	if resp.Benefit.OnlineApplyURL == nil || *resp.Benefit.OnlineApplyURL != "https://www.gov.kr/apply" {
		t.Error("enrichment fields should be visible in the response")
	}
}

func TestGetDetailSkipsEnrichmentWhenAlreadyFetched(t *testing.T) {
	fetchedAt := time.Now().Add(-time.Hour)
	store := &stubBenefitStore{
		getByIDFn: func(ctx context.Context, id string) (*models.Benefit, error) {
			return &models.Benefit{ID: id, DetailFetchedAt: &fetchedAt}, nil
		},
	}
	fetcher := &stubFetcher{}
	svc := NewDetailService(store, fetcher, NewViewTracker(), zap.NewNop())

	if _, err := svc.GetDetail(context.Background(), "SVC001", "session"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher calls = %d, want 0", fetcher.calls)
	}
}

// Falha do fetch externo degrada a resposta: sem carimbo, sem erro,
// próxima visita tenta de novo
func TestGetDetailEnrichmentFailureDoesNotFailRequest(t *testing.T) {
	saveCalls := 0
	store := &stubBenefitStore{
		getByIDFn: func(ctx context.Context, id string) (*models.Benefit, error) {
			return &models.Benefit{ID: id}, nil
		},
		saveEnrichFn: func(ctx context.Context, id string, e models.Enrichment, fetchedAt time.Time) error {
			saveCalls++
			return nil
		},
	}
	fetcher := &stubFetcher{
		fetchFn: func(ctx context.Context, serviceID string) (*models.Enrichment, error) {
			return nil, errors.New("gov24 unavailable")
		},
	}
	svc := NewDetailService(store, fetcher, NewViewTracker(), zap.NewNop())

	resp, err := svc.GetDetail(context.Background(), "SVC001", "session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saveCalls != 0 {
		t.Error("nothing should be persisted on fetch failure")
	}
	if resp.Benefit.DetailFetchedAt != nil {
		t.Error("detailFetchedAt must stay nil so the next visit retries")
	}
}

func TestGetDetailCountsViewOncePerSession(t *testing.T) {
	increments := 0
	store := &stubBenefitStore{
		getByIDFn: func(ctx context.Context, id string) (*models.Benefit, error) {
			now := time.Now()
			return &models.Benefit{ID: id, DetailFetchedAt: &now}, nil
		},
		incrementFn: func(ctx context.Context, id string) (int64, error) {
			increments++
			return int64(increments), nil
		},
	}
	svc := NewDetailService(store, &stubFetcher{}, NewViewTracker(), zap.NewNop())

	ctx := context.Background()
	resp, err := svc.GetDetail(ctx, "SVC001", "session-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Benefit.SiteViewCount != 1 {
		t.Errorf("first visit siteViewCount = %d, want 1", resp.Benefit.SiteViewCount)
	}

	// Mesma sessão de novo: não conta
	if _, err := svc.GetDetail(ctx, "SVC001", "session-a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if increments != 1 {
		t.Errorf("increments after repeat visit = %d, want 1", increments)
	}

	// Outra sessão conta
	if _, err := svc.GetDetail(ctx, "SVC001", "session-b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if increments != 2 {
		t.Errorf("increments after second session = %d, want 2", increments)
	}
}

// Sem hash de sessão a visualização nunca conta: não há chave para
// deduplicar, então incrementar violaria a contagem única por sessão
func TestGetDetailWithoutSessionDoesNotCountView(t *testing.T) {
	increments := 0
	store := &stubBenefitStore{
		getByIDFn: func(ctx context.Context, id string) (*models.Benefit, error) {
			now := time.Now()
			return &models.Benefit{ID: id, DetailFetchedAt: &now}, nil
		},
		incrementFn: func(ctx context.Context, id string) (int64, error) {
			increments++
			return int64(increments), nil
		},
	}
	svc := NewDetailService(store, &stubFetcher{}, NewViewTracker(), zap.NewNop())

	ctx := context.Background()
	resp, err := svc.GetDetail(ctx, "SVC001", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetDetail(ctx, "SVC001", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if increments != 0 {
		t.Errorf("increments with empty session = %d, want 0", increments)
	}
	if resp.Benefit.SiteViewCount != 0 {
		t.Errorf("siteViewCount = %d, want 0", resp.Benefit.SiteViewCount)
	}

	// Uma sessão identificada depois ainda conta normalmente
	if _, err := svc.GetDetail(ctx, "SVC001", "session-a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if increments != 1 {
		t.Errorf("increments after identified session = %d, want 1", increments)
	}
}

func TestGetDetailRelatedLimit(t *testing.T) {
	var gotCategory, gotExclude string
	var gotLimit int
	store := &stubBenefitStore{
		getByIDFn: func(ctx context.Context, id string) (*models.Benefit, error) {
			now := time.Now()
			return &models.Benefit{ID: id, Category: "보육", DetailFetchedAt: &now}, nil
		},
		findRelatedFn: func(ctx context.Context, category, excludeID string, limit int) ([]models.Benefit, error) {
			gotCategory, gotExclude, gotLimit = category, excludeID, limit
			return []models.Benefit{{ID: "SVC002"}, {ID: "SVC003"}}, nil
		},
	}
	svc := NewDetailService(store, &stubFetcher{}, NewViewTracker(), zap.NewNop())

	resp, err := svc.GetDetail(context.Background(), "SVC001", "session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCategory != "보육" || gotExclude != "SVC001" || gotLimit != 3 {
		t.Errorf("related lookup args = (%q, %q, %d), want (보육, SVC001, 3)", gotCategory, gotExclude, gotLimit)
	}
	if len(resp.RelatedBenefits) != 2 {
		t.Errorf("related = %d items, want 2", len(resp.RelatedBenefits))
	}
}
