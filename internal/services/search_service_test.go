package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/welfarehub/benefits-api/internal/models"
)

func TestSearchAppliesDefaults(t *testing.T) {
	var captured *models.SearchRequest
	store := &stubBenefitStore{
		searchFn: func(ctx context.Context, req *models.SearchRequest) ([]models.Benefit, int64, error) {
			captured = req
			return nil, 0, nil
		},
	}
	svc := NewSearchService(store, newStubLogStore(), zap.NewNop())

	_, err := svc.Search(context.Background(), &models.SearchRequest{}, "session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.Page != models.DefaultPage {
		t.Errorf("page default = %d, want %d", captured.Page, models.DefaultPage)
	}
	if captured.Limit != models.DefaultLimit {
		t.Errorf("limit default = %d, want %d", captured.Limit, models.DefaultLimit)
	}
	if captured.SortBy != models.SortByLatest {
		t.Errorf("sortBy default = %q, want %q", captured.SortBy, models.SortByLatest)
	}
}

func TestSearchBuildsPage(t *testing.T) {
	benefits := []models.Benefit{
		{ID: "SVC001", Name: "청년 월세 지원", Category: "주거", SiteViewCount: 7},
		{ID: "SVC002", Name: "출산 축하금", Category: "보육"},
	}
	store := &stubBenefitStore{
		searchFn: func(ctx context.Context, req *models.SearchRequest) ([]models.Benefit, int64, error) {
			return benefits, 45, nil
		},
	}
	svc := NewSearchService(store, newStubLogStore(), zap.NewNop())

	resp, err := svc.Search(context.Background(), &models.SearchRequest{Limit: 20}, "session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 45 || resp.TotalCount != 45 {
		t.Errorf("total = %d/%d, want 45 in both fields", resp.Total, resp.TotalCount)
	}
	// 45 resultados em páginas de 20 dão 3 páginas
	if resp.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", resp.TotalPages)
	}
	if len(resp.Benefits) != 2 {
		t.Fatalf("benefits = %d items, want 2", len(resp.Benefits))
	}
	if resp.Benefits[0].ID != "SVC001" || resp.Benefits[0].SiteViewCount != 7 {
		t.Errorf("unexpected first item: %+v", resp.Benefits[0])
	}
	if resp.SearchParams == nil || resp.SearchParams.Limit != 20 {
		t.Errorf("searchParams should echo the normalized request, got %+v", resp.SearchParams)
	}
}

func TestSearchLogsAsynchronously(t *testing.T) {
	store := &stubBenefitStore{
		searchFn: func(ctx context.Context, req *models.SearchRequest) ([]models.Benefit, int64, error) {
			return nil, 3, nil
		},
	}
	logs := newStubLogStore()
	svc := NewSearchService(store, logs, zap.NewNop())

	if _, err := svc.Search(context.Background(), &models.SearchRequest{}, "abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case entry := <-logs.entries:
		if entry.SessionHash != "abc123" {
			t.Errorf("sessionHash = %q, want %q", entry.SessionHash, "abc123")
		}
		if entry.ResultCount != 3 {
			t.Errorf("resultCount = %d, want 3", entry.ResultCount)
		}
		if entry.ID == "" {
			t.Error("log entry should have a generated id")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("search log was never written")
	}
}

func TestSearchEmptyResultIsNotNil(t *testing.T) {
	svc := NewSearchService(&stubBenefitStore{}, newStubLogStore(), zap.NewNop())

	resp, err := svc.Search(context.Background(), &models.SearchRequest{}, "session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Benefits == nil {
		t.Error("benefits should serialize as [] and never null")
	}
	if resp.TotalPages != 0 {
		t.Errorf("totalPages = %d, want 0", resp.TotalPages)
	}
}
