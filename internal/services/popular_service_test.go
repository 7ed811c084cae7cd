package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/welfarehub/benefits-api/internal/models"
)

func popularStore(calls *int, size int) *stubBenefitStore {
	return &stubBenefitStore{
		topFn: func(ctx context.Context, limit int) ([]models.Benefit, error) {
			*calls++
			benefits := make([]models.Benefit, 0, size)
			for i := 0; i < size; i++ {
				benefits = append(benefits, models.Benefit{ID: string(rune('A' + i))})
			}
			return benefits, nil
		},
	}
}

func TestGetPopularCachesWithinTTL(t *testing.T) {
	calls := 0
	svc := NewPopularService(popularStore(&calls, 20), time.Minute, 20, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.GetPopular(ctx, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetPopular(ctx, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("store calls = %d, want 1 (second hit should come from cache)", calls)
	}
}

func TestGetPopularExpiredCacheRefetches(t *testing.T) {
	calls := 0
	svc := NewPopularService(popularStore(&calls, 20), -time.Second, 20, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.GetPopular(ctx, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetPopular(ctx, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("store calls = %d, want 2 (negative TTL expires immediately)", calls)
	}
}

func TestGetPopularLimitNormalization(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"zero falls back to default", 0, DefaultPopularLimit},
		{"negative falls back to default", -5, DefaultPopularLimit},
		{"within range", 5, 5},
		{"above max clamps to cache size", 50, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			svc := NewPopularService(popularStore(&calls, 20), time.Minute, 20, zap.NewNop())

			got, err := svc.GetPopular(context.Background(), tt.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.expected {
				t.Errorf("GetPopular(%d) returned %d items, want %d", tt.limit, len(got), tt.expected)
			}
		})
	}
}

// Recortes diferentes saem do mesmo snapshot cacheado
func TestGetPopularSlicesSharedSnapshot(t *testing.T) {
	calls := 0
	svc := NewPopularService(popularStore(&calls, 20), time.Minute, 20, zap.NewNop())
	ctx := context.Background()

	first, err := svc.GetPopular(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GetPopular(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Errorf("store calls = %d, want 1", calls)
	}
	if len(first) != 3 || len(second) != 10 {
		t.Errorf("slice sizes = %d/%d, want 3/10", len(first), len(second))
	}
	if first[0].ID != second[0].ID {
		t.Error("both slices should start at the top of the same ranking")
	}
}
