// Package services contém a lógica de negócio da API de benefícios.
//
// As dependências de persistência e de API externa entram por interfaces
// definidas aqui, do lado consumidor; as implementações concretas vivem em
// internal/store e internal/gov24.
package services

import (
	"context"
	"time"

	"github.com/welfarehub/benefits-api/internal/models"
)

// BenefitStore é a visão dos serviços sobre o catálogo persistido
type BenefitStore interface {
	Search(ctx context.Context, req *models.SearchRequest) ([]models.Benefit, int64, error)
	GetByID(ctx context.Context, id string) (*models.Benefit, error)
	SaveEnrichment(ctx context.Context, id string, e models.Enrichment, fetchedAt time.Time) error
	IncrementSiteViews(ctx context.Context, id string) (int64, error)
	FindRelated(ctx context.Context, category, excludeID string, limit int) ([]models.Benefit, error)
	TopByViewCount(ctx context.Context, limit int) ([]models.Benefit, error)
	CategoryCounts(ctx context.Context) ([]models.CategoryCount, error)
	RegionCounts(ctx context.Context) ([]models.RegionCount, error)
}

// SearchLogStore grava o registro append-only de buscas
type SearchLogStore interface {
	Insert(ctx context.Context, entry *models.SearchLogEntry) error
}

// DetailFetcher busca os campos de enriquecimento na API externa
type DetailFetcher interface {
	FetchEnrichment(ctx context.Context, serviceID string) (*models.Enrichment, error)
}

// SeenTracker deduplica visualizações por sessão anônima
type SeenTracker interface {
	MarkSeen(sessionHash, benefitID string) bool
}
