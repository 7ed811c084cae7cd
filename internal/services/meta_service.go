package services

import (
	"context"

	"github.com/welfarehub/benefits-api/internal/models"
)

// MetaService expõe os agregados usados pelos filtros do frontend
type MetaService struct {
	store BenefitStore
}

func NewMetaService(store BenefitStore) *MetaService {
	return &MetaService{store: store}
}

// Categories retorna as categorias existentes com a contagem de benefícios
func (s *MetaService) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	return s.store.CategoryCounts(ctx)
}

// Regions retorna as regiões existentes com a contagem de benefícios
func (s *MetaService) Regions(ctx context.Context) ([]models.RegionCount, error) {
	return s.store.RegionCounts(ctx)
}
