package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/welfarehub/benefits-api/internal/constants"
	"github.com/welfarehub/benefits-api/internal/gov24"
	"github.com/welfarehub/benefits-api/internal/models"
)

// CatalogAPI é a visão da sincronização sobre a API externa
type CatalogAPI interface {
	ListServices(ctx context.Context, page, perPage int) (*gov24.ServiceListPage, error)
	ListSupportConditions(ctx context.Context, page, perPage int) (*gov24.SupportConditionsPage, error)
}

// CatalogWriter grava registros sincronizados no catálogo
type CatalogWriter interface {
	Upsert(ctx context.Context, b *models.Benefit) (bool, error)
}

// SyncResult resume uma execução de sincronização
type SyncResult struct {
	Total   int
	Created int
	Updated int
	Errors  int
}

// SyncService sincroniza o catálogo completo a partir do gov24: baixa as
// condições de elegibilidade, depois a lista de serviços página a página,
// e faz upsert de cada registro preservando os campos locais.
type SyncService struct {
	api      CatalogAPI
	store    CatalogWriter
	limiter  *rate.Limiter
	pageSize int
	logger   *zap.Logger
}

// NewSyncService monta o serviço. pageDelay espaça as chamadas de página
// para respeitar a cota da API pública.
func NewSyncService(api CatalogAPI, store CatalogWriter, pageSize int, pageDelay time.Duration, logger *zap.Logger) *SyncService {
	return &SyncService{
		api:      api,
		store:    store,
		limiter:  rate.NewLimiter(rate.Every(pageDelay), 1),
		pageSize: pageSize,
		logger:   logger,
	}
}

// Run executa a sincronização completa. Falha de upsert de um registro é
// contada e logada sem interromper o restante da carga; falha de página
// aborta, já que o catálogo ficaria incompleto.
func (s *SyncService) Run(ctx context.Context) (*SyncResult, error) {
	started := time.Now()

	conditions, err := s.fetchConditions(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("support conditions loaded", zap.Int("count", len(conditions)))

	result := &SyncResult{}
	for page := 1; ; page++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		list, err := s.api.ListServices(ctx, page, s.pageSize)
		if err != nil {
			return nil, err
		}
		if len(list.Data) == 0 {
			break
		}

		fetchedAt := time.Now()
		for i := range list.Data {
			item := &list.Data[i]
			benefit := mapServiceItem(item, conditions[item.ServiceID], fetchedAt)
			created, err := s.store.Upsert(ctx, benefit)
			if err != nil {
				s.logger.Warn("sync upsert failed", zap.String("id", item.ServiceID), zap.Error(err))
				result.Errors++
				continue
			}
			result.Total++
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}

		s.logger.Info("service page synced",
			zap.Int("page", page),
			zap.Int("count", len(list.Data)),
			zap.Int("totalCount", list.TotalCount))

		if result.Total+result.Errors >= list.TotalCount {
			break
		}
	}

	s.logger.Info("sync finished",
		zap.Int("total", result.Total),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("errors", result.Errors),
		zap.Duration("elapsed", time.Since(started)))
	return result, nil
}

// fetchConditions baixa todas as páginas de condições e indexa por serviço
func (s *SyncService) fetchConditions(ctx context.Context) (map[string]*gov24.SupportConditionItem, error) {
	conditions := make(map[string]*gov24.SupportConditionItem)
	for page := 1; ; page++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		list, err := s.api.ListSupportConditions(ctx, page, s.pageSize)
		if err != nil {
			return nil, err
		}
		if len(list.Data) == 0 {
			break
		}
		for i := range list.Data {
			item := list.Data[i]
			conditions[item.ServiceID] = &item
		}
		if len(conditions) >= list.TotalCount {
			break
		}
	}
	return conditions, nil
}

// mapServiceItem converte um item do serviceList no registro do catálogo,
// aplicando as condições de elegibilidade quando existem
func mapServiceItem(item *gov24.ServiceListItem, cond *gov24.SupportConditionItem, fetchedAt time.Time) *models.Benefit {
	region := constants.ExtractRegionFromOrganization(item.OrganizationName)

	benefit := &models.Benefit{
		ID:       item.ServiceID,
		Name:     item.Name,
		Category: item.Category,
		Link:     item.DetailURL,

		Description:         strPtr(item.Summary),
		SupportDetails:      strPtr(item.SupportDetails),
		TargetAudience:      strPtr(item.TargetAudience),
		SelectionCriteria:   strPtr(item.SelectionCriteria),
		ApplicationMethod:   strPtr(item.ApplicationMethod),
		ApplicationDeadline: strPtr(item.ApplicationDeadline),
		OrganizationName:    strPtr(item.OrganizationName),
		ContactInfo:         strPtr(item.ContactInfo),
		SupportType:         strPtr(item.SupportType),
		UserType:            strPtr(item.UserType),
		ApplyAgency:         strPtr(item.ApplyAgency),

		Region:    &region,
		ViewCount: item.ViewCount,

		Source:    "gov24",
		FetchedAt: fetchedAt,
	}

	if cond != nil {
		applyConditions(benefit, cond)
	}
	return benefit
}

// applyConditions traduz os códigos JA nas flags tri-state do catálogo
func applyConditions(b *models.Benefit, cond *gov24.SupportConditionItem) {
	b.MinAge = cond.JA0110
	b.MaxAge = cond.JA0111

	b.TargetMale = gov24.JACodeBool(cond.JA0101)
	b.TargetFemale = gov24.JACodeBool(cond.JA0102)

	b.IncomeLevel0to50 = gov24.JACodeBool(cond.JA0201)
	b.IncomeLevel51to75 = gov24.JACodeBool(cond.JA0202)
	b.IncomeLevel76to100 = gov24.JACodeBool(cond.JA0203)
	b.IncomeLevel101to200 = gov24.JACodeBool(cond.JA0204)
	b.IncomeLevelOver200 = gov24.JACodeBool(cond.JA0205)

	b.LifePregnancyPlan = gov24.JACodeBool(cond.JA0301)
	b.LifePregnant = gov24.JACodeBool(cond.JA0302)
	b.LifeBirth = gov24.JACodeBool(cond.JA0303)
	b.LifeElementary = gov24.JACodeBool(cond.JA0317)
	b.LifeMiddleSchool = gov24.JACodeBool(cond.JA0318)
	b.LifeHighSchool = gov24.JACodeBool(cond.JA0319)
	b.LifeUniversity = gov24.JACodeBool(cond.JA0320)

	b.JobFarmer = gov24.JACodeBool(cond.JA0313)
	b.JobFisherman = gov24.JACodeBool(cond.JA0314)
	b.JobLivestock = gov24.JACodeBool(cond.JA0315)
	b.JobForester = gov24.JACodeBool(cond.JA0316)
	b.JobEmployee = gov24.JACodeBool(cond.JA0326)
	b.JobSeeker = gov24.JACodeBool(cond.JA0327)

	b.TargetDisabled = gov24.JACodeBool(cond.JA0328)
	b.TargetVeteran = gov24.JACodeBool(cond.JA0329)
	b.TargetDisease = gov24.JACodeBool(cond.JA0330)

	b.FamilyMulticultural = gov24.JACodeBool(cond.JA0401)
	b.FamilyNKDefector = gov24.JACodeBool(cond.JA0402)
	b.FamilySingleParent = gov24.JACodeBool(cond.JA0403)
	b.FamilySinglePerson = gov24.JACodeBool(cond.JA0404)
	b.FamilyMultiChild = gov24.JACodeBool(cond.JA0411)
	b.FamilyNoHouse = gov24.JACodeBool(cond.JA0412)
	b.FamilyNewResident = gov24.JACodeBool(cond.JA0413)
}

func strPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
