package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/welfarehub/benefits-api/internal/models"
)

// BenefitStore persiste o catálogo de benefícios
type BenefitStore struct {
	coll *mongo.Collection
}

func NewBenefitStore(db *mongo.Database) *BenefitStore {
	return &BenefitStore{coll: db.Collection(benefitsCollection)}
}

// Search aplica o filtro, a ordenação e a paginação, e retorna a página junto
// com a contagem total. Página e contagem são consultas independentes emitidas
// em paralelo sobre o mesmo filtro; não há snapshot transacional entre elas.
func (s *BenefitStore) Search(ctx context.Context, req *models.SearchRequest) ([]models.Benefit, int64, error) {
	filter := BuildFilter(req)

	var (
		wg       sync.WaitGroup
		benefits []models.Benefit
		total    int64
		findErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		opts := options.Find().
			SetSort(SortSpec(req.SortBy)).
			SetSkip(int64((req.Page - 1) * req.Limit)).
			SetLimit(int64(req.Limit))
		cursor, err := s.coll.Find(ctx, filter, opts)
		if err != nil {
			findErr = err
			return
		}
		findErr = cursor.All(ctx, &benefits)
	}()
	go func() {
		defer wg.Done()
		total, countErr = s.coll.CountDocuments(ctx, filter)
	}()
	wg.Wait()

	if findErr != nil {
		return nil, 0, fmt.Errorf("search find: %w", findErr)
	}
	if countErr != nil {
		return nil, 0, fmt.Errorf("search count: %w", countErr)
	}
	if benefits == nil {
		benefits = []models.Benefit{}
	}
	return benefits, total, nil
}

// GetByID busca um benefício pelo id externo
func (s *BenefitStore) GetByID(ctx context.Context, id string) (*models.Benefit, error) {
	var benefit models.Benefit
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&benefit)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get benefit %s: %w", id, err)
	}
	return &benefit, nil
}

// SaveEnrichment persiste os campos de detalhe e marca detailFetchedAt.
// Chamado apenas quando o fetch externo teve sucesso; payload parcial
// ainda conta como "buscado".
func (s *BenefitStore) SaveEnrichment(ctx context.Context, id string, e models.Enrichment, fetchedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"requiredDocuments":   e.RequiredDocuments,
		"officialConfirmDocs": e.OfficialConfirmDocs,
		"identityConfirmDocs": e.IdentityConfirmDocs,
		"onlineApplyUrl":      e.OnlineApplyURL,
		"relatedLaws":         e.RelatedLaws,
		"detailFetchedAt":     fetchedAt,
		"updatedAt":           fetchedAt,
	}}
	if _, err := s.coll.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("save enrichment %s: %w", id, err)
	}
	return nil
}

// IncrementSiteViews incrementa o contador local de visualizações e retorna
// o novo valor
func (s *BenefitStore) IncrementSiteViews(ctx context.Context, id string) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{
		"$inc": bson.M{"siteViewCount": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	var benefit models.Benefit
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&benefit)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment site views %s: %w", id, err)
	}
	return benefit.SiteViewCount, nil
}

// FindRelated retorna até limit benefícios da mesma categoria, excluindo o
// próprio id, ordenados por viewCount decrescente
func (s *BenefitStore) FindRelated(ctx context.Context, category, excludeID string, limit int) ([]models.Benefit, error) {
	filter := bson.M{
		"category": category,
		"_id":      bson.M{"$ne": excludeID},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "viewCount", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find related: %w", err)
	}
	var benefits []models.Benefit
	if err := cursor.All(ctx, &benefits); err != nil {
		return nil, fmt.Errorf("find related decode: %w", err)
	}
	return benefits, nil
}

// TopByViewCount retorna os benefícios mais vistos segundo o contador do
// gov24, excluindo registros sem contador
func (s *BenefitStore) TopByViewCount(ctx context.Context, limit int) ([]models.Benefit, error) {
	filter := bson.M{"viewCount": bson.M{"$ne": nil}}
	opts := options.Find().
		SetSort(bson.D{{Key: "viewCount", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("top by view count: %w", err)
	}
	var benefits []models.Benefit
	if err := cursor.All(ctx, &benefits); err != nil {
		return nil, fmt.Errorf("top by view count decode: %w", err)
	}
	return benefits, nil
}

// CategoryCounts agrega a contagem de benefícios por categoria, da maior
// para a menor
func (s *BenefitStore) CategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	var counts []models.CategoryCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("category counts decode: %w", err)
	}
	return counts, nil
}

// RegionCounts agrega a contagem de benefícios por região, da maior para a
// menor, ignorando registros sem região
func (s *BenefitStore) RegionCounts(ctx context.Context) ([]models.RegionCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"region": bson.M{"$ne": nil}}}},
		{{Key: "$group", Value: bson.M{"_id": "$region", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("region counts: %w", err)
	}
	var counts []models.RegionCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("region counts decode: %w", err)
	}
	return counts, nil
}

// Upsert grava um registro vindo da sincronização, preservando os campos
// locais (siteViewCount, enriquecimento, createdAt) em atualizações.
// Retorna true quando o registro foi criado.
func (s *BenefitStore) Upsert(ctx context.Context, b *models.Benefit) (bool, error) {
	update := bson.M{
		"$set": syncDocument(b),
		"$setOnInsert": bson.M{
			"siteViewCount": int64(0),
			"createdAt":     b.FetchedAt,
		},
	}
	result, err := s.coll.UpdateByID(ctx, b.ID, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("upsert %s: %w", b.ID, err)
	}
	return result.UpsertedCount > 0, nil
}

// syncDocument monta o $set de sincronização. Os campos de enriquecimento e
// os contadores locais ficam de fora: pertencem ao fluxo de detalhe.
func syncDocument(b *models.Benefit) bson.M {
	return bson.M{
		"name":                b.Name,
		"category":            b.Category,
		"link":                b.Link,
		"description":         b.Description,
		"supportDetails":      b.SupportDetails,
		"targetAudience":      b.TargetAudience,
		"selectionCriteria":   b.SelectionCriteria,
		"applicationMethod":   b.ApplicationMethod,
		"applicationDeadline": b.ApplicationDeadline,
		"organizationName":    b.OrganizationName,
		"contactInfo":         b.ContactInfo,
		"supportType":         b.SupportType,
		"userType":            b.UserType,
		"applyAgency":         b.ApplyAgency,
		"minAge":              b.MinAge,
		"maxAge":              b.MaxAge,
		"minIncome":           b.MinIncome,
		"maxIncome":           b.MaxIncome,
		"region":              b.Region,
		"targetMale":          b.TargetMale,
		"targetFemale":        b.TargetFemale,
		"incomeLevel0to50":    b.IncomeLevel0to50,
		"incomeLevel51to75":   b.IncomeLevel51to75,
		"incomeLevel76to100":  b.IncomeLevel76to100,
		"incomeLevel101to200": b.IncomeLevel101to200,
		"incomeLevelOver200":  b.IncomeLevelOver200,
		"lifePregnancyPlan":   b.LifePregnancyPlan,
		"lifePregnant":        b.LifePregnant,
		"lifeBirth":           b.LifeBirth,
		"lifeElementary":      b.LifeElementary,
		"lifeMiddleSchool":    b.LifeMiddleSchool,
		"lifeHighSchool":      b.LifeHighSchool,
		"lifeUniversity":      b.LifeUniversity,
		"jobFarmer":           b.JobFarmer,
		"jobFisherman":        b.JobFisherman,
		"jobLivestock":        b.JobLivestock,
		"jobForester":         b.JobForester,
		"jobEmployee":         b.JobEmployee,
		"jobSeeker":           b.JobSeeker,
		"targetDisabled":      b.TargetDisabled,
		"targetVeteran":       b.TargetVeteran,
		"targetDisease":       b.TargetDisease,
		"familyMulticultural": b.FamilyMulticultural,
		"familyNKDefector":    b.FamilyNKDefector,
		"familySingleParent":  b.FamilySingleParent,
		"familySinglePerson":  b.FamilySinglePerson,
		"familyMultiChild":    b.FamilyMultiChild,
		"familyNoHouse":       b.FamilyNoHouse,
		"familyNewResident":   b.FamilyNewResident,
		"viewCount":           b.ViewCount,
		"source":              b.Source,
		"fetchedAt":           b.FetchedAt,
		"updatedAt":           b.FetchedAt,
	}
}
