package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/welfarehub/benefits-api/internal/constants"
	"github.com/welfarehub/benefits-api/internal/models"
)

// Marcadores de prazo "sempre aberto" no texto livre de 신청기한
const alwaysOpenPattern = "상시|수시|연중"

// BuildFilter traduz a requisição de busca em um filtro bson.
//
// Cada filtro presente contribui um termo independente na conjunção final;
// o único OR interno é o do filtro de gravidez (lifePregnant OU lifeBirth).
// Acumular termos numa lista plana evita que um filtro com OR sobrescreva
// o OR de outro filtro na mesma requisição.
func BuildFilter(req *models.SearchRequest) bson.M {
	var and []bson.M

	// Idade: o benefício casa se cada limite está ausente ou cobre a idade
	if req.Age != nil {
		and = append(and,
			bson.M{"$or": []bson.M{
				{"minAge": nil},
				{"minAge": bson.M{"$lte": *req.Age}},
			}},
			bson.M{"$or": []bson.M{
				{"maxAge": nil},
				{"maxAge": bson.M{"$gte": *req.Age}},
			}},
		)
	}

	// Renda: mesmo padrão dos limites de idade
	if req.Income != nil {
		and = append(and,
			bson.M{"$or": []bson.M{
				{"minIncome": nil},
				{"minIncome": bson.M{"$lte": *req.Income}},
			}},
			bson.M{"$or": []bson.M{
				{"maxIncome": nil},
				{"maxIncome": bson.M{"$gte": *req.Income}},
			}},
		)
	}

	// Região: sem região, região exata ou o sentinela nacional
	if req.Region != nil && *req.Region != "" {
		and = append(and, bson.M{"$or": []bson.M{
			{"region": nil},
			{"region": *req.Region},
			{"region": constants.RegionNationwide},
		}})
	}

	if req.Category != nil && *req.Category != "" {
		and = append(and, bson.M{"category": *req.Category})
	}

	if req.SupportType != nil && *req.SupportType != "" {
		and = append(and, bson.M{"supportType": *req.SupportType})
	}

	// Gravidez/nascimento: único filtro que expande para duas flags
	if req.LifePregnancy != nil && *req.LifePregnancy {
		and = append(and, bson.M{"$or": []bson.M{
			{"lifePregnant": true},
			{"lifeBirth": true},
		}})
	}

	// Flags unidirecionais: true filtra, ausente/false não restringe
	flagFilters := []struct {
		field string
		value *bool
	}{
		{"targetDisabled", req.TargetDisabled},
		{"targetVeteran", req.TargetVeteran},
		{"jobSeeker", req.JobSeeker},
		{"jobEmployee", req.JobEmployee},
		{"lifeUniversity", req.LifeUniversity},
		{"familySingleParent", req.FamilySingleParent},
		{"familyMultiChild", req.FamilyMultiChild},
		{"familySinglePerson", req.FamilySinglePerson},
		{"familyNoHouse", req.FamilyNoHouse},
	}
	for _, f := range flagFilters {
		if f.value != nil && *f.value {
			and = append(and, bson.M{f.field: true})
		}
	}

	if req.OnlineApplyAvailable != nil && *req.OnlineApplyAvailable {
		and = append(and, bson.M{"onlineApplyUrl": bson.M{"$ne": nil}})
	}

	// Sempre aberto: prazo ausente ou contendo um marcador de inscrição contínua
	if req.AlwaysOpen != nil && *req.AlwaysOpen {
		and = append(and, bson.M{"$or": []bson.M{
			{"applicationDeadline": nil},
			{"applicationDeadline": bson.M{"$regex": alwaysOpenPattern}},
		}})
	}

	if len(and) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": and}
}

// SortSpec retorna a ordenação do mongo para o sortBy pedido.
// O _id entra como chave secundária para desempate estável.
func SortSpec(sortBy models.SortBy) bson.D {
	if sortBy == models.SortByPopular {
		return bson.D{{Key: "viewCount", Value: -1}, {Key: "_id", Value: 1}}
	}
	return bson.D{{Key: "fetchedAt", Value: -1}, {Key: "_id", Value: 1}}
}
