package models

// SortBy define as ordenações disponíveis para a busca
type SortBy string

const (
	SortByLatest  SortBy = "latest"
	SortByPopular SortBy = "popular"
)

// Defaults de paginação (mesmos limites do schema de validação)
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// SearchRequest representa uma requisição de busca de benefícios.
// Todos os filtros são opcionais; filtros ausentes não impõem restrição.
type SearchRequest struct {
	Age    *int    `json:"age" binding:"omitempty,min=0,max=150"`
	Income *int64  `json:"income" binding:"omitempty,min=0"`
	Region *string `json:"region" binding:"omitempty,max=50"`

	Category *string `json:"category"`

	// LifePregnancy é o único filtro derivado: casa com LifePregnant OU LifeBirth
	LifePregnancy *bool `json:"lifePregnancy"`

	TargetDisabled     *bool `json:"targetDisabled"`
	TargetVeteran      *bool `json:"targetVeteran"`
	JobSeeker          *bool `json:"jobSeeker"`
	JobEmployee        *bool `json:"jobEmployee"`
	LifeUniversity     *bool `json:"lifeUniversity"`
	FamilySingleParent *bool `json:"familySingleParent"`
	FamilyMultiChild   *bool `json:"familyMultiChild"`
	FamilySinglePerson *bool `json:"familySinglePerson"`
	FamilyNoHouse      *bool `json:"familyNoHouse"`

	SupportType *string `json:"supportType"`

	OnlineApplyAvailable *bool `json:"onlineApplyAvailable"`
	AlwaysOpen           *bool `json:"alwaysOpen"`

	SortBy SortBy `json:"sortBy" binding:"omitempty,oneof=latest popular"`

	Page  int `json:"page" binding:"omitempty,min=1"`
	Limit int `json:"limit" binding:"omitempty,min=1,max=100"`
}

// Normalize aplica os defaults de ordenação e paginação
func (r *SearchRequest) Normalize() {
	if r.SortBy == "" {
		r.SortBy = SortByLatest
	}
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.Limit < 1 {
		r.Limit = DefaultLimit
	}
	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}
}

// SearchResponse é a resposta do endpoint de busca.
// Total e TotalCount carregam o mesmo valor: o contrato v1 expunha "total"
// e a paginação do frontend consome "totalCount".
type SearchResponse struct {
	Benefits     []BenefitListItem `json:"benefits"`
	Total        int64             `json:"total"`
	TotalCount   int64             `json:"totalCount"`
	Page         int               `json:"page"`
	Limit        int               `json:"limit"`
	TotalPages   int               `json:"totalPages"`
	SearchParams *SearchRequest    `json:"searchParams"`
}

// BenefitListItem é a projeção de um benefício nos resultados de busca
type BenefitListItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   *string `json:"description"`
	Link          string  `json:"link"`
	MinAge        *int    `json:"minAge"`
	MaxAge        *int    `json:"maxAge"`
	MinIncome     *int64  `json:"minIncome"`
	MaxIncome     *int64  `json:"maxIncome"`
	Region        *string `json:"region"`
	SupportType   *string `json:"supportType"`
	ViewCount     int64   `json:"viewCount"`
	SiteViewCount int64   `json:"siteViewCount"`
}

// BenefitSummary é a projeção reduzida usada em relacionados e populares
type BenefitSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
	Link        string  `json:"link"`
	ViewCount   int64   `json:"viewCount"`
}

// BenefitDetailResponse é a resposta do endpoint de detalhe
type BenefitDetailResponse struct {
	Benefit         *Benefit         `json:"benefit"`
	RelatedBenefits []BenefitSummary `json:"relatedBenefits"`
}
