package models

import "time"

// Benefit representa um programa de apoio governamental sincronizado do gov24.
//
// Campos numéricos de elegibilidade (MinAge/MaxAge, MinIncome/MaxIncome) usam
// ponteiros: nil significa "sem limite". As flags booleanas são tri-state:
// true/false quando o gov24 informa Y/N, nil quando a condição é desconhecida.
type Benefit struct {
	ID       string `bson:"_id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Category string `bson:"category" json:"category"`
	Link     string `bson:"link" json:"link"`

	Description         *string `bson:"description" json:"description"`
	SupportDetails      *string `bson:"supportDetails" json:"supportDetails"`
	TargetAudience      *string `bson:"targetAudience" json:"targetAudience"`
	SelectionCriteria   *string `bson:"selectionCriteria" json:"selectionCriteria"`
	ApplicationMethod   *string `bson:"applicationMethod" json:"applicationMethod"`
	ApplicationDeadline *string `bson:"applicationDeadline" json:"applicationDeadline"`
	OrganizationName    *string `bson:"organizationName" json:"organizationName"`
	ContactInfo         *string `bson:"contactInfo" json:"contactInfo"`
	SupportType         *string `bson:"supportType" json:"supportType"`
	UserType            *string `bson:"userType" json:"userType"`
	ApplyAgency         *string `bson:"applyAgency" json:"applyAgency"`

	MinAge    *int   `bson:"minAge" json:"minAge"`
	MaxAge    *int   `bson:"maxAge" json:"maxAge"`
	MinIncome *int64 `bson:"minIncome" json:"minIncome"`
	MaxIncome *int64 `bson:"maxIncome" json:"maxIncome"`

	Region *string `bson:"region" json:"region"`

	// Gênero
	TargetMale   *bool `bson:"targetMale" json:"targetMale"`
	TargetFemale *bool `bson:"targetFemale" json:"targetFemale"`

	// Faixas de renda (% da renda mediana)
	IncomeLevel0to50    *bool `bson:"incomeLevel0to50" json:"incomeLevel0to50"`
	IncomeLevel51to75   *bool `bson:"incomeLevel51to75" json:"incomeLevel51to75"`
	IncomeLevel76to100  *bool `bson:"incomeLevel76to100" json:"incomeLevel76to100"`
	IncomeLevel101to200 *bool `bson:"incomeLevel101to200" json:"incomeLevel101to200"`
	IncomeLevelOver200  *bool `bson:"incomeLevelOver200" json:"incomeLevelOver200"`

	// Ciclo de vida
	LifePregnancyPlan *bool `bson:"lifePregnancyPlan" json:"lifePregnancyPlan"`
	LifePregnant      *bool `bson:"lifePregnant" json:"lifePregnant"`
	LifeBirth         *bool `bson:"lifeBirth" json:"lifeBirth"`
	LifeElementary    *bool `bson:"lifeElementary" json:"lifeElementary"`
	LifeMiddleSchool  *bool `bson:"lifeMiddleSchool" json:"lifeMiddleSchool"`
	LifeHighSchool    *bool `bson:"lifeHighSchool" json:"lifeHighSchool"`
	LifeUniversity    *bool `bson:"lifeUniversity" json:"lifeUniversity"`

	// Situação profissional
	JobFarmer    *bool `bson:"jobFarmer" json:"jobFarmer"`
	JobFisherman *bool `bson:"jobFisherman" json:"jobFisherman"`
	JobLivestock *bool `bson:"jobLivestock" json:"jobLivestock"`
	JobForester  *bool `bson:"jobForester" json:"jobForester"`
	JobEmployee  *bool `bson:"jobEmployee" json:"jobEmployee"`
	JobSeeker    *bool `bson:"jobSeeker" json:"jobSeeker"`

	// Condições especiais
	TargetDisabled *bool `bson:"targetDisabled" json:"targetDisabled"`
	TargetVeteran  *bool `bson:"targetVeteran" json:"targetVeteran"`
	TargetDisease  *bool `bson:"targetDisease" json:"targetDisease"`

	// Situação familiar
	FamilyMulticultural *bool `bson:"familyMulticultural" json:"familyMulticultural"`
	FamilyNKDefector    *bool `bson:"familyNKDefector" json:"familyNKDefector"`
	FamilySingleParent  *bool `bson:"familySingleParent" json:"familySingleParent"`
	FamilySinglePerson  *bool `bson:"familySinglePerson" json:"familySinglePerson"`
	FamilyMultiChild    *bool `bson:"familyMultiChild" json:"familyMultiChild"`
	FamilyNoHouse       *bool `bson:"familyNoHouse" json:"familyNoHouse"`
	FamilyNewResident   *bool `bson:"familyNewResident" json:"familyNewResident"`

	// ViewCount vem do gov24 e nunca é incrementado por este serviço.
	// SiteViewCount é o contador local, deduplicado por sessão anônima.
	ViewCount     *int64 `bson:"viewCount" json:"viewCount"`
	SiteViewCount int64  `bson:"siteViewCount" json:"siteViewCount"`

	// Enriquecimento on-demand (serviceDetail). DetailFetchedAt nil significa
	// que o fetch de detalhe nunca foi concluído com sucesso.
	DetailFetchedAt     *time.Time `bson:"detailFetchedAt" json:"detailFetchedAt"`
	RequiredDocuments   *string    `bson:"requiredDocuments" json:"requiredDocuments"`
	OfficialConfirmDocs *string    `bson:"officialConfirmDocs" json:"officialConfirmDocs"`
	IdentityConfirmDocs *string    `bson:"identityConfirmDocs" json:"identityConfirmDocs"`
	OnlineApplyURL      *string    `bson:"onlineApplyUrl" json:"onlineApplyUrl"`
	RelatedLaws         *string    `bson:"relatedLaws" json:"relatedLaws"`

	Source    string    `bson:"source" json:"source"`
	FetchedAt time.Time `bson:"fetchedAt" json:"fetchedAt"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Enrichment agrupa os campos preenchidos pelo fetch on-demand de detalhe.
type Enrichment struct {
	RequiredDocuments   *string
	OfficialConfirmDocs *string
	IdentityConfirmDocs *string
	OnlineApplyURL      *string
	RelatedLaws         *string
}

// CategoryCount agrega quantos benefícios existem em uma categoria.
type CategoryCount struct {
	Name  string `bson:"_id" json:"name"`
	Count int64  `bson:"count" json:"count"`
}

// RegionCount agrega quantos benefícios existem em uma região.
type RegionCount struct {
	Region string `bson:"_id" json:"region"`
	Count  int64  `bson:"count" json:"count"`
}
