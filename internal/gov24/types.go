// Package gov24 implementa o cliente da API pública 보조금24 (odcloud.kr).
//
// Endpoints usados:
//   - /gov24/v3/serviceList        lista paginada de serviços
//   - /gov24/v3/supportConditions  condições de elegibilidade (códigos JA)
//   - /gov24/v3/serviceDetail      detalhe on-demand de um serviço
package gov24

// envelope comum das respostas da API
type pageMeta struct {
	Page         int `json:"page"`
	PerPage      int `json:"perPage"`
	TotalCount   int `json:"totalCount"`
	CurrentCount int `json:"currentCount"`
	MatchCount   int `json:"matchCount"`
}

// ServiceListPage é uma página do endpoint serviceList
type ServiceListPage struct {
	pageMeta
	Data []ServiceListItem `json:"data"`
}

// SupportConditionsPage é uma página do endpoint supportConditions
type SupportConditionsPage struct {
	pageMeta
	Data []SupportConditionItem `json:"data"`
}

// serviceDetailPage é a resposta do endpoint serviceDetail
type serviceDetailPage struct {
	pageMeta
	Data []ServiceDetailItem `json:"data"`
}

// ServiceListItem é um item do serviceList. As chaves JSON são os nomes de
// campo em coreano da API pública.
type ServiceListItem struct {
	ServiceID           string `json:"서비스ID"`
	Name                string `json:"서비스명"`
	Category            string `json:"서비스분야"`
	Summary             string `json:"서비스목적요약"`
	TargetAudience      string `json:"지원대상"`
	SelectionCriteria   string `json:"선정기준"`
	SupportDetails      string `json:"지원내용"`
	ApplicationMethod   string `json:"신청방법"`
	ApplicationDeadline string `json:"신청기한"`
	DetailURL           string `json:"상세조회URL"`
	OrganizationName    string `json:"소관기관명"`
	ContactInfo         string `json:"전화문의"`
	SupportType         string `json:"지원유형"`
	UserType            string `json:"사용자구분"`
	ApplyAgency         string `json:"접수기관명"`
	ViewCount           *int64 `json:"조회수"`
}

// SupportConditionItem é um item do supportConditions. Os códigos JA são
// "Y"/"N"/ausente, exceto JA0110/JA0111 que são os limites de idade.
type SupportConditionItem struct {
	ServiceID string `json:"서비스ID"`
	Name      string `json:"서비스명"`

	// Gênero
	JA0101 *string `json:"JA0101"` // masculino
	JA0102 *string `json:"JA0102"` // feminino

	// Idade
	JA0110 *int `json:"JA0110"` // idade mínima
	JA0111 *int `json:"JA0111"` // idade máxima

	// Faixas de renda (% da renda mediana)
	JA0201 *string `json:"JA0201"` // 0~50%
	JA0202 *string `json:"JA0202"` // 51~75%
	JA0203 *string `json:"JA0203"` // 76~100%
	JA0204 *string `json:"JA0204"` // 101~200%
	JA0205 *string `json:"JA0205"` // acima de 200%

	// Ciclo de vida
	JA0301 *string `json:"JA0301"` // planejamento de gravidez
	JA0302 *string `json:"JA0302"` // gestante
	JA0303 *string `json:"JA0303"` // nascimento/adoção

	// Estudantes
	JA0317 *string `json:"JA0317"` // ensino fundamental
	JA0318 *string `json:"JA0318"` // ensino médio inicial
	JA0319 *string `json:"JA0319"` // ensino médio
	JA0320 *string `json:"JA0320"` // universitário/pós

	// Ocupação
	JA0313 *string `json:"JA0313"` // agricultor
	JA0314 *string `json:"JA0314"` // pescador
	JA0315 *string `json:"JA0315"` // pecuarista
	JA0316 *string `json:"JA0316"` // silvicultor
	JA0326 *string `json:"JA0326"` // trabalhador assalariado
	JA0327 *string `json:"JA0327"` // desempregado/em busca

	// Condições especiais
	JA0328 *string `json:"JA0328"` // pessoa com deficiência
	JA0329 *string `json:"JA0329"` // veterano
	JA0330 *string `json:"JA0330"` // doença/enfermidade

	// Situação familiar
	JA0401 *string `json:"JA0401"` // família multicultural
	JA0402 *string `json:"JA0402"` // desertor norte-coreano
	JA0403 *string `json:"JA0403"` // família monoparental
	JA0404 *string `json:"JA0404"` // domicílio unipessoal
	JA0411 *string `json:"JA0411"` // família numerosa
	JA0412 *string `json:"JA0412"` // sem moradia própria
	JA0413 *string `json:"JA0413"` // recém-chegado
}

// ServiceDetailItem é a resposta do serviceDetail
type ServiceDetailItem struct {
	ServiceID           string `json:"서비스ID"`
	Name                string `json:"서비스명"`
	Purpose             string `json:"서비스목적"`
	RequiredDocuments   string `json:"구비서류"`
	OfficialConfirmDocs string `json:"공무원확인구비서류"`
	IdentityConfirmDocs string `json:"본인확인필요구비서류"`
	OnlineApplyURL      string `json:"온라인신청사이트URL"`
	Laws                string `json:"법령"`
	LocalLaws           string `json:"자치법규"`
	ApplyAgency         string `json:"접수기관명"`
	ContactInfo         string `json:"문의처"`
}

// JACodeBool traduz um código JA para a flag tri-state: "Y" vira true,
// "N" vira false, qualquer outro valor ou ausência vira nil
func JACodeBool(value *string) *bool {
	if value == nil {
		return nil
	}
	switch *value {
	case "Y":
		v := true
		return &v
	case "N":
		v := false
		return &v
	}
	return nil
}
