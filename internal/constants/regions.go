// Package constants define os códigos de região (17 cidades/províncias) e a
// extração de região a partir do nome do órgão responsável.
package constants

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Códigos de região usados no catálogo. Nationwide é o valor sentinela que
// casa com qualquer filtro de região.
const (
	RegionSeoul      = "서울"
	RegionBusan      = "부산"
	RegionDaegu      = "대구"
	RegionIncheon    = "인천"
	RegionGwangju    = "광주"
	RegionDaejeon    = "대전"
	RegionUlsan      = "울산"
	RegionSejong     = "세종"
	RegionGyeonggi   = "경기"
	RegionGangwon    = "강원"
	RegionChungbuk   = "충북"
	RegionChungnam   = "충남"
	RegionJeonbuk    = "전북"
	RegionJeonnam    = "전남"
	RegionGyeongbuk  = "경북"
	RegionGyeongnam  = "경남"
	RegionJeju       = "제주"
	RegionNationwide = "전국"
)

type regionPattern struct {
	pattern *regexp.Regexp
	region  string
}

// Ordem importa: padrões mais específicos primeiro
var regionPatterns = []regionPattern{
	{regexp.MustCompile(`서울(특별시)?`), RegionSeoul},
	{regexp.MustCompile(`부산(광역시)?`), RegionBusan},
	{regexp.MustCompile(`대구(광역시)?`), RegionDaegu},
	{regexp.MustCompile(`인천(광역시)?`), RegionIncheon},
	{regexp.MustCompile(`광주(광역시)?`), RegionGwangju},
	{regexp.MustCompile(`대전(광역시)?`), RegionDaejeon},
	{regexp.MustCompile(`울산(광역시)?`), RegionUlsan},
	{regexp.MustCompile(`세종(특별자치시)?`), RegionSejong},
	{regexp.MustCompile(`경기(도)?`), RegionGyeonggi},
	{regexp.MustCompile(`강원(특별자치도|도)?`), RegionGangwon},
	{regexp.MustCompile(`충청북도|충북`), RegionChungbuk},
	{regexp.MustCompile(`충청남도|충남`), RegionChungnam},
	{regexp.MustCompile(`전라북도|전북특별자치도|전북`), RegionJeonbuk},
	{regexp.MustCompile(`전라남도|전남`), RegionJeonnam},
	{regexp.MustCompile(`경상북도|경북`), RegionGyeongbuk},
	{regexp.MustCompile(`경상남도|경남`), RegionGyeongnam},
	{regexp.MustCompile(`제주(특별자치도)?`), RegionJeju},
}

// ExtractRegionFromOrganization extrai o código de região do nome do órgão
// (소관기관명). Nomes sem correspondência, como ministérios e agências
// nacionais, recebem o sentinela nacional.
//
//	ExtractRegionFromOrganization("서울특별시 동대문구") // "서울"
//	ExtractRegionFromOrganization("경기도 수원시")       // "경기"
//	ExtractRegionFromOrganization("보건복지부")          // "전국"
func ExtractRegionFromOrganization(organizationName string) string {
	if organizationName == "" {
		return RegionNationwide
	}

	// Alguns exports do gov24 chegam com hangul decomposto (jamo); normaliza
	// para NFC antes de casar os padrões
	name := norm.NFC.String(organizationName)

	for _, rp := range regionPatterns {
		if rp.pattern.MatchString(name) {
			return rp.region
		}
	}

	return RegionNationwide
}
