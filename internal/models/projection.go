package models

import "github.com/welfarehub/benefits-api/internal/utils"

// ToListItem projeta o benefício para a lista de resultados de busca
func (b *Benefit) ToListItem() BenefitListItem {
	return BenefitListItem{
		ID:            b.ID,
		Name:          b.Name,
		Category:      b.Category,
		Description:   plainDescription(b.Description),
		Link:          b.Link,
		MinAge:        b.MinAge,
		MaxAge:        b.MaxAge,
		MinIncome:     b.MinIncome,
		MaxIncome:     b.MaxIncome,
		Region:        b.Region,
		SupportType:   b.SupportType,
		ViewCount:     viewCountOrZero(b.ViewCount),
		SiteViewCount: b.SiteViewCount,
	}
}

// ToSummary projeta o benefício para listas de relacionados e populares
func (b *Benefit) ToSummary() BenefitSummary {
	return BenefitSummary{
		ID:          b.ID,
		Name:        b.Name,
		Category:    b.Category,
		Description: plainDescription(b.Description),
		Link:        b.Link,
		ViewCount:   viewCountOrZero(b.ViewCount),
	}
}

// plainDescription remove formatação markdown que aparece em alguns
// resumos de serviço do gov24
func plainDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	plain := utils.StripMarkdown(*desc)
	return &plain
}

func viewCountOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
