package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/welfarehub/benefits-api/internal/gov24"
	"github.com/welfarehub/benefits-api/internal/models"
)

type stubCatalogAPI struct {
	services   []gov24.ServiceListItem
	conditions []gov24.SupportConditionItem
}

func (s *stubCatalogAPI) ListServices(ctx context.Context, page, perPage int) (*gov24.ServiceListPage, error) {
	resp := &gov24.ServiceListPage{}
	resp.TotalCount = len(s.services)
	if page == 1 {
		resp.Data = s.services
		resp.CurrentCount = len(s.services)
	}
	return resp, nil
}

func (s *stubCatalogAPI) ListSupportConditions(ctx context.Context, page, perPage int) (*gov24.SupportConditionsPage, error) {
	resp := &gov24.SupportConditionsPage{}
	resp.TotalCount = len(s.conditions)
	if page == 1 {
		resp.Data = s.conditions
		resp.CurrentCount = len(s.conditions)
	}
	return resp, nil
}

type recordingWriter struct {
	upserts []*models.Benefit
	created map[string]bool
}

func (w *recordingWriter) Upsert(ctx context.Context, b *models.Benefit) (bool, error) {
	w.upserts = append(w.upserts, b)
	return w.created[b.ID], nil
}

func TestSyncRun(t *testing.T) {
	minAge, maxAge := 19, 34
	api := &stubCatalogAPI{
		services: []gov24.ServiceListItem{
			{
				ServiceID:        "SVC001",
				Name:             "청년 월세 지원",
				Category:         "주거",
				DetailURL:        "https://www.gov.kr/svc001",
				OrganizationName: "서울특별시 강남구",
				Summary:          "청년 가구의 월세를 지원합니다",
			},
			{
				ServiceID:        "SVC002",
				Name:             "기초연금",
				Category:         "생활안정",
				OrganizationName: "보건복지부",
			},
		},
		conditions: []gov24.SupportConditionItem{
			{
				ServiceID: "SVC001",
				JA0110:    &minAge,
				JA0111:    &maxAge,
				JA0328:    strValue("Y"),
				JA0329:    strValue("N"),
			},
		},
	}
	writer := &recordingWriter{created: map[string]bool{"SVC001": true}}
	svc := NewSyncService(api, writer, 1000, time.Millisecond, zap.NewNop())

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Total != 2 || result.Created != 1 || result.Updated != 1 || result.Errors != 0 {
		t.Errorf("result = %+v, want total 2, created 1, updated 1, errors 0", result)
	}
	if len(writer.upserts) != 2 {
		t.Fatalf("upserts = %d, want 2", len(writer.upserts))
	}

	first := writer.upserts[0]
	if first.ID != "SVC001" || first.Name != "청년 월세 지원" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.Region == nil || *first.Region != "서울" {
		t.Errorf("region should be extracted from organization name, got %v", first.Region)
	}
	if first.MinAge == nil || *first.MinAge != 19 || first.MaxAge == nil || *first.MaxAge != 34 {
		t.Errorf("age bounds not applied: min=%v max=%v", first.MinAge, first.MaxAge)
	}
	if first.TargetDisabled == nil || !*first.TargetDisabled {
		t.Error("JA0328=Y should map to targetDisabled=true")
	}
	if first.TargetVeteran == nil || *first.TargetVeteran {
		t.Error("JA0329=N should map to targetVeteran=false")
	}
	if first.TargetDisease != nil {
		t.Error("absent JA0330 should stay nil")
	}
	if first.Source != "gov24" {
		t.Errorf("source = %q, want gov24", first.Source)
	}

	// Sem condições: flags ficam desconhecidas, região cai no sentinela
	second := writer.upserts[1]
	if second.MinAge != nil || second.TargetDisabled != nil {
		t.Errorf("record without conditions should keep eligibility unknown: %+v", second)
	}
	if second.Region == nil || *second.Region != "전국" {
		t.Errorf("ministry should map to nationwide, got %v", second.Region)
	}
	if second.Description != nil {
		t.Errorf("empty summary should stay nil, got %v", second.Description)
	}
}

func TestMapServiceItemOptionalFields(t *testing.T) {
	item := &gov24.ServiceListItem{
		ServiceID:        "SVC003",
		Name:             "어촌 정착 지원",
		Category:         "농림축산어업",
		OrganizationName: "전라남도 여수시",
		ContactInfo:      "  ",
		SupportType:      "현금",
	}

	benefit := mapServiceItem(item, nil, time.Now())

	if benefit.ContactInfo != nil {
		t.Error("whitespace-only contact info should map to nil")
	}
	if benefit.SupportType == nil || *benefit.SupportType != "현금" {
		t.Errorf("supportType = %v, want 현금", benefit.SupportType)
	}
	if benefit.Region == nil || *benefit.Region != "전남" {
		t.Errorf("region = %v, want 전남", benefit.Region)
	}
}
