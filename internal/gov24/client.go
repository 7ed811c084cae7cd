package gov24

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/welfarehub/benefits-api/internal/models"
)

const (
	serviceListPath       = "/gov24/v3/serviceList"
	supportConditionsPath = "/gov24/v3/supportConditions"
	serviceDetailPath     = "/gov24/v3/serviceDetail"
)

// ErrDetailNotFound indica que a API não conhece o serviço pedido
var ErrDetailNotFound = errors.New("gov24: service detail not found")

// Client fala com a API pública 보조금24. Todas as chamadas passam pela
// política de retry configurada.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
	retry      RetryPolicy
	logger     *zap.Logger
}

func NewClient(baseURL, serviceKey string, timeout time.Duration, retry RetryPolicy, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		retry:      retry,
		logger:     logger,
	}
}

// ListServices retorna uma página do catálogo de serviços
func (c *Client) ListServices(ctx context.Context, page, perPage int) (*ServiceListPage, error) {
	var result ServiceListPage
	if err := c.get(ctx, serviceListPath, pageParams(page, perPage), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListSupportConditions retorna uma página das condições de elegibilidade
func (c *Client) ListSupportConditions(ctx context.Context, page, perPage int) (*SupportConditionsPage, error) {
	var result SupportConditionsPage
	if err := c.get(ctx, supportConditionsPath, pageParams(page, perPage), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetServiceDetail busca o detalhe de um único serviço. Retorna
// ErrDetailNotFound quando a API responde sem dados.
func (c *Client) GetServiceDetail(ctx context.Context, serviceID string) (*ServiceDetailItem, error) {
	params := url.Values{}
	params.Set("page", "1")
	params.Set("perPage", "1")
	params.Set("cond[서비스ID::EQ]", serviceID)

	var result serviceDetailPage
	if err := c.get(ctx, serviceDetailPath, params, &result); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDetailNotFound, serviceID)
	}
	return &result.Data[0], nil
}

// FetchEnrichment busca o detalhe e o converte nos campos de enriquecimento
// do catálogo
func (c *Client) FetchEnrichment(ctx context.Context, serviceID string) (*models.Enrichment, error) {
	detail, err := c.GetServiceDetail(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	enrichment := &models.Enrichment{
		RequiredDocuments:   optional(detail.RequiredDocuments),
		OfficialConfirmDocs: optional(detail.OfficialConfirmDocs),
		IdentityConfirmDocs: optional(detail.IdentityConfirmDocs),
		OnlineApplyURL:      optional(detail.OnlineApplyURL),
		RelatedLaws:         optional(joinLaws(detail.Laws, detail.LocalLaws)),
	}
	return enrichment, nil
}

// get executa a chamada com retry e decodifica a resposta em target
func (c *Client) get(ctx context.Context, path string, params url.Values, target interface{}) error {
	params.Set("serviceKey", c.serviceKey)
	params.Set("returnType", "JSON")
	endpoint := c.baseURL + path + "?" + params.Encode()

	return c.retry.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("gov24 %s: %w", path, err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Warn("gov24 request failed", zap.String("path", path), zap.Error(err))
			return fmt.Errorf("gov24 %s: %w", path, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			c.logger.Warn("gov24 non-200 response",
				zap.String("path", path),
				zap.Int("status", resp.StatusCode))
			return &StatusError{Endpoint: path, Code: resp.StatusCode}
		}
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("gov24 %s decode: %w", path, err)
		}
		return nil
	})
}

func pageParams(page, perPage int) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("perPage", strconv.Itoa(perPage))
	return params
}

// joinLaws concatena as leis nacionais e municipais, ignorando vazios
func joinLaws(laws, localLaws string) string {
	var parts []string
	if strings.TrimSpace(laws) != "" {
		parts = append(parts, strings.TrimSpace(laws))
	}
	if strings.TrimSpace(localLaws) != "" {
		parts = append(parts, strings.TrimSpace(localLaws))
	}
	return strings.Join(parts, "\n")
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
