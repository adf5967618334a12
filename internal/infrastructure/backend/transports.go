package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/domain/repository"
	"github.com/ecotravel-admin/internal/mapping"
	"github.com/ecotravel-admin/internal/normalize"
	apperrors "github.com/ecotravel-admin/internal/pkg/errors"
	"github.com/ecotravel-admin/internal/pkg/record"
)

type transportClient struct {
	*Client
}

// NewTransportClient создает клиент транспорта
func NewTransportClient(c *Client) repository.TransportRepository {
	return &transportClient{Client: c}
}

func (c *transportClient) list(ctx context.Context, path string, query url.Values) ([]domain.Transport, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: path, query: query})
	if err != nil {
		return nil, err
	}
	return mapping.TransportsFromBackend(normalize.ExtractList(body, normalize.TransportListKeys...)), nil
}

func (c *transportClient) List(ctx context.Context, kind domain.TransportKind) ([]domain.Transport, error) {
	var query url.Values
	if kind != "" {
		query = url.Values{"type": {string(kind)}}
	}
	return c.list(ctx, "/transport/", query)
}

func (c *transportClient) GetByID(ctx context.Context, id string) (*domain.Transport, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: "/transport/" + segment(id)})
	if err != nil {
		return nil, err
	}
	obj, err := object(body, normalize.TransportObjectKeys...)
	if err != nil {
		return nil, err
	}
	t := mapping.TransportFromBackend(obj)
	return &t, nil
}

func (c *transportClient) Create(ctx context.Context, kind domain.TransportKind, payload any) (record.Record, error) {
	if !kind.IsValid() || payload == nil {
		return nil, apperrors.ErrInvalidTransportKind
	}
	body, err := c.do(ctx, request{method: http.MethodPost, path: "/transport/" + string(kind), body: payload})
	if err != nil {
		return nil, err
	}
	return result(body), nil
}

func (c *transportClient) Update(ctx context.Context, id string, payload domain.TransportUpdate) (record.Record, error) {
	body, err := c.do(ctx, request{method: http.MethodPut, path: "/transport/" + segment(id), body: payload})
	if err != nil {
		return nil, err
	}
	return result(body), nil
}

func (c *transportClient) Delete(ctx context.Context, id string) (record.Record, error) {
	body, err := c.do(ctx, request{method: http.MethodDelete, path: "/transport/" + segment(id)})
	if err != nil {
		return nil, err
	}
	return result(body), nil
}

func (c *transportClient) Search(ctx context.Context, term string) ([]domain.Transport, error) {
	return c.list(ctx, "/transport/search/"+segment(term), nil)
}

func (c *transportClient) Ranking(ctx context.Context, ranking domain.TransportRanking) ([]domain.Transport, error) {
	path := ranking.Path()
	if path == "" {
		return nil, apperrors.ErrInvalidRequest.WithMessage("Unknown transport ranking: " + string(ranking))
	}
	return c.list(ctx, path, nil)
}
