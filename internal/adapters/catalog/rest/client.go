// Package rest habla con el catálogo remoto estilo PostgREST:
// cada tabla se expone como /<tabla> y los filtros van como query params
// (?col=eq.valor, ?col=in.(a,b)).
package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-adoption-store/internal/platform/httpclient"
)

var ErrNotConfigured = errors.New("catalog rest client not configured")

// Config del cliente remoto. BaseURL y APIKey vienen normalmente de
// CATALOG_REST_URL / CATALOG_REST_KEY.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, ErrNotConfigured
	}

	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

func (c *Client) headers(extra map[string]string) map[string]string {
	h := make(map[string]string, len(extra)+2)
	if c.apiKey != "" {
		h["apikey"] = c.apiKey
		h["Authorization"] = "Bearer " + c.apiKey
	}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

// get consulta una tabla con filtros y decodifica las filas en out.
func (c *Client) get(ctx context.Context, table string, query url.Values, out any) error {
	return c.http.DoJSON(ctx, http.MethodGet, pathWithQuery(table, query), c.headers(nil), nil, out)
}

// insert inserta filas (body JSON). Con out != nil pide la representación.
func (c *Client) insert(ctx context.Context, table string, body, out any) error {
	extra := map[string]string{"Prefer": "return=minimal"}
	if out != nil {
		extra["Prefer"] = "return=representation"
	}
	return c.http.DoJSON(ctx, http.MethodPost, "/"+table, c.headers(extra), body, out)
}

// update aplica un PATCH parcial a las filas que matchean los filtros.
func (c *Client) update(ctx context.Context, table string, query url.Values, body any) error {
	return c.http.DoJSON(ctx, http.MethodPatch, pathWithQuery(table, query), c.headers(nil), body, nil)
}

// delete borra las filas que matchean los filtros.
func (c *Client) delete(ctx context.Context, table string, query url.Values) error {
	return c.http.DoJSON(ctx, http.MethodDelete, pathWithQuery(table, query), c.headers(nil), nil, nil)
}

func pathWithQuery(table string, query url.Values) string {
	p := "/" + table
	if len(query) > 0 {
		p += "?" + query.Encode()
	}
	return p
}

// eq arma el filtro de igualdad de PostgREST.
func eq(v string) string {
	return "eq." + v
}

// in arma el filtro de pertenencia: in.(a,b,c).
func in(values []string) string {
	return "in.(" + strings.Join(values, ",") + ")"
}
