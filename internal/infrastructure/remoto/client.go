// Package remoto implementa los puertos de persistencia contra el API remoto
// del sistema (endpoints tipo GET/POST base?recurso=...&id=... con JSON).
//
// El API es el único dueño de los datos: acuña los IDs, filtra nada y no
// ofrece transacciones. Cada operación es una llamada HTTP independiente.
// Usa net/http de la stdlib; no requiere librerías de terceros.
package remoto

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/pkg/config"
	"github.com/jcastano/almacen-admin/pkg/logger"
)

// Client cliente HTTP compartido por todos los repositorios remotos.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *logger.Logger
}

// NewClient construye el cliente con el timeout de la configuración.
func NewClient(cfg config.RemotoConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout()},
		log:     log,
	}
}

func (c *Client) endpoint(recurso string, id int64, extra url.Values) string {
	q := url.Values{}
	q.Set("recurso", recurso)
	if id > 0 {
		q.Set("id", strconv.FormatInt(id, 10))
	}
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return c.baseURL + "?" + q.Encode()
}

// do ejecuta una llamada y decodifica la respuesta JSON en out (si out != nil).
// 404 se traduce a domain.ErrNotFound; cualquier otro >= 400 es error remoto.
func (c *Client) do(ctx context.Context, method, recurso string, id int64, extra url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api remoto: serializar %s: %w", recurso, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(recurso, id, extra), body)
	if err != nil {
		return fmt.Errorf("api remoto: armar request %s: %w", recurso, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("X-Auth-Token", c.token)
	}
	reqID := uuid.New().String()
	req.Header.Set("X-Request-ID", reqID)

	inicio := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api remoto: %s %s: %w", method, recurso, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("metodo", method).
		Str("recurso", recurso).
		Int("status", resp.StatusCode).
		Dur("duracion", time.Since(inicio)).
		Str("request_id", reqID).
		Msg("llamada al api remoto")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode >= 400:
		cuerpo, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("api remoto: %s %s: status %d: %s",
			method, recurso, resp.StatusCode, strings.TrimSpace(string(cuerpo)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api remoto: decodificar %s: %w", recurso, err)
	}
	return nil
}

func (c *Client) list(ctx context.Context, recurso string, extra url.Values, out any) error {
	return c.do(ctx, http.MethodGet, recurso, 0, extra, nil, out)
}

func (c *Client) get(ctx context.Context, recurso string, id int64, out any) error {
	return c.do(ctx, http.MethodGet, recurso, id, nil, nil, out)
}

func (c *Client) post(ctx context.Context, recurso string, in, out any) error {
	return c.do(ctx, http.MethodPost, recurso, 0, nil, in, out)
}

func (c *Client) put(ctx context.Context, recurso string, id int64, in, out any) error {
	return c.do(ctx, http.MethodPut, recurso, id, nil, in, out)
}

func (c *Client) delete(ctx context.Context, recurso string, id int64) error {
	return c.do(ctx, http.MethodDelete, recurso, id, nil, nil, nil)
}
