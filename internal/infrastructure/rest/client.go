// Package rest implementa los puertos de repositorio contra el backend REST
// de inventario (estilo json-server). Toda la E/S es JSON sobre net/http de
// la stdlib; sin reintentos: un fallo se envuelve y se propaga.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-movil/internal/domain"
	"github.com/tu-usuario/almacen-movil/pkg/logger"
)

// maxErrorBodyBytes bytes del cuerpo que se conservan al reportar un rechazo.
const maxErrorBodyBytes = 512

// Client cliente HTTP base del backend. Las structs de repositorio
// (ProductRepository, WarehousemanRepository, StatisticsRepository) delegan
// todas sus llamadas aquí.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL sin barra final, ej.
// "http://192.168.1.28:3000". timeout limita cada petición completa.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// doJSON ejecuta una petición JSON y decodifica la respuesta en out (si out
// no es nil). Taxonomía de errores:
//   - fallo de transporte → *domain.NetworkError
//   - HTTP 404           → domain.ErrNotFound
//   - otro no-2xx        → *domain.ServerRejectionError
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	op := method + " " + path
	requestID := uuid.New().String()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rest: serializar cuerpo de %s: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("rest: construir petición %s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().
			Str("request_id", requestID).
			Str("op", op).
			Err(err).
			Msg("fallo de red")
		return &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("request_id", requestID).
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("petición al backend")

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &domain.ServerRejectionError{Op: op, Status: resp.StatusCode, Body: string(snippet)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest: decodificar respuesta de %s: %w", op, err)
	}
	return nil
}
