// Package liststore contiene las implementaciones del puerto ListStore: el
// cliente JSON del almacén remoto de listas y un almacén en memoria para
// tests y desarrollo.
package liststore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jhoicas/Repuestos-sync/internal/application/ports"
	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
	"github.com/jhoicas/Repuestos-sync/pkg/logger"
)

// CredentialSource es el contrato mínimo que necesita el cliente para
// autenticar: lo implementa ports.Identity; la interfaz estrecha evita la
// dependencia completa.
type CredentialSource interface {
	Credential() (string, error)
}

// HTTPClient implementa ListStore[T] contra la API de listas del almacén
// remoto. Usa net/http de la stdlib con timeout explícito; el esquema y el
// transporte son del colaborador externo, aquí solo se serializa JSON.
type HTTPClient[T entity.Record] struct {
	baseURL    string
	collection string
	creds      CredentialSource
	httpClient *http.Client
	log        *logger.Logger
}

// NewHTTP construye el cliente para una colección (ej. "parts", "invoices").
// timeout <= 0 usa 30 s.
func NewHTTP[T entity.Record](baseURL, collection string, creds CredentialSource, timeout time.Duration, log *logger.Logger) *HTTPClient[T] {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &HTTPClient[T]{
		baseURL:    baseURL,
		collection: collection,
		creds:      creds,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// credential devuelve el token o ErrAuthRequired sin tocar la red: la
// ausencia de credencial es un error propio, inmediato, no un fallo genérico.
func (c *HTTPClient[T]) credential() (string, error) {
	if c.creds == nil {
		return "", domain.ErrAuthRequired
	}
	token, err := c.creds.Credential()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", domain.ErrAuthRequired
	}
	return token, nil
}

func (c *HTTPClient[T]) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	token, err := c.credential()
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/lists/%s%s", c.baseURL, c.collection, path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar %s: %w", c.collection, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemote, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn().Str("coleccion", c.collection).Int("status", resp.StatusCode).Msg("respuesta de error del almacén")
		return c.mapStatus(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decodificar respuesta: %v", domain.ErrRemote, err)
	}
	return nil
}

// mapStatus traduce el estado HTTP a la taxonomía de errores de dominio.
func (c *HTTPClient[T]) mapStatus(status int, raw []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrAuthRequired
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrDuplicate
	default:
		return fmt.Errorf("%w: %s estado %d: %s", domain.ErrRemote, c.collection, status, string(raw))
	}
}

// List trae la colección con las opciones de consulta.
func (c *HTTPClient[T]) List(ctx context.Context, q ports.Query) ([]T, error) {
	query := url.Values{}
	for k, v := range q.Filter {
		query.Set(k, v)
	}
	if q.OrderBy != "" {
		query.Set("orderBy", q.OrderBy)
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		query.Set("offset", strconv.Itoa(q.Offset))
	}
	var items []T
	if err := c.do(ctx, http.MethodGet, "", query, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create crea el registro; el almacén asigna id y procedencia.
func (c *HTTPClient[T]) Create(ctx context.Context, data T) (T, error) {
	var created T
	if err := c.do(ctx, http.MethodPost, "", nil, data, &created); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// Update actualiza el registro y devuelve la versión que quedó en el almacén.
func (c *HTTPClient[T]) Update(ctx context.Context, id string, data T) (T, error) {
	var updated T
	if err := c.do(ctx, http.MethodPut, "/"+url.PathEscape(id), nil, data, &updated); err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Delete borra el registro por id.
func (c *HTTPClient[T]) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil, nil, nil)
}

// DeleteBatch borra el lote con un DELETE por id: cada elemento tiene
// resultado independiente (el almacén no ofrece borrado atómico de lotes).
func (c *HTTPClient[T]) DeleteBatch(ctx context.Context, ids []string) (ports.BatchResult, error) {
	// Sin credencial el lote completo falla de inmediato, antes de la red.
	if _, err := c.credential(); err != nil {
		return ports.BatchResult{}, err
	}
	result := ports.BatchResult{Errors: []ports.BatchError{}}
	for _, id := range ids {
		if err := c.Delete(ctx, id); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ports.BatchError{ID: id, Message: err.Error()})
			continue
		}
		result.Succeeded++
	}
	return result, nil
}
