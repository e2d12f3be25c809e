package liststore_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-sync/internal/application/ports"
	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
	"github.com/jhoicas/Repuestos-sync/internal/infrastructure/liststore"
)

// staticCreds credencial fija para los tests.
type staticCreds struct {
	token string
	err   error
}

func (s staticCreds) Credential() (string, error) { return s.token, s.err }

func newPartsClient(t *testing.T, srv *httptest.Server, creds liststore.CredentialSource) *liststore.HTTPClient[entity.Part] {
	t.Helper()
	return liststore.NewHTTP[entity.Part](srv.URL, "parts", creds, 2*time.Second, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación: sin credencial no se toca la red
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_SinCredencialFallaAntesDeLaRed(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	client := newPartsClient(t, srv, staticCreds{token: ""})

	_, err := client.List(context.Background(), ports.Query{})
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	_, batchErr := client.DeleteBatch(context.Background(), []string{"p1", "p2"})
	assert.ErrorIs(t, batchErr, domain.ErrAuthRequired, "el lote completo falla de inmediato")

	assert.Zero(t, atomic.LoadInt32(&hits), "no debe haber ninguna petición al almacén")
}

func TestHTTP_EnviaBearerYAccept(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_ = json.NewEncoder(w).Encode([]entity.Part{})
	}))
	defer srv.Close()

	client := newPartsClient(t, srv, staticCreds{token: "token-abc"})
	_, err := client.List(context.Background(), ports.Query{})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// List: ruta, filtros y paginación en la query string
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_ListConstruyeLaConsulta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/lists/parts", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Filtros de aceite", q.Get("category"))
		assert.Equal(t, "name", q.Get("orderBy"))
		assert.Equal(t, "25", q.Get("limit"))
		assert.Equal(t, "50", q.Get("offset"))
		_ = json.NewEncoder(w).Encode([]entity.Part{
			{ID: "p1", Name: "Filtro W712", InventoryOnHand: decimal.NewFromInt(4)},
		})
	}))
	defer srv.Close()

	client := newPartsClient(t, srv, staticCreds{token: "tok"})
	items, err := client.List(context.Background(), ports.Query{
		Filter:  map[string]string{"category": "Filtros de aceite"},
		OrderBy: "name",
		Limit:   25,
		Offset:  50,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.True(t, decimal.NewFromInt(4).Equal(items[0].InventoryOnHand))
}

// ──────────────────────────────────────────────────────────────────────────────
// Create/Update/Delete: métodos, rutas y cuerpo devuelto por el almacén
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_CreateDevuelveLaVersionDelAlmacen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/lists/parts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in entity.Part
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		// El almacén asigna id y procedencia.
		in.ID = "srv-1"
		in.CreatedBy = "almacen"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	client := newPartsClient(t, srv, staticCreds{token: "tok"})
	created, err := client.Create(context.Background(), entity.Part{Name: "Bujía NGK"})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", created.ID)
	assert.Equal(t, "almacen", created.CreatedBy)
	assert.Equal(t, "Bujía NGK", created.Name)
}

func TestHTTP_UpdateUsaPutSobreElId(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/lists/parts/p%201", r.URL.EscapedPath(), "el id va escapado en la ruta")
		var in entity.Part
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	client := newPartsClient(t, srv, staticCreds{token: "tok"})
	updated, err := client.Update(context.Background(), "p 1", entity.Part{ID: "p 1", Name: "renombrado"})
	require.NoError(t, err)
	assert.Equal(t, "renombrado", updated.Name)
}

func TestHTTP_DeleteUsaDeleteSobreElId(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/lists/parts/p1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newPartsClient(t, srv, staticCreds{token: "tok"})
	assert.NoError(t, client.Delete(context.Background(), "p1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de estados HTTP a la taxonomía de dominio
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_MapeoDeEstados(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrAuthRequired},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrDuplicate},
		{http.StatusInternalServerError, domain.ErrRemote},
		{http.StatusBadGateway, domain.ErrRemote},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			client := newPartsClient(t, srv, staticCreds{token: "tok"})
			_, err := client.List(context.Background(), ports.Query{})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestHTTP_FalloDeRedEsErrRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito: la conexión se niega

	client := newPartsClient(t, srv, staticCreds{token: "tok"})
	_, err := client.List(context.Background(), ports.Query{})
	assert.ErrorIs(t, err, domain.ErrRemote)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteBatch: resultado independiente por elemento
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_DeleteBatchReportaFalloParcial(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/lists/parts/p2" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newPartsClient(t, srv, staticCreds{token: "tok"})
	result, err := client.DeleteBatch(context.Background(), []string{"p1", "p2", "p3"})
	require.NoError(t, err, "el fallo parcial se reporta en el resultado, no como error")
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "p2", result.Errors[0].ID)
}
