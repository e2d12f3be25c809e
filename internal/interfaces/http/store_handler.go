// Package http implementa el almacén de listas simulado para desarrollo
// local: la misma API de listas que consume el cliente, respaldada en
// memoria. Es un accesorio de desarrollo, no parte del producto.
package http

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Colecciones que el almacén simulado acepta.
var knownCollections = map[string]bool{
	"parts":        true,
	"buyers":       true,
	"invoices":     true,
	"transactions": true,
	"categories":   true,
}

// document es un registro genérico de lista: el almacén simulado no conoce
// los esquemas, solo estampa id y procedencia.
type document map[string]any

// StoreHandler guarda las colecciones en memoria en orden de inserción.
type StoreHandler struct {
	mu    sync.Mutex
	lists map[string][]document
}

// NewStoreHandler construye el almacén vacío.
func NewStoreHandler() *StoreHandler {
	return &StoreHandler{lists: make(map[string][]document)}
}

func collectionOf(c *fiber.Ctx) (string, bool) {
	name := c.Params("collection")
	return name, knownCollections[name]
}

// List devuelve la colección con filtros de igualdad por query param y
// paginación limit/offset.
func (h *StoreHandler) List(c *fiber.Ctx) error {
	name, ok := collectionOf(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "UNKNOWN_COLLECTION", Message: "colección desconocida: " + name})
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	filters := make(map[string]string)
	for key, values := range c.Queries() {
		switch key {
		case "limit", "offset", "orderBy":
		default:
			filters[key] = values
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]document, 0)
	for _, doc := range h.lists[name] {
		if !matches(doc, filters) {
			continue
		}
		out = append(out, doc)
	}
	if offset > 0 {
		if offset > len(out) {
			offset = len(out)
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return c.JSON(out)
}

func matches(doc document, filters map[string]string) bool {
	for field, want := range filters {
		got, ok := doc[field].(string)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Create estampa id y procedencia y agrega al final de la lista.
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	name, ok := collectionOf(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "UNKNOWN_COLLECTION", Message: "colección desconocida: " + name})
	}
	var doc document
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	now := time.Now().UTC()
	doc["id"] = uuid.NewString()
	doc["createdBy"] = requestUser(c)
	doc["createdAt"] = now
	doc["updatedAt"] = now

	h.mu.Lock()
	h.lists[name] = append(h.lists[name], doc)
	h.mu.Unlock()
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// Update reemplaza el documento conservando id y procedencia.
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	name, ok := collectionOf(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "UNKNOWN_COLLECTION", Message: "colección desconocida: " + name})
	}
	id := c.Params("id")
	var doc document
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for i, existing := range h.lists[name] {
		if existing["id"] == id {
			doc["id"] = existing["id"]
			doc["createdBy"] = existing["createdBy"]
			doc["createdAt"] = existing["createdAt"]
			doc["updatedAt"] = time.Now().UTC()
			h.lists[name][i] = doc
			return c.JSON(doc)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
}

// Delete borra el documento por id.
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	name, ok := collectionOf(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "UNKNOWN_COLLECTION", Message: "colección desconocida: " + name})
	}
	id := c.Params("id")

	h.mu.Lock()
	defer h.mu.Unlock()
	list := h.lists[name]
	for i, existing := range list {
		if existing["id"] == id {
			h.lists[name] = append(list[:i], list[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
}
