package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/access"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
	"github.com/jhoicas/Repuestos-sync/internal/domain/inventory"
)

// NewCreateCommand crea el comando `crear`.
func NewCreateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "crear <coleccion> <registro.json>",
		Short: "Crea un registro en una colección",
		Long: `Crea un registro en una colección del almacén remoto.

El archivo es el registro en JSON. Para parts la categoría debe existir en
el índice de categorías; para invoices los totales se recalculan desde las
líneas y una factura FINAL exige stock suficiente.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd, opts, args[0], args[1], "")
		},
	}
}

// NewUpdateCommand crea el comando `actualizar`.
func NewUpdateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "actualizar <coleccion> <id> <registro.json>",
		Short: "Actualiza un registro de una colección",
		Long: `Actualiza un registro de una colección del almacén remoto.

Aplica las mismas puertas de dominio que crear: categoría del repuesto
contra el índice, totales y stock de la factura. Las transacciones no se
editan (se compensan con ajustes).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd, opts, args[0], args[2], args[1])
		},
	}
}

// runSave ejecuta el flujo de mutación completo: permiso → puertas de
// dominio → mutación en caché. id vacío crea; id presente actualiza.
func runSave(cmd *cobra.Command, opts *RootOptions, collection, path, id string) error {
	role, err := opts.currentRole()
	if err != nil {
		return err
	}
	action, verbo := access.ActionCreate, "crear"
	if id != "" {
		action, verbo = access.ActionEdit, "actualizar"
	}
	if !opts.Engine.CanPerformAction(role, access.Component(collection), action) {
		return fmt.Errorf("%s en %s con rol %s: %w", verbo, collection, role, domain.ErrForbidden)
	}

	switch collection {
	case "parts":
		part, err := decodeRecord[entity.Part](path)
		if err != nil {
			return err
		}
		// La categoría es texto libre en el registro; el índice de categorías
		// es la puerta autoritativa al guardar.
		resolver := newResolver(opts)
		if err := resolver.Load(cmd.Context()); err != nil {
			return err
		}
		if err := resolver.EnsureValid(part.Category); err != nil {
			return err
		}
		return saveRecord(cmd, opts, collection, id, part)
	case "buyers":
		buyer, err := decodeRecord[entity.Buyer](path)
		if err != nil {
			return err
		}
		return saveRecord(cmd, opts, collection, id, buyer)
	case "invoices":
		invoice, err := decodeRecord[entity.Invoice](path)
		if err != nil {
			return err
		}
		if err := inventory.ValidateLineItems(invoice.Items); err != nil {
			return fmt.Errorf("líneas: %w", err)
		}
		invoice.Totals()
		if invoice.Status == entity.InvoiceStatusFinal {
			if err := ensureStock(cmd, opts, invoice.Items); err != nil {
				return err
			}
		}
		return saveRecord(cmd, opts, collection, id, invoice)
	case "transactions":
		tx, err := decodeRecord[entity.Transaction](path)
		if err != nil {
			return err
		}
		return saveRecord(cmd, opts, collection, id, tx)
	case "categories":
		cat, err := decodeRecord[entity.Category](path)
		if err != nil {
			return err
		}
		return saveRecord(cmd, opts, collection, id, cat)
	default:
		return fmt.Errorf("colección desconocida %q: %w", collection, domain.ErrInvalidInput)
	}
}

// saveRecord aplica la mutación sobre la caché de la colección e imprime el
// registro tal como quedó en el almacén.
func saveRecord[T entity.Record](cmd *cobra.Command, opts *RootOptions, collection, id string, data T) error {
	cache := newCache[T](opts, collection)
	defer cache.Close()

	if id == "" {
		created, err := cache.Create(cmd.Context(), data)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), created)
	}
	if err := cache.Load(cmd.Context()); err != nil {
		return err
	}
	updated, err := cache.Update(cmd.Context(), id, data)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), updated)
}

// ensureStock valida la demanda agregada de las líneas contra el stock
// actual antes de finalizar la factura.
func ensureStock(cmd *cobra.Command, opts *RootOptions, items []entity.LineItem) error {
	cache := newCache[entity.Part](opts, "parts")
	defer cache.Close()
	if err := cache.Load(cmd.Context()); err != nil {
		return err
	}
	shortages := inventory.ValidateStock(cache.State().Items, items)
	if len(shortages) == 0 {
		return nil
	}
	if err := printJSON(cmd.OutOrStdout(), map[string]any{
		"admissible": false,
		"shortages":  shortages,
	}); err != nil {
		return err
	}
	return fmt.Errorf("%d repuestos con faltante: %w", len(shortages), domain.ErrInsufficientStock)
}

// decodeRecord lee el registro JSON del archivo.
func decodeRecord[T any](path string) (T, error) {
	var out T
	raw, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("leer registro: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("registro JSON inválido: %w", err)
	}
	return out, nil
}
