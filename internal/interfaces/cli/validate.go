package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
	"github.com/jhoicas/Repuestos-sync/internal/domain/inventory"
)

// NewValidateCommand crea el comando `validar-factura`: el chequeo pre-vuelo
// de stock sobre el snapshot más reciente de repuestos. No reserva stock;
// entre la validación y el envío el stock puede cambiar.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validar-factura <lineas.json>",
		Short: "Valida las líneas de una factura contra el stock actual",
		Long: `Valida las líneas de una factura contra el stock actual.

El archivo es un arreglo JSON de líneas:
  [{"partId":"...","quantity":"3","unitPrice":"12.50"}, ...]

La demanda se agrega por repuesto (varias líneas del mismo repuesto se
suman antes de comparar). Imprime los faltantes; sale con error si el lote
no es admisible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("leer líneas: %w", err)
			}
			var items []entity.LineItem
			if err := json.Unmarshal(raw, &items); err != nil {
				return fmt.Errorf("líneas JSON inválidas: %w", err)
			}
			if err := inventory.ValidateLineItems(items); err != nil {
				return fmt.Errorf("líneas: %w", err)
			}

			cache := newCache[entity.Part](opts, "parts")
			defer cache.Close()
			if err := cache.Load(cmd.Context()); err != nil {
				return err
			}

			shortages := inventory.ValidateStock(cache.State().Items, items)
			if err := printJSON(cmd.OutOrStdout(), map[string]any{
				"admissible": len(shortages) == 0,
				"shortages":  shortages,
			}); err != nil {
				return err
			}
			if len(shortages) > 0 {
				return fmt.Errorf("%d repuestos con faltante: %w", len(shortages), domain.ErrInsufficientStock)
			}
			return nil
		},
	}
}
