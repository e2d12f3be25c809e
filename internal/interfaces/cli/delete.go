package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/access"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
)

// runDelete ejecuta el flujo de mutación completo: permiso → carga →
// borrado por lote → reporte de fallo parcial.
func runDelete[T entity.Record](cmd *cobra.Command, opts *RootOptions, collection string, ids []string) error {
	role, err := opts.currentRole()
	if err != nil {
		return err
	}
	if !opts.Engine.CanPerformAction(role, access.Component(collection), access.ActionDelete) {
		return fmt.Errorf("eliminar en %s con rol %s: %w", collection, role, domain.ErrForbidden)
	}

	cache := newCache[T](opts, collection)
	defer cache.Close()
	if err := cache.Load(cmd.Context()); err != nil {
		return err
	}

	result, err := cache.DeleteMultiple(cmd.Context(), ids)
	if err != nil {
		return err
	}
	if err := printJSON(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	// Éxito parcial se reporta distinto de fallo total: el código de salida
	// solo es de error cuando no se borró nada.
	if result.Succeeded == 0 && result.Failed > 0 {
		return fmt.Errorf("ningún registro eliminado: %w", domain.ErrRemote)
	}
	return nil
}

// NewDeleteCommand crea el comando `eliminar`.
func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <coleccion> <id> [id...]",
		Short: "Elimina registros de una colección (lote no atómico)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			collection, ids := args[0], args[1:]
			switch collection {
			case "parts":
				return runDelete[entity.Part](cmd, opts, collection, ids)
			case "buyers":
				return runDelete[entity.Buyer](cmd, opts, collection, ids)
			case "invoices":
				return runDelete[entity.Invoice](cmd, opts, collection, ids)
			case "categories":
				return runDelete[entity.Category](cmd, opts, collection, ids)
			case "transactions":
				// Las transacciones no se eliminan: se compensan con ajustes.
				return fmt.Errorf("las transacciones no admiten borrado: %w", domain.ErrForbidden)
			default:
				return fmt.Errorf("colección desconocida %q: %w", collection, domain.ErrInvalidInput)
			}
		},
	}
}
