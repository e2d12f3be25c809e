package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Repuestos-sync/internal/application/resource"
	"github.com/jhoicas/Repuestos-sync/internal/domain"
	"github.com/jhoicas/Repuestos-sync/internal/domain/access"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
	"github.com/jhoicas/Repuestos-sync/internal/infrastructure/liststore"
	"github.com/jhoicas/Repuestos-sync/internal/infrastructure/notify"
)

// newCache arma la caché de una colección sobre el cliente HTTP del almacén.
func newCache[T entity.Record](opts *RootOptions, collection string) *resource.Cache[T] {
	store := liststore.NewHTTP[T](
		opts.Config.Store.BaseURL,
		collection,
		opts.Identity,
		opts.Config.Store.Timeout,
		opts.Logger,
	)
	return resource.NewCache[T](collection, store, notify.NewLog(opts.Logger), opts.Logger)
}

// runList carga la colección y la imprime.
func runList[T entity.Record](cmd *cobra.Command, opts *RootOptions, collection string) error {
	role, err := opts.currentRole()
	if err != nil {
		return err
	}
	if !opts.Engine.CanPerformAction(role, access.Component(collection), access.ActionView) {
		return fmt.Errorf("ver %s: %w", collection, domain.ErrForbidden)
	}

	cache := newCache[T](opts, collection)
	defer cache.Close()
	if err := cache.Load(cmd.Context()); err != nil {
		return err
	}
	state := cache.State()
	return printJSON(cmd.OutOrStdout(), state.Items)
}

// NewListCommand crea el comando `listar`.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "listar <coleccion>",
		Short: "Lista una colección del almacén remoto",
		Long: `Lista una colección del almacén remoto.

Colecciones: parts, buyers, invoices, transactions, categories.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "parts":
				return runList[entity.Part](cmd, opts, args[0])
			case "buyers":
				return runList[entity.Buyer](cmd, opts, args[0])
			case "invoices":
				return runList[entity.Invoice](cmd, opts, args[0])
			case "transactions":
				return runList[entity.Transaction](cmd, opts, args[0])
			case "categories":
				return runList[entity.Category](cmd, opts, args[0])
			default:
				return fmt.Errorf("colección desconocida %q: %w", args[0], domain.ErrInvalidInput)
			}
		},
	}
}
