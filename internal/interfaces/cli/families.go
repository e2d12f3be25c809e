package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/Repuestos-sync/internal/application/category"
	"github.com/jhoicas/Repuestos-sync/internal/domain/entity"
	"github.com/jhoicas/Repuestos-sync/internal/infrastructure/liststore"
)

// newResolver arma el índice de categorías sobre la lista remota.
func newResolver(opts *RootOptions) *category.Resolver {
	store := liststore.NewHTTP[entity.Category](
		opts.Config.Store.BaseURL,
		"categories",
		opts.Identity,
		opts.Config.Store.Timeout,
		opts.Logger,
	)
	return category.NewResolver(store, opts.Config.Cache.CategoryTTL)
}

// NewFamiliesCommand crea el comando `familias`.
func NewFamiliesCommand(opts *RootOptions) *cobra.Command {
	var forCategory string

	cmd := &cobra.Command{
		Use:   "familias",
		Short: "Resuelve la jerarquía categoría → familia",
		Long: `Resuelve la jerarquía categoría → familia desde la lista de categorías.

Sin flags imprime cada familia con sus categorías; con --categoria imprime
la familia de esa categoría (o "` + category.UnknownFamily + `" si no existe).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := newResolver(opts)
			if err := resolver.Load(cmd.Context()); err != nil {
				return err
			}

			if forCategory != "" {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"category": forCategory,
					"family":   resolver.FamilyByCategory(forCategory),
					"valid":    resolver.ValidateCategory(forCategory),
				})
			}

			out := make(map[string][]string)
			for _, family := range resolver.Families() {
				out[family] = resolver.CategoriesInFamily(family)
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&forCategory, "categoria", "", "categoría a resolver")
	return cmd
}
