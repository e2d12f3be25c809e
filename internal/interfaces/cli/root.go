// Package cli implementa el CLI `repuestos`: ejercita el flujo completo del
// núcleo (permiso → mutación en caché → validación de stock) contra un
// almacén de listas real o el simulado de desarrollo.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Repuestos-sync/internal/domain/access"
	"github.com/jhoicas/Repuestos-sync/internal/infrastructure/identity"
	"github.com/jhoicas/Repuestos-sync/pkg/config"
	"github.com/jhoicas/Repuestos-sync/pkg/logger"
)

// RootOptions comparte las dependencias armadas en el PersistentPreRun con
// todos los subcomandos.
type RootOptions struct {
	Config   *config.Config
	Logger   *logger.Logger
	Identity *identity.JWTIdentity
	Engine   *access.Engine
}

// NewRootCommand crea el comando raíz `repuestos`.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "repuestos",
		Short: "Cliente de sincronización del catálogo de repuestos",
		Long: `Cliente de sincronización del catálogo de repuestos.

Opera las colecciones del almacén remoto de listas (parts, buyers, invoices,
transactions, categories) a través de la caché de recursos, consultando el
motor de permisos antes de cada mutación y validando stock antes de
finalizar facturas.

Configuración por variables de entorno (o archivo .env):
  STORE_BASE_URL, AUTH_TOKEN, JWT_SECRET, CATEGORY_TTL_MINUTES, LOG_LEVEL`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.Config = cfg
			opts.Logger = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
			opts.Identity = identity.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.Token)
			opts.Engine = access.NewEngine(nil)
			return nil
		},
	}

	cmd.AddCommand(
		NewListCommand(opts),
		NewCreateCommand(opts),
		NewUpdateCommand(opts),
		NewDeleteCommand(opts),
		NewPermissionsCommand(opts),
		NewFamiliesCommand(opts),
		NewValidateCommand(opts),
	)
	return cmd
}

// currentRole consulta el rol vigente; se re-lee en cada comando porque el
// token puede haber cambiado entre invocaciones.
func (o *RootOptions) currentRole() (access.Role, error) {
	role, err := o.Identity.Role()
	if err != nil {
		return 0, fmt.Errorf("identidad: %w", err)
	}
	return role, nil
}

// printJSON escribe v como JSON legible.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
