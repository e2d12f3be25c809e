package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Repuestos-sync/internal/domain/access"
)

// permissionsReport es la vista de permisos de un rol sobre un componente.
type permissionsReport struct {
	Role             string            `json:"role"`
	Component        string            `json:"component"`
	Actions          map[string]bool   `json:"actions"`
	AccessibleFields []string          `json:"accessibleFields"`
	RestrictedFields []string          `json:"restrictedFields"`
	RiskLevels       map[string]string `json:"riskLevels"` // solo auditoría, no otorga acceso
}

// NewPermissionsCommand crea el comando `permisos`.
func NewPermissionsCommand(opts *RootOptions) *cobra.Command {
	var asRole string

	cmd := &cobra.Command{
		Use:   "permisos <componente>",
		Short: "Muestra las decisiones de acceso de un rol sobre un componente",
		Long: `Muestra las decisiones de acceso de un rol sobre un componente.

Por defecto usa el rol del token vigente; --rol evalúa otro rol (las
decisiones son funciones puras del rol pasado, no hay estado de sesión).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			component := access.Component(args[0])

			var role access.Role
			if asRole != "" {
				parsed, err := access.ParseRole(asRole)
				if err != nil {
					return fmt.Errorf("rol desconocido %q", asRole)
				}
				role = parsed
			} else {
				current, err := opts.currentRole()
				if err != nil {
					return err
				}
				role = current
			}

			matrix := access.DefaultMatrix()
			report := permissionsReport{
				Role:             role.String(),
				Component:        string(component),
				Actions:          make(map[string]bool),
				AccessibleFields: opts.Engine.AccessibleFields(role, component),
				RestrictedFields: opts.Engine.RestrictedFields(role, component),
				RiskLevels:       make(map[string]string),
			}
			for _, action := range matrix.Actions(component) {
				report.Actions[string(action)] = opts.Engine.CanPerformAction(role, component, action)
			}
			for _, field := range matrix.Fields(component) {
				report.RiskLevels[field] = string(opts.Engine.GetRiskLevel(component, field))
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVar(&asRole, "rol", "", "evaluar como este rol (readonly|user|admin)")
	return cmd
}
