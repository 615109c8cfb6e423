// Package cli es vetctl: el explorer por línea de comandos.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"vetmanager-api-gateway/internal/domain/explorer"
	"vetmanager-api-gateway/internal/ports/gateway"
)

// OpenGateway abre el gateway a Vetmanager; close se llama al terminar el comando.
type OpenGateway func(ctx context.Context) (gw gateway.Gateway, close func(), err error)

// RootOptions son los flags globales.
type RootOptions struct {
	Format string // "json" | "yaml"
	open   OpenGateway
}

var ValidFormats = []string{"json", "yaml"}

func NewRootCommand(open OpenGateway) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "vetctl",
		Short: "vetctl - read-only Vetmanager explorer",
		Long:  "Query Vetmanager clients, pets, users and medical cards without writing anything.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitUsage, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "json", "output format (json|yaml)")

	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewMedcardsCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewEntitiesCommand(opts))

	return cmd
}

// withService abre el gateway, corre fn y lo cierra.
func (o *RootOptions) withService(ctx context.Context, fn func(*explorer.Service) error) error {
	gw, closeFn, err := o.open(ctx)
	if err != nil {
		return WrapExitError(ExitUsage, "cannot open vetmanager gateway", err)
	}
	if closeFn != nil {
		defer closeFn()
	}
	return fn(explorer.NewService(gw))
}
