package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vetmanager-api-gateway/internal/domain/explorer"
)

func NewGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <entity> <id>",
		Short: "Get one record by id",
		Long: `Get one record by id.

Example:
  vetctl get client 10
  vetctl get pet 20 --format yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			return opts.withService(cmd.Context(), func(s *explorer.Service) error {
				v, err := s.Get(cmd.Context(), args[0], id)
				if err != nil {
					return fromExplorer(err)
				}
				return write(cmd.OutOrStdout(), opts.Format, v)
			})
		},
	}
}

func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <entity>",
		Short: "List every record of an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd.Context(), func(s *explorer.Service) error {
				v, err := s.List(cmd.Context(), args[0])
				if err != nil {
					return fromExplorer(err)
				}
				return write(cmd.OutOrStdout(), opts.Format, v)
			})
		},
	}
}

// MedcardsOptions son los flags de medcards.
type MedcardsOptions struct {
	*RootOptions
	Query string
}

func NewMedcardsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MedcardsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "medcards <client-id>",
		Short: "List the medical cards of a client",
		Long: `List the medical cards of every pet of a client.

--query is appended verbatim to the Vetmanager query string.

Example:
  vetctl medcards 10 --query 'limit=5&offset=10'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return opts.withService(cmd.Context(), func(s *explorer.Service) error {
				v, err := s.ClientMedcards(cmd.Context(), id, opts.Query)
				if err != nil {
					return fromExplorer(err)
				}
				return write(cmd.OutOrStdout(), opts.Format, v)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Query, "query", "", "extra query string for Vetmanager")

	return cmd
}

func NewSummaryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <client-id>",
		Short: "Client with alive pets and medical cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return opts.withService(cmd.Context(), func(s *explorer.Service) error {
				v, err := s.ClientSummary(cmd.Context(), id)
				if err != nil {
					return fromExplorer(err)
				}
				return write(cmd.OutOrStdout(), opts.Format, v)
			})
		},
	}
}

func NewEntitiesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "Entities accepted by get and list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return write(cmd.OutOrStdout(), opts.Format, explorer.Entities())
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, NewExitError(ExitUsage, fmt.Sprintf("invalid id %q: must be a positive integer", s))
	}
	return id, nil
}
