package main

import (
	"github.com/spf13/cobra"

	"github.com/1broseidon/herbst3/internal/mcp"
)

func newMCPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Model Context Protocol server",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: `Start the MCP server on stdio. Register "herbst3 mcp serve" as the
server command in an MCP client.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, release, err := a.dial(a.cfg)
			if err != nil {
				return err
			}
			defer release()

			server := mcp.NewServer(mcp.Options{
				Runner:     runner,
				Attributes: a.cfg.Attributes,
				SplitRatio: a.cfg.SplitRatio,
				Logger:     a.logger,
			})
			a.logger.Info("MCP server listening on stdio")
			return server.Run(cmd.Context())
		},
	})
	return cmd
}
