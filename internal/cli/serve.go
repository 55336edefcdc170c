package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mandala/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve exports of stored mandalas over HTTP",
		Long: `Serve exports of the mandalas in the configured store.

Exports are available at /mandalas/{id}/export.{format}. Dropped positions
and note text are written back with PUT requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	logger := loggerFromContext(ctx)

	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	runner, err := c.newRunner(ctx, st, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	printInfo("Serving %s on %s", StyleValue.Render(string(c.Config.Store.Backend)), StyleHighlight.Render(addr))
	srv := server.New(st, runner, logger)
	return srv.ListenAndServe(ctx, addr, c.Config.Server.ReadTimeout.Duration, c.Config.Server.WriteTimeout.Duration)
}
