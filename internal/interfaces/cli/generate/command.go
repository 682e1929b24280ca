package generate

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mif-gmao/gmao/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/mif-gmao/gmao/internal/interfaces/http"
)

func NewCommand(opts *bootstrap.Options, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate preventive interventions for due plannings",
		Long:  `Run one pass of the planning generator and print its outcome.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap.Init(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			container, err := httpRouter.NewContainer(rt.DB, rt.Config, rt.Log, version)
			if err != nil {
				return fmt.Errorf("failed to build container: %w", err)
			}
			defer func() { _ = container.Shutdown(context.Background()) }()

			result, err := container.GenerateInterventions().Run(cmd.Context())
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Run", "Created", "Skipped", "Failed"})
			tw.AppendRow(table.Row{result.RunID, result.Created, result.Skipped, result.Failed})
			tw.Render()

			for _, e := range result.Errors {
				fmt.Fprintln(os.Stderr, e)
			}
			if result.Failed > 0 {
				return fmt.Errorf("%d planning(s) failed", result.Failed)
			}
			return nil
		},
	}
}
