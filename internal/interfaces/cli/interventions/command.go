package interventions

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mif-gmao/gmao/internal/application/intervention/dto"
	"github.com/mif-gmao/gmao/internal/application/intervention/usecases"
	"github.com/mif-gmao/gmao/internal/infrastructure/repository"
	"github.com/mif-gmao/gmao/internal/interfaces/cli/bootstrap"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
)

var (
	status       string
	equipmentID  uint
	technicianID uint
	page         int
	pageSize     int
)

func NewCommand(opts *bootstrap.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interventions",
		Short: "Inspect interventions",
	}
	cmd.AddCommand(newListCommand(opts), newHistoryCommand(opts))
	return cmd
}

func newListCommand(opts *bootstrap.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List interventions",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := usecases.ListInterventionsQuery{
				Status:   status,
				Page:     page,
				PageSize: pageSize,
			}
			if equipmentID > 0 {
				query.EquipmentID = &equipmentID
			}
			if technicianID > 0 {
				query.TechnicianID = &technicianID
			}

			return withRuntime(cmd.Context(), opts, func(ctx context.Context, rt *bootstrap.Runtime) error {
				uc := usecases.NewListInterventionsUseCase(repository.NewInterventionRepository(rt.DB), rt.Log)
				list, err := uc.Execute(ctx, query)
				if err != nil {
					return err
				}
				renderInterventions(list)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().UintVar(&equipmentID, "equipment", 0, "Filter by equipment ID")
	cmd.Flags().UintVar(&technicianID, "technician", 0, "Filter by technician ID")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Page size")

	return cmd
}

func newHistoryCommand(opts *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show the history of an intervention",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid intervention ID %q", args[0])
			}

			return withRuntime(cmd.Context(), opts, func(ctx context.Context, rt *bootstrap.Runtime) error {
				uc := usecases.NewListHistoryUseCase(
					repository.NewInterventionRepository(rt.DB),
					repository.NewHistoryRepository(rt.DB),
					rt.Log,
				)
				entries, err := uc.Execute(ctx, uint(id))
				if err != nil {
					return err
				}

				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Status", "By", "At", "Remark"})
				for _, e := range entries {
					tw.AppendRow(table.Row{e.ID, e.Status, e.PrincipalID, e.CreatedAt.In(biztime.Location()).Format("2006-01-02 15:04"), e.Remark})
				}
				tw.Render()
				return nil
			})
		},
	}
}

func renderInterventions(list *dto.InterventionListDTO) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"ID", "Title", "Type", "Status", "Priority", "Urgent", "Due", "Technician"})
	for _, i := range list.Items {
		due := ""
		if i.DueDate != nil {
			due = biztime.FormatDate(*i.DueDate)
		}
		tech := ""
		if i.TechnicianID != nil {
			tech = strconv.FormatUint(uint64(*i.TechnicianID), 10)
		}
		tw.AppendRow(table.Row{i.ID, i.Title, i.Type, i.Status, i.Priority, i.Urgent, due, tech})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "", "", "Total", list.Total})
	tw.Render()
}

func withRuntime(ctx context.Context, opts *bootstrap.Options, fn func(context.Context, *bootstrap.Runtime) error) error {
	rt, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer rt.Close()
	return fn(ctx, rt)
}
