package seed

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mif-gmao/gmao/internal/infrastructure/repository"
	fixtures "github.com/mif-gmao/gmao/internal/infrastructure/seed"
	"github.com/mif-gmao/gmao/internal/interfaces/cli/bootstrap"
)

var file string

func NewCommand(opts *bootstrap.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data from a YAML fixture",
		Long:  `Create users, equipment, technicians and plannings from a fixture file. Existing rows are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap.Init(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			fixture, err := fixtures.ReadFile(file)
			if err != nil {
				return err
			}

			loader := fixtures.NewLoader(
				repository.NewUserRepository(rt.DB),
				repository.NewEquipmentRepository(rt.DB),
				repository.NewTechnicianRepository(rt.DB),
				repository.NewPlanningRepository(rt.DB),
				rt.Log,
			)
			res, err := loader.Load(cmd.Context(), fixture)
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Users", "Equipments", "Technicians", "Plannings"})
			tw.AppendRow(table.Row{res.Users, res.Equipments, res.Technicians, res.Plannings})
			tw.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "configs/seed.yaml", "Fixture file")

	return cmd
}
