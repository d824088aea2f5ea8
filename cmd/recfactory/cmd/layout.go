package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/recfactory/pkg/alloc"
	"github.com/ssargent/recfactory/pkg/record"
)

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Show the record layout and allocator settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Name capacity:   %d bytes\n", record.Capacity)
			fmt.Fprintf(out, "Max name length: %d bytes\n", record.MaxNameLen)
			fmt.Fprintf(out, "Record size:     %d bytes\n", record.RecordSize)
			fmt.Fprintf(out, "Allocator:       %s\n", alloc.Kind(s.factory.Allocator()))
			if s.config.Allocator.BudgetBytes > 0 {
				fmt.Fprintf(out, "Budget:          %d bytes (%d records)\n",
					s.config.Allocator.BudgetBytes, s.config.Allocator.BudgetBytes/int64(record.RecordSize))
			} else {
				fmt.Fprintf(out, "Budget:          unlimited\n")
			}
			return nil
		},
	}
}
