package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/recfactory/pkg/api"
	"github.com/ssargent/recfactory/pkg/record"
)

func newCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create <name> <age>",
		Short: "Create a record",
		Long: `Create a Person record and print it.

Names longer than 99 bytes are truncated. Use -- before negative ages.

Examples:
  recfactory create Alice 30
  recfactory create --json Alice 30
  recfactory create -- Bob -5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")

			age, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid age %q: %w", args[1], err)
			}

			p, err := s.factory.Create(args[0], age)
			if err != nil {
				s.logger.Debug("create failed", zap.Error(err))
				return fmt.Errorf("failed to create record: %w", err)
			}
			defer p.Release()

			return printRecords(cmd.OutOrStdout(), []*record.Person{p}, asJSON, false)
		},
	}

	createCmd.Flags().Bool("json", false, "Print the record as JSON")
	return createCmd
}

// printRecords writes people as text lines, or as JSON (an array when list is true)
func printRecords(w io.Writer, people []*record.Person, asJSON, list bool) error {
	if !asJSON {
		for _, p := range people {
			fmt.Fprintf(w, "%s, Score: %.1f\n", p, p.Score)
		}
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if !list && len(people) == 1 {
		return enc.Encode(api.NewRecordResponse(people[0]))
	}

	out := make([]api.RecordResponse, 0, len(people))
	for _, p := range people {
		out = append(out, api.NewRecordResponse(p))
	}
	return enc.Encode(out)
}
