package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/recfactory/pkg/record"
)

func newBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Create records from a YAML file",
		Long: `Create one record per entry of a YAML list. Either every record is
created or, on allocation failure, none is.

File format:
  - name: Alice
    age: 30
  - name: Bob
    age: 41

Example:
  recfactory batch people.yaml --budget 4096`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")

			inputs, err := readInputs(args[0])
			if err != nil {
				return err
			}

			people, err := s.factory.CreateAll(inputs)
			if err != nil {
				s.logger.Debug("batch failed", zap.Int("entries", len(inputs)), zap.Error(err))
				return fmt.Errorf("failed to create %d records: %w", len(inputs), err)
			}
			defer record.ReleaseAll(people)

			if err := printRecords(cmd.OutOrStdout(), people, asJSON, true); err != nil {
				return err
			}
			if !asJSON {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %d records\n", len(people))
			}
			return nil
		},
	}

	batchCmd.Flags().Bool("json", false, "Print the records as a JSON array")
	return batchCmd
}

// readInputs parses a YAML list of name/age entries
func readInputs(path string) ([]record.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []struct {
		Name *string `yaml:"name"`
		Age  int     `yaml:"age"`
	}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}

	if len(entries) == 0 {
		return nil, errors.New("batch file has no entries")
	}

	inputs := make([]record.Input, 0, len(entries))
	for i, e := range entries {
		if e.Name == nil {
			return nil, fmt.Errorf("entry %d: name is required", i)
		}
		inputs = append(inputs, record.Input{Name: *e.Name, Age: e.Age})
	}
	return inputs, nil
}
