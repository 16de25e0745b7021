package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/unclebandit/formatkit/internal/model"
	"github.com/unclebandit/formatkit/internal/sequence"
	"github.com/unclebandit/formatkit/internal/service"
)

// LabelsCmd prints each argument suffixed with its position.
func LabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels [values...]",
		Short: "Print value_index labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range sequence.Labels(args) {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
}

// CustomersCmd reads a customer list and prints it keyed by id.
func CustomersCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "customers [file]",
		Short: "Key a JSON or YAML customer list by id",
		Long: `Reads customers from a .json, .yaml or .yml file, either as a bare list
or under a top-level "customers" key, and prints them keyed by id.
When an id repeats, the last entry wins.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := readCustomers(args[0])
			if err != nil {
				return err
			}
			profiles := service.TransformCustomers(customers)

			out := cmd.OutOrStdout()
			switch output {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(profiles)
			case "yaml":
				enc := yaml.NewEncoder(out)
				if err := enc.Encode(profiles); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown output format %q (use json or yaml)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")
	return cmd
}

func readCustomers(path string) ([]model.Customer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var node yaml.Node
		if err := yaml.Unmarshal(content, &node); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if len(node.Content) == 0 {
			return nil, nil
		}
		if node.Content[0].Kind == yaml.MappingNode {
			var batch model.ImportBatch
			err = node.Decode(&batch)
			return batch.Customers, err
		}
		var customers []model.Customer
		err = node.Decode(&customers)
		return customers, err
	case ".json":
		if bytes.HasPrefix(bytes.TrimSpace(content), []byte("{")) {
			var batch model.ImportBatch
			err = json.Unmarshal(content, &batch)
			return batch.Customers, err
		}
		var customers []model.Customer
		err = json.Unmarshal(content, &customers)
		return customers, err
	}
	return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
}
