package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/branched-services/go-unique/internal/bundle"
)

func newBundlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bundles",
		Short: "Print the bundle targets as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := bundle.Targets()
			if err := bundle.Validate(targets); err != nil {
				return err
			}
			data, err := json.MarshalIndent(targets, "", "  ")
			if err != nil {
				return fmt.Errorf("bundles: encode: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
