// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/YakDriver/bannerplop/internal/banner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Prepend the banner to files that lack it",
	Long: `Prepend the configured banner to every matching file that does not already
contain the banner marker. Files that cannot be updated are reported but do not
fail the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("path")

		adder := banner.NewAdder(cfg, runOptions(cmd)...)
		result, err := adder.Add(path)
		if err != nil {
			return fmt.Errorf("add failed: %w", err)
		}

		banner.ReportAdd(cmd.OutOrStdout(), banner.Label(cfg.Files.Extensions), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
