// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/YakDriver/bannerplop/internal/banner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm", "strip"},
	Short:   "Strip known banners from the top of files",
	Long: `Remove every known banner variant found at the very top of matching files,
together with the blank lines that follow it. Files without a leading banner
are not touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("path")

		remover := banner.NewRemover(cfg, runOptions(cmd)...)
		result, err := remover.Remove(path)
		if err != nil {
			return fmt.Errorf("remove failed: %w", err)
		}

		banner.ReportRemove(cmd.OutOrStdout(), banner.Label(cfg.Files.Extensions), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
