// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/YakDriver/bannerplop/internal/banner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ErrMissingBanners = errors.New("files without a banner")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report files without a banner",
	Long:  `Scan files and report those whose first bytes do not contain the banner marker.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("path")

		checker := banner.NewChecker(cfg, runOptions(cmd)...)
		issues, err := checker.Check(path)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		if len(issues) > 0 {
			banner.ReportCheck(cmd.OutOrStdout(), issues)
			return fmt.Errorf("%w: %d", ErrMissingBanners, len(issues))
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✓ All files have a banner")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
