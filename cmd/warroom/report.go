package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/fortuna/warroom/internal/report"
	"github.com/fortuna/warroom/internal/service"
)

var (
	groupByPosition bool
	reportTimeout   time.Duration
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Refresh once and print every view as terminal tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), reportTimeout)
		defer cancel()

		a := newApp(cfg, logger, false)
		defer a.Close()

		d, err := a.dashboard.Refresh(ctx, service.RefreshOptions{GroupByPosition: groupByPosition})
		if err != nil {
			if rerr := report.RenderError(cmd.OutOrStdout(), err); rerr != nil {
				return rerr
			}
			return err
		}
		return report.Render(cmd.OutOrStdout(), d)
	},
}

func init() {
	reportCmd.Flags().BoolVar(&groupByPosition, "group", false, "Group the roster by position (F, D, G)")
	reportCmd.Flags().DurationVar(&reportTimeout, "timeout", time.Minute, "Refresh timeout")
}
