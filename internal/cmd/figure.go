package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/station-dashboard/internal/domain"
	"github.com/station-dashboard/internal/render"
)

func NewFigureCmd(app *RailCtlApp) *cobra.Command {
	var (
		filter  string
		pngPath string
		width   int
		height  int
	)

	validCharts := make([]string, 0, len(domain.Charts))
	for _, c := range domain.Charts {
		validCharts = append(validCharts, string(c))
	}

	cmd := &cobra.Command{
		Use:       "figure <chart-id>",
		Short:     "Build one dashboard figure as JSON or PNG",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: validCharts,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.open()
			if err != nil {
				return err
			}

			f := domain.FilterFromValue(filter)

			fig, err := s.dashboard.Figure(domain.ChartID(args[0]), f)
			if err != nil {
				return err
			}

			if pngPath == "" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(fig)
			}

			var buf bytes.Buffer
			if err := render.PNG(&buf, fig, width, height); err != nil {
				return err
			}
			if err := os.WriteFile(pngPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", pngPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pngPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Dropdown value for the chart")
	cmd.Flags().StringVar(&pngPath, "png", "", "Write a PNG image to this path instead of printing JSON")
	cmd.Flags().IntVar(&width, "width", render.DefaultWidth, "PNG width")
	cmd.Flags().IntVar(&height, "height", render.DefaultHeight, "PNG height")

	return cmd
}
