package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"
	"github.com/station-dashboard/internal/domain"
	"go.uber.org/zap"
)

type viewFunc func(s *session, filter domain.Filter) (dataframe.DataFrame, error)

var views = map[string]viewFunc{
	"top-stations": func(s *session, f domain.Filter) (dataframe.DataFrame, error) {
		return s.agg.TopStationsByTraffic(s.data.Traffic(), f), nil
	},
	"top-cities": func(s *session, f domain.Filter) (dataframe.DataFrame, error) {
		return s.agg.TopTrafficByCity(s.data.Traffic(), f)
	},
	"operators": func(s *session, f domain.Filter) (dataframe.DataFrame, error) {
		return s.agg.StationCountByOperator(s.data.Locations(), f), nil
	},
	"lines": func(s *session, f domain.Filter) (dataframe.DataFrame, error) {
		return s.agg.StationCountByLine(s.data.Locations(), f), nil
	},
	"geo": func(s *session, _ domain.Filter) (dataframe.DataFrame, error) {
		return s.data.Locations(), nil
	},
}

func viewNames() []string {
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewViewCmd(app *RailCtlApp) *cobra.Command {
	var filter string
	var format string

	cmd := &cobra.Command{
		Use:       fmt.Sprintf("view <%s>", strings.Join(viewNames(), "|")),
		Short:     "Print an aggregated view of the source tables",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: viewNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.open()
			if err != nil {
				return err
			}

			f := domain.FilterFromValue(filter)

			df, err := views[args[0]](s, f)
			if err != nil {
				return err
			}
			s.logger.Debug("View computed", zap.String("view", args[0]), zap.Int("rows", df.Nrow()))

			out := cmd.OutOrStdout()
			switch format {
			case "csv":
				return df.WriteCSV(out)
			case "json":
				return df.WriteJSON(out)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Network or operator to restrict the view to")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or json")

	return cmd
}
