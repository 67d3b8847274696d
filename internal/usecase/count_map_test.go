package usecase

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/station-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountMap(t *testing.T) {
	t.Run("int counts", func(t *testing.T) {
		counts := dataframe.New(
			series.New([]string{"RATP", "SNCF"}, series.String, domain.ColOperator),
			series.New([]int{3, 2}, series.Int, domain.ColCount),
		)

		got, err := countMap(counts, domain.ColOperator)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"RATP": 3, "SNCF": 2}, got)
	})

	t.Run("non-integer count column", func(t *testing.T) {
		counts := dataframe.New(
			series.New([]string{"RATP"}, series.String, domain.ColOperator),
			series.New([]string{"many"}, series.String, domain.ColCount),
		)

		_, err := countMap(counts, domain.ColOperator)
		assert.Error(t, err)
	})
}
