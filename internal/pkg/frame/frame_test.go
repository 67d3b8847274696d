package frame

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"Metro", "RER", "Metro", "RER", "Metro"}, series.String, "net"),
		series.New([]string{"a", "b", "c", "d", "e"}, series.String, "name"),
		series.New([]int{10, 30, 30, 5, 20}, series.Int, "n"),
	)
}

func TestRequire(t *testing.T) {
	df := sample()

	assert.NoError(t, Require(df, "net", "n"))

	err := Require(df, "net", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestFilterEq(t *testing.T) {
	df := sample()

	t.Run("matching rows keep order", func(t *testing.T) {
		out := FilterEq(df, "net", "Metro")
		assert.Equal(t, []string{"a", "c", "e"}, out.Col("name").Records())
	})

	t.Run("no match yields empty table with same columns", func(t *testing.T) {
		out := FilterEq(df, "net", "Tram")
		assert.Equal(t, 0, out.Nrow())
		assert.Equal(t, df.Names(), out.Names())
		assert.Equal(t, df.Types(), out.Types())
	})

	t.Run("input untouched", func(t *testing.T) {
		FilterEq(df, "net", "RER")
		assert.Equal(t, 5, df.Nrow())
	})
}

func TestSortDesc_Stable(t *testing.T) {
	out := SortDesc(sample(), "n")

	// b and c tie on 30: b came first in the source
	assert.Equal(t, []string{"b", "c", "e", "a", "d"}, out.Col("name").Records())
}

func TestHead(t *testing.T) {
	df := sample()

	assert.Equal(t, []string{"a", "b"}, Head(df, 2).Col("name").Records())
	assert.Equal(t, 5, Head(df, 20).Nrow())
	assert.Equal(t, 0, Head(df, 0).Nrow())
}

func TestHeadPerGroup(t *testing.T) {
	out := HeadPerGroup(SortDesc(sample(), "n"), "net", 2)

	assert.Equal(t, []string{"b", "c", "e", "d"}, out.Col("name").Records())
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"Metro", "RER"}, Distinct(sample(), "net"))
	assert.Nil(t, Distinct(Empty(sample()), "net"))
}

func TestCountBy(t *testing.T) {
	out := CountBy(sample(), "net", "count")

	assert.Equal(t, []string{"net", "count"}, out.Names())
	assert.Equal(t, []string{"Metro", "RER"}, out.Col("net").Records())
	counts, err := out.Col("count").Int()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, counts)
}

func TestSumBy(t *testing.T) {
	out, err := SumBy(sample(), "net", "n")
	require.NoError(t, err)

	assert.Equal(t, []string{"Metro", "RER"}, out.Col("net").Records())
	sums, err := out.Col("n").Int()
	require.NoError(t, err)
	assert.Equal(t, []int{60, 35}, sums)
}
