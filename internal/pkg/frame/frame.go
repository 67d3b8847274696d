// Package frame holds the few table operations the dashboard needs on top of
// gota dataframes. Every helper returns a new DataFrame and leaves its input
// untouched.
package frame

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Require returns an error naming the first column of cols missing from df.
func Require(df dataframe.DataFrame, cols ...string) error {
	have := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		have[name] = true
	}
	for _, c := range cols {
		if !have[c] {
			return fmt.Errorf("missing column %q", c)
		}
	}
	return nil
}

// Empty returns a zero-row copy of df with the same columns and types.
func Empty(df dataframe.DataFrame) dataframe.DataFrame {
	cols := make([]series.Series, 0, df.Ncol())
	types := df.Types()
	for i, name := range df.Names() {
		cols = append(cols, series.New([]string{}, types[i], name))
	}
	return dataframe.New(cols...)
}

// Subset selects rows by index, in the given order. An empty index list
// yields Empty(df).
func Subset(df dataframe.DataFrame, indexes []int) dataframe.DataFrame {
	if len(indexes) == 0 {
		return Empty(df)
	}
	return df.Subset(indexes)
}

// FilterEq keeps the rows whose column col equals value exactly.
func FilterEq(df dataframe.DataFrame, col, value string) dataframe.DataFrame {
	records := df.Col(col).Records()
	indexes := make([]int, 0, len(records))
	for i, r := range records {
		if r == value {
			indexes = append(indexes, i)
		}
	}
	return Subset(df, indexes)
}

// Head keeps the first n rows.
func Head(df dataframe.DataFrame, n int) dataframe.DataFrame {
	if n >= df.Nrow() {
		return df
	}
	if n < 0 {
		n = 0
	}
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	return Subset(df, indexes)
}

// SortDesc orders rows by a numeric column, largest first. Equal values keep
// their original relative order.
func SortDesc(df dataframe.DataFrame, col string) dataframe.DataFrame {
	values := df.Col(col).Float()
	indexes := make([]int, len(values))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return values[indexes[a]] > values[indexes[b]]
	})
	return Subset(df, indexes)
}

// HeadPerGroup keeps, in the current row order, at most n rows for each
// distinct value of col.
func HeadPerGroup(df dataframe.DataFrame, col string, n int) dataframe.DataFrame {
	seen := make(map[string]int)
	indexes := make([]int, 0, df.Nrow())
	for i, key := range df.Col(col).Records() {
		if seen[key] >= n {
			continue
		}
		seen[key]++
		indexes = append(indexes, i)
	}
	return Subset(df, indexes)
}

// Distinct returns the distinct values of col in order of first appearance.
func Distinct(df dataframe.DataFrame, col string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range df.Col(col).Records() {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// CountBy groups rows by col and counts them. The result has columns col
// (string) and countCol (int), one row per group, groups in ascending key
// order.
func CountBy(df dataframe.DataFrame, col, countCol string) dataframe.DataFrame {
	counts := make(map[string]int)
	for _, key := range df.Col(col).Records() {
		counts[key]++
	}

	keys := sortedKeys(counts)
	values := make([]int, len(keys))
	for i, k := range keys {
		values[i] = counts[k]
	}

	return dataframe.New(
		series.New(keys, series.String, col),
		series.New(values, series.Int, countCol),
	)
}

// SumBy groups rows by col and sums the integer column sumCol. The result has
// columns col and sumCol, groups in ascending key order.
func SumBy(df dataframe.DataFrame, col, sumCol string) (dataframe.DataFrame, error) {
	amounts, err := df.Col(sumCol).Int()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("column %q: %w", sumCol, err)
	}

	sums := make(map[string]int)
	for i, key := range df.Col(col).Records() {
		sums[key] += amounts[i]
	}

	keys := sortedKeys(sums)
	values := make([]int, len(keys))
	for i, k := range keys {
		values[i] = sums[k]
	}

	return dataframe.New(
		series.New(keys, series.String, col),
		series.New(values, series.Int, sumCol),
	), nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
