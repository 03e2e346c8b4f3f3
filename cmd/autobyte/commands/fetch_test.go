package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintRankingJson(t *testing.T) {
	var out strings.Builder
	err := printRanking(&out, []string{"Widget X", "Sample Product A"}, true)
	require.NoError(t, err)

	var entries []rankingEntry
	require.NoError(t, json.Unmarshal([]byte(out.String()), &entries))
	require.Equal(t, []rankingEntry{
		{Rank: 1, Product: "Widget X", Slug: "widget-x"},
		{Rank: 2, Product: "Sample Product A", Slug: "sample-product-a"},
	}, entries)
}

func TestPrintRankingTable(t *testing.T) {
	var out strings.Builder
	err := printRanking(&out, []string{"Widget X"}, false)
	require.NoError(t, err)

	rendered := out.String()
	require.Contains(t, rendered, "Widget X")
	require.Contains(t, rendered, "widget-x")
	require.NotContains(t, rendered, `"rank"`)
}
