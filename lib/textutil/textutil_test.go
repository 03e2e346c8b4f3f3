package textutil

import (
	"regexp"
	"testing"

	"github.com/mazen160/go-random"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "Sample Product A!", expected: "sample-product-a"},
		{input: "Widget X", expected: "widget-x"},
		{input: "  --Already--Sluggy--  ", expected: "already-sluggy"},
		{input: "Ultra HD 4K TV (55\")", expected: "ultra-hd-4k-tv-55"},
		{input: "!!!", expected: ""},
		{input: "", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Slugify(test.input), "input: %q", test.input)
	}
}

var slugCharset = regexp.MustCompile(`^$|^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugifyStable(t *testing.T) {
	for i := 0; i < 64; i++ {
		input, err := random.String(24)
		if err != nil {
			t.Fatal(err)
		}

		first := Slugify(input)
		second := Slugify(input)
		require.Equal(t, first, second)
		require.True(t, slugCharset.MatchString(first), "slug: %q input: %q", first, input)
	}
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "Widget X", CleanText("\n\t  Widget \n  X  "))
	require.Equal(t, "", CleanText("   "))
}
