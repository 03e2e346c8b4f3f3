package sitegen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRenderPostDeterministic(t *testing.T) {
	first, err := RenderPost("Widget X Review", "2025-01-02", "Widget X", "widget-x", "")
	require.NoError(t, err)
	second, err := RenderPost("Widget X Review", "2025-01-02", "Widget X", "widget-x", "")
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("render is not deterministic (-first +second):\n%s", diff)
	}
}

func TestRenderPostContent(t *testing.T) {
	html, err := RenderPost("Widget X Review", "2025-01-02", "Widget X", "widget-x", "")
	require.NoError(t, err)

	require.Contains(t, html, "<title>Widget X Review</title>")
	require.Contains(t, html, "<h1>Widget X Review</h1>")
	require.Contains(t, html, "<p><em>2025-01-02</em></p>")
	require.Contains(t, html, "<h2>Overview</h2>")
	require.Contains(t, html, "<h2>Key Features</h2>")
	require.Contains(t, html, "<h2>Conclusion</h2>")
	// the product name appears verbatim in both prose sections
	require.Contains(t, html, "Widget X is trending on Amazon.")
	require.Contains(t, html, "Widget X is worth considering.")

	// slug tokens joined by + with the placeholder affiliate tag
	require.Contains(t, html, `href="https://www.amazon.com/s?k=widget+x&amp;tag=YOUR_AFFILIATE_ID"`)
	require.Contains(t, html, `<a href="index.html">Back to Home</a>`)
}

func TestRenderPostAffiliateTagOverride(t *testing.T) {
	html, err := RenderPost("Widget X Review", "2025-01-02", "Widget X", "widget-x", "autobyte-20")
	require.NoError(t, err)
	require.Contains(t, html, `&amp;tag=autobyte-20"`)
}

func TestRenderIndex(t *testing.T) {
	html, err := RenderIndex([]PostRecord{
		{Product: "Widget X", Slug: "widget-x", Date: "2025-01-02"},
		{Product: "Sample Product A", Slug: "sample-product-a", Date: "2025-01-02"},
	})
	require.NoError(t, err)

	require.Contains(t, html, "<title>AutoByte Reviews</title>")
	require.Contains(t, html, `<li><a href="widget-x.html">Widget X Review</a> - 2025-01-02</li>`)
	require.Contains(t, html, `<li><a href="sample-product-a.html">Sample Product A Review</a> - 2025-01-02</li>`)
	// order follows the input sequence
	require.Less(
		t,
		strings.Index(html, "widget-x.html"),
		strings.Index(html, "sample-product-a.html"),
	)
}

func TestRenderIndexEmpty(t *testing.T) {
	html, err := RenderIndex(nil)
	require.NoError(t, err)
	require.Contains(t, html, "<ul>")
	require.NotContains(t, html, "<li>")
}
