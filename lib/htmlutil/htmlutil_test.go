package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const fixture = `<html><body>
<ul>
<li><a href="widget-x.html">Widget <b>X</b> Review</a></li>
<li><a href=" bad url">Broken</a></li>
<li><a href="sample-product-a.html">
	Sample   Product A Review
</a></li>
</ul>
</body></html>`

func TestElementText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fixture))
	require.NoError(t, err)

	sel := doc.Find("li a").First()
	require.Equal(t, "Widget X Review", ElementText(sel.Nodes[0]))
}

func TestGetAnchors(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fixture))
	require.NoError(t, err)

	anchors := GetAnchors(context.Background(), doc.Find("li a"))
	require.Len(t, anchors, 3)
	require.Equal(t, Anchor{Name: "Widget X Review", Href: "widget-x.html"}, anchors[0])
	require.Equal(t, Anchor{Name: "Sample Product A Review", Href: "sample-product-a.html"}, anchors[2])
}
