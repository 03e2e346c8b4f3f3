package sitegen

import (
	"fmt"
	"html/template"
	"strings"
)

const DefaultAffiliateTag = "YOUR_AFFILIATE_ID"

const SiteTitle = "AutoByte Reviews"

var postTemplate = template.Must(template.New("post").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="styles.css">
</head>
<body>
  <h1>{{.Title}}</h1>
  <p><em>{{.Date}}</em></p>
  <h2>Overview</h2>
  <p>{{.Product}} is trending on Amazon. This product has captured consumer interest because of its high quality and innovative features. In this review, we'll explore why it's so popular.</p>
  <h2>Key Features</h2>
  <ul>
    <li>High quality materials</li>
    <li>Excellent performance</li>
    <li>Great value for the price</li>
  </ul>
  <h2>Conclusion</h2>
  <p>If you're in the market for something new, {{.Product}} is worth considering. It's one of the top-selling items today.</p>
  <p><a href="{{.BuyLink}}">Buy on Amazon</a></p>
  <p><a href="index.html">Back to Home</a></p>
</body>
</html>`))

type postData struct {
	Title   string
	Date    string
	Product string
	BuyLink template.URL
}

// RenderPost produces the full HTML document for one product review.
// Pure: identical arguments always yield identical bytes.
func RenderPost(title, date, product, slug, affiliateTag string) (string, error) {
	if affiliateTag == "" {
		affiliateTag = DefaultAffiliateTag
	}
	keywords := strings.Join(strings.Split(slug, "-"), "+")
	buyLink := fmt.Sprintf("https://www.amazon.com/s?k=%s&tag=%s", keywords, affiliateTag)

	var out strings.Builder
	err := postTemplate.Execute(&out, postData{
		Title:   title,
		Date:    date,
		Product: product,
		BuyLink: template.URL(buyLink),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>` + SiteTitle + `</title>
<link rel="stylesheet" href="styles.css">
</head>
<body>
<h1>` + SiteTitle + `</h1>
<p>Welcome to ` + SiteTitle + `. Here you will find AI-generated reviews of trending products.</p>
<ul>
{{range .}}<li><a href="{{.Slug}}.html">{{.Product}} Review</a> - {{.Date}}</li>
{{end}}</ul>
</body>
</html>`))

// RenderIndex produces the aggregated index page linking every record,
// in the order given.
func RenderIndex(records []PostRecord) (string, error) {
	var out strings.Builder
	err := indexTemplate.Execute(&out, records)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}
