package bestsellers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"slices"
	"time"

	"autobyte/lib/htmlutil"
	"autobyte/lib/telemetry"
	"autobyte/lib/util/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultUrl = "https://www.amazon.com/Best-Sellers/zgbs"
const DefaultMaxItems = 3

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/87.0.4280.141 Safari/537.36"

const defaultTimeout = time.Second * 10

var ErrDependency = errors.New("html parser not configured")
var ErrTransport = errors.New("best sellers request failed")
var ErrBadStatus = errors.New("best sellers request returned a bad status")

// the page structure varies between renditions of the ranking, so
// extraction falls through a fixed chain of selectors in priority order
var selectors = []string{
	"div.p13n-sc-uncoverable-faceout a.a-link-normal div.p13n-sc-truncate",
	"span.zg-text-center-align div.a-section a.a-link-normal",
	"span.aok-inline-block a.a-link-normal",
}

// HtmlParser is the capability that turns a response body into a
// queryable document. It is injected at construction so a client
// missing it is a configuration error, not a mid-scrape surprise.
type HtmlParser interface {
	Parse(body io.Reader) (*goquery.Document, error)
}

type GoqueryParser struct{}

func (GoqueryParser) Parse(body io.Reader) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(body)
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
	parser  HtmlParser
}

type ClientOptions struct {
	// defaults to DefaultUrl
	BaseUrl string
	// defaults to a fixed desktop Chrome user agent
	UserAgent string
	// defaults to 10s
	Timeout time.Duration
	// required, there is no default
	Parser HtmlParser
	// optional, switches the client to per-exchange dump
	// instrumentation for debugging selector drift
	InstrumentOutput restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Parser == nil {
		return nil, ErrDependency
	}
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(opts.Timeout)

	if opts.InstrumentOutput != nil {
		restyutil.InstrumentClient(client, tracer, opts.InstrumentOutput)
	} else {
		telemetry.InstrumentResty(client, "scrapers/bestsellers/http")
	}

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
		parser:  opts.Parser,
	}, nil
}

// Fetch returns up to maxItems distinct product names from the ranked
// best-sellers page, ordered by first appearance across the selector
// chain. One request, no retries; any failure is the caller's problem.
func (c *Client) Fetch(ctx context.Context, maxItems int) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:Fetch")
	defer span.End()

	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	span.SetAttributes(attribute.Int("max_items", maxItems))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(c.BaseUrl.String())
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch best sellers page")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "bad response status")
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, res.Status())
	}

	doc, err := c.parser.Parse(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	names := extractNames(doc, maxItems)
	span.SetAttributes(attribute.Int("extracted", len(names)))

	return names, nil
}

func extractNames(doc *goquery.Document, maxItems int) []string {
	var names []string
	for _, selector := range selectors {
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			text := htmlutil.ElementText(sel.Nodes[0])
			if text != "" && !slices.Contains(names, text) {
				names = append(names, text)
			}
			return len(names) < maxItems
		})
		if len(names) >= maxItems {
			break
		}
	}
	return names
}
