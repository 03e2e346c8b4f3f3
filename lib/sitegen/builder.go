package sitegen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"autobyte/lib/textutil"
	"autobyte/lib/timezone"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultOutputDir = "docs"

const stylesheet = `body {font-family: Arial, sans-serif; margin: 2rem; max-width: 800px;}
 h1 {color: #333;}
 a {color: #0366d6;}
`

// PostRecord is the in-memory triple the index is generated from. The
// page file is the persisted artifact, records only live for one run.
type PostRecord struct {
	Product string
	Slug    string
	Date    string
}

type Builder struct {
	// defaults to DefaultOutputDir
	OutputDir string
	// defaults to the literal placeholder tag
	AffiliateTag string
	// defaults to timezone.Now, overridable for tests
	Now func() time.Time
}

func (b Builder) outputDir() string {
	if b.OutputDir == "" {
		return DefaultOutputDir
	}
	return b.OutputDir
}

func (b Builder) now() time.Time {
	if b.Now == nil {
		return timezone.Now()
	}
	return b.Now()
}

// Build creates or extends the site directory: a write-once stylesheet,
// one write-once page per product, and an index that is always
// rewritten. Existing product pages are never touched, so manual edits
// survive repeat runs. Filesystem errors abort the build.
func (b Builder) Build(ctx context.Context, products []string) ([]PostRecord, error) {
	ctx, span := tracer.Start(ctx, "builder:Build")
	defer span.End()
	span.SetAttributes(attribute.Int("products", len(products)))

	dir := b.outputDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		span.SetStatus(codes.Error, "failed to create output directory")
		return nil, err
	}

	if err := b.writeStylesheet(dir); err != nil {
		span.SetStatus(codes.Error, "failed to write stylesheet")
		return nil, err
	}

	date := timezone.DateStamp(b.now())

	records := make([]PostRecord, 0, len(products))
	for _, product := range products {
		record := PostRecord{
			Product: product,
			Slug:    textutil.Slugify(product),
			Date:    date,
		}
		if err := b.writePost(ctx, dir, record); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to write post")
			return nil, err
		}
		records = append(records, record)
	}

	if err := b.writeIndex(dir, records); err != nil {
		span.SetStatus(codes.Error, "failed to write index")
		return nil, err
	}

	slog.InfoContext(ctx, "site built", "dir", dir, "posts", len(records))
	return records, nil
}

// first run wins: a stylesheet edited by hand is never clobbered
func (b Builder) writeStylesheet(dir string) error {
	path := filepath.Join(dir, "styles.css")
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(stylesheet), 0644)
}

func (b Builder) writePost(ctx context.Context, dir string, record PostRecord) error {
	path := filepath.Join(dir, record.Slug+".html")
	if _, err := os.Stat(path); err == nil {
		slog.DebugContext(ctx, "post already exists, leaving untouched", "slug", record.Slug)
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	title := fmt.Sprintf("%s Review", record.Product)
	html, err := RenderPost(title, record.Date, record.Product, record.Slug, b.AffiliateTag)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "writing post", "slug", record.Slug, "date", record.Date)
	return os.WriteFile(path, []byte(html), 0644)
}

func (b Builder) writeIndex(dir string, records []PostRecord) error {
	html, err := RenderIndex(records)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "index.html"), []byte(html), 0644)
}
