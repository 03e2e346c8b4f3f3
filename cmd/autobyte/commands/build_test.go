package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"autobyte/lib/telemetry"

	"github.com/stretchr/testify/require"
)

const rankingPage = `<html><body>
<span class="zg-text-center-align">
	<div class="a-section"><a class="a-link-normal" href="/dp/1">Alpha Widget</a></div>
	<div class="a-section"><a class="a-link-normal" href="/dp/2">Beta Gadget</a></div>
	<div class="a-section"><a class="a-link-normal" href="/dp/3">Gamma Gizmo</a></div>
</span>
</body></html>`

func TestFetchOrFallbackSuccess(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:commands")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rankingPage)
	}))
	t.Cleanup(srv.Close)

	products := fetchOrFallback(context.Background(), Config{BaseUrl: srv.URL})
	require.Equal(t, []string{"Alpha Widget", "Beta Gadget", "Gamma Gizmo"}, products)
}

func TestFetchOrFallbackTransportFailure(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:commands")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	products := fetchOrFallback(context.Background(), Config{BaseUrl: srv.URL})
	require.Equal(t, sampleProducts, products)
}

func TestFetchOrFallbackBadStatus(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:commands")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	products := fetchOrFallback(context.Background(), Config{BaseUrl: srv.URL})
	require.Equal(t, sampleProducts, products)
}

func TestFetchOrFallbackClientConstructionFailure(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:commands")
	defer cleanup()

	products := fetchOrFallback(context.Background(), Config{BaseUrl: "://not-a-url"})
	require.Equal(t, sampleProducts, products)
}
