package publishers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Afrik-Presse/liens-afrique/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistryFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistryYAML(t *testing.T) {
	t.Parallel()

	path := writeRegistryFile(t, "publishers.yaml", `
publishers:
  - id: webhook
    type: http
    http:
      url: https://hooks.example.com/links
  - id: fanout
    type: queue
    enabled: false
    queue:
      provider: aws-sns
      sns:
        topic_arn: arn:aws:sns:eu-west-1:123456789012:links
        region: eu-west-1
        access_key_id: AKIAEXAMPLE
        secret_access_key: secret
`)

	reg, err := LoadRegistry(path)
	require.NoError(t, err)

	assert.Len(t, reg.All(), 2)

	enabled := reg.Enabled()
	require.Len(t, enabled, 1)
	assert.Equal(t, "webhook", enabled[0].ID)

	cfg, ok := reg.ByID("webhook")
	require.True(t, ok)
	assert.Equal(t, TypeHTTP, cfg.Type)
	assert.Equal(t, "POST", cfg.HTTP.Method)
	assert.Equal(t, httpDefaultTimeoutSeconds, cfg.HTTP.TimeoutSeconds)

	_, ok = reg.ByID("absent")
	assert.False(t, ok)
}

func TestLoadRegistryExpandsEnv(t *testing.T) {
	t.Setenv("LINKS_HOOK_URL", "https://hooks.example.com/from-env")

	path := writeRegistryFile(t, "publishers.yaml", `
publishers:
  - id: webhook
    type: http
    http:
      url: ${LINKS_HOOK_URL}
`)

	reg, err := LoadRegistry(path)
	require.NoError(t, err)

	cfg, ok := reg.ByID("webhook")
	require.True(t, ok)
	assert.Equal(t, "https://hooks.example.com/from-env", cfg.HTTP.URL)
}

func TestLoadRegistryValidation(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing id": `
publishers:
  - type: http
    http:
      url: https://hooks.example.com
`,
		"unknown type": `
publishers:
  - id: x
    type: carrier-pigeon
`,
		"queue without provider": `
publishers:
  - id: x
    type: queue
    queue: {}
`,
		"incomplete sqs": `
publishers:
  - id: x
    type: queue
    queue:
      provider: aws-sqs
      aws:
        uri: https://sqs.eu-west-1.amazonaws.com/1/links
`,
		"incomplete gcp": `
publishers:
  - id: x
    type: queue
    queue:
      provider: gcp
      gcp:
        project_id: my-project
`,
		"duplicate ids": `
publishers:
  - id: x
    type: http
    http:
      url: https://hooks.example.com/a
  - id: x
    type: http
    http:
      url: https://hooks.example.com/b
`,
		"empty file": `
publishers: []
`,
	}

	for name, content := range cases {
		content := content
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := writeRegistryFile(t, "publishers.yaml", content)
			_, err := LoadRegistry(path)
			require.Error(t, err)
		})
	}
}

func TestHTTPPublisherDeliversEvent(t *testing.T) {
	t.Parallel()

	var got Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	pub, err := DefaultRegistry().PublisherFor(context.Background(), PublisherConfig{
		ID:   "webhook",
		Type: TypeHTTP,
		HTTP: &HTTPPublisherConfig{URL: srv.URL, Method: "POST", TimeoutSeconds: 2},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "webhook", pub.ID())
	assert.Equal(t, TypeHTTP, pub.Type())

	art := domain.Article{Title: "Mali : nouvelles du Sahel", URL: "https://www.rfi.fr/fr/afrique/a", Source: "RFI"}
	evt := NewEvent("rfi", art, time.Now())

	require.NoError(t, pub.Publish(context.Background(), evt))
	assert.Equal(t, "rfi", got.ProviderID)
	assert.Equal(t, "RFI", got.Source)
	assert.Equal(t, art.Title, got.Title)
	assert.Equal(t, art.URL, got.URL)
}

func TestHTTPPublisherStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	pub, err := newHTTPPublisher(context.Background(), PublisherConfig{
		ID:   "webhook",
		Type: TypeHTTP,
		HTTP: &HTTPPublisherConfig{URL: srv.URL, Method: "POST", TimeoutSeconds: 2},
	}, nil)
	require.NoError(t, err)

	err = pub.Publish(context.Background(), Event{URL: "https://example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

// countingPublisher records deliveries and optionally fails.
type countingPublisher struct {
	id    string
	fail  bool
	calls int
}

func (p *countingPublisher) ID() string   { return p.id }
func (p *countingPublisher) Type() string { return TypeHTTP }

func (p *countingPublisher) Publish(context.Context, Event) error {
	p.calls++
	if p.fail {
		return errors.New("delivery failed")
	}
	return nil
}

func TestPublishEventsContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	failing := &countingPublisher{id: "bad", fail: true}
	working := &countingPublisher{id: "good"}

	events := []Event{
		{ProviderID: "rfi", URL: "https://www.rfi.fr/fr/afrique/a"},
		{ProviderID: "rfi", URL: "https://www.rfi.fr/fr/afrique/b"},
	}

	PublishEvents(context.Background(), []Publisher{failing, working}, events, nil)

	assert.Equal(t, 2, failing.calls)
	assert.Equal(t, 2, working.calls)
}

func TestRegistryRejectsUnknownType(t *testing.T) {
	t.Parallel()

	_, err := DefaultRegistry().PublisherFor(context.Background(), PublisherConfig{ID: "x", Type: "smoke-signal"}, nil)
	require.Error(t, err)
}
