package messenger

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/onurcolak/messenger-gateway/environments"
)

//
// Test helpers shared by the messenger tests.
//

type recordedRequest struct {
	method string
	path   string
	query  url.Values
	body   []byte
}

type requestRecorder struct {
	requests []recordedRequest
}

func (r *requestRecorder) count() int {
	return len(r.requests)
}

func (r *requestRecorder) last() recordedRequest {
	return r.requests[len(r.requests)-1]
}

// newRecordingServer answers every request with the given status and body
// and records what it saw.
func newRecordingServer(t *testing.T, status int, responseBody string) (*httptest.Server, *requestRecorder) {
	t.Helper()

	recorder := &requestRecorder{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed to read request body: %v", err)
		}

		recorder.requests = append(recorder.requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			body:   body,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))

	t.Cleanup(server.Close)

	return server, recorder
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(environments.GraphConfig{
		BaseURL:     baseURL,
		APIVersion:  "v3.1",
		AccessToken: "test-token",
		Timeout:     2 * time.Second,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	return client
}

//
// Construction and transport behavior.
//

func TestNew_MissingTokenReturnsConfigurationError(t *testing.T) {
	_, err := New(environments.GraphConfig{
		BaseURL:    "https://graph.facebook.com",
		APIVersion: "v3.1",
		Timeout:    time.Second,
	})
	if err == nil {
		t.Fatalf("expected error for missing access token, got nil")
	}

	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
}

func TestClient_AttachesAccessTokenQueryParam(t *testing.T) {
	server, recorder := newRecordingServer(t, http.StatusOK, `{"recipient_id":"123","message_id":"mid.1"}`)
	client := newTestClient(t, server.URL)

	if _, err := client.SendText(context.Background(), "123", "hello"); err != nil {
		t.Fatalf("SendText returned error: %v", err)
	}

	if got := recorder.last().query.Get("access_token"); got != "test-token" {
		t.Errorf("expected access_token query param %q, got %q", "test-token", got)
	}
}

func TestClient_VersionedPath(t *testing.T) {
	server, recorder := newRecordingServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, server.URL)

	if _, err := client.SendText(context.Background(), "123", "hello"); err != nil {
		t.Fatalf("SendText returned error: %v", err)
	}

	if got := recorder.last().path; got != "/v3.1/me/messages" {
		t.Errorf("expected path /v3.1/me/messages, got %q", got)
	}
}

func TestClient_ServerErrorYieldsTransportError(t *testing.T) {
	server, recorder := newRecordingServer(t, http.StatusInternalServerError, `oops`)
	client := newTestClient(t, server.URL)

	_, err := client.SendText(context.Background(), "123", "hello")
	if err == nil {
		t.Fatalf("expected error for 500 response, got nil")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T", err)
	}

	if recorder.count() != 1 {
		t.Errorf("expected exactly 1 request (no retry), got %d", recorder.count())
	}
}

func TestClient_TimeoutYieldsTransportErrorWithoutRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	client, err := New(environments.GraphConfig{
		BaseURL:     server.URL,
		APIVersion:  "v3.1",
		AccessToken: "test-token",
		Timeout:     50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.SendText(context.Background(), "123", "hello")
	if err == nil {
		t.Fatalf("expected timeout error, got nil")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T", err)
	}
	if transportErr.Unwrap() == nil {
		t.Errorf("expected TransportError to carry its cause")
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("expected exactly 1 attempt (no retry), got %d", got)
	}
}

func TestClient_CancelledContextYieldsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SendText(ctx, "123", "hello")
	if err == nil {
		t.Fatalf("expected error for cancelled context, got nil")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected error chain to contain context.Canceled, got %v", err)
	}
}
