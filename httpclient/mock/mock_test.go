package mock

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/wascc/actor-sdk-go/httpclient"
)

func TestMockClient(t *testing.T) {
	t.Run("default response", func(t *testing.T) {
		client := New(Config{})

		resp, err := client.Get("https://example.com")
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if resp.StatusCode != http.StatusOK || resp.Status != "OK" {
			t.Errorf("unexpected status %d %q", resp.StatusCode, resp.Status)
		}
		body, _ := io.ReadAll(resp.Body)
		if string(body) != `{}` {
			t.Errorf("unexpected body %q", body)
		}
	})

	t.Run("custom default", func(t *testing.T) {
		client := New(Config{DefaultResponse: &Response{StatusCode: http.StatusTeapot}})

		resp, _ := client.Delete("https://example.com/x")
		if resp.StatusCode != http.StatusTeapot || resp.Status != "I'm a teapot" {
			t.Errorf("unexpected status %d %q", resp.StatusCode, resp.Status)
		}
		if resp.Header == nil {
			t.Errorf("expected non-nil header")
		}
	})

	t.Run("On and Return", func(t *testing.T) {
		client := New(Config{})
		client.On(http.MethodGet, "https://example.com/api").Return(&Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"data":"test"}`),
			Header:     http.Header{"X-Test": {"1"}},
		})

		resp, err := client.Get("https://example.com/api")
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		if string(body) != `{"data":"test"}` {
			t.Errorf("unexpected body %q", body)
		}
		if resp.Header.Get("X-Test") != "1" {
			t.Errorf("expected X-Test header")
		}

		// Other URLs still use the default.
		resp, _ = client.Get("https://example.com/other")
		body, _ = io.ReadAll(resp.Body)
		if string(body) != `{}` {
			t.Errorf("expected default body, got %q", body)
		}
	})

	t.Run("ReturnError", func(t *testing.T) {
		client := New(Config{})
		expectedErr := errors.New("connection refused")
		client.On(http.MethodPost, "https://example.com/api").ReturnError(expectedErr)

		_, err := client.Post("https://example.com/api", "application/json", strings.NewReader(`{}`))
		if !errors.Is(err, expectedErr) {
			t.Errorf("expected %v, got %v", expectedErr, err)
		}
	})

	t.Run("records calls", func(t *testing.T) {
		client := New(Config{})

		_, _ = client.Get("https://example.com/a")
		_, _ = client.Put("https://example.com/b", "text/plain", strings.NewReader("put-body"))

		req, _ := httpclient.NewRequest(http.MethodPatch, "https://example.com/c", strings.NewReader("patch"))
		req.Header.Set("X-Custom", "v")
		_, _ = client.Do(req)

		calls := client.Calls()
		if len(calls) != 3 {
			t.Fatalf("expected 3 calls, got %d", len(calls))
		}
		if calls[0].Method != http.MethodGet || calls[0].URL != "https://example.com/a" {
			t.Errorf("unexpected first call %+v", calls[0])
		}
		if string(calls[1].Body) != "put-body" || calls[1].Header.Get("Content-Type") != "text/plain" {
			t.Errorf("unexpected second call %+v", calls[1])
		}
		if calls[2].Method != http.MethodPatch || calls[2].Header.Get("X-Custom") != "v" || string(calls[2].Body) != "patch" {
			t.Errorf("unexpected third call %+v", calls[2])
		}
	})

	t.Run("Do validation", func(t *testing.T) {
		client := New(Config{})
		if _, err := client.Do(nil); !errors.Is(err, httpclient.ErrNilRequest) {
			t.Errorf("expected ErrNilRequest, got %v", err)
		}
		if _, err := client.Do(&httpclient.Request{Method: http.MethodGet}); !errors.Is(err, httpclient.ErrInvalidURL) {
			t.Errorf("expected ErrInvalidURL, got %v", err)
		}
	})
}
