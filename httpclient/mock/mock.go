package mock

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/wascc/actor-sdk-go/httpclient"
)

// MockClient implements httpclient.Client with configurable responses and
// call recording.
//
// revive:disable:exported // Name mirrors package for discoverability; stutter is acceptable here.
type MockClient struct {
	mu sync.Mutex

	// responses maps "METHOD URL" keys to predefined responses.
	responses map[string]*Response

	// DefaultResponse is returned when no method/URL-specific response exists.
	DefaultResponse *Response

	calls []Call
}

// revive:enable:exported

// Response describes a synthetic response returned by the mock.
type Response struct {
	// StatusCode is the HTTP status code to return.
	StatusCode int
	// Status is the status text. Empty falls back to http.StatusText.
	Status string
	// Body is the raw payload returned to callers.
	Body []byte
	// Header holds headers to include in the response.
	Header http.Header
	// Error, when set, is returned instead of a response.
	Error error
}

// Call captures a single request issued through the mock.
type Call struct {
	Method string
	URL    string
	Body   []byte
	Header http.Header
}

// Config controls construction of a MockClient.
type Config struct {
	// DefaultResponse is used when no specific response has been configured.
	DefaultResponse *Response
}

// Compile-time check: ensure MockClient implements httpclient.Client.
var _ httpclient.Client = (*MockClient)(nil)

// New creates a new mock HTTP client. Without a DefaultResponse it answers
// 200 OK with an empty JSON object.
func New(config Config) *MockClient {
	def := config.DefaultResponse
	if def == nil {
		def = &Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}
	}

	return &MockClient{
		responses:       make(map[string]*Response),
		DefaultResponse: def,
	}
}

// On starts configuration of a response for a given method and URL.
func (m *MockClient) On(method, url string) *ResponseBuilder {
	return &ResponseBuilder{client: m, key: method + " " + url}
}

// Calls returns a copy of the recorded requests.
func (m *MockClient) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// Get implements httpclient.Client.
func (m *MockClient) Get(url string) (*httpclient.Response, error) {
	return m.handle(http.MethodGet, url, nil, nil)
}

// Post implements httpclient.Client.
func (m *MockClient) Post(url, contentType string, body io.Reader) (*httpclient.Response, error) {
	return m.handle(http.MethodPost, url, http.Header{"Content-Type": {contentType}}, body)
}

// Put implements httpclient.Client.
func (m *MockClient) Put(url, contentType string, body io.Reader) (*httpclient.Response, error) {
	return m.handle(http.MethodPut, url, http.Header{"Content-Type": {contentType}}, body)
}

// Delete implements httpclient.Client.
func (m *MockClient) Delete(url string) (*httpclient.Response, error) {
	return m.handle(http.MethodDelete, url, nil, nil)
}

// Do implements httpclient.Client.
func (m *MockClient) Do(req *httpclient.Request) (*httpclient.Response, error) {
	if req == nil {
		return nil, httpclient.ErrNilRequest
	}
	if req.URL == nil {
		return nil, httpclient.ErrInvalidURL
	}

	var body io.Reader
	if req.Body != nil {
		defer func() { _ = req.Body.Close() }()
		body = req.Body
	}
	return m.handle(req.Method, req.URL.String(), req.Header.Clone(), body)
}

func (m *MockClient) handle(method, url string, header http.Header, body io.Reader) (*httpclient.Response, error) {
	var b []byte
	if body != nil {
		var err error
		if b, err = io.ReadAll(body); err != nil {
			return nil, fmt.Errorf("%w: %w", httpclient.ErrReadBody, err)
		}
	}

	m.mu.Lock()
	m.calls = append(m.calls, Call{Method: method, URL: url, Body: b, Header: header})
	resp, ok := m.responses[method+" "+url]
	if !ok {
		resp = m.DefaultResponse
	}
	m.mu.Unlock()

	if resp.Error != nil {
		return nil, resp.Error
	}
	return toResponse(resp), nil
}

func toResponse(r *Response) *httpclient.Response {
	status := r.Status
	if status == "" {
		status = http.StatusText(r.StatusCode)
	}

	header := r.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}

	return &httpclient.Response{
		StatusCode: r.StatusCode,
		Status:     status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(r.Body)),
	}
}

// ResponseBuilder configures the response for one method and URL.
type ResponseBuilder struct {
	client *MockClient
	key    string
}

// Return sets the response for the configured method and URL.
func (r *ResponseBuilder) Return(response *Response) *MockClient {
	r.client.mu.Lock()
	defer r.client.mu.Unlock()
	r.client.responses[r.key] = response
	return r.client
}

// ReturnError makes the configured method and URL fail with err.
func (r *ResponseBuilder) ReturnError(err error) *MockClient {
	return r.Return(&Response{Error: err})
}
