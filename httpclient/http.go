package httpclient

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	wapc "github.com/wapc/wapc-guest-tinygo"
	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
	proto "github.com/wascc/actor-sdk-go/proto/http"
)

// CapabilityID routes host calls to the bound HTTP client provider.
const CapabilityID = "wascc:http_client"

// OpPerformRequest asks the provider to perform one outbound request.
const OpPerformRequest = "PerformRequest"

// Client provides an interface for making HTTP requests.
type Client interface {
	// Get issues a GET request to the specified URL.
	Get(url string) (*Response, error)

	// Post issues a POST request to the specified URL with the given content type and body.
	Post(url, contentType string, body io.Reader) (*Response, error)

	// Put issues a PUT request to the specified URL with the given content type and body.
	Put(url, contentType string, body io.Reader) (*Response, error)

	// Delete issues a DELETE request to the specified URL.
	Delete(url string) (*Response, error)

	// Do issues a custom HTTP request and returns the response.
	Do(req *Request) (*Response, error)
}

// Config configures the HTTP client behavior and host integration.
//
// SDKConfig supplies the binding used when making waPC host calls. If the
// Binding is empty, actor.DefaultBinding is used. HostCall allows tests to
// inject a custom host function; when nil, the client uses wapc.HostCall.
type Config struct {
	// SDKConfig provides the binding for host calls.
	SDKConfig actor.RuntimeConfig
	// Codec selects the wire format. Nil uses codec.Default.
	Codec codec.Codec
	// HostCall overrides the waPC host function used for requests.
	HostCall actor.HostCall
}

// HTTPClient implements Client using waPC host calls.
type HTTPClient struct {
	binding  string
	codec    codec.Codec
	hostCall actor.HostCall
}

// Ensure HTTPClient always satisfies the Client interface at compile time.
var _ Client = (*HTTPClient)(nil)

// Response represents an HTTP response returned by the host.
type Response struct {
	// Status is the HTTP status text (e.g., "OK").
	Status string
	// StatusCode is the numeric HTTP status code (e.g., 200).
	StatusCode int
	// Header contains response headers. Nil is treated as empty.
	Header http.Header
	// Body is the response payload stream. It may be nil for empty bodies.
	Body io.ReadCloser
}

// Request represents an HTTP request to be sent by the client.
type Request struct {
	// Method is the HTTP method (e.g., GET, POST).
	Method string
	// URL is the full request URL; Host must be non-empty.
	URL *url.URL
	// Header holds request headers. Nil is treated as empty.
	Header http.Header
	// Body is an optional request body stream.
	Body io.ReadCloser
}

var (
	// ErrInvalidURL indicates a malformed or unsupported URL.
	ErrInvalidURL = errors.New("invalid URL provided")

	// ErrReadBody wraps failures while reading a request body stream.
	ErrReadBody = errors.New("failed to read request body")

	// ErrInvalidMethod indicates an HTTP method not permitted by NewRequest.
	ErrInvalidMethod = errors.New("invalid HTTP method")

	// ErrNilRequest indicates Do received a nil Request pointer.
	ErrNilRequest = errors.New("request is nil")

	// ErrInvalidStatusCode indicates a status code outside the three digit range 100-999.
	ErrInvalidStatusCode = errors.New("invalid HTTP status code")
)

// validStatusCode reports whether code has three digits, the same bound
// net/http applies when writing a response header.
func validStatusCode(code int) bool {
	return code >= 100 && code <= 999
}

// New creates a new HTTP client with the provided configuration.
func New(config Config) (*HTTPClient, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &HTTPClient{
		binding:  config.SDKConfig.BindingOrDefault(),
		codec:    codec.OrDefault(config.Codec),
		hostCall: hostCall,
	}, nil
}

// Get issues a GET to the specified URL and returns the response.
func (c *HTTPClient) Get(urlStr string) (*Response, error) {
	return c.send(http.MethodGet, urlStr, "", nil)
}

// Post issues a POST to the URL with the provided contentType and body.
func (c *HTTPClient) Post(urlStr, contentType string, body io.Reader) (*Response, error) {
	return c.send(http.MethodPost, urlStr, contentType, body)
}

// Put issues a PUT to the URL with the provided contentType and body.
func (c *HTTPClient) Put(urlStr, contentType string, body io.Reader) (*Response, error) {
	return c.send(http.MethodPut, urlStr, contentType, body)
}

// Delete issues a DELETE to the specified URL.
func (c *HTTPClient) Delete(urlStr string) (*Response, error) {
	return c.send(http.MethodDelete, urlStr, "", nil)
}

// Do issues a custom request built with NewRequest and returns the response.
func (c *HTTPClient) Do(req *Request) (*Response, error) {
	if req == nil {
		return &Response{}, ErrNilRequest
	}

	// Validate the URL before touching the body stream.
	if req.URL == nil || req.URL.Host == "" {
		return &Response{}, ErrInvalidURL
	}

	var body []byte
	if req.Body != nil {
		defer func() { _ = req.Body.Close() }()
		var err error
		if body, err = io.ReadAll(req.Body); err != nil {
			return &Response{}, errors.Join(ErrReadBody, err)
		}
	}

	return c.perform(newWireRequest(req.Method, req.URL, req.Header, body))
}

func (c *HTTPClient) send(method, urlStr, contentType string, body io.Reader) (*Response, error) {
	u, err := parseURL(urlStr)
	if err != nil {
		return &Response{}, err
	}

	var bodyBytes []byte
	if body != nil {
		if bodyBytes, err = io.ReadAll(body); err != nil {
			return &Response{}, errors.Join(ErrReadBody, err)
		}
	}

	header := make(http.Header)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return c.perform(newWireRequest(method, u, header, bodyBytes))
}

// perform encodes req, performs the host call, and converts the decoded
// wire response into a Response.
func (c *HTTPClient) perform(req *proto.Request) (*Response, error) {
	var wr proto.Response
	if err := actor.Invoke(c.hostCall, c.codec, c.binding, CapabilityID, OpPerformRequest, req, &wr); err != nil {
		return &Response{}, err
	}

	code := int(wr.StatusCode)
	if !validStatusCode(code) {
		return &Response{}, errors.Join(actor.ErrHostResponseInvalid, fmt.Errorf("%w: %d", ErrInvalidStatusCode, wr.StatusCode))
	}
	out := &Response{
		Status:     wr.Status,
		StatusCode: code,
		Header:     make(http.Header, len(wr.Header)),
	}
	if out.Status == "" {
		out.Status = http.StatusText(code)
	}
	for name, value := range wr.Header {
		out.Header.Set(name, value)
	}
	if len(wr.Body) > 0 {
		out.Body = io.NopCloser(bytes.NewReader(wr.Body))
	}

	return out, nil
}

// newWireRequest flattens multi-valued headers with ", " since the wire
// header map holds one value per name.
func newWireRequest(method string, u *url.URL, header http.Header, body []byte) *proto.Request {
	base := *u
	base.RawQuery = ""
	base.ForceQuery = false
	base.Fragment = ""
	base.RawFragment = ""

	req := &proto.Request{
		Method:      method,
		Path:        base.String(),
		QueryString: u.RawQuery,
		Header:      make(map[string]string, len(header)),
		Body:        body,
	}
	for name, values := range header {
		req.Header[name] = strings.Join(values, ", ")
	}
	return req
}

func parseURL(urlStr string) (*url.URL, error) {
	u, err := url.Parse(urlStr)
	if err != nil || u == nil || u.Host == "" {
		return nil, ErrInvalidURL
	}
	return u, nil
}

// NewRequest creates a new Request object to use with the Do method.
//
// This function provides a way to create custom HTTP requests with
// specific methods, URLs and body content.
func NewRequest(method, urlString string, body io.Reader) (*Request, error) {
	// Validate the HTTP method first
	if !isValidMethod(method) {
		return nil, ErrInvalidMethod
	}

	parsedURL, err := parseURL(urlString)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method: method,
		URL:    parsedURL,
		Header: make(http.Header),
	}

	if body != nil {
		req.Body = io.NopCloser(body)
	}

	return req, nil
}

func isValidMethod(method string) bool {
	switch method {
	case http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodConnect,
		http.MethodOptions,
		http.MethodTrace:
		return true
	default:
		return false
	}
}
