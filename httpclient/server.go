package httpclient

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
	proto "github.com/wascc/actor-sdk-go/proto/http"
)

// OpHandleRequest is the inbound operation an HTTP server provider uses to
// deliver a request to the actor.
const OpHandleRequest = "HandleRequest"

// ErrInvalidRequestPath is returned when an inbound request path cannot be parsed.
var ErrInvalidRequestPath = errors.New("invalid inbound request path")

// HandlerFunc answers one inbound HTTP request.
type HandlerFunc func(req *Request) (*Response, error)

// Handler adapts fn into an actor.Handler for OpHandleRequest. Payloads are
// decoded and responses encoded with c; a nil codec uses codec.Default.
func Handler(c codec.Codec, fn HandlerFunc) actor.Handler {
	c = codec.OrDefault(c)
	return func(payload []byte) ([]byte, error) {
		req, err := DecodeRequest(c, payload)
		if err != nil {
			return nil, err
		}
		resp, err := fn(req)
		if err != nil {
			return nil, err
		}
		return EncodeResponse(c, resp)
	}
}

// DecodeRequest decodes an inbound HandleRequest payload into a Request.
// The URL carries only the path and query the provider forwarded.
func DecodeRequest(c codec.Codec, payload []byte) (*Request, error) {
	var wr proto.Request
	if err := actor.Decode(codec.OrDefault(c), payload, &wr); err != nil {
		return nil, err
	}

	u, err := url.Parse(wr.Path)
	if err != nil {
		return nil, errors.Join(ErrInvalidRequestPath, err)
	}
	u.RawQuery = wr.QueryString

	req := &Request{
		Method: wr.Method,
		URL:    u,
		Header: make(http.Header, len(wr.Header)),
		Body:   io.NopCloser(bytes.NewReader(wr.Body)),
	}
	for name, value := range wr.Header {
		req.Header.Set(name, value)
	}
	return req, nil
}

// EncodeResponse encodes resp as the reply to a HandleRequest call. A nil
// resp encodes an empty 200 response, and an empty Status falls back to
// the standard status text. Status codes outside 100-999 are rejected with
// ErrInvalidStatusCode.
func EncodeResponse(c codec.Codec, resp *Response) ([]byte, error) {
	wr := &proto.Response{StatusCode: http.StatusOK, Status: http.StatusText(http.StatusOK)}
	if resp != nil {
		if !validStatusCode(resp.StatusCode) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidStatusCode, resp.StatusCode)
		}
		wr.StatusCode = uint32(resp.StatusCode)
		wr.Status = resp.Status
		if wr.Status == "" {
			wr.Status = http.StatusText(resp.StatusCode)
		}
		if len(resp.Header) > 0 {
			wr.Header = make(map[string]string, len(resp.Header))
			for name, values := range resp.Header {
				wr.Header[name] = strings.Join(values, ", ")
			}
		}
		if resp.Body != nil {
			defer func() { _ = resp.Body.Close() }()
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, errors.Join(ErrReadBody, err)
			}
			wr.Body = b
		}
	}

	b, err := codec.OrDefault(c).Marshal(wr)
	if err != nil {
		return nil, errors.Join(actor.ErrMarshalRequest, err)
	}
	return b, nil
}
