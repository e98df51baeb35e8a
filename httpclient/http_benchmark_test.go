package httpclient

import (
	"strings"
	"testing"

	"github.com/wascc/actor-sdk-go/codec"
	"github.com/wascc/actor-sdk-go/hostmock"
	proto "github.com/wascc/actor-sdk-go/proto/http"
)

func BenchmarkHTTPClient(b *testing.B) {
	for _, c := range []codec.Codec{codec.CBOR, codec.Protobuf} {
		resp, _ := c.Marshal(&proto.Response{
			StatusCode: 200,
			Status:     "OK",
			Header:     map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`{"message":"success"}`),
		})

		mock, err := hostmock.New(hostmock.Config{
			ExpectedCapability: CapabilityID,
			ExpectedOperation:  OpPerformRequest,
			Response:           func() []byte { return resp },
		})
		if err != nil {
			b.Fatalf("Failed to create mock: %v", err)
		}

		client, err := New(Config{Codec: c, HostCall: mock.HostCall})
		if err != nil {
			b.Fatalf("Failed to create client: %v", err)
		}

		b.Run(c.Name()+"/GET", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := client.Get("http://example.com"); err != nil {
					b.Fatalf("Get failed: %v", err)
				}
			}
		})

		b.Run(c.Name()+"/POST", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := client.Post("http://example.com", "application/json", strings.NewReader(`{"a":1}`)); err != nil {
					b.Fatalf("Post failed: %v", err)
				}
			}
		})
	}
}
