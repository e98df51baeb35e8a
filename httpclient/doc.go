/*
Package httpclient provides outbound HTTP for waSCC actors along with the
helpers an actor needs to answer requests from an HTTP server provider.

Outbound requests are flattened into a wire Request (proto/http) and sent to the bound
"wascc:http_client" provider with the PerformRequest operation. The Client
interface offers Get, Post, Put and Delete shortcuts plus Do for requests
built with NewRequest. Multi-valued headers are joined with ", " because the
wire record carries one value per header name.

Inbound requests arrive through the HandleRequest operation. Handler adapts a
HandlerFunc into an actor.Handler so it can be registered with actor.New.

Errors use sentinel values joined with the underlying cause and can be
checked with errors.Is.
*/
package httpclient
