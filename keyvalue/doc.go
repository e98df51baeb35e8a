/*
Package keyvalue provides a client for the waSCC key-value capability
(wascc:keyvalue) from WebAssembly actors.

The client encodes requests with the configured codec, forwards them to the
host with waPC, and decodes the typed response. Zero-value Config options fall
back to actor.DefaultBinding, codec.Default, and the waPC host call.

Plain values, atomic counters, lists, and sets are all supported. Range
indices, expiry enforcement, and set algebra are performed by the provider;
the client only carries the request across the boundary.

Tests can inject host behaviour with Config.HostCall, or depend on the
Client interface and use the in-memory implementation in keyvalue/mock.
*/
package keyvalue
