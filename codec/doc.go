/*
Package codec holds the two wire formats understood by waSCC capability
providers.

Both formats carry the message types generated from the repository's proto
directory. CBOR is compact and self-describing: messages become maps keyed by
their snake_case field names. Protobuf is the schema-defined binary encoding.
Pick one per deployment with each client's Config.Codec.
*/
package codec
