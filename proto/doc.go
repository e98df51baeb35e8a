// Package proto holds the protobuf schemas for the waSCC capability
// contracts. Each subdirectory carries one .proto source and the Go bindings
// generated from it.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative events/events.proto extras/extras.proto http/http.proto keyvalue/keyvalue.proto logging/logging.proto messaging/messaging.proto objectstore/objectstore.proto
