// Package tkmpb contains the protobuf-generated Go bindings for the
// TaskMonitor wire protocol: the length-prefixed Envelope framing plus the
// typed payloads exchanged between the monitor and its collectors.
//
// To regenerate the Go source files from proto/taskmonitor.proto, run from
// the repository root:
//
//	go generate ./proto/...
//
// Requires protoc and protoc-gen-go on PATH:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@latest
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative taskmonitor.proto
package tkmpb
