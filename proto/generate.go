// Package proto holds the executor task service definition. Generated code
// is produced by protoc and not committed.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative executor.proto
