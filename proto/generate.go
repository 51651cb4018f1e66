// Package proto holds the service definitions. Generated Go code lands in
// gen/proto and is produced by protoc, not committed.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative sds/v1/sds.proto
