// Package ledgerv1 holds the protobuf and gRPC bindings generated from
// api/ledger/v1/accounts.proto.
package ledgerv1

//go:generate protoc -I ../../../../../api --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative ledger/v1/accounts.proto
