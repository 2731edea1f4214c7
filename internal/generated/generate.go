// Package generated содержит код, порожденный из контрактов в api/.
package generated

//go:generate go run github.com/yoheimuta/protolint/cmd/protolint lint -config_path=../../.protolint.yaml ../../api/proto
//go:generate protoc --proto_path=../../api/proto --go_out=. --go_opt=module=dispatch/internal/generated --go-grpc_out=. --go-grpc_opt=module=dispatch/internal/generated maps/v1/maps.proto
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -config ../../api/oapi-codegen.yaml ../../api/openapi.yaml
