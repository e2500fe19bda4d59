// Package console implements the gRPC transport for the host console.
//
// The service is declared by hand on top of protobuf well-known wrapper
// types, so no generated code is needed. It adapts console commands, one-shot
// fixes and glove crafting to a provided business-service interface.
package console
