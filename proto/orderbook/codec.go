package orderbook

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// wireCodec marshals RPC messages as JSON. The request/response structs in
// this package are hand-maintained stand-ins for generated protobuf types
// (protoc is not run in this build) and implement none of Reset/String/
// ProtoReflect, so grpc's built-in "proto" codec cannot marshal them: it
// type-asserts every message to proto.Message and fails at call time.
//
// Registering wireCodec under the same name the built-in codec uses
// ("proto") replaces it process-wide. See RegisterCodec for why that
// registration happens in main rather than in this file's init.
type wireCodec struct{}

func (wireCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (wireCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (wireCodec) Name() string { return "proto" }

// RegisterCodec installs wireCodec as the process-wide "proto" codec. It
// must be called from main, not from this package's init: grpc's own
// encoding/proto package registers the real proto codec under the same
// name from its own init, and init order between unrelated packages is
// not something this package can race against safely. Every init across
// every imported package has already run by the time main starts, so
// calling this first thing in main deterministically wins.
func RegisterCodec() {
	encoding.RegisterCodec(wireCodec{})
}
