package proto

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// UnimplementedRemoteStoreServer must be embedded by RemoteStoreServer
// implementations so that adding methods stays backward compatible.
type UnimplementedRemoteStoreServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedRemoteStoreServer) InsertOrUpdate(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, unimplemented("InsertOrUpdate")
}
func (UnimplementedRemoteStoreServer) InsertOrUpdateBatch(context.Context, *structpb.ListValue) (*emptypb.Empty, error) {
	return nil, unimplemented("InsertOrUpdateBatch")
}
func (UnimplementedRemoteStoreServer) Delete(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, unimplemented("Delete")
}
func (UnimplementedRemoteStoreServer) InsertTombstone(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, unimplemented("InsertTombstone")
}
func (UnimplementedRemoteStoreServer) DeleteTombstone(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, unimplemented("DeleteTombstone")
}
func (UnimplementedRemoteStoreServer) GetAllTombstones(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, unimplemented("GetAllTombstones")
}
func (UnimplementedRemoteStoreServer) GetAll(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, unimplemented("GetAll")
}
func (UnimplementedRemoteStoreServer) SearchByID(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, unimplemented("SearchByID")
}
func (UnimplementedRemoteStoreServer) WipeAll(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, unimplemented("WipeAll")
}
func (UnimplementedRemoteStoreServer) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedRemoteStoreServer) ImageUploadURL(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, unimplemented("ImageUploadURL")
}
func (UnimplementedRemoteStoreServer) ImageURL(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, unimplemented("ImageURL")
}
func (UnimplementedRemoteStoreServer) mustEmbedUnimplementedRemoteStoreServer() {}
