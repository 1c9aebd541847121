// Package proto defines the RemoteStore gRPC service.
//
// The service is described by hand instead of protoc output: every message is
// a protobuf well-known type (structpb.Struct, structpb.ListValue,
// wrapperspb.StringValue, emptypb.Empty), so no generated message code is
// needed. Record payloads are converted with the helpers in recipe.go.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "recipediary.RemoteStore"

const (
	RemoteStore_InsertOrUpdate_FullMethodName      = "/recipediary.RemoteStore/InsertOrUpdate"
	RemoteStore_InsertOrUpdateBatch_FullMethodName = "/recipediary.RemoteStore/InsertOrUpdateBatch"
	RemoteStore_Delete_FullMethodName              = "/recipediary.RemoteStore/Delete"
	RemoteStore_InsertTombstone_FullMethodName     = "/recipediary.RemoteStore/InsertTombstone"
	RemoteStore_DeleteTombstone_FullMethodName     = "/recipediary.RemoteStore/DeleteTombstone"
	RemoteStore_GetAllTombstones_FullMethodName    = "/recipediary.RemoteStore/GetAllTombstones"
	RemoteStore_GetAll_FullMethodName              = "/recipediary.RemoteStore/GetAll"
	RemoteStore_SearchByID_FullMethodName          = "/recipediary.RemoteStore/SearchByID"
	RemoteStore_WipeAll_FullMethodName             = "/recipediary.RemoteStore/WipeAll"
	RemoteStore_Ping_FullMethodName                = "/recipediary.RemoteStore/Ping"
	RemoteStore_ImageUploadURL_FullMethodName      = "/recipediary.RemoteStore/ImageUploadURL"
	RemoteStore_ImageURL_FullMethodName            = "/recipediary.RemoteStore/ImageURL"
)

// RemoteStoreClient is the client API for the RemoteStore service.
type RemoteStoreClient interface {
	InsertOrUpdate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	InsertOrUpdateBatch(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	InsertTombstone(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteTombstone(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetAllTombstones(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetAll(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	// SearchByID fails with codes.NotFound when the record does not exist.
	SearchByID(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	WipeAll(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	ImageUploadURL(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	ImageURL(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type remoteStoreClient struct {
	cc grpc.ClientConnInterface
}

func NewRemoteStoreClient(cc grpc.ClientConnInterface) RemoteStoreClient {
	return &remoteStoreClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *remoteStoreClient) InsertOrUpdate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, RemoteStore_InsertOrUpdate_FullMethodName, in, opts)
}

func (c *remoteStoreClient) InsertOrUpdateBatch(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, RemoteStore_InsertOrUpdateBatch_FullMethodName, in, opts)
}

func (c *remoteStoreClient) Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, RemoteStore_Delete_FullMethodName, in, opts)
}

func (c *remoteStoreClient) InsertTombstone(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, RemoteStore_InsertTombstone_FullMethodName, in, opts)
}

func (c *remoteStoreClient) DeleteTombstone(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, RemoteStore_DeleteTombstone_FullMethodName, in, opts)
}

func (c *remoteStoreClient) GetAllTombstones(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke[structpb.ListValue](ctx, c.cc, RemoteStore_GetAllTombstones_FullMethodName, in, opts)
}

func (c *remoteStoreClient) GetAll(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke[structpb.ListValue](ctx, c.cc, RemoteStore_GetAll_FullMethodName, in, opts)
}

func (c *remoteStoreClient) SearchByID(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, RemoteStore_SearchByID_FullMethodName, in, opts)
}

func (c *remoteStoreClient) WipeAll(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, RemoteStore_WipeAll_FullMethodName, in, opts)
}

func (c *remoteStoreClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, RemoteStore_Ping_FullMethodName, in, opts)
}

func (c *remoteStoreClient) ImageUploadURL(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, RemoteStore_ImageUploadURL_FullMethodName, in, opts)
}

func (c *remoteStoreClient) ImageURL(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, RemoteStore_ImageURL_FullMethodName, in, opts)
}

// RemoteStoreServer is the server API for the RemoteStore service.
// Implementations must embed UnimplementedRemoteStoreServer.
type RemoteStoreServer interface {
	InsertOrUpdate(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	InsertOrUpdateBatch(context.Context, *structpb.ListValue) (*emptypb.Empty, error)
	Delete(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	InsertTombstone(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	DeleteTombstone(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	GetAllTombstones(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetAll(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	SearchByID(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	WipeAll(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	ImageUploadURL(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ImageURL(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	mustEmbedUnimplementedRemoteStoreServer()
}

func RegisterRemoteStoreServer(s grpc.ServiceRegistrar, srv RemoteStoreServer) {
	s.RegisterService(&RemoteStore_ServiceDesc, srv)
}

// unary builds a MethodDesc that decodes Req, routes it through the server
// interceptor chain and dispatches to call.
func unary[Req any, Resp any](name string, call func(RemoteStoreServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(RemoteStoreServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*Req))
			})
		},
	}
}

var RemoteStore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RemoteStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("InsertOrUpdate", RemoteStoreServer.InsertOrUpdate),
		unary("InsertOrUpdateBatch", RemoteStoreServer.InsertOrUpdateBatch),
		unary("Delete", RemoteStoreServer.Delete),
		unary("InsertTombstone", RemoteStoreServer.InsertTombstone),
		unary("DeleteTombstone", RemoteStoreServer.DeleteTombstone),
		unary("GetAllTombstones", RemoteStoreServer.GetAllTombstones),
		unary("GetAll", RemoteStoreServer.GetAll),
		unary("SearchByID", RemoteStoreServer.SearchByID),
		unary("WipeAll", RemoteStoreServer.WipeAll),
		unary("Ping", RemoteStoreServer.Ping),
		unary("ImageUploadURL", RemoteStoreServer.ImageUploadURL),
		unary("ImageURL", RemoteStoreServer.ImageURL),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "recipediary/remote_store",
}
