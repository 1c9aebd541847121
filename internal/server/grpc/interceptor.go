package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/common"
	pb "github.com/dmitrijs2005/recipediary/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// userIDInterceptor scopes every call except Ping to the user named in the
// user_id metadata header.
func (s *GRPCServer) userIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if info.FullMethod == pb.RemoteStore_Ping_FullMethodName {
		return handler(ctx, req)
	}

	var userID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.UserIDHeaderName); len(values) > 0 {
			userID = values[0]
		}
	}
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, common.ErrMissingUserID.Error())
	}

	return handler(context.WithValue(ctx, userIDKey, userID), req)
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "rpc failed", append(args, "error", err)...)
	} else {
		s.logger.Debug(ctx, "rpc", args...)
	}
	return resp, err
}
