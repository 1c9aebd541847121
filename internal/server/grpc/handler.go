package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/recipediary/internal/common"
	pb "github.com/dmitrijs2005/recipediary/internal/proto"
	"github.com/dmitrijs2005/recipediary/internal/server/models"
	"github.com/dmitrijs2005/recipediary/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// toStatus maps service errors to gRPC status errors. The batch cap keeps
// its exact text so the client can recognise it.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrBatchTooLarge):
		return status.Error(codes.InvalidArgument, common.ErrBatchTooLarge.Error())
	case errors.Is(err, pb.ErrMalformedRecipe):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, services.ErrForeignImageKey):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func decodeRecipe(userID string, in *structpb.Struct) (*models.Recipe, error) {
	r, err := pb.RecipeFromStruct(in)
	if err != nil {
		return nil, err
	}
	return toModel(userID, r), nil
}

func (s *GRPCServer) InsertOrUpdate(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error) {
	userID := userIDFromContext(ctx)
	r, err := decodeRecipe(userID, in)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if err := s.recipes.InsertOrUpdate(ctx, userID, r); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) InsertOrUpdateBatch(ctx context.Context, in *structpb.ListValue) (*emptypb.Empty, error) {
	if len(in.GetValues()) > common.MaxRemoteBatchSize {
		return nil, s.toStatus(ctx, common.ErrBatchTooLarge)
	}

	userID := userIDFromContext(ctx)
	list, err := pb.RecipesFromList(in)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	rs := make([]*models.Recipe, 0, len(list))
	for _, r := range list {
		rs = append(rs, toModel(userID, r))
	}
	if err := s.recipes.InsertOrUpdateBatch(ctx, userID, rs); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Delete(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := s.recipes.Delete(ctx, userIDFromContext(ctx), in.GetValue()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) InsertTombstone(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error) {
	userID := userIDFromContext(ctx)
	r, err := decodeRecipe(userID, in)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if err := s.recipes.InsertTombstone(ctx, userID, r); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) DeleteTombstone(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := s.recipes.DeleteTombstone(ctx, userIDFromContext(ctx), in.GetValue()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetAllTombstones(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	rs, err := s.recipes.GetAllTombstones(ctx, userIDFromContext(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return pb.RecipesToList(toWireList(rs)), nil
}

func (s *GRPCServer) GetAll(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	rs, err := s.recipes.GetAll(ctx, userIDFromContext(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return pb.RecipesToList(toWireList(rs)), nil
}

func (s *GRPCServer) SearchByID(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	r, err := s.recipes.SearchByID(ctx, userIDFromContext(ctx), in.GetValue())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toWire(r).ToStruct(), nil
}

func (s *GRPCServer) WipeAll(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	userID := userIDFromContext(ctx)
	if err := s.recipes.WipeAll(ctx, userID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "wiped all recipes", "user_id", userID)
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("OK"), nil
}

func (s *GRPCServer) ImageUploadURL(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	key, url, err := s.images.UploadURL(ctx, userIDFromContext(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return (&pb.ImageUpload{Key: key, URL: url}).ToStruct(), nil
}

func (s *GRPCServer) ImageURL(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	url, err := s.images.DownloadURL(ctx, userIDFromContext(ctx), in.GetValue())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return wrapperspb.String(url), nil
}
