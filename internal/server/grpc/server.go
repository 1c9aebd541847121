// Package grpc exposes the recipe store over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/recipediary/internal/logging"
	pb "github.com/dmitrijs2005/recipediary/internal/proto"
	"github.com/dmitrijs2005/recipediary/internal/server/models"
	"google.golang.org/grpc"
)

type recipeService interface {
	InsertOrUpdate(ctx context.Context, userID string, r *models.Recipe) error
	InsertOrUpdateBatch(ctx context.Context, userID string, rs []*models.Recipe) error
	Delete(ctx context.Context, userID, id string) error
	InsertTombstone(ctx context.Context, userID string, r *models.Recipe) error
	DeleteTombstone(ctx context.Context, userID, id string) error
	GetAllTombstones(ctx context.Context, userID string) ([]*models.Recipe, error)
	GetAll(ctx context.Context, userID string) ([]*models.Recipe, error)
	SearchByID(ctx context.Context, userID, id string) (*models.Recipe, error)
	WipeAll(ctx context.Context, userID string) error
}

type imageService interface {
	UploadURL(ctx context.Context, userID string) (key string, url string, err error)
	DownloadURL(ctx context.Context, userID, key string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedRemoteStoreServer
	address string
	recipes recipeService
	images  imageService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, rs recipeService, is imageService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		recipes: rs,
		images:  is,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.userIDInterceptor))
	pb.RegisterRemoteStoreServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
