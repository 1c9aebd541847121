package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipediary/internal/client/models"
	"github.com/dmitrijs2005/recipediary/internal/common"
	pb "github.com/dmitrijs2005/recipediary/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	endpointURL string
	userID      string
	conn        *grpc.ClientConn
	client      pb.RemoteStoreClient
}

func withUserID(ctx context.Context, userID string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.UserIDHeaderName, userID)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) userIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withUserID(ctx, c.userID), method, req, reply, cc, opts...)
}

// NewGRPCClient creates a lazily-connecting client for endpointURL. Extra
// dial options are appended after the defaults.
func NewGRPCClient(endpointURL, userID string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, userID: userID}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.userIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewRemoteStoreClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func toWire(r *models.Recipe) *pb.Recipe {
	return &pb.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		ImageRef:    r.ImageRef,
		UpdatedAt:   models.ToMillis(r.UpdatedAt),
		CreatedAt:   models.ToMillis(r.CreatedAt),
	}
}

func fromWire(r *pb.Recipe) *models.Recipe {
	return &models.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		ImageRef:    r.ImageRef,
		UpdatedAt:   models.FromMillis(r.UpdatedAt),
		CreatedAt:   models.FromMillis(r.CreatedAt),
	}
}

func fromWireList(rs []*pb.Recipe) []*models.Recipe {
	out := make([]*models.Recipe, 0, len(rs))
	for _, r := range rs {
		out = append(out, fromWire(r))
	}
	return out
}

func (c *GRPCClient) InsertOrUpdate(ctx context.Context, r *models.Recipe) error {
	_, err := c.client.InsertOrUpdate(ctx, toWire(r).ToStruct())
	return c.mapError(err)
}

func (c *GRPCClient) InsertOrUpdateBatch(ctx context.Context, rs []*models.Recipe) error {
	if len(rs) > common.MaxRemoteBatchSize {
		return fmt.Errorf("%w: %d recipes, limit is %d", common.ErrBatchTooLarge, len(rs), common.MaxRemoteBatchSize)
	}
	if len(rs) == 0 {
		return nil
	}

	wire := make([]*pb.Recipe, 0, len(rs))
	for _, r := range rs {
		wire = append(wire, toWire(r))
	}
	_, err := c.client.InsertOrUpdateBatch(ctx, pb.RecipesToList(wire))
	return c.mapError(err)
}

func (c *GRPCClient) Delete(ctx context.Context, id string) error {
	_, err := c.client.Delete(ctx, wrapperspb.String(id))
	return c.mapError(err)
}

func (c *GRPCClient) InsertTombstone(ctx context.Context, r *models.Recipe) error {
	_, err := c.client.InsertTombstone(ctx, toWire(r).ToStruct())
	return c.mapError(err)
}

func (c *GRPCClient) DeleteTombstone(ctx context.Context, id string) error {
	_, err := c.client.DeleteTombstone(ctx, wrapperspb.String(id))
	return c.mapError(err)
}

func (c *GRPCClient) GetAllTombstones(ctx context.Context) ([]*models.Recipe, error) {
	resp, err := c.client.GetAllTombstones(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, c.mapError(err)
	}
	list, err := pb.RecipesFromList(resp)
	if err != nil {
		return nil, err
	}
	return fromWireList(list), nil
}

func (c *GRPCClient) GetAll(ctx context.Context) ([]*models.Recipe, error) {
	resp, err := c.client.GetAll(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, c.mapError(err)
	}
	list, err := pb.RecipesFromList(resp)
	if err != nil {
		return nil, err
	}
	return fromWireList(list), nil
}

func (c *GRPCClient) SearchByID(ctx context.Context, id string) (*models.Recipe, error) {
	resp, err := c.client.SearchByID(ctx, wrapperspb.String(id))
	if err != nil {
		err = c.mapError(err)
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	r, err := pb.RecipeFromStruct(resp)
	if err != nil {
		return nil, err
	}
	return fromWire(r), nil
}

func (c *GRPCClient) WipeAll(ctx context.Context) error {
	_, err := c.client.WipeAll(ctx, &emptypb.Empty{})
	return c.mapError(err)
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return c.mapError(err)
	}
	if resp.GetValue() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) ImageUploadURL(ctx context.Context) (string, string, error) {
	resp, err := c.client.ImageUploadURL(ctx, &emptypb.Empty{})
	if err != nil {
		return "", "", c.mapError(err)
	}
	u, err := pb.ImageUploadFromStruct(resp)
	if err != nil {
		return "", "", err
	}
	return u.Key, u.URL, nil
}

func (c *GRPCClient) ImageURL(ctx context.Context, key string) (string, error) {
	resp, err := c.client.ImageURL(ctx, wrapperspb.String(key))
	if err != nil {
		return "", c.mapError(err)
	}
	return resp.GetValue(), nil
}

func (c *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unavailable:
		return ErrUnavailable
	case codes.DeadlineExceeded:
		return ErrTimeout
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, st.Message())
	case codes.InvalidArgument:
		if st.Message() == common.ErrBatchTooLarge.Error() {
			return common.ErrBatchTooLarge
		}
	}
	return &RemoteError{Code: httpStatus(st.Code()), Message: st.Message()}
}
