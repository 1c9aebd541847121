package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/recipediary/internal/proto"
	"github.com/dmitrijs2005/recipediary/internal/server/models"
)

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func toModel(userID string, r *pb.Recipe) *models.Recipe {
	return &models.Recipe{
		UserID:      userID,
		ID:          r.ID,
		Title:       r.Title,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		ImageRef:    r.ImageRef,
		UpdatedAt:   fromMillis(r.UpdatedAt),
		CreatedAt:   fromMillis(r.CreatedAt),
	}
}

func toWire(r *models.Recipe) *pb.Recipe {
	return &pb.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		ImageRef:    r.ImageRef,
		UpdatedAt:   toMillis(r.UpdatedAt),
		CreatedAt:   toMillis(r.CreatedAt),
	}
}

func toWireList(rs []*models.Recipe) []*pb.Recipe {
	out := make([]*pb.Recipe, 0, len(rs))
	for _, r := range rs {
		out = append(out, toWire(r))
	}
	return out
}
