package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/dmitrijs2005/recipediary/internal/client/result"
	"github.com/dmitrijs2005/recipediary/internal/client/services"
	"github.com/dmitrijs2005/recipediary/internal/netx"
)

// uploadFn is a test seam for netx.UploadToPresignedURL.
var uploadFn = netx.UploadToPresignedURL

type upload struct {
	key string
	url string
}

// Image uploads a file to object storage through a presigned URL and stores
// the object key on the recipe.
func (a *App) Image(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return a.usage("image <id> <file>")
	}
	r, err := a.load(ctx, args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	target := result.FromRemote(ctx, a.policy, func(ctx context.Context) (upload, error) {
		key, url, err := a.remote.ImageUploadURL(ctx)
		return upload{key: key, url: url}, err
	})
	if !target.OK() {
		fmt.Fprintln(a.out, "Error:", target.Message())
		return target.Err()
	}

	if err := uploadFn(ctx, target.Value().url, http.DetectContentType(data), data); err != nil {
		a.logger.Error(ctx, "image upload failed", "id", r.ID, "error", err)
		fmt.Fprintln(a.out, "Error: image upload failed")
		return err
	}

	edited := r.Clone()
	edited.ImageRef = target.Value().key
	st := a.recipes.Update(ctx, edited, services.UpdateRecipeEvent{})
	if !report(a.out, st) {
		return errors.New(st.Message())
	}
	return nil
}

// ImageURL prints a temporary download link for the recipe image.
func (a *App) ImageURL(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("imageurl <id>")
	}
	r, err := a.load(ctx, args[0])
	if err != nil {
		return err
	}
	if r.ImageRef == "" {
		fmt.Fprintln(a.out, "Recipe has no image.")
		return nil
	}

	link := result.FromRemote(ctx, a.policy, func(ctx context.Context) (string, error) {
		return a.remote.ImageURL(ctx, r.ImageRef)
	})
	if !link.OK() {
		fmt.Fprintln(a.out, "Error:", link.Message())
		return link.Err()
	}
	fmt.Fprintln(a.out, link.Value())
	return nil
}
