package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/recipediary/internal/client/models"
	"github.com/dmitrijs2005/recipediary/internal/client/response"
)

// report prints the message of st unless it is meant to stay silent, and
// reports whether st is a success.
func report[T any](w io.Writer, st response.DataState[T]) bool {
	if st.StateMessage != nil && st.StateMessage.Response.UIComponentType != response.UIComponentNone {
		resp := st.StateMessage.Response
		if resp.UIComponentType == response.UIComponentDialog && resp.MessageType == response.MessageError {
			fmt.Fprintf(w, "Error: %s\n", resp.Message)
		} else {
			fmt.Fprintln(w, resp.Message)
		}
	}
	return !st.IsError()
}

func renderRecipes(w io.Writer, list []*models.Recipe) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tUPDATED\tIMAGE")
	for _, r := range list {
		img := ""
		if r.ImageRef != "" {
			img = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, truncate(r.Title, 40), models.FormatTimestamp(r.UpdatedAt), img)
	}
	_ = tw.Flush()
}

func renderRecipe(w io.Writer, r *models.Recipe) {
	fmt.Fprintf(w, "ID:       %s\n", r.ID)
	fmt.Fprintf(w, "Title:    %s\n", r.Title)
	fmt.Fprintf(w, "Created:  %s\n", models.FormatTimestamp(r.CreatedAt))
	fmt.Fprintf(w, "Updated:  %s\n", models.FormatTimestamp(r.UpdatedAt))
	if r.ImageRef != "" {
		fmt.Fprintf(w, "Image:    %s\n", r.ImageRef)
	}
	fmt.Fprintf(w, "\nIngredients:\n%s\n", indent(r.Ingredients))
	fmt.Fprintf(w, "\nSteps:\n%s\n", indent(r.Steps))
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}

func indent(s string) string {
	if s == "" {
		return "  -"
	}
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
