// Package render draws a recipe list view state for a terminal.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mwhite7112/woodpantry-recipefetch/internal/listing"
)

// EmptyMessage is shown when a fetch succeeds with no recipes.
const EmptyMessage = "No recipes available. Pull to refresh or try again later."

// Text writes vs to w: a status line for loading, empty and failed states, and
// one aligned row per recipe. Rows kept across a failed refresh are still drawn.
func Text(w io.Writer, vs listing.ViewState) error {
	switch vs.Status {
	case listing.StatusLoading:
		if len(vs.Recipes) == 0 {
			_, err := fmt.Fprintln(w, "Loading recipes...")
			return err
		}
	case listing.StatusEmpty:
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	case listing.StatusFailed:
		if _, err := fmt.Fprintf(w, "Error: %s\n", vs.Message()); err != nil {
			return err
		}
		if len(vs.Recipes) == 0 {
			return nil
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCUISINE\tNAME\tTHUMBNAIL")
	for i, r := range vs.Recipes {
		thumb := r.Thumbnail()
		if thumb == "" {
			thumb = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, r.Cuisine, r.Name, thumb)
	}
	return tw.Flush()
}
