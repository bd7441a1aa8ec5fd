package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// MergeNode returns a state node that folds per-page field sets into a
// single LeaseFields in page order. The first page carrying a value
// wins; later pages only fill gaps.
func MergeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		pages, err := extractPagesState(s)
		if err != nil {
			return s, fmt.Errorf("merge: %w", err)
		}

		var fields LeaseFields
		for _, page := range pages {
			fields.Merge(page.Fields)
		}

		if fields.Empty() {
			rt.Logger.WarnContext(ctx, "no lease terms recognized in any page")
		}

		rt.Logger.InfoContext(
			ctx, "merge node complete",
			"page_count", len(pages),
		)

		s = s.Set(KeyFields, fields)
		return s, nil
	})
}
