package workflow

import (
	"context"
	"fmt"
	"os"

	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/document-context/pkg/encoding"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/go-agents/pkg/agent"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/leasewatch/leasewatch/pkg/formatting"
)

// ExtractNode returns a state node that transcribes lease terms from
// each page with bounded errgroup concurrency. Each goroutine creates
// its own agent, encodes the page image to a data URI, and sends it to
// the vision model. Pages are read independently; reconciliation is
// deferred to the merge node.
func ExtractNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		pages, err := extractPagesState(s)
		if err != nil {
			return s, fmt.Errorf("extract: %w", err)
		}

		if err := extractPages(ctx, rt, pages); err != nil {
			return s, fmt.Errorf("extract: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "extract node complete",
			"page_count", len(pages),
		)

		s = s.Set(KeyPages, pages)
		return s, nil
	})
}

func extractPagesState(s state.State) ([]Page, error) {
	val, ok := s.Get(KeyPages)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrExtractFailed, KeyPages)
	}

	pages, ok := val.([]Page)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not []Page", ErrExtractFailed, KeyPages)
	}

	return pages, nil
}

func extractPages(ctx context.Context, rt *Runtime, pages []Page) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(pages)))

	for i := range pages {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			a, err := agent.New(&rt.Agent)
			if err != nil {
				return fmt.Errorf("page %d: create agent: %w", i+1, err)
			}

			dataURI, err := encodePageImage(pages[i].ImagePath)
			if err != nil {
				return fmt.Errorf("page %d: %w", i+1, err)
			}

			resp, err := a.Vision(gctx, extractionPrompt, []string{dataURI})
			if err != nil {
				return fmt.Errorf("page %d: vision call: %w", i+1, err)
			}

			fields, err := formatting.Parse[LeaseFields](resp.Content())
			if err != nil {
				return fmt.Errorf("page %d: parse response: %w", i+1, err)
			}

			pages[i].Fields = fields
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}

	return nil
}

func encodePageImage(imagePath string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	dataURI, err := encoding.EncodeImageDataURI(data, document.PNG)
	if err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	return dataURI, nil
}
