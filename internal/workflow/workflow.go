package workflow

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// Execute runs the extraction workflow for a single document. It
// creates a temp directory for page images (cleaned up via defer),
// builds the state graph (init → extract → merge), executes it, and
// extracts the Result from the final state.
func Execute(ctx context.Context, rt *Runtime, documentID uuid.UUID) (*Result, error) {
	tempDir, err := os.MkdirTemp("", "leasewatch-extract-*")
	if err != nil {
		return nil, fmt.Errorf("create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyDocumentID, documentID)
	initialState = initialState.Set(KeyTempDir, tempDir)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("leasewatch-extract")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("init", InitNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("extract", ExtractNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("merge", MergeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("init", "extract", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("extract", "merge", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("init"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("merge"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*Result, error) {
	fieldsVal, ok := s.Get(KeyFields)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyFields)
	}

	fields, ok := fieldsVal.(LeaseFields)
	if !ok {
		return nil, fmt.Errorf("%s is not LeaseFields", KeyFields)
	}

	docIDVal, ok := s.Get(KeyDocumentID)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyDocumentID)
	}

	documentID, ok := docIDVal.(uuid.UUID)
	if !ok {
		return nil, fmt.Errorf("%s is not uuid.UUID", KeyDocumentID)
	}

	filenameVal, ok := s.Get(KeyFilename)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyFilename)
	}

	filename, ok := filenameVal.(string)
	if !ok {
		return nil, fmt.Errorf("%s is not string", KeyFilename)
	}

	pagesVal, ok := s.Get(KeyPages)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyPages)
	}

	pages, ok := pagesVal.([]Page)
	if !ok {
		return nil, fmt.Errorf("%s is not []Page", KeyPages)
	}

	return &Result{
		DocumentID:  documentID,
		Filename:    filename,
		PageCount:   len(pages),
		Fields:      fields,
		CompletedAt: time.Now(),
	}, nil
}

func workerCount(pageCount int) int {
	return max(min(runtime.NumCPU(), pageCount), 1)
}
