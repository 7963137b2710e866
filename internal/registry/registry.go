// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package registry assembles the canonical icon registry: geometry
// extraction fans out over a worker pool, results are re-serialized by
// enumeration index, and code points are assigned only after every
// extraction has finished. Concurrency affects latency, never the
// registry's order or its code-point mapping.
package registry

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/petar-djukic/iconforge/pkg/types"
)

// Extractor produces geometry for one icon source. Implemented by
// extract.Extractor; tests substitute fakes.
type Extractor interface {
	Extract(ctx context.Context, src types.IconSource) (types.Geometry, error)
}

// Assemble builds the registry for the given sources. Code points are
// base + enumeration index. Duplicate names and any extraction failure
// reject the whole assembly; a partial registry is never returned.
func Assemble(ctx context.Context, sources []types.IconSource, ex Extractor, base types.CodePoint, workers int) (*types.Registry, error) {
	paths := make(map[string]string, len(sources))
	for _, s := range sources {
		if prev, ok := paths[s.Name]; ok {
			return nil, fmt.Errorf("duplicate icon name %q: %s and %s", s.Name, prev, s.Path)
		}
		paths[s.Name] = s.Path
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(sources) {
		workers = len(sources)
	}

	// Each worker writes only its own enumeration indexes; the slices are
	// the sole shared state.
	geometries := make([]types.Geometry, len(sources))
	errs := make([]error, len(sources))

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				geometries[i], errs[i] = ex.Extract(ctx, sources[i])
			}
		}()
	}
	for i := range sources {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Report the first failure by enumeration order so a run with several
	// broken icons fails the same way every time.
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", sources[i].Path, err)
		}
	}

	entries := make([]types.IconEntry, len(sources))
	for i, s := range sources {
		entries[i] = types.IconEntry{
			Name:      s.Name,
			Geometry:  geometries[i],
			CodePoint: base + types.CodePoint(i),
		}
	}
	return types.NewRegistry(entries), nil
}
