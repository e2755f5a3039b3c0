package tally

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"strandkin/domain/moves"
	"strandkin/internal/errors"
)

// Observation is one exposed base and the contexts on either side of it
type Observation struct {
	Left  moves.QuartContext `json:"left"`
	Base  moves.Base         `json:"base"`
	Right moves.QuartContext `json:"right"`
}

// Region is the run of observations produced while walking one exposed region
type Region []Observation

// ParseObservation reads "left:base:right", e.g. "stack:A:loop"
func ParseObservation(s string) (Observation, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return Observation{}, errors.InvalidInput(fmt.Sprintf("observation %q must be left:base:right", s))
	}
	left, ok := moves.ParseQuartContext(strings.ToLower(parts[0]))
	if !ok {
		return Observation{}, errors.InvalidInput(fmt.Sprintf("unknown context %q", parts[0]))
	}
	right, ok := moves.ParseQuartContext(strings.ToLower(parts[2]))
	if !ok {
		return Observation{}, errors.InvalidInput(fmt.Sprintf("unknown context %q", parts[2]))
	}
	baseRunes := []rune(parts[1])
	if len(baseRunes) != 1 {
		return Observation{}, errors.InvalidInput(fmt.Sprintf("base %q must be a single letter", parts[1]))
	}
	base, err := moves.ParseBase(baseRunes[0])
	if err != nil {
		return Observation{}, errors.InvalidInputf(err, "observation %q", s)
	}
	return Observation{Left: left, Base: base, Right: right}, nil
}

// Accumulate records every observation of region into info
func Accumulate(region Region, info *moves.OpenInfo) {
	for _, obs := range region {
		info.Increment(obs.Left, obs.Base, obs.Right)
	}
}

// Sequential tallies all regions into a fresh OpenInfo
func Sequential(regions []Region) *moves.OpenInfo {
	info := moves.NewOpenInfo()
	for _, region := range regions {
		Accumulate(region, info)
	}
	return info
}

// Parallel tallies regions on up to workers goroutines. Each worker owns a
// private OpenInfo, reused across the regions it takes, and folds it into the
// shared result under a mutex when done. workers <= 0 means GOMAXPROCS.
func Parallel(ctx context.Context, regions []Region, workers int) (*moves.OpenInfo, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(regions) {
		workers = len(regions)
	}

	result := moves.NewOpenInfo()
	if len(regions) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, errors.Cancelled(err, "tally cancelled")
		}
		return result, nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			local := moves.NewOpenInfo()
			for i := w; i < len(regions); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				Accumulate(regions[i], local)
			}
			mu.Lock()
			result.Merge(local)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Cancelled(err, "tally cancelled")
	}
	return result, nil
}
