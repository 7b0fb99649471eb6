package scrollreel

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// LoadResult is emitted once per settled attempt. Exactly one of Image and
// Err is set.
type LoadResult struct {
	Pass    uuid.UUID
	Index   int
	Image   image.Image
	Err     error
	Settled int // attempts settled so far in this pass, including this one
	Total   int
}

// LoadStats summarises a finished pass.
type LoadStats struct {
	Pass      uuid.UUID
	Attempted int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// BatchRange is an inclusive range of frame indices loaded together.
type BatchRange struct {
	First, Last int
}

// Batches partitions [1, total] into consecutive ranges of at most size
// frames.
func Batches(total, size int) []BatchRange {
	if total <= 0 {
		return nil
	}
	if size <= 0 {
		size = total
	}
	out := make([]BatchRange, 0, (total+size-1)/size)
	for first := 1; first <= total; first += size {
		out = append(out, BatchRange{First: first, Last: min(first+size-1, total)})
	}
	return out
}

// BatchLoader fetches every frame of the sequence in fixed-size batches.
// All loads of a batch run concurrently; the next batch is not issued until
// every load of the previous one has settled. Failures are counted and never
// abort the run.
type BatchLoader struct {
	Source      FrameSource
	TotalFrames int
	BatchSize   int
	BatchDelay  time.Duration
	Log         zerolog.Logger
}

// Run loads the whole sequence and calls onSettle after each settled attempt.
// onSettle is always called from the goroutine running Run, one result at a
// time. Cancelling ctx stops issuing new batches; it is meant for shutdown,
// not for retry.
func (l *BatchLoader) Run(ctx context.Context, pass uuid.UUID, onSettle func(LoadResult)) LoadStats {
	start := time.Now()
	log := l.Log.With().Str("pass", pass.String()).Int("frames", l.TotalFrames).Logger()
	stats := LoadStats{Pass: pass}

	batches := Batches(l.TotalFrames, l.BatchSize)
	log.Info().Int("batch_size", l.BatchSize).Int("batches", len(batches)).Msg("loading frames")

	for i, b := range batches {
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Int("batch", i+1).Msg("loading stopped")
			break
		}
		log.Debug().Int("batch", i+1).Int("first", b.First).Int("last", b.Last).Msg("loading batch")

		results := make(chan LoadResult, b.Last-b.First+1)
		var g errgroup.Group
		for idx := b.First; idx <= b.Last; idx++ {
			g.Go(func() error {
				img, err := l.Source.Load(ctx, idx)
				if err == nil && img == nil {
					err = &LoadError{Index: idx, Path: l.Source.Path(idx), Err: errors.New("empty image")}
				}
				results <- LoadResult{Pass: pass, Index: idx, Image: img, Err: err}
				return nil
			})
		}

		for n := b.First; n <= b.Last; n++ {
			r := <-results
			stats.Attempted++
			if r.Err != nil {
				stats.Failed++
				r.Image = nil
				log.Warn().Err(r.Err).Int("frame", r.Index).Msg("frame failed to load")
			} else {
				stats.Succeeded++
			}
			r.Settled = stats.Attempted
			r.Total = l.TotalFrames
			if onSettle != nil {
				onSettle(r)
			}
		}
		_ = g.Wait()

		if i < len(batches)-1 && l.BatchDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(l.BatchDelay):
			}
		}
	}

	stats.Elapsed = time.Since(start)
	log.Info().
		Int("succeeded", stats.Succeeded).
		Int("failed", stats.Failed).
		Dur("elapsed", stats.Elapsed).
		Msg("finished loading frames")
	return stats
}
