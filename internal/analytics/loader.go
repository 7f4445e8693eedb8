package analytics

import (
	"bufio"
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"sales-dashboard/internal/models"
)

const (
	batchSize    = 10000
	maxWorkers   = 10
	cacheVersion = "v1"
	cacheDir     = ".cache"
)

type snapshotCache struct {
	Lines    []models.OrderLine
	LoadedAt time.Time
}

// LoadFromCSV streams the order export, normalizes every row and installs
// the result as the current snapshot. The load step is memoized to a gob
// file keyed by source path and invalidated by file mtime; derived
// aggregates are never cached because they depend on per-request filters.
//
// A missing required column aborts the load with a schema error. Rows with
// unparseable numeric fields are skipped and counted; rows with an
// unparseable date are kept with no calendar attributes.
func (a *Analytics) LoadFromCSV(ctx context.Context, filename string) error {
	a.csvPath = filename

	if cached, err := a.loadFromCache(filename); err == nil {
		info, err := os.Stat(filename)
		if err == nil && info.ModTime().Before(cached.LoadedAt) {
			a.mu.Lock()
			a.snapshot = cached.Lines
			a.loadedAt = cached.LoadedAt
			a.mu.Unlock()
			a.rowsLoaded.Store(int64(len(cached.Lines)))
			a.logger.Info("loaded from cache", "records", len(cached.Lines))
			return nil
		}
	}

	start := time.Now()
	a.logger.Info("processing order export", "filename", filename)

	if err := a.streamProcessCSV(ctx, filename); err != nil {
		return fmt.Errorf("process csv: %w", err)
	}

	if err := a.saveToCache(filename); err != nil {
		a.logger.Warn("failed to save cache", "error", err)
	}

	duration := time.Since(start)
	count := a.rowsLoaded.Load()
	a.logger.Info("order export processed",
		"records", count,
		"skipped", a.rowsSkipped.Load(),
		"duration", duration,
		"rate", fmt.Sprintf("%.0f records/sec", float64(count)/duration.Seconds()))

	return nil
}

func (a *Analytics) streamProcessCSV(ctx context.Context, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024) // 10MB buffer

	if !scanner.Scan() {
		return fmt.Errorf("empty file")
	}
	cols, err := mapHeader(strings.Split(scanner.Text(), ","))
	if err != nil {
		return err
	}

	var lines []models.OrderLine
	var skipped int64

	batch := make([]string, 0, batchSize)
	flush := func() error {
		parsed, nSkipped, err := a.parseBatch(ctx, batch, cols)
		if err != nil {
			return err
		}
		lines = append(lines, parsed...)
		skipped += nSkipped
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batch = append(batch, scanner.Text())

		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if len(batch) > 0 {
		if err := flush(); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	if len(lines) == 0 {
		return fmt.Errorf("no valid records found")
	}

	a.mu.Lock()
	a.snapshot = lines
	a.loadedAt = time.Now()
	a.mu.Unlock()

	a.rowsLoaded.Store(int64(len(lines)))
	a.rowsSkipped.Store(skipped)
	return nil
}

// parseBatch normalizes a batch of raw lines on a bounded worker pool.
// Results keep the batch's order so repeated loads of the same file yield
// identical snapshots.
func (a *Analytics) parseBatch(ctx context.Context, batch []string, cols map[string]int) ([]models.OrderLine, int64, error) {
	type slot struct {
		line  models.OrderLine
		valid bool
	}
	slots := make([]slot, len(batch))

	var wg errgroup.Group
	wg.SetLimit(maxWorkers)

	for i, raw := range batch {
		wg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			line, err := normalizeLine(strings.Split(raw, ","), cols)
			if err != nil {
				return nil // Skip malformed rows
			}
			slots[i] = slot{line: line, valid: true}
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, 0, err
	}

	out := make([]models.OrderLine, 0, len(batch))
	var skipped int64
	for _, s := range slots {
		if s.valid {
			out = append(out, s.line)
		} else {
			skipped++
		}
	}
	return out, skipped, nil
}

// Cache management
func (a *Analytics) getCacheFilename(csvPath string) string {
	return fmt.Sprintf("%s/%s_%s.gob", cacheDir, strings.ReplaceAll(csvPath, "/", "_"), cacheVersion)
}

func (a *Analytics) saveToCache(csvPath string) error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return err
	}

	filename := a.getCacheFilename(csvPath)
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	a.mu.RLock()
	cache := snapshotCache{Lines: a.snapshot, LoadedAt: a.loadedAt}
	a.mu.RUnlock()

	encoder := gob.NewEncoder(file)
	return encoder.Encode(cache)
}

func (a *Analytics) loadFromCache(csvPath string) (*snapshotCache, error) {
	filename := a.getCacheFilename(csvPath)
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cache snapshotCache
	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&cache); err != nil {
		return nil, err
	}

	return &cache, nil
}
