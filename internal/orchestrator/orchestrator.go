// Package orchestrator drives the three CLI modes (single, interactive,
// batch) on top of the arweave client and the on-disk transaction
// cache.
package orchestrator

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PatricioNapoli/axer/arweave"
	"github.com/PatricioNapoli/axer/bundle"
	"github.com/PatricioNapoli/axer/txcache"
	"github.com/inconshreveable/log15"
	"github.com/panjf2000/ants/v2"
)

// DefaultBatchConcurrency bounds the number of concurrent fetches
// RunBatch spawns. An unbounded fan-out against a single gateway just
// trips rate limits, so the pool is capped.
const DefaultBatchConcurrency = 16

var log = log15.New("pkg", "orchestrator")

// Orchestrator wires an arweave.Client and a txcache.Cache together,
// writing decoded bundle item arrays under OutDir/{id}.json.
type Orchestrator struct {
	Client      *arweave.Client
	Cache       *txcache.Cache
	OutDir      string
	Concurrency int
}

// New builds an Orchestrator. concurrency <= 0 falls back to
// DefaultBatchConcurrency.
func New(client *arweave.Client, cache *txcache.Cache, outDir string, concurrency int) *Orchestrator {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	return &Orchestrator{Client: client, Cache: cache, OutDir: outDir, Concurrency: concurrency}
}

func (o *Orchestrator) outPath(id string) string {
	return filepath.Join(o.OutDir, id+".json")
}

// GetOrFetch resolves one tx id:
//  1. cached and the output file exists: no-op.
//  2. cached but the output file is missing: fetch bundle data only.
//  3. not cached: fetch parent tx + bundle, insert, write.
func (o *Orchestrator) GetOrFetch(ctx context.Context, id string) error {
	if tx, ok := o.Cache.Get(id); ok {
		log.Info("transaction found in cache", "id", id)

		if _, err := os.Stat(o.outPath(id)); err == nil {
			return nil
		}

		log.Warn("bundle file not found, fetching", "id", id)
		b, err := o.Client.GetBundleData(ctx, &tx)
		if err != nil {
			return fmt.Errorf("orchestrator: fetch bundle data for %s: %w", id, err)
		}
		return writeItems(o.outPath(id), b)
	}

	tx, b, err := o.Client.GetBundle(ctx, id)
	if err != nil {
		return fmt.Errorf("orchestrator: fetch bundle for %s: %w", id, err)
	}
	log.Info("transaction fetched", "id", tx.ID)

	o.Cache.Insert(id, *tx)
	return writeItems(o.outPath(id), b)
}

// RunInteractive reads tx ids from stdin, one per line, until a line
// equal to "q" is read. Errors from individual fetches are logged and
// do not end the loop; only an I/O error reading stdin itself, or
// context cancellation, does. The cache is flushed once on return.
func (o *Orchestrator) RunInteractive(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	defer o.Cache.Flush()

	fmt.Fprintln(stdout, "Enter an Arweave bundle transaction id or 'q' to quit")
	scanner := bufio.NewScanner(stdin)

	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			return nil
		}
		if line == "" {
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		if err := o.GetOrFetch(ctx, line); err != nil {
			log.Error("fetch failed", "id", line, "err", err)
		}
	}
}

// batchResult carries one batch-mode fetch back to the orchestrator
// goroutine, which is the only goroutine that mutates the cache or
// touches the output directory.
type batchResult struct {
	id  string
	tx  *arweave.ParentTx
	b   *bundle.Bundle
	err error
}

// RunBatch reads tx ids from batchFile, one per line, and fetches the
// cache-missing ones concurrently through a bounded ants pool. Every
// result funnels back over a channel and is inserted into the cache
// and written to disk by this goroutine alone. Per-id errors are
// logged and do not abort the other ids; the first one is returned
// after the whole batch has drained. The cache is flushed once,
// unconditionally, before returning, so entries fetched before a
// failure survive it.
func (o *Orchestrator) RunBatch(ctx context.Context, batchFile string) error {
	defer o.Cache.Flush()

	ids, err := readLines(batchFile)
	if err != nil {
		return fmt.Errorf("orchestrator: read batch file %s: %w", batchFile, err)
	}

	log.Info("running batch mode", "file", batchFile, "count", len(ids))

	results := make(chan batchResult, len(ids))
	pending := 0

	pool, err := ants.NewPoolWithFunc(o.Concurrency, func(arg any) {
		id := arg.(string)
		if tx, ok := o.Cache.Get(id); ok {
			path := o.outPath(id)
			if _, statErr := os.Stat(path); statErr == nil {
				results <- batchResult{id: id}
				return
			}
			log.Warn("bundle file not found, fetching", "id", id)
			b, fetchErr := o.Client.GetBundleData(ctx, &tx)
			results <- batchResult{id: id, tx: &tx, b: b, err: fetchErr}
			return
		}

		tx, b, fetchErr := o.Client.GetBundle(ctx, id)
		results <- batchResult{id: id, tx: tx, b: b, err: fetchErr}
	})
	if err != nil {
		return fmt.Errorf("orchestrator: create worker pool: %w", err)
	}
	defer pool.Release()

	for _, id := range ids {
		if err := pool.Invoke(id); err != nil {
			return fmt.Errorf("orchestrator: submit %s: %w", id, err)
		}
		pending++
	}

	var firstErr error
	for i := 0; i < pending; i++ {
		r := <-results
		if r.err != nil {
			log.Error("batch fetch failed", "id", r.id, "err", r.err)
			if firstErr == nil {
				firstErr = fmt.Errorf("orchestrator: fetch %s: %w", r.id, r.err)
			}
			continue
		}
		if r.b == nil {
			// already cached and on disk: nothing to insert or write.
			continue
		}

		log.Info("transaction fetched", "id", r.id)
		if r.tx != nil {
			o.Cache.Insert(r.id, *r.tx)
		}
		if err := writeItems(o.outPath(r.id), r.b); err != nil {
			log.Error("write failed", "id", r.id, "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func writeItems(path string, b *bundle.Bundle) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.Marshal(b.Items)
	if err != nil {
		return err
	}
	log.Info("saving file", "path", path)
	return os.WriteFile(path, raw, 0o644)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			ids = append(ids, line)
		}
	}
	return ids, scanner.Err()
}
