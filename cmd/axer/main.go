// Command axer fetches, validates, decodes, and persists ANS-104
// bundled transactions from an Arweave gateway.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/PatricioNapoli/axer/arweave"
	"github.com/PatricioNapoli/axer/internal/orchestrator"
	"github.com/PatricioNapoli/axer/txcache"
	"github.com/inconshreveable/log15"
)

const (
	defaultBaseURL   = "https://arweave.net"
	defaultTimeoutMs = 5000
)

var log = log15.New("pkg", "cmd")

func main() {
	if len(os.Args) > 1 && os.Args[1] == "inspect" {
		if err := runInspect(os.Args[2:]); err != nil {
			log.Error("inspect failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := run(os.Args[1:]); err != nil {
		log.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("axer", flag.ContinueOnError)
	url := fs.String("url", defaultBaseURL, "network base url")
	timeoutMs := fs.Int("timeout", defaultTimeoutMs, "network timeout in ms")
	dbFile := fs.String("db-file", "cache.json", "index db filename")
	outDir := fs.String("out-dir", "out/", "output directory for parsed files")
	txID := fs.String("tx-id", "", "arweave bundle transaction id")
	batchFile := fs.String("batch-file", "", "batch filename, enables batch mode")
	interactive := fs.Bool("interactive", false, "interactive mode")
	fs.StringVar(outDir, "o", "out/", "output directory for parsed files (shorthand)")
	fs.StringVar(batchFile, "b", "", "batch filename, enables batch mode (shorthand)")
	fs.BoolVar(interactive, "i", false, "interactive mode (shorthand)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	lvl, err := log15.LvlFromString(envOr("AXER_LOG_LEVEL", "info"))
	if err != nil {
		lvl = log15.LvlInfo
	}
	handler := log15.LvlFilterHandler(lvl, log15.StdoutHandler)
	log15.Root().SetHandler(handler)

	log.Info("running", "url", *url, "timeout_ms", *timeoutMs, "db_file", *dbFile, "out_dir", *outDir)

	// Argument errors must exit non-zero before any network call, so
	// the mode is validated before a client is even constructed.
	if *batchFile == "" && !*interactive && *txID == "" {
		return fmt.Errorf("transaction id required -- either use -i flag, -b <file>, or --tx-id <id>")
	}

	client := arweave.NewClient(*url, time.Duration(*timeoutMs)*time.Millisecond)

	ctx := context.Background()
	info, err := client.GetNetworkInfo(ctx)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", *url, err)
	}
	log.Info("connected", "network", info.Network, "height", info.Height)

	cache, err := txcache.Load(*dbFile)
	if err != nil {
		return fmt.Errorf("load cache %s: %w", *dbFile, err)
	}

	orch := orchestrator.New(client, cache, *outDir, orchestrator.DefaultBatchConcurrency)

	switch {
	case *batchFile != "":
		return orch.RunBatch(ctx, *batchFile)
	case *interactive:
		return orch.RunInteractive(ctx, os.Stdin, os.Stdout)
	default:
		log.Info("running single mode", "tx_id", *txID)
		defer cache.Flush()
		return orch.GetOrFetch(ctx, *txID)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
