package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PatricioNapoli/axer/bundle"
)

// runInspect implements `axer inspect <bundle-file>`: decode an
// already-downloaded raw bundle blob and pretty-print its items,
// including their data payload, without touching the network.
func runInspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: axer inspect <bundle-file>")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	b, err := bundle.DecodeWithData(raw)
	if err != nil {
		return fmt.Errorf("decode bundle: %w", err)
	}

	out, err := json.MarshalIndent(b.Items, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
