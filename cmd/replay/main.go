// Command replay runs a recorded sequence of farm events through the
// processor offline and prints the resulting state with its
// reconciliation verdict. Two runs over the same input print the same
// output.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/ykatyhoney/sunflower-land/internal/bonus"
	"github.com/ykatyhoney/sunflower-land/internal/catalog"
	"github.com/ykatyhoney/sunflower-land/internal/farm"
	"github.com/ykatyhoney/sunflower-land/internal/reconcile"
)

func main() {
	var (
		statePath   = flag.String("state", "", "path to a game state JSON (optional, defaults to the starter farm)")
		eventsPath  = flag.String("events", "", "path to a JSON array of {at, event} records, .zst compressed allowed")
		onChainPath = flag.String("onchain", "", "path to the on-chain snapshot JSON (optional, defaults to the initial state)")
		catalogPath = flag.String("catalog", "", "catalog override (optional)")
		maxBalance  = flag.String("max-balance", "255", "session currency cap")
		stopOnError = flag.Bool("strict", false, "stop at the first rejected event")
	)
	flag.Parse()

	if *eventsPath == "" {
		fmt.Fprintln(os.Stderr, "missing -events")
		os.Exit(2)
	}

	balanceCap, err := decimal.NewFromString(*maxBalance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "max-balance:", err)
		os.Exit(2)
	}

	cat := catalog.Default()
	if *catalogPath != "" {
		if cat, err = catalog.Load(*catalogPath); err != nil {
			fmt.Fprintln(os.Stderr, "load catalog:", err)
			os.Exit(1)
		}
	}

	in, err := loadInput(*statePath, *eventsPath, *onChainPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read input:", err)
		os.Exit(1)
	}

	processor := farm.NewProcessor(cat, bonus.NewDefaultResolver())
	r := &replayer{
		processor: processor,
		validator: reconcile.NewValidator(processor, reconcile.DefaultCaps(), balanceCap),
		strict:    *stopOnError,
	}

	out, err := r.run(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "replay:", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "write output:", err)
		os.Exit(1)
	}
	if !out.Verdict.Valid || (r.strict && len(out.Rejected) > 0) {
		os.Exit(3)
	}
}
