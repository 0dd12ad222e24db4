package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/farm"
	"github.com/ykatyhoney/sunflower-land/internal/reconcile"
)

// record is one timestamped wire event of the input log
type record struct {
	At    time.Time       `json:"at"`
	Event json.RawMessage `json:"event"`
}

type input struct {
	state   *domain.GameState
	onChain *domain.OnChainSnapshot
	events  []record
}

type rejection struct {
	Index  int    `json:"index"`
	Type   string `json:"type,omitempty"`
	Reason string `json:"reason"`
}

type output struct {
	Applied  int               `json:"applied"`
	Rejected []rejection       `json:"rejected"`
	State    domain.GameState  `json:"state"`
	Verdict  reconcile.Verdict `json:"verdict"`
}

type replayer struct {
	processor *farm.Processor
	validator *reconcile.Validator
	strict    bool
}

// run applies the events in order. Rejected events leave the state
// untouched, as the live service does. Without an explicit state the
// starter farm is created at the first event's time.
func (r *replayer) run(in input) (output, error) {
	out := output{Rejected: []rejection{}}

	var state domain.GameState
	switch {
	case in.state != nil:
		state = *in.state
	case len(in.events) > 0:
		state = domain.NewStarterState("replay", in.events[0].At)
	default:
		return out, fmt.Errorf("no state and no events")
	}

	onChain := domain.OnChainSnapshot{Balance: state.Balance, Inventory: state.Inventory.Clone()}
	if in.onChain != nil {
		onChain = *in.onChain
	}

	for i, rec := range in.events {
		ev, err := farm.Decode(rec.Event)
		if err != nil {
			out.Rejected = append(out.Rejected, rejection{Index: i, Reason: err.Error()})
			if r.strict {
				break
			}
			continue
		}

		next, err := r.processor.Process(state, ev, rec.At)
		if err != nil {
			out.Rejected = append(out.Rejected, rejection{Index: i, Type: ev.Type(), Reason: err.Error()})
			if r.strict {
				break
			}
			continue
		}
		state = next
		out.Applied++
	}

	out.State = state
	out.Verdict = r.validator.Inspect(state, onChain)
	return out, nil
}

func loadInput(statePath, eventsPath, onChainPath string) (input, error) {
	var in input

	if statePath != "" {
		var s domain.GameState
		if err := readJSON(statePath, &s); err != nil {
			return in, fmt.Errorf("state: %w", err)
		}
		in.state = &s
	}
	if onChainPath != "" {
		var oc domain.OnChainSnapshot
		if err := readJSON(onChainPath, &oc); err != nil {
			return in, fmt.Errorf("onchain: %w", err)
		}
		in.onChain = &oc
	}
	if err := readJSON(eventsPath, &in.events); err != nil {
		return in, fmt.Errorf("events: %w", err)
	}
	return in, nil
}

// readJSON decodes path into v, decompressing .zst files on the fly
func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return err
		}
		defer dec.Close()
		r = dec
	}

	return json.NewDecoder(r).Decode(v)
}
