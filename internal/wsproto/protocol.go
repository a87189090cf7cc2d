// Package wsproto defines the wire protocol between a browser-hosted
// companion tool and the seed-scanning backend: JSON objects discriminated
// by a "type" field, exactly as specified in spec.md §6.
package wsproto

import (
	"encoding/json"
	"fmt"

	"github.com/tojo17/seedfinder/internal/galaxy"
	"github.com/tojo17/seedfinder/internal/rules"
)

// MessageType discriminates every inbound and outbound frame.
type MessageType string

const (
	MsgGenerate MessageType = "Generate"
	MsgFind     MessageType = "Find"
	MsgStop     MessageType = "Stop"

	MsgResult   MessageType = "Result"
	MsgProgress MessageType = "Progress"
	MsgDone     MessageType = "Done"
)

// envelope is decoded first to sniff the discriminator before the full
// payload is parsed into its concrete type.
type envelope struct {
	Type MessageType `json:"type"`
}

// GenerateCommand is the decoded payload of an inbound {"type":"Generate"}.
type GenerateCommand struct {
	Game galaxy.GameDesc `json:"game"`
}

// FindCommand is the decoded payload of an inbound {"type":"Find"}.
type FindCommand struct {
	Game        galaxy.GameDesc `json:"game"`
	Rule        rules.Rule      `json:"rule"`
	Range       [2]int32        `json:"range"`
	Concurrency int             `json:"concurrency"`
	Autosave    uint64          `json:"autosave"`
}

// DecodeCommand sniffs the type discriminator in raw and decodes the full
// payload into the matching concrete type. The returned value is one of
// *GenerateCommand, *FindCommand, or nil (for Stop, which carries no
// payload). An unrecognized or malformed frame returns a non-nil error.
func DecodeCommand(raw []byte) (MessageType, any, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", nil, fmt.Errorf("wsproto: malformed frame: %w", err)
	}

	switch env.Type {
	case MsgGenerate:
		var cmd GenerateCommand
		if err := json.Unmarshal(raw, &cmd); err != nil {
			return "", nil, fmt.Errorf("wsproto: malformed Generate frame: %w", err)
		}
		return MsgGenerate, &cmd, nil

	case MsgFind:
		var cmd FindCommand
		if err := json.Unmarshal(raw, &cmd); err != nil {
			return "", nil, fmt.Errorf("wsproto: malformed Find frame: %w", err)
		}
		// range[1] <= range[0] is a valid, non-terminating request (spec.md
		// §7's "Invalid range"): Session.handleFind resolves it to zero
		// workers and an immediate Done{start,start}, it is not a protocol
		// error.
		return MsgFind, &cmd, nil

	case MsgStop:
		return MsgStop, nil, nil

	default:
		return "", nil, fmt.Errorf("wsproto: unrecognized type %q", env.Type)
	}
}

// ResultFrame is emitted once per matched seed.
type ResultFrame struct {
	Type    MessageType `json:"type"`
	Seed    int32       `json:"seed"`
	Indexes []int       `json:"indexes"`
}

// NewResultFrame builds a ResultFrame with the discriminator already set.
func NewResultFrame(seed int32, indexes []int) ResultFrame {
	return ResultFrame{Type: MsgResult, Seed: seed, Indexes: indexes}
}

// ProgressFrame reports an increment of the completed prefix.
type ProgressFrame struct {
	Type  MessageType `json:"type"`
	Start int32       `json:"start"`
	End   int32       `json:"end"`
}

func NewProgressFrame(start, end int32) ProgressFrame {
	return ProgressFrame{Type: MsgProgress, Start: start, End: end}
}

// DoneFrame is emitted exactly once when a search ends.
type DoneFrame struct {
	Type  MessageType `json:"type"`
	Start int32       `json:"start"`
	End   int32       `json:"end"`
}

func NewDoneFrame(start, end int32) DoneFrame {
	return DoneFrame{Type: MsgDone, Start: start, End: end}
}
