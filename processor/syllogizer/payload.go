package syllogizer

import (
	"encoding/json"
	"fmt"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/payloadregistry"

	"github.com/c360studio/termlogic/processor/inference"
)

// RegisterPayloads registers the premise pair event type with the
// supplied registry. Called from the binary at process bootstrap, after
// payloadbuiltins.Register.
func RegisterPayloads(reg *payloadregistry.Registry) error {
	return reg.Register(&payloadregistry.Registration{
		Domain:      "logic",
		Category:    "premise-pair",
		Version:     "v1",
		Description: "Premise pair event consumed for asynchronous syllogistic inference",
		Factory:     func() any { return &PremisePairEvent{} },
	})
}

// PremisePairEventType is the message type for premise pair events.
var PremisePairEventType = message.Type{Domain: "logic", Category: "premise-pair", Version: "v1"}

// PremisePairEvent is published to logic.premises.pair by upstream
// producers. Each event carries one complete major/minor pair; the
// syllogizer derives the conclusion and publishes it as a graph entity.
type PremisePairEvent struct {
	PairID string                `json:"pair_id"`
	Source string                `json:"source,omitempty"`
	Major  inference.PremiseSpec `json:"major"`
	Minor  inference.PremiseSpec `json:"minor"`
}

// Schema implements message.Payload.
func (e *PremisePairEvent) Schema() message.Type {
	return PremisePairEventType
}

// Validate implements message.Payload.
func (e *PremisePairEvent) Validate() error {
	if e.PairID == "" {
		return fmt.Errorf("pair_id is required")
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (e *PremisePairEvent) MarshalJSON() ([]byte, error) {
	type Alias PremisePairEvent
	return json.Marshal((*Alias)(e))
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *PremisePairEvent) UnmarshalJSON(data []byte) error {
	type Alias PremisePairEvent
	return json.Unmarshal(data, (*Alias)(e))
}
