package inference

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/payloadregistry"

	"github.com/c360studio/termlogic/syllogism"
)

// RegisterPayloads registers the inference payload types with the
// supplied registry. Called from the binary at process bootstrap, after
// payloadbuiltins.Register.
func RegisterPayloads(reg *payloadregistry.Registry) error {
	return errors.Join(
		reg.Register(&payloadregistry.Registration{
			Domain:      "logic",
			Category:    "infer-request",
			Version:     "v1",
			Description: "Premise pair submitted for syllogistic inference",
			Factory:     func() any { return &InferRequest{} },
		}),
		reg.Register(&payloadregistry.Registration{
			Domain:      "logic",
			Category:    "infer-response",
			Version:     "v1",
			Description: "Conclusion or rejection for a syllogistic inference request",
			Factory:     func() any { return &InferResponse{} },
		}),
	)
}

// InferRequestType is the message type for inference requests.
var InferRequestType = message.Type{Domain: "logic", Category: "infer-request", Version: "v1"}

// InferResponseType is the message type for inference responses.
var InferResponseType = message.Type{Domain: "logic", Category: "infer-response", Version: "v1"}

// PremiseSpec is the wire form of one premise. The category is implied
// by the request field it occupies (major or minor), so a premise cannot
// be mislabeled in transit.
type PremiseSpec struct {
	Terms syllogism.BindingPair     `json:"terms"`
	Type  syllogism.PropositionType `json:"type"`
}

// Build constructs a validated premise of the given category.
func (s PremiseSpec) Build(category syllogism.Category) (syllogism.Premise, error) {
	return syllogism.NewPremise(category, s.Terms, s.Type)
}

// InferRequest asks the engine to resolve a major/minor premise pair.
type InferRequest struct {
	RequestID string      `json:"request_id,omitempty"`
	Major     PremiseSpec `json:"major"`
	Minor     PremiseSpec `json:"minor"`
}

// Schema implements message.Payload.
func (r *InferRequest) Schema() message.Type {
	return InferRequestType
}

// Validate implements message.Payload. Structural presence only; the
// full premise validation happens in the engine so its error taxonomy
// is reported uniformly.
func (r *InferRequest) Validate() error {
	if r.Major.Terms[0].Term == "" && r.Major.Terms[1].Term == "" {
		return fmt.Errorf("major premise is required")
	}
	if r.Minor.Terms[0].Term == "" && r.Minor.Terms[1].Term == "" {
		return fmt.Errorf("minor premise is required")
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r *InferRequest) MarshalJSON() ([]byte, error) {
	type Alias InferRequest
	return json.Marshal((*Alias)(r))
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *InferRequest) UnmarshalJSON(data []byte) error {
	type Alias InferRequest
	return json.Unmarshal(data, (*Alias)(r))
}

// InferResponse carries the derived conclusion, or the taxonomy member
// and message of the rejection.
type InferResponse struct {
	RequestID  string                `json:"request_id,omitempty"`
	OK         bool                  `json:"ok"`
	Conclusion *syllogism.Conclusion `json:"conclusion,omitempty"`
	ErrorKind  string                `json:"error_kind,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// Schema implements message.Payload.
func (r *InferResponse) Schema() message.Type {
	return InferResponseType
}

// Validate implements message.Payload.
func (r *InferResponse) Validate() error {
	if !r.OK && r.ErrorKind == "" {
		return fmt.Errorf("rejections must carry an error kind")
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r *InferResponse) MarshalJSON() ([]byte, error) {
	type Alias InferResponse
	return json.Marshal((*Alias)(r))
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *InferResponse) UnmarshalJSON(data []byte) error {
	type Alias InferResponse
	return json.Unmarshal(data, (*Alias)(r))
}
