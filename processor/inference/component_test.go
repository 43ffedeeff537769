// Package inference tests cover the component factory, lifecycle,
// request handling (raw and BaseMessage-wrapped), the error-kind wire
// taxonomy, payload validation, and port/metadata surfaces.
//
// Tests requiring NATS infrastructure (actual request/reply over a
// connection, graph publishing) are integration tests and not included
// here.
package inference

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/payloadregistry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/termlogic/syllogism"
)

func TestNewComponent_Unit(t *testing.T) {
	tests := []struct {
		name      string
		rawConfig json.RawMessage
		wantErr   bool
	}{
		{
			name:      "empty config gets defaults",
			rawConfig: json.RawMessage(`{}`),
			wantErr:   false,
		},
		{
			name:      "invalid JSON",
			rawConfig: json.RawMessage(`{invalid json}`),
			wantErr:   true,
		},
		{
			name:      "invalid config - negative timeout",
			rawConfig: json.RawMessage(`{"timeout_secs":-1}`),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := component.Dependencies{
				Logger: slog.Default(),
			}

			_, err := NewComponent(tt.rawConfig, deps)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewComponent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestComponent_Lifecycle(t *testing.T) {
	c := &Component{
		name:           "inference",
		logger:         slog.Default(),
		config:         DefaultConfig(),
		requestSubject: "logic.infer",
	}

	if err := c.Initialize(); err != nil {
		t.Errorf("Initialize() error = %v, want nil", err)
	}

	// Stop when already stopped is a no-op.
	if err := c.Stop(time.Second); err != nil {
		t.Error("Stop() should not error when already stopped")
	}
}

func TestComponent_StartWithoutNATSClient(t *testing.T) {
	c := &Component{
		name:           "inference",
		logger:         slog.Default(),
		config:         DefaultConfig(),
		requestSubject: "logic.infer",
	}

	err := c.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NATS client required")
}

func testComponent(t *testing.T) *Component {
	t.Helper()
	cfg := DefaultConfig()
	cfg.PublishConclusions = false // no NATS client in unit tests
	return &Component{
		name:           "inference",
		logger:         slog.Default(),
		config:         cfg,
		requestSubject: "logic.infer",
	}
}

func barbaraRequest(requestID string) InferRequest {
	return InferRequest{
		RequestID: requestID,
		Major: PremiseSpec{
			Terms: syllogism.BindingPair{
				{Role: syllogism.RoleMiddle, Term: "man"},
				{Role: syllogism.RolePredicate, Term: "mortal"},
			},
			Type: syllogism.UniversalAffirmative,
		},
		Minor: PremiseSpec{
			Terms: syllogism.BindingPair{
				{Role: syllogism.RoleSubject, Term: "greek"},
				{Role: syllogism.RoleMiddle, Term: "man"},
			},
			Type: syllogism.UniversalAffirmative,
		},
	}
}

func TestHandleRequest_RawBarbara(t *testing.T) {
	c := testComponent(t)

	req := barbaraRequest("req-1")
	data, err := json.Marshal(&req)
	require.NoError(t, err)

	respData, err := c.handleRequest(context.Background(), data)
	require.NoError(t, err)

	var resp InferResponse
	require.NoError(t, json.Unmarshal(respData, &resp))

	assert.True(t, resp.OK)
	assert.Equal(t, "req-1", resp.RequestID)
	require.NotNil(t, resp.Conclusion)
	assert.Equal(t, syllogism.Term("greek"), resp.Conclusion.Subject)
	assert.Equal(t, syllogism.Term("mortal"), resp.Conclusion.Predicate)
	assert.Equal(t, syllogism.UniversalAffirmative, resp.Conclusion.Type)
	assert.Equal(t, syllogism.FigureBarbara, resp.Conclusion.Figure)

	assert.Equal(t, int64(1), c.requestsProcessed.Load())
	assert.Equal(t, int64(1), c.conclusionsDerived.Load())
	assert.Equal(t, int64(0), c.inferencesRejected.Load())
}

func TestHandleRequest_AssignsRequestID(t *testing.T) {
	c := testComponent(t)

	req := barbaraRequest("")
	data, err := json.Marshal(&req)
	require.NoError(t, err)

	respData, err := c.handleRequest(context.Background(), data)
	require.NoError(t, err)

	var resp InferResponse
	require.NoError(t, json.Unmarshal(respData, &resp))
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.RequestID)
}

func TestHandleRequest_ErrorKinds(t *testing.T) {
	middleMismatch := barbaraRequest("req-mismatch")
	middleMismatch.Minor.Terms[1].Term = "cat"

	badRole := barbaraRequest("req-role")
	badRole.Major.Terms[0].Role = syllogism.RoleSubject

	badType := barbaraRequest("req-type")
	badType.Major.Type = syllogism.PropositionType{Quantifier: "most", Polarity: "affirmative"}

	tests := []struct {
		name     string
		req      InferRequest
		wantKind string
	}{
		{"middle term mismatch", middleMismatch, ErrKindNoMatchingFigure},
		{"foreign role in major", badRole, ErrKindInvalidRole},
		{"unrecognized proposition type", badType, ErrKindInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testComponent(t)

			data, err := json.Marshal(&tt.req)
			require.NoError(t, err)

			respData, err := c.handleRequest(context.Background(), data)
			require.NoError(t, err)

			var resp InferResponse
			require.NoError(t, json.Unmarshal(respData, &resp))

			assert.False(t, resp.OK)
			assert.Equal(t, tt.wantKind, resp.ErrorKind)
			assert.Nil(t, resp.Conclusion)
			assert.Equal(t, int64(1), c.inferencesRejected.Load())
		})
	}
}

func TestHandleRequest_MalformedJSON(t *testing.T) {
	c := testComponent(t)

	respData, err := c.handleRequest(context.Background(), []byte(`{not json`))
	require.NoError(t, err)

	var resp InferResponse
	require.NoError(t, json.Unmarshal(respData, &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, ErrKindBadRequest, resp.ErrorKind)
}

func TestHandleRequest_CancelledContext(t *testing.T) {
	c := testComponent(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.handleRequest(ctx, []byte(`{}`))
	assert.Error(t, err)
}

func TestInferRequest_Validate(t *testing.T) {
	var empty InferRequest
	assert.Error(t, empty.Validate())

	req := barbaraRequest("x")
	assert.NoError(t, req.Validate())

	noMinor := barbaraRequest("x")
	noMinor.Minor = PremiseSpec{}
	assert.Error(t, noMinor.Validate())
}

func TestInferResponse_Validate(t *testing.T) {
	ok := InferResponse{OK: true}
	assert.NoError(t, ok.Validate())

	bad := InferResponse{OK: false}
	assert.Error(t, bad.Validate())

	rejected := InferResponse{OK: false, ErrorKind: ErrKindNoMatchingFigure}
	assert.NoError(t, rejected.Validate())
}

func TestPayloadSchemas(t *testing.T) {
	var req InferRequest
	assert.Equal(t, InferRequestType, req.Schema())

	var resp InferResponse
	assert.Equal(t, InferResponseType, resp.Schema())
}

func TestRegisterPayloads(t *testing.T) {
	reg := payloadregistry.New()
	require.NoError(t, RegisterPayloads(reg))

	created := reg.Create("logic", "infer-request", "v1")
	_, ok := created.(*InferRequest)
	assert.True(t, ok, "expected *InferRequest, got %T", created)

	created = reg.Create("logic", "infer-response", "v1")
	_, ok = created.(*InferResponse)
	assert.True(t, ok, "expected *InferResponse, got %T", created)

	// Double registration must surface the collision
	assert.Error(t, RegisterPayloads(reg))
}

func TestComponent_Ports(t *testing.T) {
	c := testComponent(t)

	inputs := c.InputPorts()
	require.Len(t, inputs, 1)
	assert.Equal(t, component.DirectionInput, inputs[0].Direction)

	outputs := c.OutputPorts()
	require.Len(t, outputs, 1)
	assert.Equal(t, component.DirectionOutput, outputs[0].Direction)
}

func TestComponent_Meta(t *testing.T) {
	c := testComponent(t)

	meta := c.Meta()
	assert.Equal(t, "inference", meta.Name)
	assert.Equal(t, "processor", meta.Type)

	health := c.Health()
	assert.False(t, health.Healthy)
	assert.Equal(t, "stopped", health.Status)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.TimeoutSecs = -5
	assert.Error(t, cfg.Validate())
}
