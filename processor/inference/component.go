// Package inference provides a request/reply service that resolves
// major/minor premise pairs against the syllogistic figure table.
package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/google/uuid"

	"github.com/c360studio/termlogic/graph"
	"github.com/c360studio/termlogic/syllogism"
)

// Component implements the inference processor.
type Component struct {
	name       string
	config     Config
	natsClient *natsclient.Client
	logger     *slog.Logger

	// Request subject
	requestSubject string

	// Lifecycle
	running      bool
	startTime    time.Time
	mu           sync.RWMutex
	cancel       context.CancelFunc
	subscription *natsclient.Subscription

	// Metrics
	requestsProcessed  atomic.Int64
	conclusionsDerived atomic.Int64
	inferencesRejected atomic.Int64
	lastActivityMu     sync.RWMutex
	lastActivity       time.Time
}

// NewComponent creates a new inference processor.
func NewComponent(rawConfig json.RawMessage, deps component.Dependencies) (component.Discoverable, error) {
	var config Config
	if err := json.Unmarshal(rawConfig, &config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Apply defaults if not specified
	defaults := DefaultConfig()
	if config.Ports == nil {
		config.Ports = defaults.Ports
	}
	if config.TimeoutSecs == 0 {
		config.TimeoutSecs = defaults.TimeoutSecs
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Resolve request subject from port definitions
	requestSubject := "logic.infer"
	if config.Ports != nil && len(config.Ports.Inputs) > 0 {
		requestSubject = config.Ports.Inputs[0].Subject
	}

	return &Component{
		name:           "inference",
		config:         config,
		natsClient:     deps.NATSClient,
		logger:         deps.GetLogger(),
		requestSubject: requestSubject,
	}, nil
}

// Initialize prepares the component.
func (c *Component) Initialize() error {
	c.logger.Debug("Initialized inference",
		"request_subject", c.requestSubject,
		"publish_conclusions", c.config.PublishConclusions)
	return nil
}

// Start begins handling inference requests.
func (c *Component) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("component already running")
	}
	if c.natsClient == nil {
		c.mu.Unlock()
		return fmt.Errorf("NATS client required")
	}

	// Set running state while holding lock to prevent race condition
	c.running = true
	c.startTime = time.Now()

	subCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	sub, err := c.natsClient.SubscribeForRequests(subCtx, c.requestSubject, c.handleRequest)
	if err != nil {
		// Rollback running state on failure
		c.mu.Lock()
		c.running = false
		c.cancel = nil
		c.mu.Unlock()
		cancel()
		return fmt.Errorf("subscribe to %s: %w", c.requestSubject, err)
	}

	c.mu.Lock()
	c.subscription = sub
	c.mu.Unlock()

	c.logger.Info("inference started",
		"subject", c.requestSubject,
		"publish_conclusions", c.config.PublishConclusions)

	return nil
}

// handleRequest processes an inference request and returns response data.
// Accepts both raw InferRequest JSON and BaseMessage-wrapped requests.
func (c *Component) handleRequest(ctx context.Context, data []byte) ([]byte, error) {
	// Check for cancellation before processing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.requestsProcessed.Add(1)
	c.updateLastActivity()

	// Try to parse as raw InferRequest first (from direct callers)
	var req InferRequest
	if err := json.Unmarshal(data, &req); err == nil && req.Validate() == nil {
		c.logger.Debug("Parsed as raw InferRequest", "request_id", req.RequestID)
	} else {
		// Try to parse as BaseMessage-wrapped request
		var baseMsg message.BaseMessage
		if err := json.Unmarshal(data, &baseMsg); err != nil {
			return c.errorResponse("", ErrKindBadRequest, "failed to parse request: "+err.Error())
		}

		payloadBytes, err := json.Marshal(baseMsg.Payload())
		if err != nil {
			return c.errorResponse("", ErrKindBadRequest, "failed to marshal payload: "+err.Error())
		}
		if err := json.Unmarshal(payloadBytes, &req); err != nil {
			return c.errorResponse("", ErrKindBadRequest, "failed to unmarshal request: "+err.Error())
		}
		if err := req.Validate(); err != nil {
			return c.errorResponse(req.RequestID, ErrKindBadRequest, err.Error())
		}
	}

	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}

	// Build both premises; either failure rejects the whole request.
	major, err := req.Major.Build(syllogism.CategoryMajor)
	if err != nil {
		c.inferencesRejected.Add(1)
		return c.errorResponse(req.RequestID, classifyError(err), "major premise: "+err.Error())
	}
	minor, err := req.Minor.Build(syllogism.CategoryMinor)
	if err != nil {
		c.inferencesRejected.Add(1)
		return c.errorResponse(req.RequestID, classifyError(err), "minor premise: "+err.Error())
	}

	concl, err := syllogism.Conclude(major, minor)
	if err != nil {
		c.inferencesRejected.Add(1)
		c.logger.Debug("Inference rejected",
			"request_id", req.RequestID,
			"error", err)
		return c.errorResponse(req.RequestID, classifyError(err), err.Error())
	}

	c.conclusionsDerived.Add(1)
	c.logger.Debug("Derived conclusion",
		"request_id", req.RequestID,
		"figure", concl.Figure,
		"subject", concl.Subject,
		"predicate", concl.Predicate)

	if c.config.PublishConclusions {
		if err := graph.PublishConclusion(ctx, c.natsClient, concl, major, minor); err != nil {
			// Graph publishing is best-effort; the caller still gets the
			// conclusion.
			c.logger.Warn("Failed to publish conclusion entity",
				"request_id", req.RequestID,
				"error", err)
		}
	}

	response := &InferResponse{
		RequestID:  req.RequestID,
		OK:         true,
		Conclusion: &concl,
	}
	return c.marshalResponse(response)
}

// marshalResponse marshals an inference response. For request/reply
// services the raw payload is returned without a BaseMessage wrapper so
// callers can access fields directly.
func (c *Component) marshalResponse(response *InferResponse) ([]byte, error) {
	return json.Marshal(response)
}

// errorResponse builds a rejection response.
func (c *Component) errorResponse(requestID, kind, errMsg string) ([]byte, error) {
	response := &InferResponse{
		RequestID: requestID,
		OK:        false,
		ErrorKind: kind,
		Error:     errMsg,
	}
	return c.marshalResponse(response)
}

// Stop gracefully stops the component.
func (c *Component) Stop(_ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}

	c.running = false
	c.logger.Info("inference stopped",
		"requests_processed", c.requestsProcessed.Load(),
		"conclusions_derived", c.conclusionsDerived.Load(),
		"inferences_rejected", c.inferencesRejected.Load())

	return nil
}

// Meta returns component metadata.
func (c *Component) Meta() component.Metadata {
	return component.Metadata{
		Name:        "inference",
		Type:        "processor",
		Description: "Request/reply service resolving premise pairs against the syllogistic figure table",
		Version:     "1.0.0",
	}
}

// InputPorts returns configured input port definitions.
func (c *Component) InputPorts() []component.Port {
	if c.config.Ports == nil {
		return []component.Port{}
	}

	ports := make([]component.Port, len(c.config.Ports.Inputs))
	for i, portDef := range c.config.Ports.Inputs {
		ports[i] = component.Port{
			Name:        portDef.Name,
			Direction:   component.DirectionInput,
			Required:    portDef.Required,
			Description: portDef.Description,
			Config: component.NATSPort{
				Subject: portDef.Subject,
			},
		}
	}
	return ports
}

// OutputPorts returns configured output port definitions.
func (c *Component) OutputPorts() []component.Port {
	if c.config.Ports == nil {
		return []component.Port{}
	}

	ports := make([]component.Port, len(c.config.Ports.Outputs))
	for i, portDef := range c.config.Ports.Outputs {
		ports[i] = component.Port{
			Name:        portDef.Name,
			Direction:   component.DirectionOutput,
			Required:    portDef.Required,
			Description: portDef.Description,
			Config: component.NATSPort{
				Subject: portDef.Subject,
			},
		}
	}
	return ports
}

// ConfigSchema returns the configuration schema.
func (c *Component) ConfigSchema() component.ConfigSchema {
	return inferenceSchema
}

// Health returns the current health status.
func (c *Component) Health() component.HealthStatus {
	c.mu.RLock()
	running := c.running
	startTime := c.startTime
	c.mu.RUnlock()

	status := "stopped"
	if running {
		status = "running"
	}

	return component.HealthStatus{
		Healthy:    running,
		LastCheck:  time.Now(),
		ErrorCount: 0,
		Uptime:     time.Since(startTime),
		Status:     status,
	}
}

// DataFlow returns current data flow metrics.
func (c *Component) DataFlow() component.FlowMetrics {
	return component.FlowMetrics{
		MessagesPerSecond: 0,
		BytesPerSecond:    0,
		ErrorRate:         0,
		LastActivity:      c.getLastActivity(),
	}
}

func (c *Component) updateLastActivity() {
	c.lastActivityMu.Lock()
	c.lastActivity = time.Now()
	c.lastActivityMu.Unlock()
}

func (c *Component) getLastActivity() time.Time {
	c.lastActivityMu.RLock()
	defer c.lastActivityMu.RUnlock()
	return c.lastActivity
}
