// Package graph publishes derived conclusions to the knowledge graph.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/termlogic/syllogism"
	"github.com/c360studio/termlogic/vocabulary/logic"
)

// GraphIngestSubject is the subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// EntityIngestMessage is the message format for graph ingestion.
// Matches the format consumed by the semstreams graph gateway.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PublishConclusion publishes a derived conclusion to the knowledge graph,
// with provenance triples linking it to the premises it came from.
func PublishConclusion(ctx context.Context, nc *natsclient.Client, concl syllogism.Conclusion, major, minor syllogism.Premise) error {
	if nc == nil {
		return nil // Skip publishing if no NATS client (graceful degradation)
	}

	entityID := ConclusionEntityID(concl)
	now := time.Now()

	triples := []message.Triple{
		{
			Subject:    entityID,
			Predicate:  logic.ConclusionSubject,
			Object:     string(concl.Subject),
			Source:     "termlogic.conclude",
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  logic.ConclusionPredicate,
			Object:     string(concl.Predicate),
			Source:     "termlogic.conclude",
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  logic.ConclusionQuantifier,
			Object:     string(concl.Type.Quantifier),
			Source:     "termlogic.conclude",
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  logic.ConclusionPolarity,
			Object:     string(concl.Type.Polarity),
			Source:     "termlogic.conclude",
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  logic.ConclusionFigure,
			Object:     string(concl.Figure),
			Source:     "termlogic.conclude",
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  logic.ConclusionDerivedAt,
			Object:     now.Format(time.RFC3339),
			Source:     "termlogic.conclude",
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  logic.DerivedFrom,
			Object:     PremiseEntityID(major),
			Source:     "termlogic.conclude",
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  logic.DerivedFrom,
			Object:     PremiseEntityID(minor),
			Source:     "termlogic.conclude",
			Timestamp:  now,
			Confidence: 1.0,
		},
	}

	msg := EntityIngestMessage{
		ID:        entityID,
		Triples:   triples,
		UpdatedAt: now,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal conclusion entity: %w", err)
	}

	if err := nc.PublishToStream(ctx, GraphIngestSubject, data); err != nil {
		return fmt.Errorf("publish conclusion entity: %w", err)
	}

	return nil
}

// ConclusionEntityID generates a consistent entity ID for a conclusion.
// Format: termlogic.local.logic.conclusion.<figure>.<subject>.<predicate>
func ConclusionEntityID(concl syllogism.Conclusion) string {
	return "termlogic.local.logic.conclusion." +
		string(concl.Figure) + "." +
		slugTerm(concl.Subject) + "." +
		slugTerm(concl.Predicate)
}

// PremiseEntityID generates a consistent entity ID for a premise.
// Format: termlogic.local.logic.premise.<category>.<term>.<term>
func PremiseEntityID(p syllogism.Premise) string {
	return "termlogic.local.logic.premise." +
		string(p.Category) + "." +
		slugTerm(p.Terms[0].Term) + "." +
		slugTerm(p.Terms[1].Term)
}

// slugTerm makes a term safe for use inside a dotted entity ID.
func slugTerm(t syllogism.Term) string {
	s := strings.ToLower(strings.TrimSpace(string(t)))
	s = strings.ReplaceAll(s, " ", "-")
	return strings.ReplaceAll(s, ".", "-")
}
