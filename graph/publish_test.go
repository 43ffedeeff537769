package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/termlogic/syllogism"
)

func TestConclusionEntityID(t *testing.T) {
	concl := syllogism.Conclusion{
		Subject:   "chicken",
		Predicate: "travel through space",
		Type:      syllogism.UniversalNegative,
		Figure:    syllogism.FigureCelarent,
	}

	id := ConclusionEntityID(concl)
	assert.Equal(t, "termlogic.local.logic.conclusion.celarent.chicken.travel-through-space", id)
}

func TestPremiseEntityID(t *testing.T) {
	p, err := syllogism.NewPremise(syllogism.CategoryMajor, syllogism.BindingPair{
		{Role: syllogism.RoleMiddle, Term: "Man"},
		{Role: syllogism.RolePredicate, Term: "mortal"},
	}, syllogism.UniversalAffirmative)
	require.NoError(t, err)

	assert.Equal(t, "termlogic.local.logic.premise.major.man.mortal", PremiseEntityID(p))
}

// TestPublishConclusion_NilClient: publishing degrades gracefully when no
// NATS client is wired, mirroring how callers run the engine locally.
func TestPublishConclusion_NilClient(t *testing.T) {
	err := PublishConclusion(context.Background(), nil, syllogism.Conclusion{}, syllogism.Premise{}, syllogism.Premise{})
	assert.NoError(t, err)
}
