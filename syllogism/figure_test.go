package syllogism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPremise(t *testing.T, category Category, terms BindingPair, propType PropositionType) Premise {
	t.Helper()
	p, err := NewPremise(category, terms, propType)
	require.NoError(t, err)
	return p
}

func TestConclude_Barbara(t *testing.T) {
	major := mustPremise(t, CategoryMajor, BindingPair{
		{Role: RoleMiddle, Term: "man"},
		{Role: RolePredicate, Term: "mortal"},
	}, UniversalAffirmative)
	minor := mustPremise(t, CategoryMinor, BindingPair{
		{Role: RoleSubject, Term: "greek"},
		{Role: RoleMiddle, Term: "man"},
	}, UniversalAffirmative)

	got, err := Conclude(major, minor)
	require.NoError(t, err)
	assert.Equal(t, Conclusion{
		Subject:   "greek",
		Predicate: "mortal",
		Type:      UniversalAffirmative,
		Figure:    FigureBarbara,
	}, got)
}

func TestConclude_Celarent(t *testing.T) {
	major := mustPremise(t, CategoryMajor, BindingPair{
		{Role: RoleMiddle, Term: "bird"},
		{Role: RolePredicate, Term: "travel through space"},
	}, UniversalNegative)
	minor := mustPremise(t, CategoryMinor, BindingPair{
		{Role: RoleSubject, Term: "chicken"},
		{Role: RoleMiddle, Term: "bird"},
	}, UniversalAffirmative)

	got, err := Conclude(major, minor)
	require.NoError(t, err)
	assert.Equal(t, Conclusion{
		Subject:   "chicken",
		Predicate: "travel through space",
		Type:      UniversalNegative,
		Figure:    FigureCelarent,
	}, got)
}

// TestConclude_Baroco covers the second-figure rule. Classical
// treatments disagree on whether the minor is the I form or the O form;
// the table deliberately accepts both, so both are asserted here rather
// than leaving one variant to match by accident.
func TestConclude_Baroco(t *testing.T) {
	major := mustPremise(t, CategoryMajor, BindingPair{
		{Role: RolePredicate, Term: "informative thing"},
		{Role: RoleMiddle, Term: "useful"},
	}, UniversalAffirmative)

	for _, minorType := range []PropositionType{ParticularAffirmative, ParticularNegative} {
		t.Run(minorType.String(), func(t *testing.T) {
			minor := mustPremise(t, CategoryMinor, BindingPair{
				{Role: RoleSubject, Term: "website"},
				{Role: RoleMiddle, Term: "useful"},
			}, minorType)

			got, err := Conclude(major, minor)
			require.NoError(t, err)
			assert.Equal(t, Conclusion{
				Subject:   "website",
				Predicate: "informative thing",
				Type:      ParticularNegative,
				Figure:    FigureBaroco,
			}, got)
		})
	}
}

func TestConclude_Darapti(t *testing.T) {
	major := mustPremise(t, CategoryMajor, BindingPair{
		{Role: RoleMiddle, Term: "square"},
		{Role: RolePredicate, Term: "rectangle"},
	}, UniversalAffirmative)
	minor := mustPremise(t, CategoryMinor, BindingPair{
		{Role: RoleMiddle, Term: "square"},
		{Role: RoleSubject, Term: "rhombus"},
	}, UniversalAffirmative)

	got, err := Conclude(major, minor)
	require.NoError(t, err)
	assert.Equal(t, Conclusion{
		Subject:   "rhombus",
		Predicate: "rectangle",
		Type:      ParticularAffirmative,
		Figure:    FigureDarapti,
	}, got)
}

// TestConclude_MiddleTermMismatch verifies unification by value: a pair
// shaped exactly like Celarent still fails when the middle terms differ.
func TestConclude_MiddleTermMismatch(t *testing.T) {
	major := mustPremise(t, CategoryMajor, BindingPair{
		{Role: RoleMiddle, Term: "bird"},
		{Role: RolePredicate, Term: "travel through space"},
	}, UniversalNegative)
	minor := mustPremise(t, CategoryMinor, BindingPair{
		{Role: RoleSubject, Term: "chicken"},
		{Role: RoleMiddle, Term: "cat"},
	}, UniversalAffirmative)

	_, err := Conclude(major, minor)
	assert.ErrorIs(t, err, ErrNoMatchingFigure)
}

// TestConclude_OrderSignificance verifies binding order selects the
// figure row: Barbara's major is (middle, predicate), so the same
// bindings reversed to (predicate, middle) must not match it. The
// reversed shape happens to be Baroco's major, which then fails on the
// minor type instead of silently concluding.
func TestConclude_OrderSignificance(t *testing.T) {
	reversedMajor := mustPremise(t, CategoryMajor, BindingPair{
		{Role: RolePredicate, Term: "mortal"},
		{Role: RoleMiddle, Term: "man"},
	}, UniversalAffirmative)
	minor := mustPremise(t, CategoryMinor, BindingPair{
		{Role: RoleSubject, Term: "greek"},
		{Role: RoleMiddle, Term: "man"},
	}, UniversalAffirmative)

	_, err := Conclude(reversedMajor, minor)
	assert.ErrorIs(t, err, ErrNoMatchingFigure)

	// Darapti requires the minor's bindings as (middle, subject); the
	// same bindings as (subject, middle) form Barbara instead.
	daraptiMajor := mustPremise(t, CategoryMajor, BindingPair{
		{Role: RoleMiddle, Term: "square"},
		{Role: RolePredicate, Term: "rectangle"},
	}, UniversalAffirmative)
	barbaraMinor := mustPremise(t, CategoryMinor, BindingPair{
		{Role: RoleSubject, Term: "rhombus"},
		{Role: RoleMiddle, Term: "square"},
	}, UniversalAffirmative)

	got, err := Conclude(daraptiMajor, barbaraMinor)
	require.NoError(t, err)
	assert.Equal(t, FigureBarbara, got.Figure)
	assert.Equal(t, UniversalAffirmative, got.Type)
}

// TestConclude_Deterministic verifies structurally identical inputs
// yield identical outputs across calls.
func TestConclude_Deterministic(t *testing.T) {
	major := mustPremise(t, CategoryMajor, BindingPair{
		{Role: RoleMiddle, Term: "man"},
		{Role: RolePredicate, Term: "mortal"},
	}, UniversalAffirmative)
	minor := mustPremise(t, CategoryMinor, BindingPair{
		{Role: RoleSubject, Term: "greek"},
		{Role: RoleMiddle, Term: "man"},
	}, UniversalAffirmative)

	first, err1 := Conclude(major, minor)
	second, err2 := Conclude(major, minor)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)

	// Errors are equally deterministic.
	mismatched := mustPremise(t, CategoryMinor, BindingPair{
		{Role: RoleSubject, Term: "greek"},
		{Role: RoleMiddle, Term: "statue"},
	}, UniversalAffirmative)

	_, errA := Conclude(major, mismatched)
	_, errB := Conclude(major, mismatched)
	require.Error(t, errA)
	require.Error(t, errB)
	assert.Equal(t, errA.Error(), errB.Error())
}

// TestConclude_UnmatchedShapes covers pairs whose shape or type occurs
// nowhere in the figure table.
func TestConclude_UnmatchedShapes(t *testing.T) {
	tests := []struct {
		name      string
		majorType PropositionType
		minorType PropositionType
	}{
		{"particular major", ParticularAffirmative, UniversalAffirmative},
		{"negative pair outside table", UniversalNegative, UniversalNegative},
		{"particular negative major", ParticularNegative, UniversalAffirmative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			major := mustPremise(t, CategoryMajor, BindingPair{
				{Role: RoleMiddle, Term: "man"},
				{Role: RolePredicate, Term: "mortal"},
			}, tt.majorType)
			minor := mustPremise(t, CategoryMinor, BindingPair{
				{Role: RoleSubject, Term: "greek"},
				{Role: RoleMiddle, Term: "man"},
			}, tt.minorType)

			_, err := Conclude(major, minor)
			assert.ErrorIs(t, err, ErrNoMatchingFigure)
		})
	}
}

// TestConclude_ZeroPremises: zero values never escape NewPremise, but
// Conclude must still reject them rather than match a row.
func TestConclude_ZeroPremises(t *testing.T) {
	_, err := Conclude(Premise{}, Premise{})
	assert.ErrorIs(t, err, ErrNoMatchingFigure)
}
