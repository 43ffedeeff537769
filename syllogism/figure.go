package syllogism

import "fmt"

// Figure names a recognized syllogistic figure.
type Figure string

const (
	// FigureBarbara derives a universal affirmative from two universal
	// affirmatives (all M are P; all S are M).
	FigureBarbara Figure = "barbara"

	// FigureCelarent derives a universal negative (no M are P; all S are M).
	FigureCelarent Figure = "celarent"

	// FigureBaroco derives a particular negative (all P are M; some S
	// are / are not M).
	FigureBaroco Figure = "baroco"

	// FigureDarapti derives a particular affirmative (all M are P; all M
	// are S).
	FigureDarapti Figure = "darapti"
)

// figureRule is one row of the conclusion-resolution table. A premise
// pair matches a row only when both role orders match exactly, both
// proposition types match, and the middle term carries the same value in
// each premise.
type figureRule struct {
	figure     Figure
	majorOrder [2]TermRole
	majorType  PropositionType
	minorOrder [2]TermRole
	minorTypes []PropositionType
	conclusion PropositionType
}

// acceptsMinor reports whether the rule accepts the given minor
// proposition type.
func (r figureRule) acceptsMinor(t PropositionType) bool {
	for _, mt := range r.minorTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// figureTable is the ordered, closed table of recognized figures. Role
// order is load-bearing: (middle, predicate) and (predicate, middle) are
// distinct shapes matched by different rows.
//
// Baroco is specified inconsistently across classical treatments: the
// minor is sometimes given as a particular affirmative and sometimes as
// the O-form particular negative, with the same conclusion either way.
// The table accepts both, and the tests assert both forms explicitly.
var figureTable = []figureRule{
	{
		figure:     FigureBarbara,
		majorOrder: [2]TermRole{RoleMiddle, RolePredicate},
		majorType:  UniversalAffirmative,
		minorOrder: [2]TermRole{RoleSubject, RoleMiddle},
		minorTypes: []PropositionType{UniversalAffirmative},
		conclusion: UniversalAffirmative,
	},
	{
		figure:     FigureCelarent,
		majorOrder: [2]TermRole{RoleMiddle, RolePredicate},
		majorType:  UniversalNegative,
		minorOrder: [2]TermRole{RoleSubject, RoleMiddle},
		minorTypes: []PropositionType{UniversalAffirmative},
		conclusion: UniversalNegative,
	},
	{
		figure:     FigureBaroco,
		majorOrder: [2]TermRole{RolePredicate, RoleMiddle},
		majorType:  UniversalAffirmative,
		minorOrder: [2]TermRole{RoleSubject, RoleMiddle},
		minorTypes: []PropositionType{ParticularAffirmative, ParticularNegative},
		conclusion: ParticularNegative,
	},
	{
		figure:     FigureDarapti,
		majorOrder: [2]TermRole{RoleMiddle, RolePredicate},
		majorType:  UniversalAffirmative,
		minorOrder: [2]TermRole{RoleMiddle, RoleSubject},
		minorTypes: []PropositionType{UniversalAffirmative},
		conclusion: ParticularAffirmative,
	},
}

// Conclude resolves a major/minor premise pair against the figure table
// and returns the prescribed conclusion. The conclusion's subject is the
// minor premise's subject term and its predicate the major premise's
// predicate term; the shared middle term is eliminated.
//
// Conclude is a pure function: it mutates nothing, every call is
// independent, and structurally identical inputs always yield identical
// results. Pairs matching no row — including pairs whose middle terms
// disagree in value — fail with a wrapped ErrNoMatchingFigure.
func Conclude(major, minor Premise) (Conclusion, error) {
	for _, rule := range figureTable {
		if major.Terms.RoleOrder() != rule.majorOrder || major.Type != rule.majorType {
			continue
		}
		if minor.Terms.RoleOrder() != rule.minorOrder || !rule.acceptsMinor(minor.Type) {
			continue
		}

		// Unification check: the middle term must agree by value, not
		// merely by role name.
		majorMiddle, ok := major.Middle()
		if !ok {
			continue
		}
		minorMiddle, ok := minor.Middle()
		if !ok || majorMiddle != minorMiddle {
			continue
		}

		subject, _ := minor.Terms.Term(RoleSubject)
		predicate, _ := major.Terms.Term(RolePredicate)

		return Conclusion{
			Subject:   subject,
			Predicate: predicate,
			Type:      rule.conclusion,
			Figure:    rule.figure,
		}, nil
	}

	return Conclusion{}, fmt.Errorf("%w: major (%s, %s) with minor (%s, %s)",
		ErrNoMatchingFigure,
		orderString(major.Terms.RoleOrder()), major.Type,
		orderString(minor.Terms.RoleOrder()), minor.Type)
}

func orderString(order [2]TermRole) string {
	return string(order[0]) + "," + string(order[1])
}
