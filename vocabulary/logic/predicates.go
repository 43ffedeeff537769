package logic

import "github.com/c360studio/semstreams/vocabulary"

// Premise predicates describe asserted categorical premises.
const (
	// PremiseCategory is the premise category.
	// Values: "major", "minor"
	PremiseCategory = "logic.premise.category"

	// PremiseQuantifier is the proposition quantifier.
	// Values: "universal", "particular"
	PremiseQuantifier = "logic.premise.quantifier"

	// PremisePolarity is the proposition polarity.
	// Values: "affirmative", "negative"
	PremisePolarity = "logic.premise.polarity"

	// PremiseMiddleTerm is the term shared with the paired premise.
	PremiseMiddleTerm = "logic.premise.middle_term"

	// PremiseEdgeTerm is the premise's non-middle term (the predicate
	// term of a major premise, the subject term of a minor).
	PremiseEdgeTerm = "logic.premise.edge_term"
)

// Conclusion predicates describe derived propositions.
const (
	// ConclusionSubject is the conclusion's subject term, drawn from the
	// minor premise.
	ConclusionSubject = "logic.conclusion.subject"

	// ConclusionPredicate is the conclusion's predicate term, drawn from
	// the major premise.
	ConclusionPredicate = "logic.conclusion.predicate"

	// ConclusionQuantifier is the conclusion quantifier.
	// Values: "universal", "particular"
	ConclusionQuantifier = "logic.conclusion.quantifier"

	// ConclusionPolarity is the conclusion polarity.
	// Values: "affirmative", "negative"
	ConclusionPolarity = "logic.conclusion.polarity"

	// ConclusionFigure names the figure that produced the conclusion.
	// Values: "barbara", "celarent", "baroco", "darapti"
	ConclusionFigure = "logic.conclusion.figure"

	// ConclusionDerivedAt is the RFC3339 derivation timestamp.
	ConclusionDerivedAt = "logic.conclusion.derived_at"
)

// Relationship predicates linking inference entities.
const (
	// DerivedFrom links a conclusion to a premise it was derived from.
	// Domain: conclusion entity, Range: premise entity
	DerivedFrom = "logic.rel.derived_from"
)

func init() {
	// Register premise predicates
	vocabulary.Register(PremiseCategory,
		vocabulary.WithDescription("Premise category: major or minor"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"premiseCategory"))

	vocabulary.Register(PremiseQuantifier,
		vocabulary.WithDescription("Premise quantifier: universal or particular"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropQuantifier))

	vocabulary.Register(PremisePolarity,
		vocabulary.WithDescription("Premise polarity: affirmative or negative"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropPolarity))

	vocabulary.Register(PremiseMiddleTerm,
		vocabulary.WithDescription("Term shared with the paired premise"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropMiddleTerm))

	vocabulary.Register(PremiseEdgeTerm,
		vocabulary.WithDescription("Non-middle term of the premise"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"edgeTerm"))

	// Register conclusion predicates
	vocabulary.Register(ConclusionSubject,
		vocabulary.WithDescription("Conclusion subject term from the minor premise"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropSubjectTerm))

	vocabulary.Register(ConclusionPredicate,
		vocabulary.WithDescription("Conclusion predicate term from the major premise"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropPredicateTerm))

	vocabulary.Register(ConclusionQuantifier,
		vocabulary.WithDescription("Conclusion quantifier: universal or particular"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropQuantifier))

	vocabulary.Register(ConclusionPolarity,
		vocabulary.WithDescription("Conclusion polarity: affirmative or negative"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropPolarity))

	vocabulary.Register(ConclusionFigure,
		vocabulary.WithDescription("Syllogistic figure that produced the conclusion: barbara, celarent, baroco, darapti"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropFigure))

	vocabulary.Register(ConclusionDerivedAt,
		vocabulary.WithDescription("RFC3339 derivation timestamp"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"derivedAt"))

	// Register relationship predicates
	vocabulary.Register(DerivedFrom,
		vocabulary.WithDescription("Links conclusion to a premise it was derived from"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropDerivedFrom))
}
