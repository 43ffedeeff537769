package logic

// Namespace is the base IRI prefix for termlogic vocabulary terms.
const Namespace = "https://termlogic.dev/ontology/logic/"

// EntityNamespace is the base IRI for inference entity instances.
const EntityNamespace = "https://termlogic.dev/entity/logic/"

// Class IRIs define the types of inference entities.
const (
	// ClassPremise represents an asserted categorical premise.
	// Extends: cco:InformationContentEntity, prov:Entity
	ClassPremise = Namespace + "Premise"

	// ClassConclusion represents a derived categorical proposition.
	// Extends: ClassPremise, prov:Entity
	ClassConclusion = Namespace + "Conclusion"
)

// Object Property IRIs define relationships between inference entities.
const (
	// PropDerivedFrom links a conclusion to the premises it was derived from.
	// Domain: ClassConclusion, Range: ClassPremise
	PropDerivedFrom = Namespace + "derivedFrom"
)

// Data Property IRIs define literal-valued attributes.
const (
	// PropSubjectTerm is the proposition's subject term.
	PropSubjectTerm = Namespace + "subjectTerm"

	// PropPredicateTerm is the proposition's predicate term.
	PropPredicateTerm = Namespace + "predicateTerm"

	// PropMiddleTerm is the premise's middle term.
	PropMiddleTerm = Namespace + "middleTerm"

	// PropQuantifier is the proposition quantifier (universal/particular).
	PropQuantifier = Namespace + "quantifier"

	// PropPolarity is the proposition polarity (affirmative/negative).
	PropPolarity = Namespace + "polarity"

	// PropFigure is the syllogistic figure that produced a conclusion.
	PropFigure = Namespace + "figure"
)
