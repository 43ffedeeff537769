package syllogism

// Term is an opaque label for a logical concept ("man", "mortal").
// Terms have no internal structure; equality is by value.
type Term string

// Category distinguishes the two premise kinds of a syllogism.
type Category string

const (
	// CategoryMajor is the premise relating the middle term to the predicate.
	CategoryMajor Category = "major"

	// CategoryMinor is the premise relating the subject to the middle term.
	CategoryMinor Category = "minor"
)

// Valid reports whether the category is one of the recognized values.
func (c Category) Valid() bool {
	return c == CategoryMajor || c == CategoryMinor
}

// TermRole names the position a term occupies within a premise.
type TermRole string

const (
	// RoleSubject is the conclusion's subject term. Only minor premises carry it.
	RoleSubject TermRole = "subject"

	// RolePredicate is the conclusion's predicate term. Only major premises carry it.
	RolePredicate TermRole = "predicate"

	// RoleMiddle is the term shared by both premises and eliminated in the conclusion.
	RoleMiddle TermRole = "middle"
)

// Quantifier is the quantity of a categorical proposition.
type Quantifier string

const (
	// QuantifierUniversal covers "all"/"no" propositions.
	QuantifierUniversal Quantifier = "universal"

	// QuantifierParticular covers "some" propositions.
	QuantifierParticular Quantifier = "particular"
)

// Polarity is the quality of a categorical proposition.
type Polarity string

const (
	// PolarityAffirmative asserts the predicate of the subject.
	PolarityAffirmative Polarity = "affirmative"

	// PolarityNegative denies the predicate of the subject.
	PolarityNegative Polarity = "negative"
)

// PropositionType is the (quantifier, polarity) pair classifying a
// categorical proposition. Exactly four values are valid, corresponding
// to the classical A, E, I and O forms.
type PropositionType struct {
	Quantifier Quantifier `json:"quantifier"`
	Polarity   Polarity   `json:"polarity"`
}

// The four recognized proposition types.
var (
	// UniversalAffirmative is the A form ("all S are P").
	UniversalAffirmative = PropositionType{QuantifierUniversal, PolarityAffirmative}

	// UniversalNegative is the E form ("no S are P").
	UniversalNegative = PropositionType{QuantifierUniversal, PolarityNegative}

	// ParticularAffirmative is the I form ("some S are P").
	ParticularAffirmative = PropositionType{QuantifierParticular, PolarityAffirmative}

	// ParticularNegative is the O form ("some S are not P").
	ParticularNegative = PropositionType{QuantifierParticular, PolarityNegative}
)

// Valid reports whether the type is one of the four recognized values.
func (t PropositionType) Valid() bool {
	switch t {
	case UniversalAffirmative, UniversalNegative, ParticularAffirmative, ParticularNegative:
		return true
	}
	return false
}

// String renders the type as "universal affirmative" etc.
func (t PropositionType) String() string {
	return string(t.Quantifier) + " " + string(t.Polarity)
}

// TermBinding binds a term to the role it plays within a premise.
type TermBinding struct {
	Role TermRole `json:"role"`
	Term Term     `json:"term"`
}

// BindingPair is the ordered pair of term bindings carried by a premise.
// The order is semantically significant: it determines which figure rows
// the premise can match, so a BindingPair is deliberately not an
// unordered role-to-term map.
type BindingPair [2]TermBinding

// RoleOrder returns the roles of the pair in binding order.
func (p BindingPair) RoleOrder() [2]TermRole {
	return [2]TermRole{p[0].Role, p[1].Role}
}

// Term returns the term bound to the given role, if present.
func (p BindingPair) Term(role TermRole) (Term, bool) {
	for _, b := range p {
		if b.Role == role {
			return b.Term, true
		}
	}
	return "", false
}

// Premise is an immutable categorical premise: a category, an ordered
// pair of role-tagged terms, and a proposition type. Construct premises
// with NewPremise; a zero Premise matches no figure.
type Premise struct {
	Category Category        `json:"category"`
	Terms    BindingPair     `json:"terms"`
	Type     PropositionType `json:"type"`
}

// Middle returns the premise's middle term. Every well-formed premise
// carries one.
func (p Premise) Middle() (Term, bool) {
	return p.Terms.Term(RoleMiddle)
}

// Conclusion is the proposition derived from a valid premise pair. The
// subject is always drawn from the minor premise and the predicate from
// the major premise; the middle term is eliminated.
type Conclusion struct {
	Subject   Term            `json:"subject"`
	Predicate Term            `json:"predicate"`
	Type      PropositionType `json:"type"`

	// Figure names the rule that produced the conclusion.
	Figure Figure `json:"figure"`
}
