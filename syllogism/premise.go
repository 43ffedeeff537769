package syllogism

import "fmt"

// allowedRoles maps each category to the exact role set its premises
// must carry.
var allowedRoles = map[Category][2]TermRole{
	CategoryMajor: {RolePredicate, RoleMiddle},
	CategoryMinor: {RoleSubject, RoleMiddle},
}

// NewPremise validates and builds an immutable premise. Validation runs
// in order: category, role layout, proposition type. The binding order
// of terms is preserved exactly as given; it carries meaning for figure
// matching and is never normalized.
//
// Construction is all-or-nothing: on any failure the zero Premise and a
// wrapped sentinel error (ErrInvalidCategory, ErrInvalidRole or
// ErrInvalidType) are returned.
func NewPremise(category Category, terms BindingPair, propType PropositionType) (Premise, error) {
	if !category.Valid() {
		return Premise{}, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	if err := validateRoles(category, terms); err != nil {
		return Premise{}, err
	}

	if !propType.Valid() {
		return Premise{}, fmt.Errorf("%w: (%q, %q)", ErrInvalidType, propType.Quantifier, propType.Polarity)
	}

	return Premise{
		Category: category,
		Terms:    terms,
		Type:     propType,
	}, nil
}

// validateRoles checks that the binding pair's role set exactly equals
// the category's allowed set: no duplicates, no foreign roles, nothing
// missing. Order within the pair is free here; only set membership is
// constrained.
func validateRoles(category Category, terms BindingPair) error {
	allowed := allowedRoles[category]

	if terms[0].Role == terms[1].Role {
		return fmt.Errorf("%w: duplicate role %q in %s premise", ErrInvalidRole, terms[0].Role, category)
	}

	for _, b := range terms {
		if b.Role != allowed[0] && b.Role != allowed[1] {
			return fmt.Errorf("%w: role %q not permitted in %s premise (allowed: %s, %s)",
				ErrInvalidRole, b.Role, category, allowed[0], allowed[1])
		}
	}

	return nil
}
