package problemgen

// DefaultValidators returns the standard validator chain, cheapest first.
// The schema check runs last since it encodes the question to JSON.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&SelfCheckValidator{},
		&ArithmeticValidator{},
		&SchemaValidator{},
	}
}
