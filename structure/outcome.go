// SPDX-License-Identifier: MIT
// Package structure holds the tagged-variant result types produced by
// Subgroup's Cartesian-product and quotient-decomposition probes,
// replacing the source design's ad-hoc outcome objects (spec §9).
package structure

// CartesianKind tags the classification of a Cartesian product probe.
type CartesianKind int

const (
	// Invalid means the probed pair failed the product/closure/intersection
	// preconditions, or neither factor is normal in the generated group.
	Invalid CartesianKind = iota
	// Direct means both factors are normal in the generated subgroup.
	Direct
	// LeftSemi means only the right-hand factor (H) is normal.
	LeftSemi
	// RightSemi means only the left-hand factor (K) is normal.
	RightSemi
)

// String renders the kind for display/debug purposes.
func (k CartesianKind) String() string {
	switch k {
	case Direct:
		return "Direct"
	case LeftSemi:
		return "LeftSemi"
	case RightSemi:
		return "RightSemi"
	default:
		return "Invalid"
	}
}

// CartesianOutcome is the tagged result of probing two subgroups K, H as
// a candidate (semi)direct factorization: CartesianOutcome = Direct(g) |
// LeftSemi(g) | RightSemi(g) | Invalid, where g identifies the generated
// subgroup (by element-set signature) when the probe succeeds.
type CartesianOutcome struct {
	kind      CartesianKind
	generated string
}

// NewCartesianOutcome builds a successful outcome carrying the generated
// subgroup's element-set signature.
func NewCartesianOutcome(kind CartesianKind, generatedSignature string) CartesianOutcome {
	return CartesianOutcome{kind: kind, generated: generatedSignature}
}

// InvalidCartesianOutcome builds the Invalid variant.
func InvalidCartesianOutcome() CartesianOutcome {
	return CartesianOutcome{kind: Invalid}
}

// Kind reports which variant this outcome holds.
func (o CartesianOutcome) Kind() CartesianKind { return o.kind }

// IsDirect reports whether this outcome is the Direct variant.
func (o CartesianOutcome) IsDirect() bool { return o.kind == Direct }

// HasValue reports whether a generated subgroup signature was produced
// (false only for Invalid).
func (o CartesianOutcome) HasValue() bool { return o.kind != Invalid }

// Signature returns the generated subgroup's element-set signature; valid
// only when HasValue() is true.
func (o CartesianOutcome) Signature() string { return o.generated }

// QuotientKind tags the classification of a quotient-decomposition probe.
type QuotientKind int

const (
	// QuotientInvalid means no complement subgroup was found.
	QuotientInvalid QuotientKind = iota
	// QuotientValid means a complement subgroup was found.
	QuotientValid
)

// QuotientOutcome is the tagged result of Subgroup.StudyQuotientDecomposition:
// QuotientOutcome = Valid(complement) | Invalid.
type QuotientOutcome struct {
	kind      QuotientKind
	generated string
}

// NewQuotientOutcome builds the Valid variant carrying the complement
// subgroup's element-set signature.
func NewQuotientOutcome(signature string) QuotientOutcome {
	return QuotientOutcome{kind: QuotientValid, generated: signature}
}

// InvalidQuotientOutcome builds the Invalid variant.
func InvalidQuotientOutcome() QuotientOutcome {
	return QuotientOutcome{kind: QuotientInvalid}
}

// HasValue reports whether a complement subgroup was found.
func (o QuotientOutcome) HasValue() bool { return o.kind == QuotientValid }

// Signature returns the complement subgroup's element-set signature;
// valid only when HasValue() is true.
func (o QuotientOutcome) Signature() string { return o.generated }
