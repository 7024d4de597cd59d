// SPDX-License-Identifier: MIT

package shape

// Kind enumerates the four node kinds of a Shape tree.
type Kind int

const (
	// KindScalar is the dimensionless identity. It is the zero Kind so that
	// the zero Shape is Scalar.
	KindScalar Kind = iota
	// KindAtomic is a primitive named unit.
	KindAtomic
	// KindProduct is an ordered binary product.
	KindProduct
	// KindQuotient is an ordered binary quotient.
	KindQuotient
)

// String returns a lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindAtomic:
		return "atomic"
	case KindProduct:
		return "product"
	case KindQuotient:
		return "quotient"
	default:
		return "unknown"
	}
}

// Shape is an immutable unit expression tree.
//
// Compound nodes keep their operands behind pointers that are never
// mutated after construction, so copying a Shape is O(1) and copies share
// subtrees safely.
type Shape struct {
	kind  Kind
	name  string // KindAtomic only
	left  *Shape // Product left / Quotient numerator
	right *Shape // Product right / Quotient denominator
}

// Scalar returns the dimensionless shape. It equals the zero Shape.
func Scalar() Shape { return Shape{} }

// Atomic returns a primitive unit identified by name.
// Panics if name is empty; an unnamed unit is a programming error.
func Atomic(name string) Shape {
	if name == "" {
		panic(panicEmptyAtomic)
	}

	return Shape{kind: KindAtomic, name: name}
}

// Product returns the ordered product l·r.
func Product(l, r Shape) Shape {
	return Shape{kind: KindProduct, left: &l, right: &r}
}

// Quotient returns the ordered quotient num/den.
func Quotient(num, den Shape) Shape {
	return Shape{kind: KindQuotient, left: &num, right: &den}
}

// Kind reports the node kind of s.
func (s Shape) Kind() Kind { return s.kind }

// Name returns the unit name of an atomic shape and "" otherwise.
func (s Shape) Name() string { return s.name }

// IsScalar reports whether s is the dimensionless shape.
func (s Shape) IsScalar() bool { return s.kind == KindScalar }

// IsAtomic reports whether s is a primitive unit.
func (s Shape) IsAtomic() bool { return s.kind == KindAtomic }

// IsCompound reports whether s is a Product or a Quotient.
func (s Shape) IsCompound() bool { return s.kind == KindProduct || s.kind == KindQuotient }

// Left returns the left operand of a Product or the numerator of a Quotient.
// For leaves it returns Scalar.
func (s Shape) Left() Shape {
	if s.left == nil {
		return Shape{}
	}

	return *s.left
}

// Right returns the right operand of a Product or the denominator of a
// Quotient. For leaves it returns Scalar.
func (s Shape) Right() Shape {
	if s.right == nil {
		return Shape{}
	}

	return *s.right
}

// Num is Left under its quotient name.
func (s Shape) Num() Shape { return s.Left() }

// Den is Right under its quotient name.
func (s Shape) Den() Shape { return s.Right() }

// AsProduct destructures a Product. ok is false for any other kind.
func (s Shape) AsProduct() (l, r Shape, ok bool) {
	if s.kind != KindProduct {
		return Shape{}, Shape{}, false
	}

	return *s.left, *s.right, true
}

// AsQuotient destructures a Quotient. ok is false for any other kind.
func (s Shape) AsQuotient() (num, den Shape, ok bool) {
	if s.kind != KindQuotient {
		return Shape{}, Shape{}, false
	}

	return *s.left, *s.right, true
}

// Equal reports structural equality: same kinds, same atomic names and
// pairwise-equal operands in the same order.
func (s Shape) Equal(t Shape) bool {
	return Equal(s, t)
}

// Equal reports whether a and b are structurally identical trees.
//
// Complexity: O(min(Size(a), Size(b))).
func Equal(a, b Shape) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindScalar:
		return true
	case KindAtomic:
		return a.name == b.name
	default:
		if a.left == b.left && a.right == b.right {
			return true
		}

		return Equal(*a.left, *b.left) && Equal(*a.right, *b.right)
	}
}

// Size returns the number of nodes in s. Leaves count as one.
func Size(s Shape) int {
	if !s.IsCompound() {
		return 1
	}

	return 1 + Size(*s.left) + Size(*s.right)
}

// Depth returns the height of s. Leaves have depth one.
func Depth(s Shape) int {
	if !s.IsCompound() {
		return 1
	}

	return 1 + max(Depth(*s.left), Depth(*s.right))
}

// Atoms returns the atomic unit names of s in left-to-right order,
// duplicates included.
func Atoms(s Shape) []string {
	var out []string
	var walk func(Shape)
	walk = func(n Shape) {
		switch n.kind {
		case KindAtomic:
			out = append(out, n.name)
		case KindProduct, KindQuotient:
			walk(*n.left)
			walk(*n.right)
		}
	}
	walk(s)

	return out
}

// Exponents returns the net power of every atomic unit in s, reading
// products as addition and quotients as subtraction of powers. Units whose
// powers cancel are omitted, so Exponents of m/m is empty.
//
// Two shapes with equal exponent maps describe the same physical unit,
// whatever their tree layout.
func Exponents(s Shape) map[string]int {
	out := make(map[string]int)
	var walk func(Shape, int)
	walk = func(n Shape, sign int) {
		switch n.kind {
		case KindAtomic:
			out[n.name] += sign
		case KindProduct:
			walk(*n.left, sign)
			walk(*n.right, sign)
		case KindQuotient:
			walk(*n.left, sign)
			walk(*n.right, -sign)
		}
	}
	walk(s, 1)
	for name, p := range out {
		if p == 0 {
			delete(out, name)
		}
	}

	return out
}
