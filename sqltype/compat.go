package sqltype

// intRank orders each signed or unsigned integer family from narrowest to
// widest. Zero means the kind is not an integer.
func intRank(k Kind) int {
	switch k {
	case KindTinyInt, KindTinyIntUnsigned:
		return 1
	case KindSmallInt, KindSmallIntUnsigned:
		return 2
	case KindInt, KindIntUnsigned:
		return 3
	case KindBigInt, KindBigIntUnsigned:
		return 4
	default:
		return 0
	}
}

func isSignedInt(k Kind) bool {
	switch k {
	case KindTinyInt, KindSmallInt, KindInt, KindBigInt:
		return true
	default:
		return false
	}
}

func isUnsignedInt(k Kind) bool {
	switch k {
	case KindTinyIntUnsigned, KindSmallIntUnsigned, KindIntUnsigned, KindBigIntUnsigned:
		return true
	default:
		return false
	}
}

func isInt(k Kind) bool { return isSignedInt(k) || isUnsignedInt(k) }

// isNumeric covers every kind Boolean may widen into. Boolean itself is not
// numeric; nothing widens into Boolean.
func isNumeric(k Kind) bool {
	return isInt(k) || k == KindFloat || k == KindReal
}

// isStringLike covers the three kinds whose widths are interchangeable in the
// compatibility check.
func isStringLike(k Kind) bool {
	switch k {
	case KindCharacter, KindVarChar, KindClob:
		return true
	default:
		return false
	}
}

// CompatibleWith reports whether a value declared as t may be used where
// other is expected (an allowed trivial cast). The relation is directed:
// TinyInt widens into Int but Int does not narrow into TinyInt. The rules
// below are mutually exclusive; they are checked in priority order.
func (t Type) CompatibleWith(other Type) bool {
	switch {
	// Boolean widens into any numeric type.
	case t.Kind == KindBoolean && isNumeric(other.Kind):
		return true

	// Integers widen within their own signedness family.
	case isSignedInt(t.Kind) && isSignedInt(other.Kind):
		return intRank(t.Kind) <= intRank(other.Kind)
	case isUnsignedInt(t.Kind) && isUnsignedInt(other.Kind):
		return intRank(t.Kind) <= intRank(other.Kind)

	// Any integer widens into floating point, regardless of precision.
	case isInt(t.Kind) && (other.Kind == KindFloat || other.Kind == KindReal):
		return true

	// String-like types mix freely; width is the only criterion.
	case isStringLike(t.Kind) && isStringLike(other.Kind):
		return t.N <= other.N

	// Date and Time widen into DateTime; DateTime never narrows back.
	case (t.Kind == KindDate || t.Kind == KindTime) && other.Kind == KindDateTime:
		return true

	default:
		return t == other
	}
}
