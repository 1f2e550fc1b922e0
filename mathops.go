package mathops

// DivideFallback is the value DivideSafe returns in place of performing a
// division by zero. It is deliberately indistinguishable from a legitimately
// computed zero quotient.
const DivideFallback = 0.0

// Add returns the sum of a and b. Overflow wraps per Go's two's-complement
// integer semantics; no guard is applied.
func Add(a, b int) int {
	return a + b
}

// Multiply returns the product of a and b. Same overflow stance as Add.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a / b, or ErrDivisionByZero (wrapped in an *OperationError)
// when b is zero. Use this variant when the caller must distinguish a
// computed zero from the division-by-zero case.
func Divide(a, b float64) (float64, error) {
	if b == 0.0 {
		return 0, newOperationError(OpDivide, "division by zero", ErrDivisionByZero)
	}
	return a / b, nil
}

// DivideSafe returns a / b when b is nonzero, and DivideFallback otherwise.
// It never fails and never produces an Inf or NaN from a zero denominator.
func DivideSafe(a, b float64) float64 {
	result, err := Divide(a, b)
	if err != nil {
		return DivideFallback
	}
	return result
}
