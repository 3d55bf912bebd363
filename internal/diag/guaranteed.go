package diag

// ErrorGuaranteed proves that at least one error-severity diagnostic was
// emitted. It carries no information: its value is being present in a
// result type, so "an error occurred" cannot be silently dropped by a
// caller. Only this package constructs it — everyone else obtains one
// from Bag.Emit, Bag.ErrorGuaranteed or a caught fatal.
type ErrorGuaranteed struct {
	_ struct{}
}

func guaranteed() ErrorGuaranteed {
	return ErrorGuaranteed{}
}

// Error makes the token usable as an ordinary error value at the driver
// boundary.
func (ErrorGuaranteed) Error() string {
	return "a compilation error was reported"
}
