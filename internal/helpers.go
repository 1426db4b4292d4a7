package internal

// Panics if given non-nil error.
// Should be used only in case of non-recoverable developer error, e.g. static command wiring.
func PanicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
