package domain

// Result is the uniform outcome of every mutating store operation.
// Failures are reported here rather than as errors; storage-level I/O
// problems are logged inside the stores and never reach callers.
type Result struct {
	Success bool   `json:"success"` // Whether the operation succeeded
	Message string `json:"message"` // Human-readable outcome message
}

// OK builds a successful result
func OK(message string) Result {
	return Result{Success: true, Message: message}
}

// Fail builds a failed result
func Fail(message string) Result {
	return Result{Success: false, Message: message}
}
