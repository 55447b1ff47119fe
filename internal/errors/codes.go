package errors

// Code classifies an error
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Process exit statuses used by the command line
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitSoftware = 70
)

// ExitCode returns the process exit status for the code.
// Bad input exits with a usage status, broken invariants with a software status.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return ExitOK
	case CodeInvalidArgument, CodeOutOfRange, CodeNotFound:
		return ExitUsage
	case CodeInternal:
		return ExitSoftware
	default:
		return ExitFailure
	}
}
