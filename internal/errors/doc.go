// Package errors provides structured errors for genesys-dice.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// optional metadata. Codes survive wrapping, so a parse failure deep in the
// notation package still reads as InvalidArgument at the command line.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("unknown die %q", token)
//	err := errors.Internalf("source returned index %d for d%d", index, sides)
//
// Adding metadata:
//
//	err := errors.InvalidArgument("unknown die").
//	    WithMeta("expression", expr).
//	    WithMeta("position", pos)
//
// Wrapping errors:
//
//	if err != nil {
//	    return errors.Wrap(err, "failed to roll set")
//	}
//
// # Error Checking
//
//	if errors.IsInvalidArgument(err) {
//	    // bad roll expression or flag
//	}
//
//	code := errors.GetCode(err)
//	os.Exit(code.ExitCode())
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateEnum("LogLevel", cfg.LogLevel, levels, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Callers that serve rolls over gRPC convert at their boundary with
// ToGRPCError and FromGRPCError. Metadata is carried as a structpb.Struct
// status detail. StatusJSON renders the same status as JSON for the command
// line's JSON output.
//
// # Layer Guidelines
//
// Dice core:
//   - Reject bad counts, variants and sources with InvalidArgument
//   - Report a misbehaving source as Internal
//   - Panic only on broken table invariants
//
// Orchestrator layer:
//   - Validate inputs and config
//   - Pass parse errors through unchanged
//   - Wrap core errors with roll context
//
// Command line:
//   - Print the message, or StatusJSON with JSON output
//   - Exit with Code.ExitCode
package errors
