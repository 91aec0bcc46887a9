// Package errors provides the coded error type shared by every layer of charm-tracker.
//
// Errors carry a Code, a user-facing Message, an optional Cause, and metadata:
//
//	err := errors.NotFound("charm not found").WithMeta("charm_id", id)
//	err := errors.InvalidArgumentf("line %d: expected %d fields", n, 12)
//
// Wrapping keeps the code of an inner *Error:
//
//	if err := repo.Save(ctx, in); err != nil {
//	    return errors.Wrap(err, "failed to save snapshot")
//	}
//
// Persistence failures use CodeUnavailable so callers can tell a failed flush
// apart from a rejected command:
//
//	if errors.IsUnavailable(err) {
//	    // the in-memory store still holds the mutation
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("skills[0].level", level, 1, maxLevel, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for a missing snapshot key and DataLoss for an undecodable one
//   - Wrap driver errors with the key in the message
//
// Orchestrator layer:
//   - Validate commands and return InvalidArgument
//   - Wrap repository failures with CodeUnavailable
//
// CLI layer:
//   - Report invalid configuration as FailedPrecondition
//   - Print the GetMessage chain and exit with GetCode(err).ExitCode()
package errors
