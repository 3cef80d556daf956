package domain

import (
	"errors"

	perr "patchgate/internal/platform/errors"
)

// Outcome names the result of a dispatch attempt
type Outcome string

// outcomes
const (
	OutcomeAccepted         Outcome = "accepted"
	OutcomeRejected         Outcome = "rejected"
	OutcomeTransportFailure Outcome = "transport_failure"
	OutcomeValidation       Outcome = "validation_error"
	OutcomeConfiguration    Outcome = "configuration_error"
	OutcomeUnknownTarget    Outcome = "unknown_target"
	OutcomeInternal         Outcome = "internal"
)

// OutcomeOf classifies err returned from Dispatch
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeAccepted
	}
	switch perr.CodeOf(err) {
	case perr.ErrorCodeUpstreamRejected:
		return OutcomeRejected
	case perr.ErrorCodeUpstreamTransport:
		return OutcomeTransportFailure
	case perr.ErrorCodeValidation:
		return OutcomeValidation
	case perr.ErrorCodeConfiguration:
		return OutcomeConfiguration
	case perr.ErrorCodeNotFound:
		return OutcomeUnknownTarget
	}
	return OutcomeInternal
}

// MissingFields returns the fields named by a validation failure, nil for anything else
func MissingFields(err error) []string {
	var mf *MissingFieldsError
	if errors.As(err, &mf) {
		return mf.Fields
	}
	return nil
}
