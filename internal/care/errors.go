package care

import (
	"errors"
)

// Sentinel errors for the care-coordination core. The first four are
// expected, non-fatal outcomes the handlers translate into neutral HTTP
// responses; anything else coming out of this package is a store failure
// and must be surfaced to the caller unchanged.
var (
	// ErrEmptyContent rejects a message whose content trims to nothing.
	ErrEmptyContent = errors.New("care: message content is empty")

	// ErrNoActiveDoctor means the patient has no treatment history and so
	// no addressable doctor. Not a system fault.
	ErrNoActiveDoctor = errors.New("care: patient has no active doctor")

	// ErrCallNotFound means the nurse-call id does not exist.
	ErrCallNotFound = errors.New("care: nurse call not found")

	// ErrAlreadyClaimed means another nurse won the claim race. Expected
	// under load; never logged as an error.
	ErrAlreadyClaimed = errors.New("care: nurse call already claimed")

	// ErrNotRecipient rejects a read-flag update from anyone but the
	// message's receiver.
	ErrNotRecipient = errors.New("care: only the recipient can mark a message read")

	// ErrMessageNotFound means the message id does not exist.
	ErrMessageNotFound = errors.New("care: message not found")
)
