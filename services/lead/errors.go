package lead

// Error codes surfaced on a failed submission attempt. Field-format and
// geo failures are carried per field in FieldErrors instead and never use
// these codes; everything here is a general, non-field failure except
// CodeValidation, which marks the presence of field errors.
const (
	CodeValidation         = "validationError"
	CodeSubmissionInFlight = "submissionInFlight"
	CodeChallengeUnavail   = "challengeUnavailable"
	CodeChallengeFailed    = "challengeFailed"
	CodeStoreUnconfigured  = "storeUnconfigured"
	CodeStoreWriteError    = "storeWriteError"
)
