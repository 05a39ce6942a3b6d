package constant

const (
	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"
)

const (
	JWT_TYPE_ACCESS  = "access"
	JWT_TYPE_REFRESH = "refresh"
)

// NDA failure reasons returned to the client so it can render the right
// prompt. "required" means no code was provided at all.
const (
	NdaReasonRequired = "required"
	NdaReasonInvalid  = "invalid"
	NdaReasonExpired  = "expired"
)
