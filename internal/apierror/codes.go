package apierror

// Error type URIs following the urn:driftlog:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:driftlog:error:validation"

	// TypeDataIntegrity indicates a stored record failed its shape check (500).
	// This is a persistence-layer fault, not bad caller input.
	TypeDataIntegrity = "urn:driftlog:error:data_integrity"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:driftlog:error:not_found"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:driftlog:error:unauthorized"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:driftlog:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:driftlog:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation    = "Validation Error"
	TitleDataIntegrity = "Data Integrity Error"
	TitleNotFound      = "Resource Not Found"
	TitleUnauthorized  = "Authentication Required"
	TitleInternal      = "Internal Server Error"
	TitleBadRequest    = "Bad Request"
)
