package agent

// Error kinds returned by Generate. Callers branch on Kind; Raw carries the
// diagnostic payload appropriate to the failure.
const (
	// KindNoCredentials: no API key configured. Returned before any
	// network activity.
	KindNoCredentials = "no credentials configured"

	// KindCallFailed: the provider call failed (network, auth, quota,
	// malformed request). Raw holds the underlying error text.
	KindCallFailed = "LLM call failed"

	// KindNoJSON: no JSON-shaped substring found in the model output.
	// Raw holds the full raw response for debugging.
	KindNoJSON = "could not find JSON in model output"

	// KindDecode: a JSON-shaped substring was found but failed to parse.
	// Raw holds the extracted substring, not the full response.
	KindDecode = "JSON decode error"
)

// Error is the single failure shape produced by the reflection agent. It is
// never fatal to the caller; Generate returns either a complete Reflection or
// one of these.
type Error struct {
	Kind string
	Raw  string
}

func (e *Error) Error() string {
	return e.Kind
}
