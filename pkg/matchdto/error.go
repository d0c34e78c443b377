package matchdto

// Error codes, surfaced verbatim to callers. Each failed operation maps to
// exactly one code.
const (
	CodeOutOfRange           = "OUT_OF_RANGE"
	CodeNoMatch              = "NO_MATCH"
	CodeNotYourTurn          = "NOT_YOUR_TURN"
	CodeIllegalMove          = "ILLEGAL_MOVE"
	CodeMatchAlreadyFinished = "MATCH_ALREADY_FINISHED"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeBadRequest           = "BAD_REQUEST"
	CodeInternal             = "INTERNAL"
)

// DomainError is the wire form of a failed operation.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func (e DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "arbiter error"
}
