package wave

// HistoryError represents history persistence errors
type HistoryError struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Code  string `json:"code"`
	Cause error  `json:"-"`
}

// Common error codes
const (
	ErrCodeRead   = "READ_FAILED"
	ErrCodeWrite  = "WRITE_FAILED"
	ErrCodeDecode = "DECODE_FAILED"
	ErrCodeEncode = "ENCODE_FAILED"
)

func (e *HistoryError) Error() string {
	msg := e.Op + " " + e.Path + ": " + e.Code
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *HistoryError) Unwrap() error {
	return e.Cause
}

// NewHistoryError creates a new history persistence error
func NewHistoryError(op, path, code string, cause error) *HistoryError {
	return &HistoryError{
		Op:    op,
		Path:  path,
		Code:  code,
		Cause: cause,
	}
}
