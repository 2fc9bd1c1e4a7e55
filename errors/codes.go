package errors

// ErrorCode is the application level error code returned to clients
type ErrorCode int32

const (
	ErrorCode_HTTP_OK           ErrorCode = 0
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1002
	ErrorCode_VALIDATION        ErrorCode = 1003
	ErrorCode_NOT_FOUND         ErrorCode = 1004
	ErrorCode_PAYLOAD_TOO_LARGE ErrorCode = 1005

	ErrorCode_MISSING_TRANSCRIPT ErrorCode = 2001
	ErrorCode_MISSING_MEDIA_FILE ErrorCode = 2002
	ErrorCode_PROCESSING_FAILED  ErrorCode = 2003

	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3001
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 3002
	ErrorCode_AI_QUOTA_EXCEEDED       ErrorCode = 3003

	ErrorCode_INTEGRATION_CACHE_FAILED ErrorCode = 4001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "HTTP_OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_VALIDATION:               "VALIDATION",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_PAYLOAD_TOO_LARGE:        "PAYLOAD_TOO_LARGE",
	ErrorCode_MISSING_TRANSCRIPT:       "MISSING_TRANSCRIPT",
	ErrorCode_MISSING_MEDIA_FILE:       "MISSING_MEDIA_FILE",
	ErrorCode_PROCESSING_FAILED:        "PROCESSING_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:  "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:   "AI_SERVICE_UNAVAILABLE",
	ErrorCode_AI_QUOTA_EXCEEDED:        "AI_QUOTA_EXCEEDED",
	ErrorCode_INTEGRATION_CACHE_FAILED: "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
