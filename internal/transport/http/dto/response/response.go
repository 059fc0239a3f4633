// Package response holds the JSON envelopes every handler answers with.
package response

const (
	statusSuccess = "success"
	statusError   = "error"
)

type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{Status: statusSuccess, Data: data}
}

// MessageResponse is a success envelope without a payload.
func MessageResponse(msg string) Response {
	return Response{Status: statusSuccess, Message: msg}
}

func ErrorResponseWithDetails(code, details string) ErrorResponse {
	return ErrorResponse{Status: statusError, Error: code, Details: details}
}
