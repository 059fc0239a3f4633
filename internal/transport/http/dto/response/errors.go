package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrAuthenticationFailed = ErrorResponse{
		Status: "error",
		Error:  "authentication_failed",
	}

	ErrForbidden = ErrorResponse{
		Status:  "error",
		Error:   "forbidden",
		Details: "Administrator access required",
	}

	ErrNotFound = ErrorResponse{
		Status:  "error",
		Error:   "not_found",
		Details: "Resource not found",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}
)
