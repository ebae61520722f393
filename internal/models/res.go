package models

type EventResponse struct {
	Message string `json:"message"`
	Event   *Event `json:"event"`
}

type ErrorResponse struct {
	Message        string   `json:"message"`
	RequiredFields []string `json:"requiredFields,omitempty"`
	Errors         []string `json:"errors,omitempty"`
	RequestID      string   `json:"requestId,omitempty"`
}

func SuccessResponse(event *Event, message string) EventResponse {
	return EventResponse{
		Message: message,
		Event:   event,
	}
}

func MessageResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

func RequiredFieldsResponse(message string, fields []string) ErrorResponse {
	return ErrorResponse{
		Message:        message,
		RequiredFields: fields,
	}
}

func ValidationResponse(message string, errs []string) ErrorResponse {
	return ErrorResponse{
		Message: message,
		Errors:  errs,
	}
}
