package status

import "github.com/ytget/loadstatus/internal/model"

// Completion maps a service status code to the outcome reported on completion.
// found is false when the service has no record for the handle.
func Completion(code model.ServiceStatus, found bool) model.TransferStatus {
	if !found {
		return model.TransferUnknown
	}
	switch code {
	case model.ServiceStatusSuccessful:
		return model.TransferSuccessful
	case model.ServiceStatusFailed:
		return model.TransferFailed
	default:
		return model.TransferUnknown
	}
}

// Progress maps a service status code to the button state it implies.
// The second result is false when the code must not change the button.
func Progress(code model.ServiceStatus, found bool) (model.ButtonState, bool) {
	if !found {
		return model.ButtonCompleted, false
	}
	switch code {
	case model.ServiceStatusRunning:
		return model.ButtonLoading, true
	case model.ServiceStatusSuccessful, model.ServiceStatusFailed:
		return model.ButtonCompleted, true
	default:
		return model.ButtonCompleted, false
	}
}
