package model

// ServiceStatus is the status code reported by the transfer service for a single transfer
type ServiceStatus string

const (
	// ServiceStatusPending means the transfer is queued but not started
	ServiceStatusPending ServiceStatus = "Pending"

	// ServiceStatusRunning means bytes are being transferred
	ServiceStatusRunning ServiceStatus = "Running"

	// ServiceStatusPaused means the transfer is waiting before a retry
	ServiceStatusPaused ServiceStatus = "Paused"

	// ServiceStatusSuccessful means the transfer finished and the file is in place
	ServiceStatusSuccessful ServiceStatus = "Successful"

	// ServiceStatusFailed means the transfer gave up
	ServiceStatusFailed ServiceStatus = "Failed"
)

// String returns the string representation of ServiceStatus
func (s ServiceStatus) String() string {
	return string(s)
}

// IsActive returns true if the transfer holds a parallel slot
func (s ServiceStatus) IsActive() bool {
	return s == ServiceStatusRunning || s == ServiceStatusPaused
}

// IsTerminal returns true if the status will not change any more
func (s ServiceStatus) IsTerminal() bool {
	return s == ServiceStatusSuccessful || s == ServiceStatusFailed
}

// TransferStatus is the outcome of a transfer as shown to the user
type TransferStatus string

const (
	TransferSuccessful TransferStatus = "Successful"
	TransferFailed     TransferStatus = "Failed"
	TransferUnknown    TransferStatus = "Unknown"
)

// String returns the status text
func (s TransferStatus) String() string {
	return string(s)
}

// ParseTransferStatus converts a status text back into a TransferStatus.
// Unrecognized text yields TransferUnknown.
func ParseTransferStatus(text string) TransferStatus {
	switch TransferStatus(text) {
	case TransferSuccessful:
		return TransferSuccessful
	case TransferFailed:
		return TransferFailed
	default:
		return TransferUnknown
	}
}

// ButtonState is the visual state of the loading button
type ButtonState int

const (
	// ButtonCompleted is the idle state, the only one accepting clicks
	ButtonCompleted ButtonState = iota
	// ButtonClicked means a request was accepted but the transfer is not running yet
	ButtonClicked
	// ButtonLoading means a transfer is running and the button animates
	ButtonLoading
)

func (s ButtonState) String() string {
	switch s {
	case ButtonCompleted:
		return "Completed"
	case ButtonClicked:
		return "Clicked"
	case ButtonLoading:
		return "Loading"
	default:
		return "Unknown"
	}
}
