package model

import "testing"

func TestServiceStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   ServiceStatus
		expected bool
	}{
		{ServiceStatusPending, false},
		{ServiceStatusRunning, true},
		{ServiceStatusPaused, true},
		{ServiceStatusSuccessful, false},
		{ServiceStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("ServiceStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestServiceStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   ServiceStatus
		expected bool
	}{
		{ServiceStatusPending, false},
		{ServiceStatusRunning, false},
		{ServiceStatusPaused, false},
		{ServiceStatusSuccessful, true},
		{ServiceStatusFailed, true},
		{ServiceStatus("bogus"), false},
	}

	for _, test := range tests {
		result := test.status.IsTerminal()
		if result != test.expected {
			t.Errorf("ServiceStatus(%s).IsTerminal() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestParseTransferStatus(t *testing.T) {
	tests := []struct {
		text     string
		expected TransferStatus
	}{
		{"Successful", TransferSuccessful},
		{"Failed", TransferFailed},
		{"Unknown", TransferUnknown},
		{"", TransferUnknown},
		{"successful", TransferUnknown},
	}

	for _, test := range tests {
		if result := ParseTransferStatus(test.text); result != test.expected {
			t.Errorf("ParseTransferStatus(%q) = %s, expected %s", test.text, result, test.expected)
		}
	}
}

func TestButtonState_String(t *testing.T) {
	if ButtonLoading.String() != "Loading" {
		t.Errorf("ButtonLoading.String() = %s, expected Loading", ButtonLoading)
	}
	if ButtonState(42).String() != "Unknown" {
		t.Errorf("out of range state should print Unknown, got %s", ButtonState(42))
	}

	var zero ButtonState
	if zero != ButtonCompleted {
		t.Errorf("zero ButtonState should be Completed, got %s", zero)
	}
}
