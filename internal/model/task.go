package model

import (
	"path/filepath"
	"strings"
	"time"
)

// TransferHandle identifies one transfer attempt inside the transfer service
type TransferHandle string

// Request describes a file to fetch
type Request struct {
	URL         string `json:"url" validate:"required,url,startswith=http"`
	FileName    string `json:"fileName" validate:"required,excludesall=/"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Transfer is the record kept by the transfer service for one handle
type Transfer struct {
	Handle      TransferHandle `json:"handle"`
	URL         string         `json:"url"`
	FileName    string         `json:"fileName"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      ServiceStatus  `json:"status"`
	BytesDone   int64          `json:"bytesDone"`
	BytesTotal  int64          `json:"bytesTotal"` // -1 if the server did not send a length
	Attempts    int            `json:"attempts"`
	OutputPath  string         `json:"outputPath"`
	LastError   string         `json:"lastError,omitempty"`
	StartedAt   time.Time      `json:"startedAt"`
	FinishedAt  time.Time      `json:"finishedAt"`
}

// Percent returns completion in 0..100, or -1 if the total size is unknown
func (t *Transfer) Percent() int {
	if t.Status == ServiceStatusSuccessful {
		return 100
	}
	if t.BytesTotal <= 0 {
		return -1
	}
	p := int(t.BytesDone * 100 / t.BytesTotal)
	if p > 100 {
		p = 100
	}
	return p
}

// GetDisplayTitle returns title, file name, or URL in order of preference
func (t *Transfer) GetDisplayTitle() string {
	if t.Title != "" && !strings.HasPrefix(t.Title, "http") {
		return t.Title
	}
	if t.FileName != "" {
		return t.FileName
	}
	if t.OutputPath != "" {
		return filepath.Base(t.OutputPath)
	}
	return t.URL
}

// NotificationPayload is handed to the detail view when a transfer ends.
// It is a value type; copies never alias.
type NotificationPayload struct {
	FileName string
	Status   TransferStatus
}

// NewNotificationPayload builds a payload
func NewNotificationPayload(fileName string, status TransferStatus) NotificationPayload {
	return NotificationPayload{FileName: fileName, Status: status}
}
