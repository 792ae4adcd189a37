package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/ytget/loadstatus/internal/model"
	"github.com/ytget/loadstatus/internal/platform"
)

// Manager runs HTTP transfers in the background and keeps their records in a Store
type Manager struct {
	log              *slog.Logger
	store            *Store
	client           *http.Client
	validate         *validator.Validate
	downloadDir      string
	maxParallel      int
	maxRetries       int
	retryDelay       time.Duration
	progressInterval time.Duration

	baseCtx    context.Context
	baseCancel context.CancelFunc
	wg         sync.WaitGroup

	mu             sync.Mutex
	closed         bool
	activeCount    int
	queue          []model.TransferHandle
	cancels        map[model.TransferHandle]context.CancelFunc
	nextSubID      int
	changeSubs     map[int]func()
	completionSubs map[int]func(model.TransferHandle)
}

var _ Service = (*Manager)(nil)

// NewManager creates a transfer manager writing files into downloadDir
func NewManager(log *slog.Logger, store *Store, downloadDir string, opts ...Option) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		log:              log,
		store:            store,
		client:           &http.Client{},
		validate:         validator.New(validator.WithRequiredStructEnabled()),
		downloadDir:      downloadDir,
		maxParallel:      DefaultMaxParallel,
		maxRetries:       DefaultMaxRetries,
		retryDelay:       DefaultRetryDelay,
		progressInterval: DefaultProgressInterval,
		baseCtx:          ctx,
		baseCancel:       cancel,
		cancels:          make(map[model.TransferHandle]context.CancelFunc),
		changeSubs:       make(map[int]func()),
		completionSubs:   make(map[int]func(model.TransferHandle)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.failInterrupted()
	return m
}

// failInterrupted marks records left unfinished by a previous run as failed
func (m *Manager) failInterrupted() {
	records, err := m.store.List()
	if err != nil {
		m.log.Warn("Could not list transfers", "error", err)
		return
	}
	stale := lo.Filter(records, func(rec model.Transfer, _ int) bool {
		return !rec.Status.IsTerminal()
	})
	for _, rec := range stale {
		rec.Status = model.ServiceStatusFailed
		rec.LastError = "interrupted"
		rec.FinishedAt = time.Now()
		if err := m.store.Put(rec); err != nil {
			m.log.Warn("Could not update interrupted transfer", "handle", rec.Handle, "error", err)
		}
	}
	if len(stale) > 0 {
		m.log.Info("Marked interrupted transfers as failed", "count", len(stale))
	}
}

// Enqueue validates the request, stores a Pending record and schedules the transfer
func (m *Manager) Enqueue(ctx context.Context, req model.Request) (model.TransferHandle, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := m.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if strings.ContainsAny(req.FileName, `/\`) || req.FileName == "." || req.FileName == ".." {
		return "", fmt.Errorf("%w: file name %q is not a plain name", ErrInvalidRequest, req.FileName)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate handle: %w", err)
	}
	handle := model.TransferHandle(id.String())

	rec := model.Transfer{
		Handle:      handle,
		URL:         req.URL,
		FileName:    req.FileName,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.ServiceStatusPending,
		BytesTotal:  -1,
		OutputPath:  filepath.Join(m.downloadDir, req.FileName),
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return "", ErrClosed
	}
	if err := m.store.Put(rec); err != nil {
		m.mu.Unlock()
		return "", fmt.Errorf("failed to save transfer: %w", err)
	}
	m.queue = append(m.queue, handle)
	m.mu.Unlock()

	m.log.Info("Transfer enqueued", "handle", handle, "url", req.URL, "file", req.FileName)
	m.notifyChange()
	m.startNextPending()
	return handle, nil
}

// QueryStatus returns a fresh status read for handle
func (m *Manager) QueryStatus(handle model.TransferHandle) (model.ServiceStatus, bool) {
	rec, ok := m.Query(handle)
	if !ok {
		return "", false
	}
	return rec.Status, true
}

// Query returns the full record for handle
func (m *Manager) Query(handle model.TransferHandle) (model.Transfer, bool) {
	rec, ok, err := m.store.Get(handle)
	if err != nil {
		m.log.Warn("Transfer query failed", "handle", handle, "error", err)
		return model.Transfer{}, false
	}
	return rec, ok
}

// List returns every known record
func (m *Manager) List() ([]model.Transfer, error) {
	return m.store.List()
}

// Cancel stops the given transfers and removes their records
func (m *Manager) Cancel(handles ...model.TransferHandle) int {
	removed := 0

	m.mu.Lock()
	for _, handle := range handles {
		if cancel, ok := m.cancels[handle]; ok {
			cancel()
			delete(m.cancels, handle)
		}
		m.queue = lo.Without(m.queue, handle)

		existed, err := m.store.Delete(handle)
		if err != nil {
			m.log.Warn("Could not remove transfer", "handle", handle, "error", err)
			continue
		}
		if existed {
			removed++
		}
	}
	m.mu.Unlock()

	if removed > 0 {
		m.log.Info("Transfers cancelled", "count", removed)
		m.notifyChange()
	}
	return removed
}

// SubscribeChanges registers fn for the change signal
func (m *Manager) SubscribeChanges(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSubID
	m.nextSubID++
	m.changeSubs[id] = fn
	return func() {
		m.mu.Lock()
		delete(m.changeSubs, id)
		m.mu.Unlock()
	}
}

// SubscribeCompletion registers fn for the terminal signal
func (m *Manager) SubscribeCompletion(fn func(model.TransferHandle)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSubID
	m.nextSubID++
	m.completionSubs[id] = fn
	return func() {
		m.mu.Lock()
		delete(m.completionSubs, id)
		m.mu.Unlock()
	}
}

// Close cancels running transfers and waits for their goroutines
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	m.queue = nil
	m.mu.Unlock()

	m.baseCancel()
	m.wg.Wait()
}

// startNextPending starts queued transfers while there is capacity
func (m *Manager) startNextPending() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for !m.closed && m.activeCount < m.maxParallel && len(m.queue) > 0 {
		handle := m.queue[0]
		m.queue = m.queue[1:]

		ctx, cancel := context.WithCancel(m.baseCtx)
		m.cancels[handle] = cancel
		m.activeCount++
		m.wg.Add(1)
		go m.run(ctx, handle)
	}
}

// run executes one transfer until it succeeds, fails or is cancelled
func (m *Manager) run(ctx context.Context, handle model.TransferHandle) {
	defer func() {
		m.mu.Lock()
		if cancel, ok := m.cancels[handle]; ok {
			cancel()
			delete(m.cancels, handle)
		}
		m.activeCount--
		m.mu.Unlock()

		m.wg.Done()
		m.startNextPending()
	}()

	rec, ok, err := m.store.Get(handle)
	if err != nil || !ok {
		return
	}
	rec.StartedAt = time.Now()

	err = m.downloadWithRetry(ctx, &rec)
	if ctx.Err() != nil {
		m.log.Info("Transfer cancelled", "handle", handle)
		return
	}

	rec.FinishedAt = time.Now()
	if err != nil {
		rec.Status = model.ServiceStatusFailed
		rec.LastError = err.Error()
		m.log.Error("Transfer failed", "handle", handle, "error", err)
	} else {
		rec.Status = model.ServiceStatusSuccessful
		m.log.Info("Transfer completed", "handle", handle, "path", rec.OutputPath, "bytes", rec.BytesDone)
	}

	if !m.update(rec) {
		return
	}
	m.notifyChange()
	m.notifyCompletion(handle)
}

// downloadWithRetry attempts the download with backoff between attempts
func (m *Manager) downloadWithRetry(ctx context.Context, rec *model.Transfer) error {
	var lastErr error

	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 {
			rec.Status = model.ServiceStatusPaused
			if m.update(*rec) {
				m.notifyChange()
			}

			select {
			case <-time.After(m.retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
			m.log.Info("Retrying transfer", "handle", rec.Handle, "attempt", attempt+1)
		}

		rec.Attempts = attempt + 1
		err := m.fetch(ctx, rec)
		if err == nil {
			return nil
		}
		lastErr = err
		m.log.Warn("Transfer attempt failed", "handle", rec.Handle, "attempt", attempt+1, "error", err)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Temporary() {
			return err
		}
	}

	return lastErr
}

// fetch streams the URL into a temporary file and moves it into place
func (m *Manager) fetch(ctx context.Context, rec *model.Transfer) error {
	if err := platform.CreateDirectoryIfNotExists(m.downloadDir); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rec.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, URL: rec.URL}
	}

	rec.Status = model.ServiceStatusRunning
	rec.BytesDone = 0
	rec.BytesTotal = resp.ContentLength
	if !m.update(*rec) {
		return context.Canceled
	}
	m.notifyChange()

	tmp, err := os.CreateTemp(m.downloadDir, rec.FileName+".*.part")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	progress := &progressWriter{
		interval: m.progressInterval,
		onProgress: func(written int64) {
			rec.BytesDone = written
			if m.update(*rec) {
				m.notifyChange()
			}
		},
	}
	written, err := io.Copy(tmp, io.TeeReader(resp.Body, progress))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", rec.FileName, err)
	}
	if rec.BytesTotal > 0 && written != rec.BytesTotal {
		return fmt.Errorf("short body for %s: got %d of %d bytes", rec.FileName, written, rec.BytesTotal)
	}

	if err := os.Rename(tmp.Name(), rec.OutputPath); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", rec.FileName, err)
	}
	rec.BytesDone = written
	return nil
}

// update stores rec unless the transfer was cancelled meanwhile
func (m *Manager) update(rec model.Transfer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, tracked := m.cancels[rec.Handle]; !tracked {
		return false
	}
	if err := m.store.Put(rec); err != nil {
		m.log.Warn("Could not save transfer", "handle", rec.Handle, "error", err)
		return false
	}
	return true
}

// notifyChange calls every change subscriber outside the lock
func (m *Manager) notifyChange() {
	m.mu.Lock()
	subs := lo.Values(m.changeSubs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func (m *Manager) notifyCompletion(handle model.TransferHandle) {
	m.mu.Lock()
	subs := lo.Values(m.completionSubs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(handle)
	}
}

// progressWriter counts bytes and reports them at most once per interval
type progressWriter struct {
	written    int64
	last       time.Time
	interval   time.Duration
	onProgress func(written int64)
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	if now := time.Now(); now.Sub(p.last) >= p.interval {
		p.last = now
		p.onProgress(p.written)
	}
	return len(b), nil
}
