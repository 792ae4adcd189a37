package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/loadstatus/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir       = "download_directory"
	KeyMaxParallel       = "max_parallel_downloads"
	KeyMaxRetries        = "max_retries"
	KeyAnimationDuration = "animation_duration_ms"
	KeyDefaultText       = "button_default_text"
	KeyLoadingText       = "button_loading_text"
	KeyLanguage          = "app_language"
)

// Default values
const (
	DefaultMaxParallel       = 2
	DefaultMaxRetries        = 1
	DefaultAnimationDuration = 3 * time.Second
	DefaultDefaultText       = "Download"
	DefaultLoadingText       = "We are loading"
	DefaultLanguage          = "system"
)

// Limits applied by the setters
const (
	MinParallel          = 1
	MaxParallel          = 10
	MaxRetriesLimit      = 5
	MinAnimationDuration = 500 * time.Millisecond
	MaxAnimationDuration = 60 * time.Second
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetMaxParallelDownloads returns the maximum number of parallel downloads
func (s *Settings) GetMaxParallelDownloads() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelDownloads(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelDownloads sets the maximum number of parallel downloads
func (s *Settings) SetMaxParallelDownloads(count int) {
	s.app.Preferences().SetInt(KeyMaxParallel, clamp(count, MinParallel, MaxParallel))
}

// GetMaxRetries returns how many times a failed transfer is retried
func (s *Settings) GetMaxRetries() int {
	return clamp(s.app.Preferences().IntWithFallback(KeyMaxRetries, DefaultMaxRetries), 0, MaxRetriesLimit)
}

// SetMaxRetries sets the retry count
func (s *Settings) SetMaxRetries(count int) {
	s.app.Preferences().SetInt(KeyMaxRetries, clamp(count, 0, MaxRetriesLimit))
}

// GetAnimationDuration returns the length of one loading animation cycle
func (s *Settings) GetAnimationDuration() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyAnimationDuration, int(DefaultAnimationDuration.Milliseconds()))
	return clampDuration(time.Duration(ms) * time.Millisecond)
}

// SetAnimationDuration sets the loading animation cycle length
func (s *Settings) SetAnimationDuration(d time.Duration) {
	s.app.Preferences().SetInt(KeyAnimationDuration, int(clampDuration(d).Milliseconds()))
}

// GetDefaultText returns the button text outside of Loading
func (s *Settings) GetDefaultText() string {
	return s.app.Preferences().StringWithFallback(KeyDefaultText, DefaultDefaultText)
}

// SetDefaultText sets the idle button text, empty restores the default
func (s *Settings) SetDefaultText(text string) {
	if text == "" {
		text = DefaultDefaultText
	}
	s.app.Preferences().SetString(KeyDefaultText, text)
}

// GetLoadingText returns the button text while Loading
func (s *Settings) GetLoadingText() string {
	return s.app.Preferences().StringWithFallback(KeyLoadingText, DefaultLoadingText)
}

// SetLoadingText sets the loading button text, empty restores the default
func (s *Settings) SetLoadingText(text string) {
	if text == "" {
		text = DefaultLoadingText
	}
	s.app.Preferences().SetString(KeyLoadingText, text)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ApplyEnv overrides preferences with values set in the environment
func (s *Settings) ApplyEnv(e Env) {
	if e.DownloadDir != "" {
		s.SetDownloadDirectory(e.DownloadDir)
	}
	if e.MaxParallel > 0 {
		s.SetMaxParallelDownloads(e.MaxParallel)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampDuration(d time.Duration) time.Duration {
	if d < MinAnimationDuration {
		return MinAnimationDuration
	}
	if d > MaxAnimationDuration {
		return MaxAnimationDuration
	}
	return d
}
