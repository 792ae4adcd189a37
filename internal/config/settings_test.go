package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	if got := settings.GetDownloadDirectory(); got != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, got)
	}
}

func TestMaxParallelDownloads(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetMaxParallelDownloads(); got != DefaultMaxParallel {
		t.Errorf("Expected default max parallel %d, got %d", DefaultMaxParallel, got)
	}

	settings.SetMaxParallelDownloads(5)
	if got := settings.GetMaxParallelDownloads(); got != 5 {
		t.Errorf("Expected max parallel 5, got %d", got)
	}

	settings.SetMaxParallelDownloads(0) // Should be clamped to 1
	if settings.GetMaxParallelDownloads() != 1 {
		t.Error("Max parallel should be clamped to minimum 1")
	}

	settings.SetMaxParallelDownloads(15) // Should be clamped to 10
	if settings.GetMaxParallelDownloads() != 10 {
		t.Error("Max parallel should be clamped to maximum 10")
	}
}

func TestMaxRetries(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetMaxRetries(); got != DefaultMaxRetries {
		t.Errorf("Expected default retries %d, got %d", DefaultMaxRetries, got)
	}

	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{3, 3},
		{-2, 0},
		{9, MaxRetriesLimit},
	}
	for _, tt := range tests {
		settings.SetMaxRetries(tt.in)
		if got := settings.GetMaxRetries(); got != tt.want {
			t.Errorf("SetMaxRetries(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAnimationDuration(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetAnimationDuration(); got != DefaultAnimationDuration {
		t.Errorf("Expected default duration %v, got %v", DefaultAnimationDuration, got)
	}

	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{1500 * time.Millisecond, 1500 * time.Millisecond},
		{10 * time.Millisecond, MinAnimationDuration},
		{2 * time.Minute, MaxAnimationDuration},
	}
	for _, tt := range tests {
		settings.SetAnimationDuration(tt.in)
		if got := settings.GetAnimationDuration(); got != tt.want {
			t.Errorf("SetAnimationDuration(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestButtonTexts(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetDefaultText(); got != DefaultDefaultText {
		t.Errorf("Expected default text %q, got %q", DefaultDefaultText, got)
	}
	if got := settings.GetLoadingText(); got != DefaultLoadingText {
		t.Errorf("Expected loading text %q, got %q", DefaultLoadingText, got)
	}

	settings.SetDefaultText("Get it")
	settings.SetLoadingText("Fetching")
	if settings.GetDefaultText() != "Get it" || settings.GetLoadingText() != "Fetching" {
		t.Error("Custom button texts were not stored")
	}

	settings.SetDefaultText("")
	settings.SetLoadingText("")
	if settings.GetDefaultText() != DefaultDefaultText || settings.GetLoadingText() != DefaultLoadingText {
		t.Error("Empty texts should restore the defaults")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[lang]; !ok {
			t.Errorf("Language option %s should be available", lang)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetDownloadDirectory("/from/prefs")
	settings.SetMaxParallelDownloads(3)

	settings.ApplyEnv(Env{})
	if settings.GetDownloadDirectory() != "/from/prefs" || settings.GetMaxParallelDownloads() != 3 {
		t.Error("Empty environment should leave preferences untouched")
	}

	settings.ApplyEnv(Env{DownloadDir: "/from/env", MaxParallel: 42})
	if got := settings.GetDownloadDirectory(); got != "/from/env" {
		t.Errorf("Expected env download dir, got %s", got)
	}
	if got := settings.GetMaxParallelDownloads(); got != MaxParallel {
		t.Errorf("Expected clamped env max parallel %d, got %d", MaxParallel, got)
	}
}
