package platform

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	if isAndroid() {
		t.Skip("desktop layout only")
	}
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}
	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestDefaultStorePath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path, err := DefaultStorePath()
	if err != nil {
		t.Fatalf("DefaultStorePath() error = %v", err)
	}
	if filepath.Base(path) != "transfers" || filepath.Base(filepath.Dir(path)) != AppDirName {
		t.Errorf("Unexpected store path: %s", path)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	err := OpenFileInManager(filepath.Join(t.TempDir(), "nonexistent.zip"))
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	if err := OpenFileInManager(""); err == nil {
		t.Error("Expected error for empty path")
	}
}

type recordedCall struct {
	name string
	args []string
}

func stubCommands(t *testing.T, failing map[string]bool, installed map[string]bool) *[]recordedCall {
	t.Helper()
	var calls []recordedCall
	origCommand, origLookPath := command, lookPath
	command = func(name string, args ...string) error {
		calls = append(calls, recordedCall{name, args})
		if failing[name] {
			return errors.New("exit status 1")
		}
		return nil
	}
	lookPath = func(name string) bool { return installed[name] }
	t.Cleanup(func() {
		command, lookPath = origCommand, origLookPath
	})
	return &calls
}

func TestReveal_PerPlatform(t *testing.T) {
	file := filepath.Join("/data", "dl", "glide-master.zip")
	tests := []struct {
		goos string
		want recordedCall
	}{
		{OSDarwin, recordedCall{"open", []string{"-R", file}}},
		{OSWindows, recordedCall{"explorer", []string{"/select," + file}}},
		{OSLinux, recordedCall{"xdg-open", []string{filepath.Dir(file)}}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			calls := stubCommands(t, nil, nil)
			if err := reveal(tt.goos, file); err != nil {
				t.Fatalf("reveal() error = %v", err)
			}
			if len(*calls) != 1 || !reflect.DeepEqual((*calls)[0], tt.want) {
				t.Errorf("reveal() calls = %+v, want %+v", *calls, tt.want)
			}
		})
	}
}

func TestReveal_LinuxFallsBackToInstalledManager(t *testing.T) {
	calls := stubCommands(t, map[string]bool{"xdg-open": true}, map[string]bool{"thunar": true})

	if err := reveal(OSLinux, "/data/dl/a.zip"); err != nil {
		t.Fatalf("reveal() error = %v", err)
	}
	last := (*calls)[len(*calls)-1]
	if last.name != "thunar" {
		t.Errorf("Expected thunar fallback, got %s", last.name)
	}
}

func TestReveal_LinuxWithoutManager(t *testing.T) {
	stubCommands(t, map[string]bool{"xdg-open": true}, nil)

	if err := reveal(OSLinux, "/data/dl/a.zip"); !errors.Is(err, ErrNoFileManager) {
		t.Errorf("Expected ErrNoFileManager, got %v", err)
	}
}

func TestReveal_UnsupportedOS(t *testing.T) {
	stubCommands(t, nil, nil)
	if err := reveal("plan9", "/a.zip"); err == nil {
		t.Error("Expected error for unsupported OS")
	}
}
