package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// DefaultDirPermissions is used for every directory the app creates
const DefaultDirPermissions = 0o755

// AppDirName names the per user cache directory of the app
const AppDirName = "loadstatus"

const (
	openCommand     = "open"
	explorerCommand = "explorer"
	xdgOpenCommand  = "xdg-open"

	macOSSelectFlag    = "-R"
	windowsSelectParam = "/select,"

	androidDownloadsDir = "/sdcard/Download"
	androidDownloadsURI = "content://com.android.externalstorage.documents/root/primary/Download"
)

// LinuxFileManagers are tried in order when xdg-open is missing
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// ErrNoFileManager is returned when nothing can show the file
var ErrNoFileManager = errors.New("no suitable file manager found")

// command runs an external program; tests replace it
var command = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// lookPath reports whether a program is installed; tests replace it
var lookPath = func(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	if isAndroid() {
		return androidDownloadsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// DefaultStorePath returns where transfer records are kept between runs
func DefaultStorePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user cache directory: %w", err)
	}
	return filepath.Join(cacheDir, AppDirName, "transfers"), nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
// where the platform supports selection.
func OpenFileInManager(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path is empty")
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	goos := runtime.GOOS
	if isAndroid() {
		goos = OSAndroid
	}
	return reveal(goos, absPath)
}

func reveal(goos, absPath string) error {
	dir := filepath.Dir(absPath)
	switch goos {
	case OSDarwin:
		return command(openCommand, macOSSelectFlag, absPath)
	case OSWindows:
		return command(explorerCommand, windowsSelectParam+absPath)
	case OSLinux:
		// Selection is not standardized on Linux, open the parent directory
		if err := command(xdgOpenCommand, dir); err == nil {
			return nil
		}
		for _, fm := range LinuxFileManagers {
			if lookPath(fm) {
				return command(fm, dir)
			}
		}
		return ErrNoFileManager
	case OSAndroid:
		if err := command("am", "start", "-a", "android.intent.action.VIEW", "-d", androidDownloadsURI); err == nil {
			return nil
		}
		if err := command("am", "start", "-a", "android.intent.action.VIEW", "-d", "file://"+dir); err == nil {
			return nil
		}
		return ErrNoFileManager
	default:
		return fmt.Errorf("unsupported operating system: %s", goos)
	}
}

func isAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}
