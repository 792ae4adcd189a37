package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/mama165/sdk-go/logs"

	"github.com/ytget/loadstatus/internal/config"
	"github.com/ytget/loadstatus/internal/platform"
	"github.com/ytget/loadstatus/internal/transfer"
	"github.com/ytget/loadstatus/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.loadstatus"
	AppName = "LoadStatus"

	WindowWidth  = 480
	WindowHeight = 640
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the app together so deferred cleanup runs before exit
func run() error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(env.LogLevel)
	log.Info("LoadStatus starting", "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	settings.ApplyEnv(env)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Warn("Failed to ensure downloads dir", "dir", downloadsDir, "error", err)
	}

	storePath := env.StorePath
	if storePath == "" {
		if storePath, err = platform.DefaultStorePath(); err != nil {
			return err
		}
	}
	if err := platform.CreateDirectoryIfNotExists(storePath); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	store, err := transfer.OpenStore(log, storePath)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("Closing transfer store...")
		_ = store.Close()
	}()

	manager := transfer.NewManager(log, store, downloadsDir,
		transfer.WithMaxParallel(settings.GetMaxParallelDownloads()),
		transfer.WithRetries(settings.GetMaxRetries()),
	)
	defer manager.Close()

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	myWindow.SetMaster()

	ui.NewRootUI(log, myApp, myWindow, manager, settings)

	myWindow.ShowAndRun()
	return nil
}
