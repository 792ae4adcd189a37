package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"

	"github.com/ytget/loadstatus/internal/config"
	"github.com/ytget/loadstatus/internal/model"
	"github.com/ytget/loadstatus/internal/platform"
	"github.com/ytget/loadstatus/internal/status"
	"github.com/ytget/loadstatus/internal/transfer"
)

var errUsage = errors.New("both -url and -name are required")

type options struct {
	url       string
	name      string
	dir       string
	storePath string
	retries   int
}

func main() {
	var opts options
	flag.StringVar(&opts.url, "url", "", "URL of the file to download")
	flag.StringVar(&opts.name, "name", "", "file name to save as")
	flag.StringVar(&opts.dir, "dir", "", "download directory (default: LOADSTATUS_DOWNLOAD_DIR or ~/Downloads)")
	flag.StringVar(&opts.storePath, "store", "", "transfer record store path (default: in memory)")
	flag.IntVar(&opts.retries, "retries", transfer.DefaultMaxRetries, "retries for temporary failures")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := run(ctx, opts, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		os.Exit(1)
	}
	if result != model.TransferSuccessful {
		os.Exit(1)
	}
}

// run downloads one file and reports the button states a UI would show
func run(ctx context.Context, opts options, out io.Writer) (model.TransferStatus, error) {
	if opts.url == "" || opts.name == "" {
		return model.TransferUnknown, errUsage
	}

	env, err := config.LoadEnv()
	if err != nil {
		return model.TransferUnknown, err
	}
	log := logs.GetLoggerFromString(env.LogLevel)

	dir := opts.dir
	if dir == "" {
		dir = env.DownloadDir
	}
	if dir == "" {
		if dir, err = platform.GetHomeDownloadsDir(); err != nil {
			return model.TransferUnknown, err
		}
	}

	store, err := transfer.OpenStore(log, opts.storePath)
	if err != nil {
		return model.TransferUnknown, err
	}
	defer store.Close()

	manager := transfer.NewManager(log, store, dir, transfer.WithRetries(opts.retries))
	defer manager.Close()

	changed := make(chan struct{}, 1)
	done := make(chan model.TransferHandle, 4)
	unsubscribeChanges := manager.SubscribeChanges(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribeChanges()
	unsubscribeCompletion := manager.SubscribeCompletion(func(h model.TransferHandle) {
		select {
		case done <- h:
		default:
		}
	})
	defer unsubscribeCompletion()

	handle, err := manager.Enqueue(ctx, model.Request{URL: opts.url, FileName: opts.name})
	if err != nil {
		return model.TransferUnknown, err
	}
	fmt.Fprintf(out, "%s: queued as %s\n", opts.name, handle)

	last := model.ButtonClicked
	for {
		select {
		case <-changed:
			code, found := manager.QueryStatus(handle)
			state, ok := status.Progress(code, found)
			if !ok || state == last {
				continue
			}
			last = state
			if rec, found := manager.Query(handle); found && rec.Percent() >= 0 {
				fmt.Fprintf(out, "%s: %s %d%%\n", opts.name, state, rec.Percent())
			} else {
				fmt.Fprintf(out, "%s: %s\n", opts.name, state)
			}
		case h := <-done:
			if h != handle {
				continue
			}
			result := status.Completion(manager.QueryStatus(handle))
			if rec, found := manager.Query(handle); found {
				if rec.LastError != "" {
					fmt.Fprintf(out, "%s: %s (%s)\n", opts.name, result, rec.LastError)
				} else {
					fmt.Fprintf(out, "%s: %s -> %s\n", opts.name, result, rec.OutputPath)
				}
			}
			return result, nil
		case <-ctx.Done():
			manager.Cancel(handle)
			return model.TransferUnknown, ctx.Err()
		}
	}
}
