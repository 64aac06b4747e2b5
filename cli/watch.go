package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
)

// watchAndCheck re-runs the compliance check whenever the bundle file
// changes, until interrupted. Individual failing checks do not stop the
// loop; only a watcher failure or a signal does.
func watchAndCheck(ctx *kong.Context, globals *Globals, filename string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file: editors that save
	// atomically replace the file, which drops a direct watch.
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filename, err)
	}

	printInfof(ctx.Stdout, "Watching %s", pathStyle.Render(filename))

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	checkOnce := func() {
		file := &FileOrStdin{Filename: filename}
		if err := runCheck(ctx, globals, file); err != nil {
			if _, ok := err.(*CommandError); !ok {
				printError(ctx.Stderr, err.Error())
			}
		}
		_, _ = fmt.Fprintln(ctx.Stdout)
	}

	checkOnce()

	// Debounce timer - editors often write files in multiple steps.
	const debounceDelay = 100 * time.Millisecond
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-signals:
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, checkOnce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("file watcher error: %v", err))
		}
	}
}
