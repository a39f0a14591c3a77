package catalog

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// FileChangedMsg is sent when the watched catalog file was written
type FileChangedMsg struct {
	Path string
}

// WatchErrorMsg is sent when the watcher could not be set up or failed
type WatchErrorMsg struct {
	Path string
	Err  error
}

// WatchCmd watches path and returns a command that blocks until the file is
// written or recreated. It returns nil once ctx is done. Re-issue the command
// after each FileChangedMsg to keep watching.
func WatchCmd(ctx context.Context, path string) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return WatchErrorMsg{Path: path, Err: fmt.Errorf("create watcher: %w", err)}
		}
		defer watcher.Close()

		if err := watcher.Add(path); err != nil {
			return WatchErrorMsg{Path: path, Err: fmt.Errorf("watch file: %w", err)}
		}

		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return WatchErrorMsg{Path: path, Err: fmt.Errorf("watcher closed")}
				}
				// Some editors replace the file instead of writing it
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return FileChangedMsg{Path: path}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return WatchErrorMsg{Path: path, Err: fmt.Errorf("watcher closed")}
				}
				return WatchErrorMsg{Path: path, Err: err}
			}
		}
	}
}
