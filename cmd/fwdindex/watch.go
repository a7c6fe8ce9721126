package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// debounceWindow collapses the burst of events an editor emits on save.
const debounceWindow = 200 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	var edgeList bool

	cmd := &cobra.Command{
		Use:   "watch <graph-file>",
		Short: "Re-run analyze every time the graph file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), args[0], edgeList, cmd.OutOrStdout())
		},
	}
	addSearchFlags(cmd.Flags())
	cmd.Flags().BoolVar(&edgeList, "edge-list", false, "input is a numbered edge list instead of adjacency lines")

	return cmd
}

// watch analyses path once, then again after every debounced write, create
// or rename of it, until ctx is done. Failed runs are logged and the watch
// continues, since a file caught mid-save may not parse.
func (a *app) watch(ctx context.Context, path string, edgeList bool, stdout io.Writer) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	// Editors replace files on save, so watch the directory.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	run := func() {
		if err := a.analyze(ctx, path, edgeList, stdout); err != nil && ctx.Err() == nil {
			a.logger.Warn("analysis failed", zap.String("source", path), zap.Error(err))
		}
	}
	run()
	a.logger.Info("watching", zap.String("file", abs))

	timer := time.NewTimer(debounceWindow)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			a.logger.Debug("change detected", zap.String("op", ev.Op.String()))
			timer.Reset(debounceWindow)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watcher error", zap.Error(err))
		case <-timer.C:
			run()
		}
	}
}
