// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch plays the document, and again every time its file is written
// or replaced, until the context is done. Errors of a play are logged
// so that the next change can fix them.
func watch(ctx context.Context, filename string, opts *options, out io.Writer) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file, so the directory is watched
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	replay := func() {
		fmt.Fprintf(out, "== %s\n", filename)
		if err := playFile(filename, opts, out); err != nil {
			slog.Error("play failed", "file", filename, "err", err)
		}
	}
	replay()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if name, err := filepath.Abs(ev.Name); err != nil || name != abs {
				continue
			}
			replay()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching failed", "file", filename, "err", err)
		}
	}
}
