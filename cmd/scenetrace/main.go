// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scenetrace builds a retained scene described in a YAML
// document, plays the script of inputs and changes of the document
// over it, and prints a trace of every draw and widget event.
// Snapshots of the rendered surface can be saved along the way.
//
// Usage:
//
//	scenetrace [flags] scene.yaml
//	scenetrace settings
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/retained/base/errors"
	"cogentcore.org/retained/base/logx"
	"cogentcore.org/retained/raster"
	"cogentcore.org/retained/scene"
	"github.com/spf13/cobra"
)

// options are the flags of the root command.
type options struct {
	out   string
	clips bool
	watch bool

	verbose     bool
	veryVerbose bool
	quiet       bool
}

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "scenetrace [flags] scene.yaml",
		Short:        "Play a script of inputs over a retained scene and trace its updates",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(opts.veryVerbose, opts.verbose, opts.quiet)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			errors.Log(scene.LoadAllSettings())
			if opts.watch {
				return watch(cmd.Context(), args[0], opts, cmd.OutOrStdout())
			}
			return playFile(args[0], opts, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "", "save a snapshot of the final surface to this image file")
	f.BoolVar(&opts.clips, "clips", false, "also trace the clips set on the surface")
	f.BoolVarP(&opts.watch, "watch", "w", false, "play the document again every time it changes")
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&opts.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")
	cmd.AddCommand(newSettingsCmd())
	return cmd
}

// newSettingsCmd returns the command that saves the current settings,
// so that they can be edited.
func newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Save the current settings files and print where they are",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			errors.Log(scene.LoadAllSettings())
			for _, se := range scene.AllSettings {
				if err := scene.SaveSettings(se); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), se.Label()+":", se.Filename())
			}
			return nil
		},
	}
}

// playFile plays the document in the given file, writing the trace.
func playFile(filename string, opts *options, out io.Writer) error {
	doc, err := openDocument(filename)
	if err != nil {
		return err
	}
	p, err := newPlayer(doc, out)
	if err != nil {
		return err
	}
	p.dir = filepath.Dir(filename)
	p.clips = opts.clips
	if err := p.run(); err != nil {
		return err
	}
	if opts.out != "" {
		return raster.Save(p.canvas.Image, opts.out)
	}
	return nil
}
