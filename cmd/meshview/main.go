// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshview loads polygon meshes into a scene and shows
// the scene as a table, either printed or in an interactive
// terminal view.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/meshview/base/errors"
	"cogentcore.org/meshview/base/logx"
	"cogentcore.org/meshview/config"
	"cogentcore.org/meshview/mesh"
	"cogentcore.org/meshview/scene"
	"cogentcore.org/meshview/sceneview"
	"cogentcore.org/meshview/termview"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// options are the command line options shared by all commands.
type options struct {
	configFile  string
	veryVerbose bool
	verbose     bool
	quiet       bool
	language    string
	logFile     string

	settings *config.Settings

	// logOut is the open --log file, if any.
	logOut *os.File
}

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "meshview",
		Short:        "Load polygon meshes and show them as a table",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return o.closeLog()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.configFile, "config", config.DefaultFile, "settings file")
	pf.BoolVar(&o.veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "only show errors")
	pf.StringVar(&o.language, "lang", "", "language of the table labels (default from settings)")
	pf.StringVar(&o.logFile, "log", "", "write log messages to this file instead of standard error")

	root.AddCommand(newInfoCmd(o), newViewCmd(o), newConvertCmd(o), newSettingsCmd(o))
	return root
}

// setup reads the settings and configures logging.
func (o *options) setup(stderr io.Writer) error {
	o.settings = config.New()
	if err := o.settings.Open(o.configFile); err != nil {
		return err
	}
	if o.language != "" {
		o.settings.Language = o.language
	}
	lg := o.settings.Log
	logx.UserLevel = logx.LevelFromFlags(o.veryVerbose || lg.VeryVerbose, o.verbose || lg.Verbose, o.quiet || lg.Quiet)
	w := stderr
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		o.logOut = f
		w = f
	}
	slog.SetDefault(slog.New(logx.NewHandler(w, logx.UserLevel)))
	return nil
}

// closeLog closes the --log file, if any, sending further
// log messages to standard error.
func (o *options) closeLog() error {
	if o.logOut == nil {
		return nil
	}
	slog.SetDefault(slog.New(logx.NewHandler(os.Stderr, logx.UserLevel)))
	err := o.logOut.Close()
	o.logOut = nil
	return err
}

// newScene returns a new scene using the settings,
// with the given files opened in it.
func (o *options) newScene(files []string) (*scene.Scene, error) {
	sc := scene.New()
	o.settings.Apply(sc)
	opts := o.settings.AddOptions()
	var errs []error
	for _, fn := range files {
		if _, err := sc.Open(fn, opts...); err != nil {
			errs = append(errs, err)
		}
	}
	return sc, errors.Join(errs...)
}

func newInfoCmd(o *options) *cobra.Command {
	var erase, duplicate []int
	var png string
	cmd := &cobra.Command{
		Use:   "info FILE...",
		Short: "Print the table and bounding box of the given mesh files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := o.newScene(args)
			errors.Log(err)
			for _, i := range duplicate {
				if _, err := sc.Duplicate(i); err != nil {
					return err
				}
			}
			for _, i := range erase {
				if _, err := sc.Erase(i); err != nil {
					return err
				}
			}
			t := sceneview.NewTable(sc, o.settings.Language)
			d := sceneview.NewDelegate(t, nil)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, termview.Render(t, d))
			fmt.Fprintf(out, "\nbounds %v\n", sc.BBox())
			if png != "" {
				if err := saveSnapshot(t, d, png); err != nil {
					return err
				}
			}
			if sc.Len() == 0 {
				return fmt.Errorf("meshview: no mesh could be loaded")
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&duplicate, "duplicate", nil, "duplicate the entries at these indexes, before erasing")
	f.IntSliceVar(&erase, "erase", nil, "erase the entries at these indexes, in order")
	f.StringVar(&png, "png", "", "save an image of the color and activation cells to this file")
	return cmd
}

func newViewCmd(o *options) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "view FILE...",
		Short: "Show the given mesh files in an interactive table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.logFile == "" {
				slog.SetDefault(slog.New(logx.NewHandler(io.Discard, logx.UserLevel)))
			}
			sc, err := o.newScene(args)
			if err != nil {
				return err
			}
			defer sc.Close()
			m := termview.New(sceneview.NewTable(sc, o.settings.Language), &termview.PaletteDialog{})
			if watch || o.settings.Watch {
				w, err := scene.NewWatcher()
				if err != nil {
					return err
				}
				defer w.Close()
				if err := w.AddScene(sc); err != nil {
					return err
				}
				m.Watcher = w
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
			return err
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload meshes when their files change")
	return cmd
}

func newConvertCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT.off",
		Short: "Convert a mesh file to the OFF format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := o.newScene(args[:1])
			if err != nil {
				return err
			}
			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			if err := mesh.WriteOFF(f, sc.Mesh(0)); err != nil {
				return err
			}
			slog.Info("converted", "from", args[0], "to", args[1], "mesh", sc.Mesh(0).String())
			return f.Close()
		},
	}
}

func newSettingsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "settings [FILE]",
		Short: "Save the current settings, to the settings file by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := o.configFile
			if len(args) > 0 {
				fn = args[0]
			}
			if err := o.settings.Save(fn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved settings to", fn)
			return nil
		},
	}
}
