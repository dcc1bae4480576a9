// seehuhn.de/go/pixdraw - a 2D pixel drawing toolkit
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command pixdraw renders a scene file to a PNG image.
//
// Usage:
//
//	pixdraw [-o out.png] [-scale n] [-v] [-watch] scene.yaml
//
// Scene files ending in .toml are read as TOML, all others as YAML (which
// includes JSON).  With -watch, the image is rendered again whenever the
// scene file changes, until the program is interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/image/draw"

	"seehuhn.de/go/pixdraw"
	"seehuhn.de/go/pixdraw/scenefile"
)

func main() {
	output := flag.String("o", "", "output file (default: scene name with .png extension)")
	scale := flag.Int("scale", 1, "integer upscaling factor")
	verbose := flag.Bool("v", false, "log every operation")
	watch := flag.Bool("watch", false, "render again when the scene file changes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] scene.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixdraw.SetLogger(logger)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *scale < 1 {
		logger.Error("invalid scale factor", "scale", *scale)
		os.Exit(2)
	}

	in := flag.Arg(0)
	out := *output
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}
	job := &job{in: in, out: out, scale: *scale, logger: logger}

	if err := job.render(); err != nil {
		logger.Error("render failed", "file", in, "err", err)
		if !*watch {
			os.Exit(1)
		}
	}

	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := job.watch(ctx); err != nil {
			logger.Error("watch failed", "err", err)
			os.Exit(1)
		}
	}
}

type job struct {
	in, out string
	scale   int
	logger  *slog.Logger
}

// render reads the scene file and writes the image.
func (j *job) render() error {
	doc, err := j.load()
	if err != nil {
		return err
	}

	c, sc, err := scenefile.Build(doc)
	if err != nil {
		return err
	}

	var img image.Image = c.Image()
	if j.scale > 1 {
		img = upscale(c.Image(), j.scale)
	}
	if err := writePNG(j.out, img); err != nil {
		return err
	}

	j.logger.Info("image written",
		"file", j.out,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
		"shapes", sc.Len())
	return nil
}

func (j *job) load() (*scenefile.Document, error) {
	f, err := os.Open(j.in)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var load func(io.Reader) (*scenefile.Document, error)
	switch strings.ToLower(filepath.Ext(j.in)) {
	case ".toml":
		load = scenefile.LoadTOML
	default:
		load = scenefile.Load
	}
	return load(f)
}

// watch renders the scene again after every change of the scene file.
// The containing directory is watched, so that the file may be replaced
// rather than rewritten.
func (j *job) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target := filepath.Clean(j.in)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	j.logger.Info("watching for changes", "file", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := j.render(); err != nil {
				j.logger.Error("render failed", "file", target, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				j.logger.Warn("events lost", "err", err)
				continue
			}
			return err
		}
	}
}

// upscale enlarges img by an integer factor, keeping hard pixel edges.
func upscale(img *image.RGBA, factor int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return nil
}
