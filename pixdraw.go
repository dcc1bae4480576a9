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

// Package pixdraw implements scan conversion and clipping on an integer
// pixel grid.
//
// A [Canvas] holds the pixels. Lines, circular arcs and polygon outlines
// are stroked through a common style stage which applies the dash rhythm
// of a [LineStyle] and simulates the pen width by stamping disks.
// Polygon interiors are filled with an active edge table, connected
// regions are flood filled without recursion, and segments and polygons
// can be clipped against an axis-aligned window.
//
// There is no anti-aliasing: every operation either sets a pixel to a
// color or leaves it alone.
package pixdraw

//go:generate go run ./testcases/export -yaml testdata/scenes
//go:generate go run ./testcases/genpdf

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by pixdraw and its sub-packages.
// By default nothing is logged.  Passing nil restores the default.
//
// Only debug and warning messages are produced: debug messages describe
// individual operations (flood fill sizes, shapes removed by clipping),
// warnings report input which was ignored.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
// It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
