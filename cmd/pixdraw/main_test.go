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

package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestUpscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	red := color.RGBA{255, 0, 0, 255}
	src.SetRGBA(1, 0, red)

	dst := upscale(src, 3)
	if dst.Bounds().Dx() != 6 || dst.Bounds().Dy() != 3 {
		t.Fatalf("got size %v", dst.Bounds().Size())
	}
	for y := range 3 {
		for x := range 6 {
			want := color.RGBA{}
			if x >= 3 {
				want = red
			}
			if got := dst.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	scenes := map[string]string{
		"a.yaml": "width: 10\nheight: 8\nsteps:\n  - line: {from: [0, 4], to: [9, 4]}\n",
		"b.toml": "width = 10\nheight = 8\n\n[[steps]]\n[steps.line]\nfrom = [0, 4]\nto = [9, 4]\n",
	}
	for name, src := range scenes {
		in := filepath.Join(dir, name)
		if err := os.WriteFile(in, []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
		out := filepath.Join(dir, name+".png")

		j := &job{in: in, out: out, scale: 2, logger: logger}
		if err := j.render(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		f, err := os.Open(out)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 16 {
			t.Errorf("%s: image size %v, want 20x16", name, img.Bounds().Size())
		}
		if r, _, _, _ := img.At(10, 8).RGBA(); r != 0 {
			t.Errorf("%s: line pixel is not black", name)
		}
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("width: 10\nheight: 8\nwidht: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	j := &job{in: bad, out: filepath.Join(dir, "bad.png"), scale: 1, logger: logger}
	if err := j.render(); err == nil {
		t.Error("invalid scene was rendered")
	}
}
