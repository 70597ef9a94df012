package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

// gradient returns a w x h image whose top row is red and bottom row is blue.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{R: 255, A: 255}
			if y == h-1 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func writeImage(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	var err error
	if strings.HasSuffix(name, ".bmp") {
		err = bmp.Encode(&buf, img)
	} else {
		err = png.Encode(&buf, img)
	}
	if err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDecodeFlipsVertically(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"planet.png", "planet.bmp"} {
		t.Run(name, func(t *testing.T) {
			path := writeImage(t, dir, name, gradient(4, 3))
			img, err := DecodeFile(path, 0)
			if err != nil {
				t.Fatalf("DecodeFile: %v", err)
			}
			if img.Bounds() != image.Rect(0, 0, 4, 3) {
				t.Fatalf("bounds = %v", img.Bounds())
			}
			// Row 0 now holds the picture's bottom row.
			if got := img.RGBAAt(0, 0); got.B != 255 || got.R != 0 {
				t.Errorf("first row pixel = %v, want blue", got)
			}
			if got := img.RGBAAt(3, 2); got.R != 255 || got.B != 0 {
				t.Errorf("last row pixel = %v, want red", got)
			}
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not an image"), 0)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png"), 0)
	if !errors.Is(err, ErrDecode) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrDecode wrapping ErrNotExist, got %v", err)
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h, max    int
		wantW, wantH int
	}{
		{100, 50, 0, 100, 50},
		{100, 50, 200, 100, 50},
		{400, 200, 100, 100, 50},
		{200, 400, 100, 50, 100},
		{1000, 1, 10, 10, 1},
	}
	for _, tt := range tests {
		w, h := fitSize(tt.w, tt.h, tt.max)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fitSize(%d, %d, %d) = %dx%d, want %dx%d", tt.w, tt.h, tt.max, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestFitDownscales(t *testing.T) {
	img := Fit(gradient(64, 32), 16)
	if img.Bounds() != image.Rect(0, 0, 16, 8) {
		t.Errorf("bounds = %v, want 16x8", img.Bounds())
	}
}

func TestFitNormalizesOrigin(t *testing.T) {
	src := gradient(8, 8).SubImage(image.Rect(2, 2, 6, 6))
	img := Fit(src, 0)
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("bounds = %v, want origin at zero", img.Bounds())
	}
}

func TestFlipVerticalOddRows(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.SetRGBA(0, y, color.RGBA{R: uint8(y), A: 255})
	}
	FlipVertical(img)
	for y := 0; y < 3; y++ {
		if got := img.RGBAAt(0, y).R; got != uint8(2-y) {
			t.Errorf("row %d = %d, want %d", y, got, 2-y)
		}
	}
}

type fakeGPU struct {
	next     uint32
	uploaded map[uint32]image.Rectangle
	deleted  []uint32
}

func newFakeGPU() *fakeGPU {
	return &fakeGPU{uploaded: make(map[uint32]image.Rectangle)}
}

func (g *fakeGPU) upload(img *image.RGBA) uint32 {
	g.next++
	g.uploaded[g.next] = img.Bounds()
	return g.next
}

func (g *fakeGPU) delete(id uint32) {
	g.deleted = append(g.deleted, id)
}

func TestLoaderPollUploads(t *testing.T) {
	dir := t.TempDir()
	sun := writeImage(t, dir, "sun.png", gradient(8, 8))
	earth := writeImage(t, dir, "earth.bmp", gradient(16, 4))

	gpu := newFakeGPU()
	l := NewLoader(8, gpu.upload, gpu.delete)

	hs := l.Request(sun)
	he := l.Request(earth)
	if l.Request(sun) != hs {
		t.Error("repeated request should return the same handle")
	}
	if hs.ID() != 0 || he.ID() != 0 {
		t.Error("handles must not be ready before Poll")
	}

	l.Wait()
	if err := l.Poll(); err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if !hs.Ready() || !he.Ready() || hs.ID() == he.ID() {
		t.Fatalf("ids after Poll: sun=%d earth=%d", hs.ID(), he.ID())
	}
	if got := gpu.uploaded[he.ID()]; got != image.Rect(0, 0, 8, 2) {
		t.Errorf("earth uploaded at %v, want scaled to 8x2", got)
	}
	if l.Pending() != 0 {
		t.Errorf("pending = %d, want 0", l.Pending())
	}
	if err := l.Poll(); err != nil {
		t.Errorf("second Poll: %v", err)
	}
	if len(gpu.uploaded) != 2 {
		t.Errorf("uploaded %d textures, want 2", len(gpu.uploaded))
	}

	l.Close()
	if len(gpu.deleted) != 2 {
		t.Errorf("deleted %d textures, want 2", len(gpu.deleted))
	}
	if hs.ID() != 0 {
		t.Error("handle should be reset after Close")
	}
}

func TestLoaderPollReportsFailures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	good := writeImage(t, dir, "good.png", gradient(2, 2))

	gpu := newFakeGPU()
	l := NewLoader(0, gpu.upload, nil)
	hb := l.Request(bad)
	hg := l.Request(good)
	l.Wait()

	err := l.Poll()
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if !strings.Contains(err.Error(), "bad.png") {
		t.Errorf("error should name the file: %v", err)
	}
	if hb.Ready() || hb.Err() == nil {
		t.Error("failed handle should carry its error")
	}
	if !hg.Ready() {
		t.Error("a failure must not block other textures")
	}
	l.Close()
}
