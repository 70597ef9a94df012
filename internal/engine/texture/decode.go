// Package texture loads image files into OpenGL textures.
package texture

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Registered image formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// ErrDecode is returned when a texture file cannot be read or decoded.
var ErrDecode = errors.New("texture decode failed")

// Decode reads an image and returns it as RGBA rows ordered bottom-up, the
// layout glTexImage2D expects, so v=1 samples the top of the picture.
// Images larger than maxSize on either side are scaled down to fit, keeping
// the aspect ratio. A maxSize of 0 disables scaling.
func Decode(r io.Reader, maxSize int) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}

	rgba := Fit(img, maxSize)
	FlipVertical(rgba)
	return rgba, nil
}

// DecodeFile is Decode on the file at path.
func DecodeFile(path string, maxSize int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	img, err := Decode(f, maxSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Fit converts img to RGBA with its origin at (0, 0), scaling it down with
// Catmull-Rom filtering when a side exceeds maxSize.
func Fit(img image.Image, maxSize int) *image.RGBA {
	src := img.Bounds()
	w, h := fitSize(src.Dx(), src.Dy(), maxSize)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	if w == src.Dx() && h == src.Dy() {
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

// fitSize returns w x h scaled so neither side exceeds maxSize.
func fitSize(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		return maxSize, max(h*maxSize/w, 1)
	}
	return max(w*maxSize/h, 1), maxSize
}

// FlipVertical reverses the row order of img in place.
func FlipVertical(img *image.RGBA) {
	b := img.Bounds()
	rowSize := b.Dx() * 4
	tmp := make([]byte, rowSize)
	for top, bottom := 0, b.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := img.Pix[top*img.Stride : top*img.Stride+rowSize]
		u := img.Pix[bottom*img.Stride : bottom*img.Stride+rowSize]
		copy(tmp, t)
		copy(t, u)
		copy(u, tmp)
	}
}
