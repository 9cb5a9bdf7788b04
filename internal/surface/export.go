package surface

import (
	"bufio"
	"image"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// Encode writes the pixel buffer as a 24-bit BMP. BMP stores rows
// bottom-to-top, so the stored row sequence is the buffer rows in order:
// buffer row 0 becomes the first stored row.
func (s *Surface) Encode(w io.Writer) error {
	if err := bmp.Encode(w, s.storedImage()); err != nil {
		return errors.Wrap(err, "[Encode] failed to encode bitmap")
	}
	return nil
}

// Export writes the pixel buffer to a BMP file at path.
func (s *Surface) Export(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[Export] failed to create file: %+v", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[Export] failed to close file: %+v", path)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = s.Encode(bw); err != nil {
		return errors.Wrapf(err, "[Export] failed to write file: %+v", path)
	}
	if err = bw.Flush(); err != nil {
		return errors.Wrapf(err, "[Export] failed to flush file: %+v", path)
	}
	return nil
}

// storedImage lays the buffer out so the encoder's bottom-up row order emits
// buffer row 0 first: image row r holds buffer row h-1-r.
func (s *Surface) storedImage() *image.RGBA {
	w, h := s.size.W, s.size.H
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for row := 0; row < h; row++ {
		src := s.pixels[row*w : (row+1)*w]
		dst := img.Pix[(h-1-row)*img.Stride:]
		for x, p := range src {
			r, g, b := Color(p).Components()
			o := x * 4
			dst[o+0] = r
			dst[o+1] = g
			dst[o+2] = b
			dst[o+3] = 0xff
		}
	}
	return img
}
