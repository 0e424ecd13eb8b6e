// Package pgm writes rasters as plain-text (P2) portable graymaps.
package pgm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	mandel "github.com/marben/simd_mandel"
)

// Encode writes r to w: the header "P2\n<width> <height>\n<max iterations>\n"
// followed by one line per row of space separated iteration counts.
func Encode(w io.Writer, r *mandel.Raster) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P2\n%d %d\n%d\n", r.Resolution.X, r.Resolution.Y, r.MaxIterations); err != nil {
		return err
	}

	var num []byte
	for y := range int(r.Resolution.Y) {
		for x, v := range r.Row(y) {
			if x > 0 {
				bw.WriteByte(' ')
			}
			num = strconv.AppendUint(num[:0], uint64(v), 10)
			bw.Write(num)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes r to the named file, creating or truncating it. The file is
// opened before anything is written, so a path that cannot be opened leaves no file behind.
func Save(filename string, r *mandel.Raster) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %q: %w", filename, err)
	}
	if err := Encode(f, r); err != nil {
		f.Close()
		return fmt.Errorf("encode %q: %w", filename, err)
	}
	return f.Close()
}
