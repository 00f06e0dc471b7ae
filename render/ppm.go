// @lixen: #focus{render[ppm,serialize,wrap]}
// @lixen: #interact{trigger[output,file]}
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ppmMagic      = "P3"
	ppmMaxChannel = 255
	// Soft cap on pixel-data line length. The wrap check runs against
	// softLineLimit-1 so a token plus its separator never reaches the cap
	softLineLimit = 70
)

// PPM is a serialized plain-text (P3) image, ready to write out
type PPM struct {
	text string
}

// ToPPM serializes the canvas: a three-line header (magic, dimensions,
// maximum channel value) followed by row-major pixel data with 8-bit
// channels, line-wrapped at the soft limit. The output always ends with
// exactly one newline
func (c *Canvas) ToPPM() *PPM {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%d %d\n%d\n", ppmMagic, c.width, c.height, ppmMaxChannel)

	// counter tracks characters emitted on the current line. A color's
	// "R G B" token is never split: wrap before a token that would reach
	// the cap, or once the line already holds a row's worth of characters.
	// The stream does not otherwise reset at row boundaries
	counter := 0
	for col := range c.Pixels() {
		r, g, bl := col.RGB8()
		tok := fmt.Sprintf("%d %d %d", r, g, bl)

		if counter > c.width*len(tok) || counter+len(tok)+1 >= softLineLimit-1 {
			b.WriteByte('\n')
			counter = 0
		}
		if counter != 0 {
			b.WriteByte(' ')
			counter++
		}
		b.WriteString(tok)
		counter += len(tok)
	}

	text := b.String()
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return &PPM{text: text}
}

// String returns the full PPM text
func (p *PPM) String() string {
	return p.text
}

// Bytes returns the PPM text as a byte slice
func (p *PPM) Bytes() []byte {
	return []byte(p.text)
}

// WriteTo writes the image to w, implementing io.WriterTo
func (p *PPM) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.text)
	return int64(n), err
}

// WriteFile writes the image to path, creating or truncating the file
// Pass "-" to write to stdout instead
func (p *PPM) WriteFile(path string) error {
	if path == "-" {
		_, err := p.WriteTo(os.Stdout)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if _, err := p.WriteTo(w); err != nil {
		f.Close()
		return fmt.Errorf("ppm: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("ppm: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ppm: close %s: %w", path, err)
	}
	return nil
}
