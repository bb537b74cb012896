package renderer

import (
	"bytes"
	"io"
)

// ConditionalBlock lets you fully write a block and decide at the end to print
// it or not. If the block function returns true, the content is printed to w,
// otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// trendArrow maps a trend signal to a display glyph.
func trendArrow(trend int) string {
	switch {
	case trend > 0:
		return "▲ rising"
	case trend < 0:
		return "▼ falling"
	default:
		return "— stable"
	}
}
