// Package render converts packed RGB pixel buffers into RGBA bytes.
package render

// FillPackedRGBA converts packed 0x00RRGGBB pixels into opaque RGBA bytes in
// buf. buf must hold at least 4*len(pixels) bytes.
func FillPackedRGBA(buf []byte, pixels []uint32) {
	for i, p := range pixels {
		base := i * 4
		buf[base+0] = uint8(p >> 16)
		buf[base+1] = uint8(p >> 8)
		buf[base+2] = uint8(p)
		buf[base+3] = 0xff
	}
}
