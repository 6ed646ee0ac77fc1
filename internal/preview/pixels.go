package preview

import "image"

// toRGBA converts a non-premultiplied frame into the premultiplied RGBA byte
// layout WritePixels expects. Rendered frames are opaque, so the common path
// is a straight copy.
func toRGBA(img *image.NRGBA) []byte {
	buf := make([]byte, len(img.Pix))
	for i := 0; i < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		if a == 255 {
			copy(buf[i:i+4], img.Pix[i:i+4])
			continue
		}
		buf[i+0] = uint8(uint32(img.Pix[i+0]) * a / 255)
		buf[i+1] = uint8(uint32(img.Pix[i+1]) * a / 255)
		buf[i+2] = uint8(uint32(img.Pix[i+2]) * a / 255)
		buf[i+3] = uint8(a)
	}
	return buf
}
