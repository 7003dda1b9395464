// Package display implements the 64x32 monochrome pixel grid of the CHIP-8
// virtual machine with its XOR sprite drawing and collision detection.
package display

// Display dimensions in pixels, fixed by the CHIP-8 specification.
const (
	Width  = 64
	Height = 32
)

// Display is the monochrome frame buffer. A pixel is either on or off.
// It is mutated only by Clear and DrawSprite.
type Display struct {
	pixels [Height][Width]bool
}

// New returns a cleared display.
func New() *Display {
	return &Display{}
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.pixels = [Height][Width]bool{}
}

// DrawSprite XORs a sprite onto the grid at the given origin and reports
// whether any pixel was turned off by the draw.
//
// A sprite is 8 pixels wide with one byte per row, the most significant bit
// is the leftmost pixel. The origin is taken modulo the grid size and each
// pixel wraps around both edges. Rows at or beyond the grid height are
// skipped, matching the instruction's byte-count semantics.
func (d *Display) DrawSprite(x, y byte, sprite []byte) bool {
	originX := int(x) % Width
	originY := int(y) % Height

	collision := false
	for row, rowByte := range sprite {
		if row >= Height {
			break
		}
		for col := 0; col < 8; col++ {
			if rowByte&(0x80>>col) == 0 {
				continue
			}
			px := (originX + col) % Width
			py := (originY + row) % Height
			if d.pixels[py][px] {
				collision = true
			}
			d.pixels[py][px] = !d.pixels[py][px]
		}
	}
	return collision
}

// Pixel reports whether the pixel at the given coordinates is on.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[y%Height][x%Width]
}

// Frame returns a row-major copy of the current pixel grid.
func (d *Display) Frame() [Height][Width]bool {
	return d.pixels
}
