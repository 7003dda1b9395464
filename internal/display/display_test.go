package display

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawSprite(t *testing.T) {
	d := New()

	collision := d.DrawSprite(0, 0, []byte{0b10100000})
	assert.False(t, collision)
	assert.True(t, d.Pixel(0, 0))
	assert.False(t, d.Pixel(1, 0))
	assert.True(t, d.Pixel(2, 0))
}

func TestDrawSpriteInvolution(t *testing.T) {
	d := New()
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}

	assert.False(t, d.DrawSprite(4, 7, sprite))

	// drawing the same sprite again erases it and reports a collision
	assert.True(t, d.DrawSprite(4, 7, sprite))
	assert.Equal(t, [Height][Width]bool{}, d.Frame())
}

func TestDrawSpriteCollision(t *testing.T) {
	d := New()
	d.DrawSprite(0, 0, []byte{0b10000000})

	tests := []struct {
		name      string
		sprite    []byte
		collision bool
	}{
		{"overlapping pixel", []byte{0b10000000}, true},
		{"disjoint pixels", []byte{0b01111111}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			d.DrawSprite(0, 0, []byte{0b10000000})
			assert.Equal(t, tt.collision, d.DrawSprite(0, 0, tt.sprite))
		})
	}
}

func TestDrawSpriteWrapsHorizontally(t *testing.T) {
	d := New()

	d.DrawSprite(Width-1, 0, []byte{0b11000000})

	assert.True(t, d.Pixel(Width-1, 0))
	assert.True(t, d.Pixel(0, 0))
}

func TestDrawSpriteWrapsVertically(t *testing.T) {
	d := New()

	d.DrawSprite(0, Height-1, []byte{0b10000000, 0b10000000})

	assert.True(t, d.Pixel(0, Height-1))
	assert.True(t, d.Pixel(0, 0))
}

func TestDrawSpriteOriginWraps(t *testing.T) {
	d := New()

	d.DrawSprite(Width, Height, []byte{0b10000000})

	assert.True(t, d.Pixel(0, 0))
}

func TestDrawSpriteSkipsExcessRows(t *testing.T) {
	d := New()
	sprite := make([]byte, Height+2)
	for i := range sprite {
		sprite[i] = 0x80
	}

	d.DrawSprite(0, 0, sprite)

	// the rows beyond the grid height are dropped, not wrapped, so the
	// first rows keep their state instead of being XORed twice
	for y := 0; y < Height; y++ {
		assert.True(t, d.Pixel(0, y))
	}
}

func TestClear(t *testing.T) {
	d := New()
	d.DrawSprite(10, 10, []byte{0xFF})

	d.Clear()

	assert.Equal(t, [Height][Width]bool{}, d.Frame())
}
