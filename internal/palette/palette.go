// Package palette generates the procedural board textures.
package palette

import (
	"image"
	"image/color"
)

// TextureSize is the edge length of every generated texture. Power of two
// so the GL backend can build mipmaps.
const TextureSize = 64

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{R: clamp8(int(c.R) + dr), G: clamp8(int(c.G) + dg), B: clamp8(int(c.B) + db)}
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

var Palette = struct {
	WoodLight   RGB
	WoodDark    RGB
	Brick       RGB
	BrickDark   RGB
	Mortar      RGB
	Floor       RGB
	Pacman      RGB
	PacmanShade RGB
	Pellet      RGB
	PelletRim   RGB
}{
	WoodLight:   RGB{R: 176, G: 124, B: 72},
	WoodDark:    RGB{R: 120, G: 78, B: 40},
	Brick:       RGB{R: 168, G: 64, B: 44},
	BrickDark:   RGB{R: 132, G: 48, B: 34},
	Mortar:      RGB{R: 200, G: 194, B: 180},
	Floor:       RGB{R: 0, G: 0, B: 0},
	Pacman:      RGB{R: 255, G: 224, B: 32},
	PacmanShade: RGB{R: 214, G: 170, B: 10},
	Pellet:      RGB{R: 255, G: 236, B: 200},
	PelletRim:   RGB{R: 230, G: 190, B: 140},
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func newImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
}

// Solid fills a texture with one colour.
func Solid(c RGB) *image.RGBA {
	img := newImage()
	px := c.RGBA()
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			img.SetRGBA(x, y, px)
		}
	}
	return img
}

// Wood draws vertical planks with grain noise.
func Wood() *image.RGBA {
	const plank = 16
	img := newImage()
	seed := uint64(1701)
	for x := 0; x < TextureSize; x++ {
		grain := int(lcg(&seed) * 14)
		for y := 0; y < TextureSize; y++ {
			c := Palette.WoodLight
			if (x/4+y/8)%3 == 0 {
				c = Palette.WoodDark.Add(12, 8, 4)
			}
			if x%plank == 0 {
				c = Palette.WoodDark
			}
			img.SetRGBA(x, y, c.Add(grain, grain/2, 0).RGBA())
		}
	}
	return img
}

// Brick draws running-bond courses separated by mortar.
func Brick() *image.RGBA {
	const (
		courseH = 8
		brickW  = 16
	)
	img := newImage()
	seed := uint64(4242)
	for y := 0; y < TextureSize; y++ {
		course := y / courseH
		shift := 0
		if course%2 == 1 {
			shift = brickW / 2
		}
		for x := 0; x < TextureSize; x++ {
			if y%courseH == 0 || (x+shift)%brickW == 0 {
				img.SetRGBA(x, y, Palette.Mortar.RGBA())
				continue
			}
			c := Palette.Brick
			if ((x+shift)/brickW+course)%3 == 0 {
				c = Palette.BrickDark
			}
			n := int(lcg(&seed) * 10)
			img.SetRGBA(x, y, c.Add(n, n/2, n/2).RGBA())
		}
	}
	return img
}

// Pacman is yellow shaded towards the bottom rows.
func Pacman() *image.RGBA {
	img := newImage()
	for y := 0; y < TextureSize; y++ {
		k := uint8(255 - y*80/TextureSize)
		c := Palette.Pacman.Mul(k)
		if y >= TextureSize*3/4 {
			c = Palette.PacmanShade.Mul(k)
		}
		for x := 0; x < TextureSize; x++ {
			img.SetRGBA(x, y, c.RGBA())
		}
	}
	return img
}

// Pellet is a bright square with a darker rim.
func Pellet() *image.RGBA {
	const rim = TextureSize / 8
	img := newImage()
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			c := Palette.Pellet
			if x < rim || y < rim || x >= TextureSize-rim || y >= TextureSize-rim {
				c = Palette.PelletRim
			}
			img.SetRGBA(x, y, c.RGBA())
		}
	}
	return img
}

// FlipY reverses the row order in place. GL expects the first row at the
// bottom of the texture.
func FlipY(img *image.RGBA) {
	b := img.Bounds()
	row := make([]uint8, img.Stride)
	for top, bot := 0, b.Dy()-1; top < bot; top, bot = top+1, bot-1 {
		t := img.Pix[top*img.Stride : (top+1)*img.Stride]
		u := img.Pix[bot*img.Stride : (bot+1)*img.Stride]
		copy(row, t)
		copy(t, u)
		copy(u, row)
	}
}
