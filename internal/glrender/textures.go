//go:build !android

package glrender

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"pac3d/internal/game"
	"pac3d/internal/palette"
)

// LoadTextures uploads the procedural board textures and returns their
// handles. The renderer owns them until Destroy.
func (r *Renderer) LoadTextures() (game.Textures, error) {
	var tex game.Textures
	for _, t := range []struct {
		dst  *game.Texture
		name string
		img  *image.RGBA
	}{
		{&tex.Wood, "wood", palette.Wood()},
		{&tex.Brick, "brick", palette.Brick()},
		{&tex.Black, "black", palette.Solid(palette.Palette.Floor)},
		{&tex.Pacman, "pacman", palette.Pacman()},
		{&tex.Pellet, "pellet", palette.Pellet()},
	} {
		id, err := r.uploadTexture(t.img)
		if err != nil {
			return game.Textures{}, fmt.Errorf("texture %s: %w", t.name, err)
		}
		*t.dst = game.Texture(id)
	}
	return tex, nil
}

func (r *Renderer) uploadTexture(img *image.RGBA) (uint32, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return 0, errors.New("empty image")
	}
	palette.FlipY(img)

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures = append(r.textures, id)
	return id, nil
}
