package render

import (
	"fmt"
	"log"

	"MemorialVision/shared/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/schollz/progressbar/v3"
)

// Texture é uma textura 2D já enviada à GPU.
type Texture struct {
	Path     string
	Channels int
	rl.Texture2D
}

// channels retorna o número de canais de 8 bits do formato, 0 para formatos que não são 8 bits por canal.
func channels(format rl.PixelFormat) int {
	switch format {
	case rl.UncompressedGrayscale:
		return 1
	case rl.UncompressedGrayAlpha:
		return 2
	case rl.UncompressedR8g8b8:
		return 3
	case rl.UncompressedR8g8b8a8:
		return 4
	}
	return 0
}

// CreateTexture decodifica o arquivo, inverte verticalmente, envia como RGB ou RGBA
// e gera mipmaps. Qualquer outro número de canais é recusado.
func CreateTexture(b Backend, path string) (*Texture, error) {
	img := b.LoadImage(path)
	if img == nil || img.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrTextureDecode, path)
	}
	defer b.UnloadImage(img)

	n := channels(img.Format)
	if n != 3 && n != 4 {
		return nil, fmt.Errorf("%w: %s tem %d canais (formato %d)", ErrUnsupportedChannels, path, n, img.Format)
	}

	tex := b.UploadTexture(img)
	if tex.ID == 0 {
		return nil, fmt.Errorf("%w: %s: upload falhou", ErrTextureDecode, path)
	}

	log.Printf("[Renderer] Textura carregada: %s (%dx%d, %d canais)", path, tex.Width, tex.Height, n)
	return &Texture{Path: path, Channels: n, Texture2D: tex}, nil
}

// TextureSet são as quatro texturas fixas da cena.
type TextureSet struct {
	Marble   *Texture
	Grass    *Texture
	Water    *Texture
	Monument *Texture

	backend Backend
}

// LoadTextureSet carrega as quatro texturas na ordem mármore, grama, água, monumento.
// Falha em qualquer uma descarrega as anteriores e retorna o erro.
func LoadTextureSet(b Backend, paths config.TexturePaths) (*TextureSet, error) {
	set := &TextureSet{backend: b}
	slots := []struct {
		dst  **Texture
		path string
	}{
		{&set.Marble, paths.Marble},
		{&set.Grass, paths.Grass},
		{&set.Water, paths.Water},
		{&set.Monument, paths.Monument},
	}

	bar := progressbar.Default(int64(len(slots)), "Carregando texturas")

	for _, s := range slots {
		tex, err := CreateTexture(b, s.path)
		if err != nil {
			_ = bar.Clear()
			set.Unload()
			return nil, err
		}
		*s.dst = tex
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return set, nil
}

// All retorna as texturas carregadas, na ordem de carga.
func (s *TextureSet) All() []*Texture {
	var out []*Texture
	for _, t := range []*Texture{s.Marble, s.Grass, s.Water, s.Monument} {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Unload descarrega todas as texturas do conjunto.
func (s *TextureSet) Unload() {
	if s == nil {
		return
	}
	for _, t := range s.All() {
		s.backend.UnloadTexture(t.Texture2D)
	}
	s.Marble, s.Grass, s.Water, s.Monument = nil, nil, nil, nil
}
