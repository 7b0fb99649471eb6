package scrollreel

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source of untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// EbitenSurface implements Surface on an *ebiten.Image whose size is the
// CSS size times BackingScale. Decoded frames are uploaded to GPU textures
// on first use and kept until Purge.
type EbitenSurface struct {
	target   *ebiten.Image
	scale    float64
	source   *text.GoTextFaceSource
	faces    map[float64]*text.GoTextFace
	textures map[image.Image]*ebiten.Image
	verts    [4]ebiten.Vertex
}

// NewEbitenSurface parses the HUD font and returns an unbound surface.
func NewEbitenSurface() (*EbitenSurface, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("scrollreel: failed to parse HUD font: %w", err)
	}
	return &EbitenSurface{
		scale:    BackingScale,
		source:   source,
		faces:    make(map[float64]*text.GoTextFace),
		textures: make(map[image.Image]*ebiten.Image),
	}, nil
}

// Bind sets the image drawn on until the next Bind.
func (s *EbitenSurface) Bind(target *ebiten.Image) {
	s.target = target
}

// Size implements Surface.
func (s *EbitenSurface) Size() (w, h float64) {
	b := s.target.Bounds()
	return float64(b.Dx()) / s.scale, float64(b.Dy()) / s.scale
}

// FillRect implements Surface.
func (s *EbitenSurface) FillRect(r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 || c.A <= 0 {
		return
	}
	sc := s.scale
	vector.DrawFilledRect(s.target,
		float32(r.X*sc), float32(r.Y*sc), float32(r.Width*sc), float32(r.Height*sc),
		c.RGBA(), false)
}

// FillLinearGradient implements Surface. The gradient axis is the rectangle's
// diagonal; each corner gets the color of its projection onto that axis and
// the GPU interpolates between them.
func (s *EbitenSurface) FillLinearGradient(r Rect, from, to Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	sc := s.scale
	d2 := r.Width*r.Width + r.Height*r.Height
	corners := [4]struct{ x, y, t float64 }{
		{r.X, r.Y, 0},
		{r.X + r.Width, r.Y, r.Width * r.Width / d2},
		{r.X, r.Y + r.Height, r.Height * r.Height / d2},
		{r.X + r.Width, r.Y + r.Height, 1},
	}
	for i, c := range corners {
		col := lerpColor(from, to, c.t)
		s.verts[i] = ebiten.Vertex{
			DstX:   float32(c.x * sc),
			DstY:   float32(c.y * sc),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(col.R * col.A),
			ColorG: float32(col.G * col.A),
			ColorB: float32(col.B * col.A),
			ColorA: float32(col.A),
		}
	}
	indices := []uint16{0, 1, 2, 1, 3, 2}
	s.target.DrawTriangles(s.verts[:], indices, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}

// FillCircle implements Surface.
func (s *EbitenSurface) FillCircle(cx, cy, radius float64, c Color) {
	if radius <= 0 {
		return
	}
	sc := s.scale
	vector.DrawFilledCircle(s.target, float32(cx*sc), float32(cy*sc), float32(radius*sc), c.RGBA(), true)
}

// DrawText implements Surface.
func (s *EbitenSurface) DrawText(str string, x, y, size float64, align TextAlign, c Color) {
	if str == "" || c.A <= 0 {
		return
	}
	face := s.face(size * s.scale)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*s.scale, y*s.scale-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c.RGBA())
	switch align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(s.target, str, face, op)
}

// DrawImage implements Surface.
func (s *EbitenSurface) DrawImage(img image.Image, dst Rect, alpha float64) {
	tex := s.texture(img)
	b := tex.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	sc := s.scale
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(dst.Width*sc/float64(b.Dx()), dst.Height*sc/float64(b.Dy()))
	op.GeoM.Translate(dst.X*sc, dst.Y*sc)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(tex, &op)
}

// DebugText implements Surface.
func (s *EbitenSurface) DebugText(str string, x, y float64) {
	ebitenutil.DebugPrintAt(s.target, str, int(x*s.scale), int(y*s.scale))
}

// Purge deallocates every uploaded frame texture.
func (s *EbitenSurface) Purge() {
	for k, tex := range s.textures {
		tex.Deallocate()
		delete(s.textures, k)
	}
}

func (s *EbitenSurface) texture(img image.Image) *ebiten.Image {
	if tex, ok := img.(*ebiten.Image); ok {
		return tex
	}
	tex, ok := s.textures[img]
	if !ok {
		tex = ebiten.NewImageFromImage(img)
		s.textures[img] = tex
	}
	return tex
}

func (s *EbitenSurface) face(size float64) *text.GoTextFace {
	f, ok := s.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: s.source, Size: size}
		s.faces[size] = f
	}
	return f
}

func lerpColor(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
