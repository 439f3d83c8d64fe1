package ebitenui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-drift/scrollto/pkg/scroll"
)

// DefaultRadius is the hit and draw radius of a button in pixels.
const DefaultRadius = 24

var defaultFill = color.RGBA{R: 0x33, G: 0x33, B: 0xee, A: 0xff}

// Button is a circular scroll-to-target button drawn on top of a Region.
//
// Wire Update and Draw into the game loop. The button consumes a click
// only when visible and hit.
type Button struct {
	ctrl   *scroll.Controller
	x, y   float64
	radius float64
	fill   color.Color
	icon   *ebiten.Image
}

// NewButton creates a button controlling region according to cfg. The
// button starts at the origin; call Place before drawing.
func NewButton(cfg scroll.Config, region *Region) *Button {
	return &Button{
		ctrl:   scroll.NewController(cfg, region),
		radius: DefaultRadius,
		fill:   defaultFill,
	}
}

// Place moves the button's center.
func (b *Button) Place(x, y float64) {
	b.x, b.y = x, y
}

// SetRadius overrides the hit and draw radius.
func (b *Button) SetRadius(radius float64) {
	b.radius = radius
}

// SetFill overrides the background color.
func (b *Button) SetFill(c color.Color) {
	b.fill = c
}

// SetIcon replaces the default arrow glyph.
func (b *Button) SetIcon(icon *ebiten.Image) {
	b.icon = icon
}

// Controller exposes the underlying controller.
func (b *Button) Controller() *scroll.Controller {
	return b.ctrl
}

// Update polls mouse input and activates the scroll on a click inside
// the button. It reports whether the click was consumed.
func (b *Button) Update() bool {
	if !b.ctrl.Visible() {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	if !b.contains(float64(x), float64(y)) {
		return false
	}
	b.ctrl.Activate()
	return true
}

// Draw renders the button onto screen. Hidden buttons draw nothing.
func (b *Button) Draw(screen *ebiten.Image) {
	if !b.ctrl.Visible() {
		return
	}
	vector.DrawFilledCircle(screen, float32(b.x), float32(b.y), float32(b.radius), b.fill, true)

	icon := b.icon
	if icon == nil {
		icon = arrowIcon()
	}
	op := &ebiten.DrawImageOptions{}
	w, h := icon.Bounds().Dx(), icon.Bounds().Dy()
	op.GeoM.Translate(b.x-float64(w)/2, b.y-float64(h)/2)
	screen.DrawImage(icon, op)
}

// Dispose releases the controller, cancelling any pending delayed scroll
// and detaching from the region.
func (b *Button) Dispose() {
	b.ctrl.Dispose()
}

func (b *Button) contains(x, y float64) bool {
	dx := x - b.x
	dy := y - b.y
	return dx*dx+dy*dy <= b.radius*b.radius
}
