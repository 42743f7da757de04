package systems

import (
	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/content"
	"github.com/automoto/arcade-portfolio/contact"
	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/fonts"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/automoto/arcade-portfolio/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// ContactFormTop is the y of the form's top edge.
const ContactFormTop = 112

var contactLayer *ebiten.Image

// NewUpdateContact creates the contact system: it runs the form widgets,
// advances the submission timer and leaves on Escape.
func NewUpdateContact(nav Navigator, form *ui.ContactUI) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Contact.First(e.World)
		if !ok {
			return
		}
		data := components.Contact.Get(entry)

		if s := GetScreen(e); s != nil {
			s.Typing = form.Focused()
		}
		form.Update()
		data.Form.Update(tickSeconds)
		data.Hint = form.Status()

		// Backspace edits text here, so only Escape goes back
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			Navigate(e, nav, navigation.Projects)
		}
	}
}

// NewDrawContact renders the header, the form sliding in and the links.
func NewDrawContact(form *ui.ContactUI, social []content.Link) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		s := GetScreen(e)
		if s == nil {
			return
		}
		root := s.Root.Get(effects.Opacity)
		DrawTitle(screen, "LEVEL 4: CONTACT", root)
		cx := float64(cfg.C.Width) / 2

		state := contact.Editing
		if entry, ok := components.Contact.First(e.World); ok {
			state = components.Contact.Get(entry).Form.State()
		}
		header, sub := "GAME OVER", "NEW HIGH SCORE! ENTER YOUR INITIALS"
		if state == contact.Submitted {
			header, sub = "SCORE SAVED", "THANKS FOR PLAYING"
		}
		if blink(s.Ticks, cfg.Timing.BlinkPeriod*2) || state != contact.Editing {
			drawCentered(screen, header, fonts.Title.Get(), cx, cfg.Layout.ContentY+10, fade(cfg.Red, root))
		}
		drawCentered(screen, sub, fonts.Small.Get(), cx, cfg.Layout.ContentY+28, fade(cfg.Yellow, root))

		if form.ShowsForm() {
			drawContactForm(screen, s, form)
		} else {
			drawConfirmation(screen, s, form.Receipt())
		}

		small := fonts.Small.Get()
		y := float64(cfg.C.Height) - 80
		x := cx - float64(len(social)-1)*50
		for i, l := range social {
			drawCentered(screen, "["+l.Name+"]", small, x+float64(i)*100, y, fade(cfg.Theme.Neon, root))
		}
		drawCentered(screen, "CONTINUE?", fonts.Body.Get(), cx, y+22, fade(cfg.Theme.Primary, root))
	}
}

// drawContactForm renders the widgets offscreen and composites them with
// the first item's entrance offset and alpha.
func drawContactForm(screen *ebiten.Image, s *components.ScreenData, form *ui.ContactUI) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if contactLayer == nil || contactLayer.Bounds().Dx() != w || contactLayer.Bounds().Dy() != h {
		contactLayer = ebiten.NewImage(w, h)
	}
	contactLayer.Clear()
	form.UI.Draw(contactLayer)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, itemOffset(s, 0))
	op.ColorScale.ScaleAlpha(float32(itemAlpha(s, 0)))
	screen.DrawImage(contactLayer, op)
}

// drawConfirmation fills the form's slot once the message is sent.
func drawConfirmation(screen *ebiten.Image, s *components.ScreenData, receipt string) {
	alpha := itemAlpha(s, 0)
	pw, ph := 360.0, 96.0
	cx := float64(cfg.C.Width) / 2
	x, y := cx-pw/2, ContactFormTop+itemOffset(s, 0)
	drawPanel(screen, x, y, pw, ph, fade(cfg.Theme.Panel, alpha), fade(cfg.Theme.Neon, alpha))
	drawCentered(screen, "SCORE SAVED SUCCESSFULLY!", fonts.Body.Get(), cx, y+32, fade(cfg.Theme.Primary, alpha))
	drawCentered(screen, "RECEIPT "+receipt, fonts.Small.Get(), cx, y+58, fade(cfg.Theme.Text, alpha))
}
