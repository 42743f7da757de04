package ui

import (
	"bytes"
	"errors"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/gomono"

	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/contact"
	"github.com/automoto/arcade-portfolio/logger"
)

// ContactUI is the message form of the contact screen. It mirrors the text
// inputs into a contact.Form and reflects the form state back into the
// widgets every frame.
type ContactUI struct {
	UI *ebitenui.UI

	form *contact.Form
	log  zerolog.Logger

	inputs      map[contact.Field]*widget.TextInput
	statusLabel *widget.Label
	submitBtn   *widget.Button

	lastState contact.State
	hint      string

	normalFace text.Face
	smallFace  text.Face
}

// NewContactUI builds a form of the given width whose top edge sits top
// pixels below the top of the screen.
func NewContactUI(form *contact.Form, width, top int) (*ContactUI, error) {
	ui := &ContactUI{
		form:   form,
		log:    logger.GetLogger("contact"),
		inputs: make(map[contact.Field]*widget.TextInput),
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI(width, top)
	return ui, nil
}

func (ui *ContactUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 10}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 8}
	return nil
}

func (ui *ContactUI) buildUI(width int, top int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: top}),
		)),
	)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	formContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Theme.Panel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	rows := []struct {
		field       contact.Field
		label       string
		placeholder string
	}{
		{contact.FieldName, "NAME:   ", "PLAYER ONE"},
		{contact.FieldEmail, "EMAIL:  ", "player@arcade.dev"},
		{contact.FieldMessage, "MESSAGE:", "YOUR MESSAGE"},
	}
	inputWidth := width - 90
	for _, r := range rows {
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)
		row.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(r.label, &ui.normalFace, &widget.LabelColor{
				Idle: cfg.Theme.Neon,
			}),
		))

		input := widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(inputWidth, 20)),
			widget.TextInputOpts.Image(&widget.TextInputImage{
				Idle:     image.NewNineSliceColor(cfg.Theme.Background),
				Disabled: image.NewNineSliceColor(cfg.Theme.Cabinet),
			}),
			widget.TextInputOpts.Face(&ui.normalFace),
			widget.TextInputOpts.Color(&widget.TextInputColor{
				Idle:          cfg.Theme.Text,
				Disabled:      cfg.Theme.TextDim,
				Caret:         cfg.Theme.Primary,
				DisabledCaret: cfg.Theme.TextDim,
			}),
			widget.TextInputOpts.Placeholder(r.placeholder),
			widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		)
		ui.inputs[r.field] = input
		row.AddChild(input)
		formContainer.AddChild(row)
	}

	ui.submitBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(cfg.Theme.Tertiary),
			Hover:    image.NewNineSliceColor(cfg.Theme.Primary),
			Pressed:  image.NewNineSliceColor(cfg.Theme.Secondary),
			Disabled: image.NewNineSliceColor(cfg.Theme.Quaternary),
		}),
		widget.ButtonOpts.Text("SEND MESSAGE", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     cfg.Theme.Text,
			Hover:    cfg.Theme.Text,
			Pressed:  cfg.Theme.TextDim,
			Disabled: cfg.Theme.TextDim,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.Submit()
		}),
	)
	formContainer.AddChild(ui.submitBtn)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	formContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(formContainer)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// Submit sends the form. Validation failures become the status hint.
func (ui *ContactUI) Submit() {
	ui.sync()
	err := ui.form.Submit()
	var verr *contact.ValidationError
	switch {
	case err == nil:
		ui.hint = ""
	case errors.As(err, &verr):
		ui.hint = hintFor(verr)
	default:
		ui.log.Debug().Err(err).Msg("submit ignored")
	}
}

func hintFor(verr *contact.ValidationError) string {
	switch {
	case verr.Has(contact.FieldName):
		return "ENTER YOUR NAME"
	case verr.Has(contact.FieldEmail):
		if verr.Fields[contact.FieldEmail] == "email" {
			return "INVALID EMAIL"
		}
		return "ENTER YOUR EMAIL"
	case verr.Has(contact.FieldMessage):
		return "ENTER A MESSAGE"
	}
	return "CHECK THE FORM"
}

// sync copies the widget text into the form while it is editable.
func (ui *ContactUI) sync() {
	for field, input := range ui.inputs {
		ui.form.SetField(field, input.GetText())
	}
}

// Update advances the widgets and mirrors the form state. Once the message
// is sent the widgets are no longer updated.
func (ui *ContactUI) Update() {
	if ui.ShowsForm() {
		ui.UI.Update()
	}
	ui.refresh()
}

func (ui *ContactUI) refresh() {
	if ui.form.State() == contact.Editing {
		ui.sync()
	}

	state := ui.form.State()
	if state != ui.lastState && state == contact.Submitted {
		for _, input := range ui.inputs {
			input.SetText("")
			input.Focus(false)
		}
	}
	ui.lastState = state

	editing := ui.form.CanSubmit()
	ui.submitBtn.GetWidget().Disabled = !editing
	for _, input := range ui.inputs {
		input.GetWidget().Disabled = !editing
	}
	ui.statusLabel.Label = ui.Status()
}

// ShowsForm reports whether the form widgets are on screen. A confirmation
// replaces them once the message is sent.
func (ui *ContactUI) ShowsForm() bool {
	return ui.form.State() != contact.Submitted
}

// Receipt is the short receipt shown in the confirmation.
func (ui *ContactUI) Receipt() string {
	return shortReceipt(ui.form.Receipt())
}

// Status is the line shown under the submit button.
func (ui *ContactUI) Status() string {
	switch ui.form.State() {
	case contact.Submitting:
		return "SENDING..."
	case contact.Submitted:
		return "MESSAGE SENT! RECEIPT " + shortReceipt(ui.form.Receipt())
	}
	return ui.hint
}

func shortReceipt(r string) string {
	if len(r) > 8 {
		return r[:8]
	}
	return r
}

// Focused reports whether a text field has keyboard focus.
func (ui *ContactUI) Focused() bool {
	if !ui.ShowsForm() {
		return false
	}
	for _, input := range ui.inputs {
		if input.IsFocused() {
			return true
		}
	}
	return false
}
