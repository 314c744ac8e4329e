package stepper

import (
	"fmt"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// Button is the default continue control: a single styled label.
type Button struct {
	BaseWidget
	Label string
	style lipgloss.Style
}

// NewButton creates a button sized by the nav-button metrics of common.
func NewButton(id, label string, common *Common) *Button {
	lp := LayoutParams{
		Width:   WrapContent,
		Height:  Dimension(common.NavButtonHeight),
		Margins: Margins{Top: common.NavButtonTopMargin},
	}
	return &Button{
		BaseWidget: NewBaseWidget(id, lp),
		Label:      label,
		style:      common.ContinueStyle(),
	}
}

// continueButtonFactory builds the default continue control for step i.
func continueButtonFactory(common *Common) func(i int) Widget {
	return func(i int) Widget {
		return NewButton(fmt.Sprintf("continue-%d", i+1), common.ContinueLabel, common)
	}
}

// Measure sizes the button to its rendered label.
func (b *Button) Measure(width, height Constraint) Size {
	rendered := b.style.Render(b.Label)
	return b.SetMeasured(Size{
		Width:  lipgloss.Width(rendered),
		Height: lipgloss.Height(rendered),
	}, width, height)
}

// Draw renders the label into area.
func (b *Button) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	content := b.style.MaxWidth(area.Dx()).Render(b.Label)
	uv.NewStyledString(content).Draw(scr, area)
}
