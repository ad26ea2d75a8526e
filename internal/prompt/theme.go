package prompt

import (
	"github.com/charmbracelet/huh"

	"github.com/samzong/gitcz/internal/ui"
)

// Theme maps the ui palette onto huh's base theme.
func Theme() *huh.Theme {
	t := huh.ThemeBase()
	if !ui.ColorEnabled() {
		return t
	}

	t.Focused.Base = t.Focused.Base.BorderForeground(ui.ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ui.ColorPrimary).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ui.ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ui.ColorPrimary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ui.ColorPrimary)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ui.ColorError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ui.ColorError)
	t.Focused.Description = t.Focused.Description.Foreground(ui.ColorMuted)
	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderForeground(ui.ColorMuted)
	return t
}
