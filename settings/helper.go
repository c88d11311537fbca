package settings

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

func styledLabel(text string, importance widget.Importance, style fyne.TextStyle) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = importance
	label.TextStyle = style
	return label
}

// sectionTitle creates a label for a group of settings
func sectionTitle(text string) *widget.Label {
	return styledLabel(text, widget.HighImportance, fyne.TextStyle{Bold: true})
}

// settingTitle creates a label for a setting title
func settingTitle(text string) *widget.Label {
	return styledLabel(text, widget.MediumImportance, fyne.TextStyle{Bold: true})
}

// settingDescription creates a label for a setting description
func settingDescription(text string) *widget.Label {
	return styledLabel(text, widget.LowImportance, fyne.TextStyle{Italic: true})
}
