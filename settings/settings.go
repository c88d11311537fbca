// Package settings builds the content of the settings/about dialog.
package settings

import (
	"fmt"
	"image"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/projecteur/projecteur/config"
	"github.com/projecteur/projecteur/menu"
)

// Assets is the embedded asset source the dialog reads from.
type Assets interface {
	GetImage(name string) (image.Image, error)
	GetText(name string) (string, error)
}

// Content implements ui.DialogContent and menu.TabSelector.
type Content struct {
	app    fyne.App
	cfg    *config.AppConfig
	assets Assets

	nextTab     string
	tabs        *container.AppTabs
	updateCheck *widget.Check
	themeSelect *widget.Select
}

// NewContent creates the dialog content.
func NewContent(a fyne.App, cfg *config.AppConfig, assets Assets) *Content {
	return &Content{app: a, cfg: cfg, assets: assets}
}

// Populate fills w with the preferences and about tabs.
func (c *Content) Populate(w fyne.Window) error {
	about, err := c.createAboutTab()
	if err != nil {
		return fmt.Errorf("about tab: %w", err)
	}

	tabs := container.NewAppTabs(
		container.NewTabItem(menu.PreferencesTab, c.createPreferencesTab()),
		container.NewTabItem(menu.AboutTab, about),
	)

	closeButton := widget.NewButton("Close", w.Close)
	w.SetContent(container.NewBorder(nil, container.NewHBox(layout.NewSpacer(), closeButton), nil, nil, tabs))
	w.Resize(fyne.NewSize(520, 520))
	w.CenterOnScreen()

	c.tabs = tabs
	c.selectPending()
	return nil
}

// SelectTab selects the named tab now if the dialog is built, otherwise on the next Populate.
func (c *Content) SelectTab(name string) {
	c.nextTab = name
	c.selectPending()
}

func (c *Content) selectPending() {
	if c.tabs == nil || c.nextTab == "" {
		return
	}
	for _, item := range c.tabs.Items {
		if item.Text == c.nextTab {
			c.tabs.Select(item)
			return
		}
	}
}

func (c *Content) createPreferencesTab() fyne.CanvasObject {
	c.updateCheck = widget.NewCheck("Check for updates at startup", nil)
	c.updateCheck.SetChecked(c.cfg.GetUpdateCheckEnabled())
	c.updateCheck.OnChanged = c.cfg.SetUpdateCheckEnabled

	c.themeSelect = widget.NewSelect(config.Themes, nil)
	c.themeSelect.SetSelected(c.cfg.GetTheme())
	c.themeSelect.OnChanged = func(name string) {
		c.cfg.SetTheme(name)
		ApplyTheme(c.app, name)
	}

	return container.NewVScroll(container.NewVBox(
		sectionTitle("General"),
		settingTitle("Updates:"),
		settingDescription("Ask GitHub for a newer release each time the application starts. You can always check from the tray menu."),
		c.updateCheck,
		widget.NewSeparator(),
		settingTitle("Theme:"),
		settingDescription("Choose the look of this window. System follows your desktop settings."),
		c.themeSelect,
	))
}

func (c *Content) createAboutTab() (fyne.CanvasObject, error) {
	img, err := c.assets.GetImage("about.png")
	if err != nil {
		return nil, err
	}
	text, err := c.assets.GetText("about.txt")
	if err != nil {
		return nil, err
	}

	logo := canvas.NewImageFromImage(addVersionWatermark(img, config.AppVersion))
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyne.NewSize(200, 200))

	title := widget.NewLabelWithStyle(fmt.Sprintf("%s %s", config.AppName, config.AppVersion), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	description := widget.NewLabel(text)
	description.Wrapping = fyne.TextWrapWord

	objects := []fyne.CanvasObject{logo, title, description}
	if projectURL, err := url.Parse(config.ProjectURL); err == nil {
		objects = append(objects, container.NewCenter(widget.NewHyperlink(projectURL.Host+projectURL.Path, projectURL)))
	}
	return container.NewVScroll(container.NewVBox(objects...)), nil
}
