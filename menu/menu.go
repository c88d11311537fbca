// Package menu builds the tray menu and keeps its update item current.
package menu

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"

	"github.com/projecteur/projecteur/asset"
	"github.com/projecteur/projecteur/config"
	"github.com/projecteur/projecteur/ui"
	"github.com/projecteur/projecteur/util"
	"github.com/projecteur/projecteur/util/log"
)

// UpdateChecker reports whether a newer release exists.
type UpdateChecker interface {
	Check(ctx context.Context) (*util.CheckForUpdatesResult, error)
}

// TabSelector picks the dialog tab shown next.
type TabSelector interface {
	SelectTab(name string)
}

// Builder implements ui.MenuBuilder.
type Builder struct {
	assets  *asset.Manager
	checker UpdateChecker
	tabs    TabSelector

	actions    ui.Actions
	updateItem *fyne.MenuItem

	// runOnMain hands update results back to the event thread.
	runOnMain func(func())
}

// NewBuilder creates a menu builder. tabs may be nil.
func NewBuilder(assets *asset.Manager, checker UpdateChecker, tabs TabSelector) *Builder {
	return &Builder{
		assets:    assets,
		checker:   checker,
		tabs:      tabs,
		runOnMain: fyne.Do,
	}
}

// BuildMenu creates the tray menu wired to the shell's actions.
func (b *Builder) BuildMenu(actions ui.Actions) *fyne.Menu {
	b.actions = actions

	header := fyne.NewMenuItem(fmt.Sprintf("%s %s", config.AppName, config.AppVersion), nil)
	header.Disabled = true

	b.updateItem = b.createMenuItem(checkUpdatesLabel, b.CheckForUpdates, "update.png")

	quit := b.createMenuItem(quitLabel, actions.Quit, "quit.png")
	quit.IsQuit = true

	return fyne.NewMenu(
		config.AppName,
		header,
		fyne.NewMenuItemSeparator(),
		b.createMenuItem(settingsLabel, b.showTab(PreferencesTab), "settings.png"),
		b.createMenuItem(aboutLabel, b.showTab(AboutTab), "about.png"),
		fyne.NewMenuItemSeparator(),
		b.updateItem,
		fyne.NewMenuItemSeparator(),
		quit,
	)
}

func (b *Builder) showTab(name string) func() {
	return func() {
		if b.tabs != nil {
			b.tabs.SelectTab(name)
		}
		b.actions.ShowDialog()
	}
}

func (b *Builder) createMenuItem(label string, action func(), iconName string) *fyne.MenuItem {
	mi := fyne.NewMenuItem(label, action)
	icon, err := b.assets.GetIcon(iconName)
	if err != nil {
		log.Printf("Failed to load icon: %v", err)
		return mi
	}
	mi.Icon = icon
	return mi
}

// CheckForUpdates queries for a newer release in the background and
// relabels the update item when one exists.
func (b *Builder) CheckForUpdates() {
	if b.checker == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
		defer cancel()

		result, err := b.checker.Check(ctx)
		b.runOnMain(func() {
			b.applyUpdateResult(result, err)
		})
	}()
}

// CheckOnStartup runs CheckForUpdates when the user enabled it.
func (b *Builder) CheckOnStartup(cfg *config.AppConfig) {
	if cfg.GetUpdateCheckEnabled() {
		b.CheckForUpdates()
	}
}

func (b *Builder) applyUpdateResult(result *util.CheckForUpdatesResult, err error) {
	if err != nil {
		if errors.Is(err, util.ErrCheckThrottled) {
			log.Debugf("Update check skipped: %v", err)
			return
		}
		log.Printf("Update check failed: %v", err)
		return
	}
	if b.updateItem == nil {
		return
	}
	if !result.UpdateAvailable {
		log.Printf("%s %s is up to date", config.AppName, result.CurrentVersion)
		return
	}

	releaseURL, err := url.Parse(result.ReleaseURL)
	if err != nil {
		log.Printf("Invalid release URL %q: %v", result.ReleaseURL, err)
		return
	}

	log.Printf("Update available: %s -> %s", result.CurrentVersion, result.LatestVersion)
	b.updateItem.Label = updateMenuItemPrefix + result.LatestVersion
	b.updateItem.Action = func() {
		if err := b.actions.OpenURL(releaseURL); err != nil {
			log.Printf("Failed to open %s: %v", releaseURL, err)
		}
	}
	if b.actions.RefreshMenu != nil {
		b.actions.RefreshMenu()
	}
}
