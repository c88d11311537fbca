package ui

import (
	"errors"
	"math/rand"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trayApp is a test app with a recording tray surface.
type trayApp struct {
	fyne.App
	menus []*fyne.Menu
	icon  fyne.Resource
}

func newTrayApp() *trayApp {
	return &trayApp{App: test.NewApp()}
}

func (a *trayApp) SetSystemTrayMenu(m *fyne.Menu) {
	a.menus = append(a.menus, m)
}

func (a *trayApp) SetSystemTrayIcon(r fyne.Resource) {
	a.icon = r
}

// currentMenu is the menu the host tray points at.
func (a *trayApp) currentMenu() *fyne.Menu {
	if len(a.menus) == 0 {
		return nil
	}
	return a.menus[len(a.menus)-1]
}

type fakeContent struct {
	populated int
	err       error
	last      fyne.Window
}

func (f *fakeContent) Populate(w fyne.Window) error {
	f.populated++
	if f.err != nil {
		return f.err
	}
	w.SetContent(widget.NewLabel("settings"))
	f.last = w
	return nil
}

type fakeMenu struct {
	built   int
	actions Actions
}

func (f *fakeMenu) BuildMenu(actions Actions) *fyne.Menu {
	f.built++
	f.actions = actions
	settings := fyne.NewMenuItem("Settings", actions.ShowDialog)
	quit := fyne.NewMenuItem("Quit", actions.Quit)
	quit.IsQuit = true
	return fyne.NewMenu("Test", settings, fyne.NewMenuItemSeparator(), quit)
}

type recordingOS struct {
	foreground int
	background int
}

func (r *recordingOS) TransformToForeground() { r.foreground++ }
func (r *recordingOS) TransformToBackground() { r.background++ }

var trayIconRes = fyne.NewStaticResource("tray.png", []byte{0x89, 'P', 'N', 'G'})

func trayAvailable() error { return nil }

func newTestShell(t *testing.T) (*Shell, *trayApp, *fakeContent, *recordingOS) {
	t.Helper()
	a := newTrayApp()
	content := &fakeContent{}
	s, err := New(a, Options{
		Args:    []string{"projecteur", "-v"},
		Icon:    trayIconRes,
		Tooltip: "Projecteur",
		Menu:    &fakeMenu{},
		Dialog:  content,
		Probe:   trayAvailable,
	})
	require.NoError(t, err)
	osHooks := &recordingOS{}
	s.os = osHooks
	return s, a, content, osHooks
}

func TestNewShowsTray(t *testing.T) {
	s, a, content, _ := newTestShell(t)

	assert.True(t, s.TrayVisible())
	assert.Equal(t, trayIconRes, a.icon)
	require.NotNil(t, s.Menu())
	assert.Same(t, s.Menu(), a.currentMenu())
	assert.Same(t, s.Menu(), s.tray.menu)

	assert.False(t, s.HasDialog(), "dialog must be created lazily")
	assert.Equal(t, 0, s.DialogsCreated())
	assert.Equal(t, 0, content.populated)
	assert.Equal(t, []string{"projecteur", "-v"}, s.args)
}

func TestNewWithoutTrayDriver(t *testing.T) {
	menu := &fakeMenu{}
	s, err := New(test.NewApp(), Options{Menu: menu, Dialog: &fakeContent{}})

	assert.ErrorIs(t, err, ErrTrayUnavailable)
	require.NotNil(t, s)
	assert.False(t, s.TrayVisible())
	assert.Nil(t, s.Menu())
	assert.Equal(t, 0, menu.built, "no menu is built without a tray")

	s.Close()
	assert.True(t, s.Closed())
}

func TestNewProbeFails(t *testing.T) {
	a := newTrayApp()
	s, err := New(a, Options{
		Icon:   trayIconRes,
		Menu:   &fakeMenu{},
		Dialog: &fakeContent{},
		Probe:  func() error { return errors.New("no watcher") },
	})

	assert.ErrorIs(t, err, ErrTrayUnavailable)
	assert.Contains(t, err.Error(), "no watcher")
	assert.False(t, s.TrayVisible())
	assert.Nil(t, s.Menu())
	assert.Empty(t, a.menus)
	assert.Nil(t, a.icon)

	// The dialog still works without tray presence.
	s.os = &recordingOS{}
	require.NoError(t, s.ShowDialog())
	assert.True(t, s.DialogVisible())
}

func TestNewRequiresDialogContent(t *testing.T) {
	_, err := New(newTrayApp(), Options{Probe: trayAvailable})
	assert.Error(t, err)
}

func TestDefaultMenu(t *testing.T) {
	a := newTrayApp()
	s, err := New(a, Options{Tooltip: "Projecteur", Dialog: &fakeContent{}, Probe: trayAvailable})
	require.NoError(t, err)

	require.Len(t, s.Menu().Items, 1)
	quit := s.Menu().Items[0]
	assert.True(t, quit.IsQuit)
	assert.Equal(t, "Projecteur", s.Menu().Label)

	quit.Action()
	assert.True(t, s.Closed())
}

func TestShowDialogTwice(t *testing.T) {
	s, _, content, osHooks := newTestShell(t)

	require.NoError(t, s.ShowDialog())
	id := s.DialogID()
	assert.NotEmpty(t, id)

	require.NoError(t, s.ShowDialog())
	assert.Equal(t, 1, s.DialogsCreated())
	assert.Equal(t, 1, content.populated)
	assert.Equal(t, id, s.DialogID(), "second show must reuse the instance")
	assert.True(t, s.DialogVisible())
	assert.Equal(t, 1, osHooks.foreground)
}

func TestShowDialogAfterHide(t *testing.T) {
	s, _, _, osHooks := newTestShell(t)

	require.NoError(t, s.ShowDialog())
	id := s.DialogID()

	s.HideDialog()
	assert.True(t, s.HasDialog())
	assert.False(t, s.DialogVisible())
	assert.Equal(t, 1, osHooks.background)

	// Hiding twice changes nothing.
	s.HideDialog()
	assert.Equal(t, 1, osHooks.background)

	require.NoError(t, s.ShowDialog())
	assert.True(t, s.DialogVisible())
	assert.Equal(t, id, s.DialogID())
	assert.Equal(t, 1, s.DialogsCreated())
	assert.Equal(t, 2, osHooks.foreground)
}

func TestShowDialogAfterDestroy(t *testing.T) {
	s, _, content, _ := newTestShell(t)

	require.NoError(t, s.ShowDialog())
	first := s.DialogID()

	// The content closes its own window.
	content.last.Close()
	assert.False(t, s.HasDialog())
	assert.Empty(t, s.DialogID())

	require.NoError(t, s.ShowDialog())
	assert.True(t, s.DialogVisible())
	assert.Equal(t, 2, s.DialogsCreated())
	assert.NotEqual(t, first, s.DialogID())
}

func TestShowDialogCreationFailure(t *testing.T) {
	s, _, content, osHooks := newTestShell(t)
	content.err = errors.New("missing layout")

	err := s.ShowDialog()
	assert.ErrorIs(t, err, ErrDialogCreation)
	assert.False(t, s.HasDialog())
	assert.False(t, s.DialogVisible())
	assert.Equal(t, 0, s.DialogsCreated())
	assert.Equal(t, 0, osHooks.foreground)

	content.err = nil
	require.NoError(t, s.ShowDialog(), "showing is safe to retry")
	assert.True(t, s.DialogVisible())
	assert.Equal(t, 1, s.DialogsCreated())
}

func TestCloseIsIdempotent(t *testing.T) {
	s, a, _, osHooks := newTestShell(t)
	require.NoError(t, s.ShowDialog())
	owned := s.Menu()

	s.Close()
	assertTornDown(t, s, a, owned)
	assert.Equal(t, 1, osHooks.background)

	s.Close()
	assertTornDown(t, s, a, owned)
	assert.Equal(t, 1, osHooks.background)

	assert.ErrorIs(t, s.ShowDialog(), ErrClosed)
	assert.False(t, s.HasDialog())
}

func TestCloseWithoutDialog(t *testing.T) {
	s, a, _, osHooks := newTestShell(t)
	owned := s.Menu()

	s.Close()
	assertTornDown(t, s, a, owned)
	assert.Equal(t, 0, osHooks.background)
}

func TestQuitFromMenu(t *testing.T) {
	s, a, _, _ := newTestShell(t)
	require.NoError(t, s.ShowDialog())
	owned := s.Menu()

	var quit *fyne.MenuItem
	for _, item := range owned.Items {
		if item.IsQuit {
			quit = item
		}
	}
	require.NotNil(t, quit)
	quit.Action()

	assertTornDown(t, s, a, owned)
}

// stopLifecycle runs the app's stopped hook the way the driver does on exit.
func stopLifecycle(t *testing.T, a fyne.App) {
	t.Helper()
	hooks, ok := a.Lifecycle().(interface{ OnStopped() func() })
	require.True(t, ok, "lifecycle must expose its stopped hook")
	stopped := hooks.OnStopped()
	require.NotNil(t, stopped)
	stopped()
}

func TestLifecycleStoppedClosesShell(t *testing.T) {
	s, a, _, osHooks := newTestShell(t)
	require.NoError(t, s.ShowDialog())
	owned := s.Menu()

	stopLifecycle(t, a)
	assertTornDown(t, s, a, owned)
	assert.Equal(t, 1, osHooks.background)

	// A second stop after teardown changes nothing.
	stopLifecycle(t, a)
	assertTornDown(t, s, a, owned)
	assert.Equal(t, 1, osHooks.background)
}

func TestLifecycleStoppedKeepsEarlierHook(t *testing.T) {
	a := newTrayApp()
	earlier := 0
	a.Lifecycle().SetOnStopped(func() { earlier++ })

	s, err := New(a, Options{Menu: &fakeMenu{}, Dialog: &fakeContent{}, Probe: trayAvailable})
	require.NoError(t, err)
	owned := s.Menu()

	stopLifecycle(t, a)
	assertTornDown(t, s, a, owned)
	assert.Equal(t, 1, earlier)
}

func TestRefreshMenu(t *testing.T) {
	s, a, _, _ := newTestShell(t)
	attached := len(a.menus)

	s.Menu().Items[0].Label = "Settings…"
	s.RefreshMenu()
	assert.Len(t, a.menus, attached+1)
	assert.Same(t, s.Menu(), a.currentMenu())

	s.Close()
	calls := len(a.menus)
	s.RefreshMenu()
	assert.Len(t, a.menus, calls, "refresh after close must not touch the host")
}

func TestMenuActionShowsDialog(t *testing.T) {
	s, _, _, _ := newTestShell(t)

	s.Menu().Items[0].Action()
	s.Menu().Items[0].Action()
	assert.True(t, s.DialogVisible())
	assert.Equal(t, 1, s.DialogsCreated())
}

func TestDialogSingleInstance(t *testing.T) {
	s, a, content, _ := newTestShell(t)
	rng := rand.New(rand.NewSource(42))
	baseline := len(a.Driver().AllWindows())

	for i := 0; i < 500; i++ {
		switch rng.Intn(5) {
		case 0, 1:
			content.err = nil
			_ = s.ShowDialog()
		case 2:
			s.HideDialog()
		case 3:
			if s.HasDialog() {
				content.last.Close()
			}
		case 4:
			content.err = errors.New("flaky")
			err := s.ShowDialog()
			if !s.HasDialog() {
				assert.ErrorIs(t, err, ErrDialogCreation)
			}
		}

		assert.LessOrEqual(t, len(a.Driver().AllWindows()), baseline+1, "step %d", i)
		if s.DialogVisible() {
			assert.True(t, s.HasDialog())
		}
	}
}

func assertTornDown(t *testing.T, s *Shell, a *trayApp, owned *fyne.Menu) {
	t.Helper()
	assert.True(t, s.Closed())
	assert.False(t, s.HasDialog())
	assert.False(t, s.TrayVisible())
	assert.Nil(t, s.Menu())
	assert.Nil(t, s.tray)
	current := a.currentMenu()
	require.NotNil(t, current)
	assert.NotSame(t, owned, current, "host must not reference the released menu")
	assert.Empty(t, current.Items)
}
