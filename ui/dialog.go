package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/projecteur/projecteur/util/log"
)

// DialogContent builds the window shown by Shell.ShowDialog.
type DialogContent interface {
	Populate(w fyne.Window) error
}

// dialogSlot holds at most one live dialog window. It is empty until the
// first show and empties again when the window is destroyed.
type dialogSlot struct {
	app     fyne.App
	title   string
	content DialogContent

	win     fyne.Window
	id      string
	visible bool
	created int

	onShown  func()
	onHidden func()
}

func newDialogSlot(a fyne.App, title string, content DialogContent) *dialogSlot {
	if title == "" {
		title = defaultDialogTitle
	}
	return &dialogSlot{
		app:      a,
		title:    title,
		content:  content,
		onShown:  func() {},
		onHidden: func() {},
	}
}

func (d *dialogSlot) show() error {
	if d.win == nil {
		if err := d.create(); err != nil {
			return err
		}
	}
	d.win.Show()
	d.win.RequestFocus()
	if !d.visible {
		d.visible = true
		d.onShown()
	}
	return nil
}

func (d *dialogSlot) create() error {
	w := d.app.NewWindow(d.title)
	if err := d.content.Populate(w); err != nil {
		w.Close()
		return fmt.Errorf("%w: %v", ErrDialogCreation, err)
	}

	// Closing from the title bar hides; Close() from the content destroys.
	w.SetCloseIntercept(d.hide)
	w.SetOnClosed(func() { d.release(w) })

	d.win = w
	d.id = uuid.NewString()
	d.created++
	log.Debugf("Created dialog %s (%q)", d.id, d.title)
	return nil
}

func (d *dialogSlot) hide() {
	if d.win == nil || !d.visible {
		return
	}
	d.win.Hide()
	d.visible = false
	d.onHidden()
}

// release empties the slot after w was closed, unless w was already replaced.
func (d *dialogSlot) release(w fyne.Window) {
	if d.win != w {
		return
	}
	log.Debugf("Dialog %s closed", d.id)
	wasVisible := d.visible
	d.win, d.id, d.visible = nil, "", false
	if wasVisible {
		d.onHidden()
	}
}

// destroy closes the live window, if any. The slot is emptied before the
// window closes so callbacks fired by Close see an empty slot.
func (d *dialogSlot) destroy() {
	w := d.win
	if w == nil {
		return
	}
	d.release(w)
	w.Close()
}
