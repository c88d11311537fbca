// Command projecteur runs the Projecteur tray application.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/projecteur/projecteur/asset"
	"github.com/projecteur/projecteur/config"
	"github.com/projecteur/projecteur/menu"
	"github.com/projecteur/projecteur/settings"
	"github.com/projecteur/projecteur/ui"
	"github.com/projecteur/projecteur/util"
	"github.com/projecteur/projecteur/util/log"
)

func main() {
	lock, acquired, err := acquireLock(config.AppName)
	if err != nil {
		log.Fatalf("Failed to acquire single-instance lock: %v", err)
	}
	if !acquired {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}

	err = run(os.Args)
	lock.release()
	if err != nil {
		log.Fatalf("%s stopped: %v", config.AppName, err)
	}
}

func run(args []string) error {
	a := app.NewWithID(config.AppID)
	assets := asset.NewManager()
	cfg := config.NewAppConfig(a.Preferences())
	settings.ApplyTheme(a, cfg.GetTheme())

	icon, err := assets.GetIcon("tray.png")
	if err != nil {
		return fmt.Errorf("load tray icon: %w", err)
	}
	a.SetIcon(icon)

	content := settings.NewContent(a, cfg, assets)
	builder := menu.NewBuilder(assets, util.NewUpdateChecker(nil, config.AppVersion), content)

	shell, err := ui.New(a, ui.Options{
		Args:        args,
		Icon:        icon,
		Tooltip:     config.AppName,
		DialogTitle: config.AppName + " Settings",
		Menu:        builder,
		Dialog:      content,
	})
	if err != nil {
		if errors.Is(err, ui.ErrTrayUnavailable) {
			shell.Close()
		}
		return err
	}

	go quitOnSignal(shell)
	builder.CheckOnStartup(cfg)

	log.Printf("%s %s started", config.AppName, config.AppVersion)
	a.Run()

	// No-op unless the loop stopped without going through Quit.
	shell.Close()
	return nil
}

// quitOnSignal runs the shell teardown on the event thread when the process
// is asked to terminate.
func quitOnSignal(shell *ui.Shell) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Received signal %v, shutting down...", sig)
	fyne.Do(shell.Quit)
}
