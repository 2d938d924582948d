package main

import (
	"context"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/dixieflatline76/Wallin/asset"
	"github.com/dixieflatline76/Wallin/config"
	"github.com/dixieflatline76/Wallin/pkg/hotkey"
	"github.com/dixieflatline76/Wallin/pkg/ui"
	"github.com/dixieflatline76/Wallin/pkg/wallpaper"
	"github.com/dixieflatline76/Wallin/util/log"
)

func main() {
	ok, err := acquireLock()
	if err != nil {
		log.Fatalf("Single instance check failed: %v", err)
	}
	if !ok {
		log.Printf("Another instance of %s is already running.", config.AppName)
		os.Exit(0)
	}
	defer releaseLock()

	log.Printf("Starting %s %s", config.AppName, config.AppVersion)

	a := app.NewWithID(config.AppID)
	cfg := config.NewAppConfig(a.Preferences())
	wa := ui.NewWallinApp(a, cfg, asset.NewManager())

	client := wallpaper.NewClient(cfg.GetServiceURL(), wallpaper.NewHTTPClient(config.AppName+"/"+config.AppVersion))
	cache := wallpaper.NewCacheStore(wallpaper.DefaultCacheDir())
	log.Printf("Service: %s, cache: %s", cfg.GetServiceURL(), cache.Dir())

	ctrl := wallpaper.NewController(client, cache, wallpaper.NewDesktop(), cfg, wa.Dispatcher(),
		wallpaper.WithView(wa.View()),
	)
	wa.Bind(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	keys := hotkey.NewListener(wa.Dispatcher())
	a.Lifecycle().SetOnStarted(func() {
		wa.Started()
		ctrl.Start(ctx)
		keys.Start(ctx, hotkey.DefaultBindings(ctrl))
	})
	a.Lifecycle().SetOnStopped(keys.Stop)

	wa.Run()
	log.Print("Bye.")
}
