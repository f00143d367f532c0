package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
	"github.com/elektrokombinacija/phrase-canvas/internal/store"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/state"
)

// runWindow signs in, restores the saved canvas and hands the main
// goroutine to Gio. It does not return on success.
func runWindow(ctx context.Context, opts *options) error {
	e, err := loadEnv(ctx, opts.configPath, opts.verbose)
	if err != nil {
		return err
	}

	user, err := e.repo.SignIn(ctx, opts.email, time.Now())
	if err != nil {
		e.Close()
		if errors.Is(err, store.ErrNoUser) {
			return fmt.Errorf("%w: pass --email to sign in", err)
		}
		return err
	}
	e.logger.Info("signed in", "user", user.Email)

	catalog, err := loadCatalog(e.cfg.Canvas.PhrasesFile)
	if err != nil {
		e.Close()
		return err
	}

	st := state.NewState(catalog, state.WithLogger(e.logger))
	saved, err := e.repo.LoadBalloons(ctx, user.ID)
	if err != nil {
		e.Close()
		return err
	}
	if dropped := st.Restore(saved); dropped > 0 {
		e.logger.Warn("dropped saved balloons with unknown phrases", "count", dropped)
	}
	e.logger.Debug("canvas restored", "balloons", len(st.Balloons()), "available", len(st.Available()))

	a := vis.NewApp(st, user, e.repo, e.logger)

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("Phrase Canvas"),
			app.Size(unit.Dp(e.cfg.Window.Width), unit.Dp(e.cfg.Window.Height)),
		)
		code := 0
		if err := a.Run(ctx, w); err != nil {
			e.logger.Error("window closed", "err", err)
			code = 1
		}
		if err := e.Close(); err != nil {
			e.logger.Warn("closing store", "err", err)
		}
		os.Exit(code)
	}()
	app.Main()
	return nil
}

func loadCatalog(path string) (*core.Catalog, error) {
	if path == "" {
		return core.DefaultCatalog(), nil
	}
	return core.LoadCatalog(path)
}
