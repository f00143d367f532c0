// Package vis implements the Gio phrase canvas window.
package vis

import (
	"context"
	"image/color"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
	"github.com/elektrokombinacija/phrase-canvas/internal/store"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/state"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/widgets"
)

// saveTimeout bounds a single balloon write. Writes run on the event loop,
// so a slow store delays the frame by at most this much.
const saveTimeout = 250 * time.Millisecond

// App is the phrase canvas application.
type App struct {
	state   *state.State
	theme   *material.Theme
	canvas  *widgets.Canvas
	list    *widgets.PhraseList
	toolbar *widgets.Toolbar

	user   core.User
	repo   *store.Repository
	logger *log.Logger
}

// NewApp creates the application for a signed-in user. Every change to
// the placed balloons is written through repo.
func NewApp(st *state.State, user core.User, repo *store.Repository, logger *log.Logger) *App {
	a := &App{
		state:   st,
		theme:   material.NewTheme(),
		canvas:  widgets.NewCanvas(st),
		list:    widgets.NewPhraseList(st),
		toolbar: widgets.NewToolbar(st, user),
		user:    user,
		repo:    repo,
		logger:  logger,
	}
	st.OnChange = a.persist
	return a
}

func (a *App) persist(balloons []core.Balloon) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := a.repo.SaveBalloons(ctx, a.user.ID, balloons); err != nil {
		a.logger.Warn("saving balloons failed", "user", a.user.Email, "err", err)
	}
}

// Run starts the application event loop. It returns when the window is
// closed or ctx is cancelled.
func (a *App) Run(ctx context.Context, w *app.Window) error {
	var ops op.Ops

	stop := context.AfterFunc(ctx, func() {
		w.Perform(system.ActionClose)
	})
	defer stop()

	a.toolbar.OnSignOut = func() {
		a.signOut(ctx)
		w.Perform(system.ActionClose)
	}

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			// Handle keyboard events
			for {
				ev, ok := gtx.Event(
					key.Filter{Name: key.NameDeleteForward},
					key.Filter{Name: key.NameDeleteBackward},
					key.Filter{Name: key.NameEscape},
					key.Filter{Name: "+", Optional: key.ModShift},
					key.Filter{Name: "=", Optional: key.ModShift},
					key.Filter{Name: "-"},
					key.Filter{Name: "0"},
				)
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameDeleteForward, key.NameDeleteBackward:
		a.state.HandleKey(state.KeyDelete)
	case key.NameEscape:
		a.state.HandleKey(state.KeyEscape)
	case "+", "=":
		a.state.Viewport.ZoomIn()
	case "-":
		a.state.Viewport.ZoomOut()
	case "0":
		a.state.Viewport.Reset()
	}
}

func (a *App) signOut(ctx context.Context) {
	// Balloons stay in the store for the next sign-in.
	a.state.OnChange = nil
	a.state.Reset()
	if err := a.repo.DeleteUser(ctx); err != nil {
		a.logger.Warn("sign out failed", "err", err)
		return
	}
	a.logger.Info("signed out", "user", a.user.Email)
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		// Toolbar at top
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		// Phrase list on the left, canvas fills the rest
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return a.list.Layout(gtx, a.theme)
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return a.canvas.Layout(gtx, a.theme)
				}),
			)
		}),
	)
}
