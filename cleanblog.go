// Package cleanblog is a small personal blog built with Go, Echo, and templ.
// It lists, shows, creates, edits and deletes posts stored in SQLite, and
// serves two static pages.
//
// Templates are supplied through the ViewFuncs struct, so a site can render
// its own markup while cleanblog keeps the handlers, middleware and storage.
package cleanblog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 10 * time.Second

// ViewFuncs holds the templ components the handlers render.
type ViewFuncs struct {
	Index       func(posts []BlogPost, flashes []string) templ.Component
	Post        func(post BlogPost) templ.Component
	PostForm    func(page PostFormPage) templ.Component
	About       func() templ.Component
	Contact     func() templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App wires together the store, handlers, middleware and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Views  ViewFuncs
}

// New creates an App with the given configuration and views. Call Init (or
// Run, which calls it) before serving requests.
func New(cfg SiteConfig, views ViewFuncs) *App {
	cfg.SetDefaults()
	e := echo.New()
	e.HideBanner = true
	return &App{
		Config: cfg,
		Echo:   e,
		Views:  views,
	}
}

// Init validates the configuration, opens the store and registers
// middleware and routes.
func (a *App) Init() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("cleanblog: SessionSecret is required")
	}
	lvl, err := parseLogLevel(a.Config.LogLevel)
	if err != nil {
		return fmt.Errorf("cleanblog: %w", err)
	}
	a.Echo.Logger.SetLevel(lvl)

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("cleanblog: init store: %w", err)
	}
	a.Store = store

	a.Echo.Validator = newFormValidator()
	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down and
// closes the store.
func (a *App) Run(ctx context.Context) error {
	if a.Store == nil {
		if err := a.Init(); err != nil {
			return err
		}
	}
	defer a.Close()

	errc := make(chan error, 1)
	go func() {
		a.Echo.Logger.Infof("listening on %s", a.Config.Addr)
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.Echo.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.Echo.Shutdown(shutdownCtx)
}

func (a *App) setupRoutes() {
	e := a.Echo
	getPost := []string{http.MethodGet, http.MethodPost}

	e.GET("/", a.handleIndex)
	e.GET("/post", a.handleShowPost)
	e.Match(getPost, "/addpost", a.handleAddPost)
	e.Match(getPost, "/edit-post/:id", a.handleEditPost)
	e.Match(getPost, "/delete/:id", a.handleDeletePost)
	e.GET("/about", a.handleAbout)
	e.GET("/contact", a.handleContact)
}

// Close releases the store. It is safe to call more than once.
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	err := a.Store.Close()
	a.Store = nil
	return err
}
