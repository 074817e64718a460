package main

import (
	"context"
	"errors"
	"html/template"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nrednav/cuid2"

	"github.com/skillswaphq/skillswap/internal/boot"
	"github.com/skillswaphq/skillswap/internal/handlers"
	"github.com/skillswaphq/skillswap/internal/seed"
	"github.com/skillswaphq/skillswap/internal/store"
)

type Template struct {
	viewsDir  string
	templates *template.Template
	watcher   *fsnotify.Watcher
}

func NewTemplate(viewsDir string) *Template {
	return &Template{
		viewsDir:  viewsDir,
		templates: template.Must(template.ParseGlob(path.Join(viewsDir, "*.html"))),
	}
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

// Watch reloads the view templates whenever one changes on disk. Dev only.
func (t *Template) Watch() {
	var err error

	t.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("watcher: %+v", err)
	}

	go func() {
		for {
			select {
			case event, ok := <-t.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) {
					log.Infof("reloading views after change to %s", event.Name)
					t.templates = template.Must(template.ParseGlob(path.Join(t.viewsDir, "*.html")))
				}
			case err, ok := <-t.watcher.Errors:
				if !ok {
					return
				}
				log.Errorf("watcher: %+v", err)
			}
		}
	}()

	if err = t.watcher.Add(t.viewsDir); err != nil {
		log.Fatalf("watcher: %+v", err)
	}
}

func (t *Template) Close() {
	if t.watcher != nil {
		t.watcher.Close()
	}
}

// stores bundles the explicitly-owned state of the process: one identity
// store, the three ledgers that resolve against it, and the session cache.
type stores struct {
	identity *store.Identity
	swaps    *store.SwapLedger
	messages *store.MessageLedger
	posts    *store.PostLedger
	sessions *store.SessionCache
}

func newStores(config *boot.Config) *stores {
	identity := store.NewIdentity()

	if config.SeedDemo {
		if err := seed.Demo(identity); err != nil {
			log.Fatalf("seeding demo members: %+v", err)
		}
	}

	sessions, err := store.NewSessionCache()
	if err != nil {
		log.Fatalf("creating session cache: %+v", err)
	}

	return &stores{
		identity: identity,
		swaps:    store.NewSwapLedger(identity),
		messages: store.NewMessageLedger(identity),
		posts:    store.NewPostLedger(identity),
		sessions: sessions,
	}
}

func main() {
	config, err := boot.Load()
	if err != nil {
		log.Fatalf("boot: %+v", err)
	}

	state := newStores(config)
	defer state.sessions.Close()

	server := echo.New()
	server.Use(middleware.BodyLimit("1M"))
	server.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return cuid2.Generate()
		},
	}))
	server.Use(echoprometheus.NewMiddleware("skillswap"))
	server.Use(middleware.Recover())

	server.Logger.SetLevel(log.INFO)

	headers := []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID}
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(config.Server.Origins, ","),
		AllowHeaders:     headers,
		AllowCredentials: true,
	}))

	server.Static("/static", "ui/static")

	t := NewTemplate(config.ViewsDir)
	defer t.Close()
	if config.IsDevelopment() {
		t.Watch()
	}
	server.Renderer = t

	server.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "app.html", nil)
	})

	server.POST("/api/auth/login", handlers.Login(state.identity, state.sessions))
	server.POST("/api/auth/register", handlers.Register(state.identity, state.sessions))
	server.POST("/api/auth/logout", handlers.Logout(state.sessions))

	api := server.Group("/api", handlers.RequireSession(state.sessions))
	api.GET("/me", handlers.CurrentUser(state.identity))
	api.PUT("/me", handlers.UpdateProfile(state.identity))
	api.GET("/users", handlers.BrowseUsers(state.identity))
	api.GET("/users/:userID", handlers.GetUser(state.identity))
	api.GET("/swaps", handlers.ListSwaps(state.swaps))
	api.POST("/swaps", handlers.CreateSwap(state.swaps))
	api.PUT("/swaps/:requestID/status", handlers.TransitionSwap(state.swaps))
	api.GET("/conversations", handlers.ListConversations(state.messages, state.identity))
	api.GET("/conversations/:userID", handlers.GetThread(state.messages))
	api.POST("/messages", handlers.SendMessage(state.messages))
	api.PUT("/messages/:messageID/read", handlers.MarkMessageRead(state.messages))
	api.GET("/posts", handlers.ListPosts(state.posts))
	api.POST("/posts", handlers.CreatePost(state.posts))
	api.POST("/posts/:postID/like", handlers.LikePost(state.posts))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(":" + config.Server.MetricsPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	go func() {
		if err := server.Start(":" + config.Server.Port); err != nil && err != http.ErrServerClosed {
			server.Logger.Fatal("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		server.Logger.Fatal(err)
	}
}
