// Package web serves the list, detail and form views and a JSON API for a
// single local user.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rcliao/style-kb/internal/model"
	"github.com/rcliao/style-kb/internal/store"
)

// Styles is the storage the server works against. *store.Store implements it.
type Styles interface {
	GetAll(ctx context.Context) ([]model.StyleRecord, error)
	GetByID(ctx context.Context, id string) (*model.StyleRecord, error)
	Create(ctx context.Context, f model.StyleFields) (*model.StyleRecord, error)
	Update(ctx context.Context, id string, p model.StylePatch) (*model.StyleRecord, error)
	Delete(ctx context.Context, id string) error
	ImportBatch(ctx context.Context, rows []store.RawRow) (int, error)
	Search(ctx context.Context, p store.FilterParams) ([]model.StyleRecord, error)
	Stats(ctx context.Context) (*store.Stats, error)
	Tags(ctx context.Context) ([]store.TagCount, error)
}

// Options configures a Server.
type Options struct {
	Logger      zerolog.Logger
	CORSOrigins []string
	// MaxUploadBytes limits spreadsheet uploads. Zero means 32 MiB.
	MaxUploadBytes int64
}

// Server holds the gin engine and its dependencies.
type Server struct {
	styles    Styles
	log       zerolog.Logger
	views     *renderer
	maxUpload int64
	engine    *gin.Engine
}

// New builds the server and registers every route.
func New(styles Styles, opts Options) (*Server, error) {
	views, err := newRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		styles:    styles,
		log:       opts.Logger,
		views:     views,
		maxUpload: opts.MaxUploadBytes,
	}
	if s.maxUpload <= 0 {
		s.maxUpload = 32 << 20
	}

	r := gin.New()
	r.Use(requestID(), requestLogger(s.log), recovery(s.log))
	if len(opts.CORSOrigins) > 0 {
		r.Use(corsMiddleware(opts.CORSOrigins))
	}
	r.MaxMultipartMemory = s.maxUpload

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/styles") })

	pages := r.Group("/styles", sameOrigin(opts.CORSOrigins), s.csrf())
	{
		pages.GET("", s.listView)
		pages.GET("/new", s.newView)
		pages.POST("", s.createView)
		pages.POST("/import", s.importView)
		pages.GET("/export.xlsx", s.exportXLSX)
		pages.GET("/:id", s.detailView)
		pages.GET("/:id/edit", s.editView)
		pages.POST("/:id", s.updateView)
		pages.POST("/:id/delete", s.deleteView)
	}

	api := r.Group("/api", sameOrigin(opts.CORSOrigins))
	{
		api.GET("/styles", s.apiList)
		api.POST("/styles", requireJSON(), s.apiCreate)
		api.POST("/styles/import", requireJSON(), s.apiImport)
		api.POST("/styles/upload", s.apiUpload)
		api.GET("/styles/:id", s.apiGet)
		api.PATCH("/styles/:id", requireJSON(), s.apiUpdate)
		api.DELETE("/styles/:id", s.apiDelete)
		api.GET("/stats", s.apiStats)
		api.GET("/tags", s.apiTags)
	}

	s.engine = r
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then drains open requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info().Msg("server stopped")
	return nil
}
