package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-gridview"
	"github.com/domonda/go-gridview/htmlpage"
	"github.com/domonda/go-gridview/slickgrid"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var (
		c      gridCommand
		addr   string
		assets string
	)
	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a table as HTML document with a SlickGrid widget",
		Long: `Serve loads a table once and serves it over HTTP:

  /              HTML document with a new grid for every request
  /schema.json   column schema of the grid
  /records.json  row records of the grid

With --assets the widget files are served from a local directory
under ` + slickgrid.LocalAssetBasePath + `, otherwise use --remote-assets.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, frame, err := c.load(cmd, args)
			if err != nil {
				return err
			}
			handler, err := newServeHandler(frame, config, assets)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), addr, handler)
		},
	}
	c.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "HTTP listen address")
	cmd.Flags().StringVar(&assets, "assets", "", "local directory with the widget files")
	return cmd
}

// newServeHandler returns the routes serving frame.
// The grid options are validated once before serving.
func newServeHandler(frame *gridview.Frame, config *Config, assetsDir string) (http.Handler, error) {
	opts := config.gridOptions()
	grid, err := slickgrid.New(frame, opts...)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		// Every document needs its own DOM element ID
		grid, err := slickgrid.New(frame, opts...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		doc := htmlpage.Render(r.Context(), frame.Title(), grid)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = doc.WriteTo(w)
	})

	router.Get("/schema.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(grid.ColumnTypes())
	})

	router.Get("/records.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := gridview.WriteRecords(r.Context(), w, grid.Frame(), gridview.NewRecordEncoder(grid.Precision()))
		if err != nil {
			loggerFromContext(r.Context()).Error("Writing records", "err", err)
		}
	})

	if assetsDir != "" {
		dir := fs.File(assetsDir)
		if !dir.IsDir() {
			return nil, errors.New("assets directory not found: " + assetsDir)
		}
		files := http.StripPrefix(slickgrid.LocalAssetBasePath, http.FileServer(http.Dir(dir.LocalPath())))
		router.Handle(slickgrid.LocalAssetBasePath+"/*", files)
	}
	return router, nil
}

// serve runs an HTTP server until ctx is canceled.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("Serving grid", "url", "http://"+addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
