package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/cjanusz/cv-dashboard/internal/attachment"
	"github.com/cjanusz/cv-dashboard/internal/config"
	"github.com/cjanusz/cv-dashboard/internal/logger"
	"github.com/cjanusz/cv-dashboard/internal/metrics"
	"github.com/cjanusz/cv-dashboard/internal/pipeline"
	"github.com/cjanusz/cv-dashboard/internal/web"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

// newApp builds the CLI. Command output goes to stdout; logs go to stdout
// for serve and to stderr for render, whose stdout is a JSON or YAML document.
func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "resume",
		Usage:     "Personal resume dashboard",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "attachment",
				Value:   config.DefaultAttachment,
				Usage:   "Optional CV file offered for download",
				EnvVars: []string{"CV_PATH"},
			},
			&cli.StringFlag{
				Name:    "attachment-dir",
				Usage:   "Directory relative attachment paths resolve against (default: executable directory)",
				EnvVars: []string{"ATTACHMENT_DIR"},
			},
			&cli.StringFlag{
				Name:    "title",
				Value:   config.DefaultTitle,
				Usage:   "Page title",
				EnvVars: []string{"PAGE_TITLE"},
			},
			&cli.StringFlag{
				Name:    "icon",
				Value:   config.DefaultIcon,
				Usage:   "Page icon",
				EnvVars: []string{"PAGE_ICON"},
			},
			&cli.StringFlag{
				Name:    "layout",
				Value:   string(config.LayoutWide),
				Usage:   "Page layout (narrow, wide)",
				EnvVars: []string{"PAGE_LAYOUT"},
			},
			&cli.StringFlag{
				Name:    "sidebar-state",
				Value:   string(config.SidebarExpanded),
				Usage:   "Initial sidebar state (expanded, collapsed)",
				EnvVars: []string{"SIDEBAR_STATE"},
			},
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Run gin in debug mode",
				EnvVars: []string{"GIN_DEBUG"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(c.App.Writer, logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Action: runServe,
			},
			{
				Name:  "render",
				Usage: "Render the dashboard once and print the layout blocks",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   formatJSON,
						Usage:   "Output format (json, yaml)",
					},
				},
				Before: func(c *cli.Context) error {
					logger.Setup(c.App.ErrWriter, logger.ParseLevel(c.String("log-level")))
					return nil
				},
				Action: runRender,
			},
		},
		Action: runServe,
	}
}

func pageFromFlags(c *cli.Context) (config.Page, error) {
	l, err := config.ParseLayout(c.String("layout"))
	if err != nil {
		return config.Page{}, err
	}
	st, err := config.ParseSidebarState(c.String("sidebar-state"))
	if err != nil {
		return config.Page{}, err
	}
	return config.Page{
		Title:        c.String("title"),
		Icon:         c.String("icon"),
		Layout:       l,
		SidebarState: st,
	}, nil
}

func attachmentFromFlags(c *cli.Context) attachment.Ref {
	dir := c.String("attachment-dir")
	if dir == "" {
		dir = config.ExecutableDir()
	}
	return attachment.NewRef(dir, c.String("attachment"))
}

func runServe(c *cli.Context) error {
	page, err := pageFromFlags(c)
	if err != nil {
		return err
	}

	if c.Bool("debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ref := attachmentFromFlags(c)
	m := metrics.New()

	srv, err := web.New(web.Deps{
		Pipeline: pipeline.New(ref, pipeline.WithMetrics(m)),
		Page:     page,
		Metrics:  m,
	})
	if err != nil {
		return fmt.Errorf("failed to build web server: %w", err)
	}

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           srv.Handler(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server",
			"server_addr", "http://localhost:"+port,
			"attachment", ref.Path,
			"layout", page.Layout,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		slog.Info("server stopped")
		return nil
	})

	return g.Wait()
}

func runRender(c *cli.Context) error {
	page, err := pageFromFlags(c)
	if err != nil {
		return err
	}

	res := pipeline.New(attachmentFromFlags(c)).Render(c.Context)
	if err := res.Dataset.Validate(); err != nil {
		return fmt.Errorf("invalid dataset: %w", err)
	}
	return writeRender(c.App.Writer, c.String("format"), page, res)
}
