package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/qepting91/reddit-hotwalk/internal/collector"
	"github.com/qepting91/reddit-hotwalk/internal/config"
	"github.com/qepting91/reddit-hotwalk/internal/dashboard"
	"github.com/qepting91/reddit-hotwalk/internal/ingest"
	"github.com/qepting91/reddit-hotwalk/internal/service"
	"github.com/qepting91/reddit-hotwalk/internal/storage"
	"github.com/urfave/cli/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr, stdout carries results
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := &cli.App{
		Name:  "hotwalk",
		Usage: "Read subreddit metadata and hot listings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mode",
				Usage:   "collector mode: public, api or mock",
				Value:   cfg.Reddit.Mode,
				EnvVars: []string{"COLLECTOR_MODE"},
			},
		},
		Before: func(c *cli.Context) error {
			cfg.Reddit.Mode = c.String("mode")
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "subs",
				Usage:     "Print the subscriber count (0 when unavailable)",
				ArgsUsage: "<subreddit>",
				Action: func(c *cli.Context) error {
					svc, err := newService(&cfg, logger)
					if err != nil {
						return err
					}
					fmt.Println(svc.NumberOfSubscribers(c.Context, c.Args().First()))
					return nil
				},
			},
			{
				Name:      "top",
				Usage:     "Print the first 10 hot titles",
				ArgsUsage: "<subreddit>",
				Action: func(c *cli.Context) error {
					svc, err := newService(&cfg, logger)
					if err != nil {
						return err
					}
					svc.TopTen(c.Context, c.Args().First())
					return nil
				},
			},
			{
				Name:      "hot",
				Usage:     "Print every hot title across all pages",
				ArgsUsage: "<subreddit>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Usage: "append titles as NDJSON to `FILE`"},
				},
				Action: hotAction(&cfg, logger),
			},
			{
				Name:      "count",
				Usage:     "Tally keyword occurrences across every hot title",
				ArgsUsage: "<subreddit> [keyword...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "keywords-file", Usage: "read extra keywords from the first column of `CSV`"},
					&cli.StringFlag{Name: "out", Usage: "append tally entries as NDJSON to `FILE`"},
					&cli.StringFlag{Name: "chart", Usage: "render the tally as an HTML bar chart to `FILE`"},
				},
				Action: countAction(&cfg, logger),
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Error("Command failed", "err", err)
		os.Exit(1)
	}
}

func newService(cfg *config.Config, logger *slog.Logger) (*service.Service, error) {
	client, err := collector.NewCollector(cfg.Reddit)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize collector: %w", err)
	}
	logger.Debug("Collector initialized", "mode", cfg.Reddit.Mode)
	return service.New(client, os.Stdout, logger), nil
}

func hotAction(cfg *config.Config, logger *slog.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		svc, err := newService(cfg, logger)
		if err != nil {
			return err
		}

		sub := c.Args().First()
		titles := svc.Recurse(c.Context, sub)
		if titles == nil {
			fmt.Println(service.FailureLine)
			return nil
		}
		for _, t := range titles {
			fmt.Println(t)
		}

		if path := c.String("out"); path != "" {
			w := &storage.WriterService{FilePath: path}
			if err := w.WriteTitles(sub, titles); err != nil {
				return fmt.Errorf("failed to export titles: %w", err)
			}
			logger.Info("Titles exported", "file", path, "count", len(titles))
		}
		return nil
	}
}

func countAction(cfg *config.Config, logger *slog.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		svc, err := newService(cfg, logger)
		if err != nil {
			return err
		}

		sub := c.Args().First()
		words := c.Args().Tail()
		if path := c.String("keywords-file"); path != "" {
			more, err := ingest.LoadKeywords(path)
			if err != nil {
				return fmt.Errorf("failed to load keywords: %w", err)
			}
			words = append(words, more...)
		}

		entries, err := svc.CountWords(c.Context, sub, words)
		if err != nil {
			// Silent on stdout; the cause is already logged
			return nil
		}
		if out := c.String("out"); out != "" {
			w := &storage.WriterService{FilePath: out}
			if err := w.WriteTally(entries); err != nil {
				return fmt.Errorf("failed to export tally: %w", err)
			}
		}
		if chart := c.String("chart"); chart != "" {
			if err := dashboard.SaveTally(chart, sub, entries); err != nil {
				return fmt.Errorf("failed to render chart: %w", err)
			}
			logger.Info("Chart written", "file", chart)
		}
		return nil
	}
}
