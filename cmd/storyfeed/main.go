package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"storyfeed/internal/api"
	"storyfeed/internal/config"
	"storyfeed/internal/domain"
	"storyfeed/internal/feed"
	"storyfeed/internal/publisher"
	"storyfeed/internal/scheduler"
	"storyfeed/internal/service"
	"storyfeed/internal/session"
	"storyfeed/internal/storage/postgres"
)

const usage = `usage: storyfeed [-config file] <command>

commands:
  register  -name NAME -email EMAIL -password PASSWORD
  login     -email EMAIL -password PASSWORD
  logout
  feed      [-pages N]   load and print the cached feed
  map                    print the geo-tagged stories
  post      -photo FILE -description TEXT [-lat LAT] [-lon LON]
  watch                  keep the cache fresh and publish new stories
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	client := api.New(api.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)
	sessions := session.NewStore(cfg.Session.Path)

	command := flag.Arg(0)
	args := flag.Args()[1:]

	if err := run(ctx, command, args, cfg, client, sessions, logger); err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Error("command failed", "command", command, "error", err)
			os.Exit(1)
		}
	}
}

func run(
	ctx context.Context,
	command string,
	args []string,
	cfg *config.Config,
	client *api.Client,
	sessions *session.Store,
	logger *slog.Logger,
) error {
	users := service.NewUserService(client, sessions, logger)
	stories := service.NewStoryService(client, sessions, logger)

	switch command {
	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		name := fs.String("name", "", "display name")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		if err := fs.Parse(args); err != nil {
			return err
		}
		ack, err := await(users.Register(ctx, *name, *email, *password))
		if err != nil {
			return err
		}
		fmt.Println(ack.Message)
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		if err := fs.Parse(args); err != nil {
			return err
		}
		sess, err := await(users.Login(ctx, *email, *password))
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s\n", sess.Name)
		return nil

	case "logout":
		return users.Logout(ctx)

	case "feed":
		fs := flag.NewFlagSet("feed", flag.ExitOnError)
		pages := fs.Int("pages", 1, "number of pages to load")
		if err := fs.Parse(args); err != nil {
			return err
		}
		pager, db, err := buildPager(cfg, client, sessions, logger)
		if err != nil {
			return err
		}
		defer db.Close()
		return runFeed(ctx, pager, *pages)

	case "map":
		list, err := await(stories.StoriesWithLocation(ctx))
		if err != nil {
			return err
		}
		for _, story := range list {
			printStory(story)
		}
		return nil

	case "post":
		fs := flag.NewFlagSet("post", flag.ExitOnError)
		photoPath := fs.String("photo", "", "path to the photo")
		description := fs.String("description", "", "story description")
		lat := fs.Float64("lat", 0, "latitude")
		lon := fs.Float64("lon", 0, "longitude")
		if err := fs.Parse(args); err != nil {
			return err
		}
		photo, err := os.ReadFile(*photoPath)
		if err != nil {
			return fmt.Errorf("read photo: %w", err)
		}
		var latPtr, lonPtr *float64
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "lat":
				latPtr = lat
			case "lon":
				lonPtr = lon
			}
		})
		ack, err := await(stories.Post(ctx, photo, *description, latPtr, lonPtr))
		if err != nil {
			return err
		}
		fmt.Println(ack.Message)
		return nil

	case "watch":
		pager, db, err := buildPager(cfg, client, sessions, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer rabbitMQ.Close()

		watcher := service.NewWatcher(pager, rabbitMQ, logger)
		sched := scheduler.NewScheduler(watcher, cfg.Feed.AutoRefresh, logger)

		logger.Info("starting feed watcher",
			"interval", cfg.Feed.AutoRefresh,
			"page_size", cfg.Feed.PageSize,
		)
		return sched.Start(ctx)

	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func buildPager(cfg *config.Config, client *api.Client, sessions *session.Store, logger *slog.Logger) (*feed.Pager, *sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	storyStore := postgres.NewStoryStore(db)
	keyStore := postgres.NewRemoteKeyStore(db)
	txManager := postgres.NewTransactionManager(db)

	mediator := feed.NewMediator(client, storyStore, keyStore, txManager, sessions, logger)
	pager := feed.NewPager(mediator, storyStore, cfg.Feed.PageSize, logger)
	return pager, db, nil
}

func runFeed(ctx context.Context, pager *feed.Pager, pages int) error {
	if _, err := pager.Refresh(ctx); err != nil {
		return err
	}
	for i := 1; i < pages && !pager.EndReached(); i++ {
		if _, err := pager.Append(ctx); err != nil {
			return err
		}
	}

	cached, err := pager.Stories(ctx)
	if err != nil {
		return err
	}
	for _, story := range cached {
		printStory(story)
	}
	if pager.EndReached() {
		fmt.Println("-- end of feed --")
	}
	return nil
}

func printStory(story domain.Story) {
	name, desc, created := "", "", ""
	if story.Name != nil {
		name = *story.Name
	}
	if story.Description != nil {
		desc = *story.Description
	}
	if story.CreatedAt != nil {
		created = *story.CreatedAt
	}
	if story.Lat != nil && story.Lon != nil {
		fmt.Printf("%s  %s (%s) @ %.5f,%.5f: %s\n", story.ID, name, created, *story.Lat, *story.Lon, desc)
		return
	}
	fmt.Printf("%s  %s (%s): %s\n", story.ID, name, created, desc)
}

// await drains a result channel and returns its terminal value.
func await[T any](results <-chan domain.Result[T]) (T, error) {
	var zero T
	for res := range results {
		switch res.State {
		case domain.ResultSuccess:
			return res.Data, nil
		case domain.ResultError:
			return zero, errors.New(res.Message)
		}
	}
	return zero, errors.New("operation ended without a result")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
