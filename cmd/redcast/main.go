package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/avolokh/redcast/pkg/bot"
	"github.com/avolokh/redcast/pkg/config"
	"github.com/avolokh/redcast/pkg/generator"
	"github.com/avolokh/redcast/pkg/reddit"
	"github.com/avolokh/redcast/pkg/repository"
	"github.com/avolokh/redcast/pkg/scheduler"
	"github.com/avolokh/redcast/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Onetime bool   `long:"onetime" description:"post and comment once, then exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads the config, wires all components and blocks until ctx is canceled
// or a fatal startup error occurs
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	setupLog(opts.Debug, cfg.Reddit.Password, cfg.Reddit.ClientSecret, cfg.Generation.APIKey)
	log.Printf("[INFO] starting redcast version %s", revision)

	repos, err := repository.New(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if e := repos.Close(); e != nil {
			log.Printf("[WARN] failed to close database: %v", e)
		}
	}()

	redditClient := reddit.New(cfg.Reddit)
	me, err := redditClient.Me(ctx)
	if err != nil {
		return fmt.Errorf("reddit authentication failed: %w", err)
	}
	log.Printf("[INFO] authenticated with reddit as %s", me)

	gen := generator.NewClient(cfg.GetGenerationConfig())
	b := bot.New(redditClient, gen, repos.Action, cfg.GetPostingConfig())

	if err := b.TestConnection(ctx); err != nil {
		return fmt.Errorf("startup check failed: %w", err)
	}

	if opts.Onetime {
		log.Print("[INFO] onetime mode, running post and comment jobs")
		if err := b.CreatePost(ctx); err != nil {
			log.Printf("[ERROR] post job failed: %v", err)
		}
		if err := b.CreateComments(ctx); err != nil {
			log.Printf("[ERROR] comment job failed: %v", err)
		}
		return nil
	}

	schedCfg := cfg.GetScheduleConfig()
	sched, err := scheduler.New(scheduler.Params{
		Publisher:         b,
		PostTime:          schedCfg.PostTime,
		CommentTime:       schedCfg.CommentTime,
		PollInterval:      schedCfg.PollInterval,
		HeartbeatInterval: schedCfg.HeartbeatInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Config{
		Listen:  cfg.Server.Listen,
		Timeout: cfg.Server.Timeout,
		Version: revision,
		Debug:   opts.Debug,
	}, repos.Action)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
