package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/quizboard/internal/board"
	"github.com/jask/quizboard/internal/config"
	"github.com/jask/quizboard/internal/logging"
	"github.com/jask/quizboard/internal/quizapi"
	"github.com/jask/quizboard/internal/tui"
	"github.com/jask/quizboard/internal/web"
)

func main() {
	list := flag.Bool("list", false, "print the quiz list and exit")
	format := flag.String("format", "text", "output format for -list: text, html or json")
	create := flag.Bool("create", false, "create a quiz from -title and -description and exit")
	title := flag.String("title", "", "quiz title for -create")
	description := flag.String("description", "", "quiz description for -create")
	check := flag.Bool("check", false, "check the backend health route and exit")
	serve := flag.Bool("serve", false, "serve the HTML front end")
	addr := flag.String("addr", "", "listen address for -serve (default from config)")
	writeConfig := flag.Bool("write-config", false, "write the effective configuration to the config file and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *writeConfig {
		if err := config.Save(cfg); err != nil {
			log.Fatalf("save config: %v", err)
		}
		return
	}

	interactive := !*list && !*create && !*check && !*serve
	logPath := ""
	if interactive {
		logPath = cfg.Log.Path
	}
	closer, err := logging.Init(cfg.Log.Level, logPath)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := quizapi.New(cfg.API.URL,
		quizapi.WithTimeout(cfg.API.Timeout),
		quizapi.WithLogger(logrus.StandardLogger()),
	)

	var code int
	switch {
	case *check:
		code = runCheck(ctx, client, os.Stdout)
	case *list:
		code = runList(ctx, client, cfg.API.URL, *format, os.Stdout)
	case *create:
		code = runCreate(ctx, client, *title, *description, os.Stdout)
	case *serve:
		code = runServe(ctx, client, cfg, *addr)
	default:
		p := tea.NewProgram(tui.New(ctx, client, cfg.API.URL, tui.Options{}), tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			fmt.Printf("error: %v\n", err)
			code = 1
		}
	}
	if code != 0 {
		stop()
		closer.Close()
		os.Exit(code)
	}
}

func runCheck(ctx context.Context, client *quizapi.Client, w io.Writer) int {
	if err := client.Health(ctx); err != nil {
		fmt.Fprintf(w, "backend unhealthy: %v\n", err)
		return 1
	}
	fmt.Fprintln(w, "backend healthy")
	return 0
}

func runList(ctx context.Context, client *quizapi.Client, apiURL, format string, w io.Writer) int {
	state := board.Load(ctx, client, apiURL)
	if err := writeList(w, format, state); err != nil {
		fmt.Fprintf(os.Stderr, "list: %v\n", err)
		return 2
	}
	if state.Phase == board.ListFailed {
		return 1
	}
	return 0
}

func runCreate(ctx context.Context, client *quizapi.Client, title, description string, w io.Writer) int {
	sub := board.Submit(ctx, client, title, description)
	fmt.Fprintln(w, sub.Message)
	if sub.Phase != board.SubmitSucceeded {
		return 1
	}
	return 0
}

func runServe(ctx context.Context, client *quizapi.Client, cfg config.Config, addr string) int {
	if addr == "" {
		addr = cfg.Web.Addr
	}
	srv := web.New(client, cfg.API.URL, nil)
	if err := srv.Run(ctx, addr); err != nil {
		logrus.WithError(err).Error("web front end stopped")
		return 1
	}
	return 0
}
