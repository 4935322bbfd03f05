// main is the entry point for the todo API server
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"todoapi/internal/api"
	"todoapi/internal/config"
	"todoapi/internal/model"
	"todoapi/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	os.Args = os.Args[1:]

	switch cmd {
	case "run":
		runServer()
	case "openapi-gen":
		generateOpenAPI()
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`
Usage: todoapi <command> [options]

Commands:
  run          Start the HTTP server
  openapi-gen  Generate OpenAPI documentation

Run 'todoapi <command> -h' for more information on a command.
`)
}

func runServer() {
	configPath := flag.String("config", "todoapi.toml", "Path to the TOML configuration file")
	addr := flag.String("addr", "", "HTTP server address (overrides the config file)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("loading configuration")
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithFields(log.Fields{"level": cfg.LogLevel}).Fatal("unknown log level")
	}
	log.SetLevel(level)

	var initial []model.Todo
	if cfg.Seed {
		initial = store.Seed()
	}
	todos := store.NewTodoStore(initial...)

	r := api.NewRouter(todos)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(log.Fields{"addr": cfg.Addr}).Info("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithFields(log.Fields{"err": err}).Fatal("server error")
		}
	}()

	<-ctx.Done()

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("server shutdown error")
	}

	log.Info("server stopped")
}

func generateOpenAPI() {
	output := flag.String("o", "openapi.json", "Output file path")
	flag.Parse()

	// routes registered against a no-op store are enough for documentation
	spec := api.NewRouter(api.NewMockTodoStore())

	data, err := spec.OpenAPIJSON()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("generating openapi spec")
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		log.WithFields(log.Fields{"err": err, "path": *output}).Fatal("writing openapi spec")
	}

	fmt.Printf("OpenAPI spec generated at %s\n", *output)
}
