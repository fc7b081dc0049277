package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gorilla/mux"

	"github.com/casalfin/statement-engine/internal/api"
	"github.com/casalfin/statement-engine/internal/commands"
)

type CLI struct {
	commands.CommonConfig
	commands.EngineConfig

	Listen string `help:"Address to listen on" default:":8080" env:"LISTEN_ADDR"`
}

func (c *CLI) Run() error {
	logger, err := commands.SetupLogger(c.CommonConfig)
	if err != nil {
		return err
	}

	eng := commands.SetupEngine(c.EngineConfig, logger)

	router := mux.NewRouter()
	api.NewHandler(eng, logger).RegisterRoutes(router)

	server := &http.Server{
		Addr:         c.Listen,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("Listening", "addr", c.Listen)
	return server.ListenAndServe()
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("statement-server"),
		kong.Description("HTTP API for the statement pattern engine"),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
