package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/casalfin/statement-engine/internal/commands"
	"github.com/casalfin/statement-engine/internal/importer"
)

type CLI struct {
	commands.CommonConfig
	commands.EngineConfig

	Bank        string   `help:"Force a bank pattern by id instead of header detection (required for QIF files)"`
	Concurrency int      `help:"Number of statement files to process concurrently" default:"4"`
	NoProgress  bool     `help:"Disable progress bar" default:"false"`
	DryRun      bool     `help:"Parse and print transactions without storing them" default:"false"`
	Limit       int      `help:"Limit the number of transactions taken per file (0 = no limit)" default:"0"`
	Files       []string `arg:"" help:"Statement files to import (txt, pdf, qif)" type:"existingfile"`
}

func (c *CLI) Run() error {
	logger, err := commands.SetupLogger(c.CommonConfig)
	if err != nil {
		return err
	}

	eng := commands.SetupEngine(c.EngineConfig, logger)

	st, err := commands.SetupStore(c.CommonConfig, logger)
	if err != nil {
		logger.Fatal("Failed to initialize store", "error", err)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	imp := importer.New(eng, st, logger)
	results, err := imp.Run(ctx, c.Files, importer.Config{
		BankID:      c.Bank,
		Language:    c.Language,
		Concurrency: c.Concurrency,
		Progress:    !c.NoProgress,
		DryRun:      c.DryRun,
		Limit:       c.Limit,
	})
	if err != nil {
		logger.Fatal("Import failed", "error", err)
	}

	if c.DryRun {
		for _, r := range results {
			b, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				fmt.Printf("Error marshaling result: %v\n", err)
				continue
			}
			fmt.Println(string(b))
		}
		return nil
	}

	for _, r := range results {
		logger.Info("Statement imported",
			"file", r.File,
			"bank", r.Bank,
			"stored", r.Stored,
			"already_known", r.AlreadyKnown,
			"date_failures", r.DateFailures,
			"unresolved", r.Unresolved)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("statement-import"),
		kong.Description("Parse bank statement exports and import the transactions"),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
