// Command migrate applies migrations/001_initial_schema.sql to the configured
// database with the Atlas CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"coworking-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
)

func main() {
	schema := flag.String("schema", "migrations/001_initial_schema.sql", "desired schema file")
	devURL := flag.String("dev-url", "docker://postgres/17/dev?search_path=public", "Atlas dev database used to compute the diff")
	dryRun := flag.Bool("dry-run", false, "print planned statements without applying them")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall timeout")
	flag.Parse()

	if err := run(*schema, *devURL, *atlasBin, *dryRun, *timeout); err != nil {
		errColor.Fprintln(os.Stderr, "migration failed:", err)
		os.Exit(1)
	}
}

func run(schema, devURL, atlasBin string, dryRun bool, timeout time.Duration) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(schema)
	if err != nil {
		return fmt.Errorf("resolve schema path: %w", err)
	}
	if _, err = os.Stat(abs); err != nil {
		return fmt.Errorf("schema file: %w", err)
	}

	client, err := atlasexec.NewClient(".", atlasBin)
	if err != nil {
		return fmt.Errorf("atlas client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Printf("applying %s to %s:%s/%s\n", schema, cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName)
	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          "file://" + abs,
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return err
	}

	printChanges(res, dryRun)
	return nil
}

func printChanges(res *atlasexec.SchemaApply, dryRun bool) {
	stmts := res.Changes.Applied
	if dryRun {
		stmts = res.Changes.Pending
	}
	if len(stmts) == 0 {
		okColor.Println("schema is up to date")
		return
	}

	for _, s := range stmts {
		warnColor.Println("  " + s)
	}
	if dryRun {
		okColor.Printf("%d statement(s) pending\n", len(stmts))
		return
	}
	okColor.Printf("%d statement(s) applied\n", len(stmts))
}
