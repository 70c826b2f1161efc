package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/aligator/gofatfs"
	"github.com/aligator/gofatfs/internal/config"
	"github.com/aligator/gofatfs/internal/utf16x"
	"github.com/aligator/gofatfs/internal/logger"
	"github.com/aligator/gofatfs/platform"
	"github.com/aligator/gofatfs/scan"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// main is just an example main to play with gofatfs.
// It lists a directory together with the aliases its entries would get on a FAT volume.
func main() {
	configPath := pflag.String("config", "", "path of the config file")
	recursive := pflag.BoolP("recursive", "r", false, "descend into sub directories")
	workers := pflag.IntP("workers", "w", 0, "directories read at the same time")
	ignore := pflag.StringSlice("ignore", nil, "gitignore patterns of entries to skip")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if pflag.CommandLine.Changed("recursive") {
		cfg.Scan.Recursive = *recursive
	}
	if *workers > 0 {
		cfg.Scan.Workers = *workers
	}
	cfg.Scan.Ignore = append(cfg.Scan.Ignore, *ignore...)

	log := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Path: cfg.Logging.Path})
	defer log.Close()
	platform.SetLogger(log.Logger)

	cm, err := gofatfs.LookupCodePage(cfg.Alias.CodePage)
	if err != nil {
		log.Error().Err(err).Msg("invalid code page")
		os.Exit(1)
	}
	gofatfs.SetCodePage(cm)

	root := ""
	if pflag.NArg() > 0 {
		root = pflag.Arg(0)
	}

	if !platform.IsAbsolute(root) {
		buf := make([]uint16, 4096)
		if _, err := platform.Getwd16(buf); err != nil {
			log.Error().Err(err).Msg("could not get the working directory")
			os.Exit(1)
		}
		root = filepath.Join(utf16x.ToString(buf), root)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	records, err := scan.Tree(ctx, afero.NewOsFs(), root, scan.Options{
		Workers:   cfg.Scan.Workers,
		Recursive: cfg.Scan.Recursive,
		Ignore:    cfg.Scan.Ignore,
		Logger:    &log.Logger,
	})
	if err != nil {
		log.Error().Err(err).Str("root", root).Msg("could not scan")
		os.Exit(1)
	}

	fmt.Println(root)
	for _, r := range records {
		fmt.Printf("%-12s %-18s %d %s\n", r.Alias.String(), r.Category, r.Slots, r.Path)
	}
}
