package main

import (
	"fmt"
	"os"

	"github.com/aligator/gofatfs"
	"github.com/aligator/gofatfs/internal/config"
	"github.com/aligator/gofatfs/internal/logger"
	"github.com/spf13/pflag"
)

// main prints the FAT aliases of the given long names, as they would be allocated
// inside of one directory.
func main() {
	configPath := pflag.String("config", "", "path of the config file")
	codePage := pflag.String("codepage", "", "OEM code page of the aliases, e.g. 437 or 850")
	pflag.Parse()

	names := pflag.Args()
	if len(names) <= 0 {
		fmt.Println("Please provide at least one long file name.")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if *codePage != "" {
		cfg.Alias.CodePage = *codePage
	}

	log := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Path: cfg.Logging.Path})
	defer log.Close()

	cm, err := gofatfs.LookupCodePage(cfg.Alias.CodePage)
	if err != nil {
		log.Error().Err(err).Msg("invalid code page")
		os.Exit(1)
	}
	gofatfs.SetCodePage(cm)

	table := gofatfs.NewAliasTable()
	for _, name := range names {
		alias, err := table.Unique(gofatfs.ConvertToAlias(name))
		if err != nil {
			log.Error().Err(err).Str("name", name).Msg("could not allocate an alias")
			os.Exit(1)
		}

		slots := 1
		if alias.Lossy {
			entries, err := gofatfs.NewLongNameEntries(name, alias)
			if err != nil {
				log.Error().Err(err).Str("name", name).Msg("could not build the long name entries")
				os.Exit(1)
			}
			slots += len(entries)
		}

		log.Debug().Str("name", name).Str("alias", alias.String()).Bool("lossy", alias.Lossy).Msg("converted")
		fmt.Printf("%-12s %#02x %d %s\n", alias.String(), alias.Checksum(), slots, name)
	}
}
