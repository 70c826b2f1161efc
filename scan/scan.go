// Package scan lists directory trees together with the FAT aliases their entries would get.
// Every directory gets its own alias table, just like every FAT directory is its own name space.
package scan

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/aligator/gofatfs"
	"github.com/aligator/gofatfs/checkpoint"
	"github.com/aligator/gofatfs/platform"
	"github.com/rs/zerolog"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"
)

// ErrAllocateAlias is returned if no alias could be allocated for an entry.
var ErrAllocateAlias = errors.New("could not allocate an alias")

// Options control a scan.
type Options struct {
	// Workers is the number of directories read at the same time. Values below 1 mean 1.
	Workers int
	// Recursive descends into sub directories. Links to directories are not followed.
	Recursive bool
	// Ignore holds gitignore patterns matched against the slash separated path relative to the root.
	Ignore []string
	// Logger receives debug output. Nil means no logging.
	Logger *zerolog.Logger
}

// Record describes one directory entry.
type Record struct {
	// Path is slash separated and relative to the scanned root.
	Path     string
	Name     string
	Category platform.NodeCategory
	// Alias is unique inside of the directory of the entry.
	Alias gofatfs.Alias
	// Slots is the number of directory entries needed on a FAT medium,
	// the long name entries plus the alias entry.
	Slots int
}

// Tree reads root and, if requested, all directories below it.
// Directories of the same depth are processed concurrently. The records are sorted by path.
func Tree(ctx context.Context, fsys afero.Fs, root string, opts Options) ([]Record, error) {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "scan").Logger()
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	ignored := ignore.CompileIgnoreLines(opts.Ignore...)

	var (
		mu      sync.Mutex
		records []Record
	)

	level := []string{""}
	for depth := 0; len(level) > 0; depth++ {
		var next []string
		levelPool := pool.New().WithMaxGoroutines(workers).WithContext(ctx).WithCancelOnError()

		for _, dir := range level {
			levelPool.Go(func(ctx context.Context) error {
				res, subDirs, err := readDirectory(ctx, fsys, root, dir, ignored)
				if err != nil {
					return err
				}
				log.Debug().Str("dir", dir).Int("depth", depth).Int("entries", len(res)).Msg("read directory")

				mu.Lock()
				defer mu.Unlock()
				records = append(records, res...)
				if opts.Recursive {
					next = append(next, subDirs...)
				}
				return nil
			})
		}

		if err := levelPool.Wait(); err != nil {
			return nil, err
		}
		level = next
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})
	return records, nil
}

// readDirectory lists the directory rel below root and allocates the aliases of its entries
// in name order.
func readDirectory(ctx context.Context, fsys afero.Fs, root, rel string, ignored *ignore.GitIgnore) ([]Record, []string, error) {
	session, err := platform.OpenDirectory(fsys, filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, nil, err
	}
	defer session.Close()

	var records []Record
	cursor := session.Cursor()
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		entry, err := cursor.Advance()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		category := cursor.NodeCategory()
		p := path.Join(rel, entry.Name())
		match := p
		if category.Has(platform.Directory) {
			match += "/"
		}
		if ignored.MatchesPath(match) {
			continue
		}

		records = append(records, Record{
			Path:     p,
			Name:     entry.Name(),
			Category: category,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	var subDirs []string
	table := gofatfs.NewAliasTable()
	for i := range records {
		r := &records[i]
		if err := allocate(table, r); err != nil {
			return nil, nil, err
		}
		if r.Category.Has(platform.Directory) && !r.Category.Has(platform.Link) {
			subDirs = append(subDirs, r.Path)
		}
	}
	return records, subDirs, nil
}

func allocate(table *gofatfs.AliasTable, r *Record) error {
	alias, err := table.Unique(gofatfs.ConvertToAlias(r.Name))
	if err != nil {
		return checkpoint.Wrap(err, ErrAllocateAlias)
	}
	r.Alias = alias
	r.Slots = 1

	if alias.Lossy {
		entries, err := gofatfs.NewLongNameEntries(r.Name, alias)
		if err != nil {
			return checkpoint.Wrap(err, ErrAllocateAlias)
		}
		r.Slots += len(entries)
	}
	return nil
}
