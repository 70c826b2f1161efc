package platform

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/aligator/gofatfs/checkpoint"
	"github.com/spf13/afero"
)

// readBatch is the number of entries fetched from the directory at once.
const readBatch = 32

// DirectorySession is an open directory which is read entry by entry.
// It is not safe for concurrent use.
type DirectorySession struct {
	fsys   afero.Fs
	opened string
	path   string

	dir     afero.File
	pending []os.FileInfo
}

// OpenDirectory opens the directory at path for reading.
// An empty path means the current directory. Path returns the path with exactly one
// trailing separator.
// If the directory cannot be opened a *FileOperationFailure is returned.
func OpenDirectory(fsys afero.Fs, path string) (*DirectorySession, error) {
	if path == "" {
		path = "."
	}

	dir, err := fsys.Open(path)
	if err != nil {
		return nil, &FileOperationFailure{Op: "opendir", Path: path, Err: checkpoint.Wrap(err, ErrOpenDirectory)}
	}

	stat, err := dir.Stat()
	if err == nil && !stat.IsDir() {
		err = syscall.ENOTDIR
	}
	if err != nil {
		_ = dir.Close()
		return nil, &FileOperationFailure{Op: "opendir", Path: path, Err: checkpoint.Wrap(err, ErrOpenDirectory)}
	}

	sep := string(filepath.Separator)
	s := &DirectorySession{
		fsys:   fsys,
		opened: path,
		path:   strings.TrimRight(path, sep) + sep,
		dir:    dir,
	}
	log().Debug().Str("path", s.path).Msg("opened directory")
	return s, nil
}

// Path returns the directory path ending with a separator.
func (s *DirectorySession) Path() string {
	return s.path
}

// Cursor returns a new cursor reading from s.
// All cursors of a session share its read position.
func (s *DirectorySession) Cursor() *Cursor {
	return &Cursor{session: s}
}

// Rewind resets the read position to the first entry.
// Directories of the host are rewound in place, any other handle is reopened.
func (s *DirectorySession) Rewind() error {
	if s.dir == nil {
		return ErrClosed
	}

	s.pending = nil
	if f, ok := s.dir.(*os.File); ok {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return &FileOperationFailure{Op: "rewinddir", Path: s.path, Err: checkpoint.Wrap(err, ErrReadDirectory)}
		}
		return nil
	}

	// afero's in-memory files keep their read position across Seek.
	dir, err := s.fsys.Open(s.opened)
	if err != nil {
		return &FileOperationFailure{Op: "rewinddir", Path: s.path, Err: checkpoint.Wrap(err, ErrReadDirectory)}
	}
	if err := s.dir.Close(); err != nil {
		log().Debug().Err(err).Str("path", s.path).Msg("closing rewound directory failed")
	}
	s.dir = dir
	return nil
}

// Close releases the directory. Closing it again does nothing.
func (s *DirectorySession) Close() error {
	if s.dir == nil {
		return nil
	}

	dir := s.dir
	s.dir = nil
	s.pending = nil
	if err := dir.Close(); err != nil {
		log().Warn().Err(err).Str("path", s.path).Msg("closing directory failed")
		return &FileOperationFailure{Op: "closedir", Path: s.path, Err: checkpoint.From(err)}
	}
	return nil
}

func (s *DirectorySession) next() (os.FileInfo, error) {
	if s.dir == nil {
		return nil, ErrClosed
	}

	if len(s.pending) == 0 {
		infos, err := s.dir.Readdir(readBatch)
		if len(infos) == 0 {
			if err == nil || err == io.EOF {
				return nil, io.EOF
			}
			return nil, &FileOperationFailure{Op: "readdir", Path: s.path, Err: checkpoint.Wrap(err, ErrReadDirectory)}
		}
		s.pending = infos
	}

	fi := s.pending[0]
	s.pending = s.pending[1:]
	return fi, nil
}

// Cursor walks over the entries of a DirectorySession without owning it.
type Cursor struct {
	session *DirectorySession
	entry   *Entry

	category    NodeCategory
	categorized bool
}

// Advance moves to the next entry and returns a copy of it.
// io.EOF is returned after the last entry, the cursor is unpositioned then.
func (c *Cursor) Advance() (Entry, error) {
	c.category, c.categorized = Empty, false

	fi, err := c.session.next()
	if err != nil {
		c.entry = nil
		return Entry{}, err
	}

	c.entry = &Entry{info: fi, dir: c.session.path}
	return *c.entry, nil
}

// Valid reports whether the cursor is positioned on an entry.
func (c *Cursor) Valid() bool {
	return c.entry != nil
}

// Name returns the name of the current entry, "." if the cursor is not positioned.
func (c *Cursor) Name() string {
	if c.entry == nil {
		return "."
	}
	return c.entry.Name()
}

// NodeCategory classifies the current entry. It is computed once per entry.
// Empty is returned if the cursor is not positioned, Invalid if nothing could be determined.
// For a link the category of its target is added if it can be resolved.
func (c *Cursor) NodeCategory() NodeCategory {
	if c.entry == nil {
		return Empty
	}
	if !c.categorized {
		c.category = c.classify()
		c.categorized = true
	}
	return c.category
}

func (c *Cursor) classify() NodeCategory {
	res := ClassifyNode(statOf(c.entry.info))
	if res&Link != 0 {
		if target, err := c.session.fsys.Stat(c.entry.Path()); err == nil {
			res |= ClassifyNode(statOf(target))
		} else {
			log().Debug().Err(err).Str("path", c.entry.Path()).Msg("dangling link")
		}
	}

	if res == Empty {
		return Invalid
	}
	return res
}

// Rewind unpositions the cursor and rewinds its session.
func (c *Cursor) Rewind() error {
	c.entry = nil
	c.category, c.categorized = Empty, false
	return c.session.Rewind()
}

// Entry is a directory entry read by a Cursor. It stays usable after the cursor moved on.
type Entry struct {
	info fs.FileInfo
	dir  string
}

func (e Entry) Name() string {
	return e.info.Name()
}

// Path joins the directory path and the name.
func (e Entry) Path() string {
	return e.dir + e.info.Name()
}

func (e Entry) IsDir() bool {
	return e.info.IsDir()
}

func (e Entry) Type() fs.FileMode {
	return e.info.Mode().Type()
}

// Info returns the information read together with the entry. Links are not followed.
func (e Entry) Info() (fs.FileInfo, error) {
	return e.info, nil
}

// NodeCategory classifies the entry without following links.
func (e Entry) NodeCategory() NodeCategory {
	if res := ClassifyNode(statOf(e.info)); res != Empty {
		return res
	}
	return Invalid
}

var _ fs.DirEntry = Entry{}
