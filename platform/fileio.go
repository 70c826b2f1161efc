package platform

import (
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/aligator/gofatfs/checkpoint"
	"github.com/aligator/gofatfs/internal/utf16x"
	"github.com/spf13/afero"
)

// Access modes for FS.Access.
const (
	AccessExist   = 0
	AccessExecute = 1
	AccessWrite   = 2
	AccessRead    = 4
)

// DefaultDirectoryPerm is used by FS.Mkdir, before the umask is applied.
const DefaultDirectoryPerm = 0o777

// FS wraps an afero.Fs with the file operations of the platform layer.
// Every failure is a *FileOperationFailure.
type FS struct {
	fsys afero.Fs
}

// NewFS wraps fsys. A nil fsys means the operating system file system.
func NewFS(fsys afero.Fs) *FS {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FS{fsys: fsys}
}

// Afero returns the wrapped file system.
func (f *FS) Afero() afero.Fs {
	return f.fsys
}

func fail(op, name string, sentinel, err error) error {
	return &FileOperationFailure{Op: op, Path: name, Err: checkpoint.WrapSkip(1, err, sentinel)}
}

// Open opens name with the os.O_* flags in flag.
func (f *FS) Open(name string, flag int, perm os.FileMode) (*FileDescriptor, error) {
	file, err := f.fsys.OpenFile(name, flag, perm)
	if err != nil {
		return nil, fail("open", name, ErrOpenFile, err)
	}
	return &FileDescriptor{file: file}, nil
}

// OpenUTF16 is Open for a UTF-16 name, optionally NUL terminated.
func (f *FS) OpenUTF16(name []uint16, flag int, perm os.FileMode) (*FileDescriptor, error) {
	return f.Open(utf16x.ToString(name), flag, perm)
}

// Exists reports whether name can be opened for reading.
func (f *FS) Exists(name string) bool {
	file, err := f.fsys.Open(name)
	if err != nil {
		return false
	}
	_ = file.Close()
	return true
}

// ExistsUTF16 is Exists for a UTF-16 name, optionally NUL terminated.
func (f *FS) ExistsUTF16(name []uint16) bool {
	return f.Exists(utf16x.ToString(name))
}

// Access checks whether name exists and, for every bit of mode, whether the permission
// bits grant it to anybody. AccessExist only checks the existence.
func (f *FS) Access(name string, mode int) error {
	stat, err := f.fsys.Stat(name)
	if err != nil {
		return fail("access", name, ErrQueryFile, err)
	}

	perm := stat.Mode().Perm()
	for _, bit := range []int{AccessRead, AccessWrite, AccessExecute} {
		if mode&bit == 0 {
			continue
		}
		b := os.FileMode(bit)
		if perm&(b<<6|b<<3|b) == 0 {
			return fail("access", name, ErrQueryFile, syscall.EACCES)
		}
	}
	return nil
}

// Mkdir creates the directory name with DefaultDirectoryPerm.
func (f *FS) Mkdir(name string) error {
	if err := f.fsys.Mkdir(name, DefaultDirectoryPerm); err != nil {
		return fail("mkdir", name, ErrModifyFile, err)
	}
	return nil
}

// Rmdir removes the empty directory name.
func (f *FS) Rmdir(name string) error {
	stat, err := f.lstat(name)
	if err == nil && !stat.IsDir() {
		err = syscall.ENOTDIR
	}
	if err == nil {
		err = f.fsys.Remove(name)
	}
	if err != nil {
		return fail("rmdir", name, ErrModifyFile, err)
	}
	return nil
}

// Unlink removes name, which must not be a directory.
func (f *FS) Unlink(name string) error {
	stat, err := f.lstat(name)
	if err == nil && stat.IsDir() {
		err = syscall.EISDIR
	}
	if err == nil {
		err = f.fsys.Remove(name)
	}
	if err != nil {
		return fail("unlink", name, ErrModifyFile, err)
	}
	return nil
}

// Remove removes name, a file or an empty directory.
func (f *FS) Remove(name string) error {
	if err := f.fsys.Remove(name); err != nil {
		return fail("remove", name, ErrModifyFile, err)
	}
	return nil
}

// Rename moves oldName to newName.
func (f *FS) Rename(oldName, newName string) error {
	if err := f.fsys.Rename(oldName, newName); err != nil {
		return fail("rename", oldName, ErrModifyFile, err)
	}
	return nil
}

// Truncate changes the size of the file name.
func (f *FS) Truncate(name string, size int64) error {
	d, err := f.Open(name, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	err = d.Truncate(size)
	if closeErr := d.Close(); err == nil {
		err = closeErr
	}
	return err
}

// FileSize returns the size of the file name.
func (f *FS) FileSize(name string) (uint64, error) {
	stat, err := f.fsys.Stat(name)
	if err != nil {
		return 0, fail("stat", name, ErrQueryFile, err)
	}
	return sizeOf(name, stat)
}

// ModTime returns the modification time of name.
func (f *FS) ModTime(name string) (time.Time, error) {
	stat, err := f.fsys.Stat(name)
	if err != nil {
		return time.Time{}, fail("stat", name, ErrQueryFile, err)
	}
	return stat.ModTime(), nil
}

// ModTimeUTF16 is ModTime for a UTF-16 name, optionally NUL terminated.
func (f *FS) ModTimeUTF16(name []uint16) (time.Time, error) {
	return f.ModTime(utf16x.ToString(name))
}

// OpenDirectory opens a DirectorySession on the wrapped file system.
func (f *FS) OpenDirectory(path string) (*DirectorySession, error) {
	return OpenDirectory(f.fsys, path)
}

func (f *FS) lstat(name string) (os.FileInfo, error) {
	if l, ok := f.fsys.(afero.Lstater); ok {
		stat, _, err := l.LstatIfPossible(name)
		return stat, err
	}
	return f.fsys.Stat(name)
}

func sizeOf(name string, stat os.FileInfo) (uint64, error) {
	if stat.Size() < 0 {
		return 0, fail("stat", name, ErrQueryFile, syscall.EOVERFLOW)
	}
	return uint64(stat.Size()), nil
}

// FileDescriptor exclusively owns an open file.
type FileDescriptor struct {
	mu   sync.Mutex
	file afero.File
}

// NewFileDescriptor takes the ownership of file.
func NewFileDescriptor(file afero.File) *FileDescriptor {
	return &FileDescriptor{file: file}
}

// Valid reports whether d still owns a file.
func (d *FileDescriptor) Valid() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.file != nil
}

// File returns the owned file, nil after Close or Release.
func (d *FileDescriptor) File() afero.File {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.file
}

// Release gives up the ownership and returns the file, which the caller has to close.
func (d *FileDescriptor) Release() afero.File {
	d.mu.Lock()
	defer d.mu.Unlock()
	file := d.file
	d.file = nil
	return file
}

// Close closes the owned file. Only the first of several calls closes it.
func (d *FileDescriptor) Close() error {
	file := d.Release()
	if file == nil {
		return nil
	}
	if err := file.Close(); err != nil {
		return fail("close", file.Name(), ErrModifyFile, err)
	}
	return nil
}

// SetMode switches between text and binary mode and returns the previous mode.
// Files have no text mode here, so it has no effect and returns 0.
func (d *FileDescriptor) SetMode(mode int) int {
	return 0
}

// Truncate changes the size of the file.
func (d *FileDescriptor) Truncate(size int64) error {
	file := d.File()
	if file == nil {
		return ErrClosed
	}
	if err := file.Truncate(size); err != nil {
		return fail("truncate", file.Name(), ErrModifyFile, err)
	}
	return nil
}

// Size returns the size of the file.
func (d *FileDescriptor) Size() (uint64, error) {
	file := d.File()
	if file == nil {
		return 0, ErrClosed
	}
	stat, err := file.Stat()
	if err != nil {
		return 0, fail("fstat", file.Name(), ErrQueryFile, err)
	}
	return sizeOf(file.Name(), stat)
}

// ModTime returns the modification time of the file.
func (d *FileDescriptor) ModTime() (time.Time, error) {
	file := d.File()
	if file == nil {
		return time.Time{}, ErrClosed
	}
	stat, err := file.Stat()
	if err != nil {
		return time.Time{}, fail("fstat", file.Name(), ErrQueryFile, err)
	}
	return stat.ModTime(), nil
}
