package install

import (
	"os"

	"github.com/conn-castle/propapp-install/internal/fsutil"
)

// System is the filesystem surface the install steps touch.
// Tests substitute it to inject failures at a specific path.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// RealSystem is the System backed by the os package.
type RealSystem struct{}

func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFileAtomic replaces filename in one rename so a failed write never leaves a
// truncated config behind.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}
