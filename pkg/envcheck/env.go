package envcheck

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvGetter abstracts environment lookups for testability.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter reads the process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// FileEnvGetter layers variables from .env files under a base getter.
// The base wins; the files only fill variables it does not define.
type FileEnvGetter struct {
	Base   EnvGetter
	Values map[string]string
}

// NewFileEnvGetter reads the given .env files on top of base.
func NewFileEnvGetter(base EnvGetter, filenames ...string) (*FileEnvGetter, error) {
	values, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return &FileEnvGetter{Base: base, Values: values}, nil
}

func (f *FileEnvGetter) LookupEnv(key string) (string, bool) {
	if f.Base != nil {
		if v, ok := f.Base.LookupEnv(key); ok {
			return v, true
		}
	}
	v, ok := f.Values[key]
	return v, ok
}

// FileStater provides file system stat operations for testing.
type FileStater interface {
	Stat(path string) (os.FileInfo, error)
}

// RealFileStater uses actual os.Stat.
type RealFileStater struct{}

func (r *RealFileStater) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}
