package storage

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DiskImageStore keeps uploaded images in one flat directory served under /images.
type DiskImageStore struct {
	Dir string
}

func NewDiskImageStore(dir string) *DiskImageStore {
	return &DiskImageStore{Dir: dir}
}

// Save writes body under a millisecond-prefixed copy of the client's file name
// and returns the stored name.
func (s *DiskImageStore) Save(filename string, body io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}

	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + filepath.Base(filename)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

func (s *DiskImageStore) Remove(name string) error {
	err := os.Remove(filepath.Join(s.Dir, filepath.Base(name)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
