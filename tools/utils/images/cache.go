// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package images

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sys/unix"
)

var _ = fmt.Print

const cache_entry_suffix = ".nrgba.zst"

// seams for the cache tests
var now_implementation = time.Now
var chmtime_after_creation = false

func lock_file_exclusive(f *os.File) (err error) {
	for {
		err = unix.Flock(int(f.Fd()), unix.LOCK_EX)
		if !errors.Is(err, unix.EINTR) {
			break
		}
	}
	if err != nil {
		return &fs.PathError{Op: "exclusive flock()", Path: f.Name(), Err: err}
	}
	return nil
}

func unlock_file(f *os.File) {
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

func save_compressed_nrgba(path string, img *image.NRGBA) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "wallpaper-cache-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()
	w, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return err
	}
	b := img.Bounds()
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header, uint32(b.Dx()))
	binary.LittleEndian.PutUint32(header[4:], uint32(b.Dy()))
	if _, err = w.Write(header); err != nil {
		f.Close()
		return err
	}
	stride := 4 * b.Dx()
	p := img.Pix
	for y := 0; y < b.Dy(); y++ {
		if _, err = w.Write(p[:min(stride, len(p))]); err != nil {
			f.Close()
			return err
		}
		if y+1 < b.Dy() {
			p = p[img.Stride:]
		}
	}
	if err = w.Close(); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

func load_compressed_nrgba(path string) (img *image.NRGBA, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	header := make([]byte, 8)
	if _, err = io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("corrupt cache entry %s: %w", path, err)
	}
	width := int(binary.LittleEndian.Uint32(header))
	height := int(binary.LittleEndian.Uint32(header[4:]))
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("corrupt cache entry %s: %dx%d", path, width, height)
	}
	img = image.NewNRGBA(image.Rect(0, 0, width, height))
	if _, err = io.ReadFull(r, img.Pix); err != nil {
		return nil, fmt.Errorf("corrupt cache entry %s: %w", path, err)
	}
	return img, nil
}

func prune_cache(cdir string, max_entries int) error {
	all, err := os.ReadDir(cdir)
	if err != nil {
		return err
	}
	entries := make([]fs.DirEntry, 0, len(all))
	for _, x := range all {
		if filepath.Ext(x.Name()) == ".zst" {
			entries = append(entries, x)
		}
	}
	if len(entries) <= max_entries {
		return nil
	}
	epoch := time.Unix(0, 0)
	mtime := func(a fs.DirEntry) time.Time {
		if info, err := a.Info(); err == nil {
			return info.ModTime()
		}
		return epoch
	}
	// most recently used first
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return mtime(b).Compare(mtime(a))
	})
	for _, x := range entries[max_entries:] {
		if err = os.Remove(filepath.Join(cdir, x.Name())); err != nil {
			return err
		}
	}
	return nil
}

// CachedImage returns the image stored in the cache directory cdir under
// key, calling render to produce and store it when missing. Entries are
// pruned least recently used down to max_entries. The directory is
// protected by an exclusive lock file so concurrent processes do not step
// on each other.
func CachedImage(cdir string, key uint64, max_entries int, render func() (*image.NRGBA, error)) (img *image.NRGBA, err error) {
	lockf, err := os.OpenFile(filepath.Join(cdir, "lock"), os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return
	}
	defer lockf.Close()
	if err = lock_file_exclusive(lockf); err != nil {
		return nil, fmt.Errorf("Failed to lock cache dir %s with error: %w", cdir, err)
	}
	defer unlock_file(lockf)
	path := filepath.Join(cdir, strconv.FormatUint(key, 16)+cache_entry_suffix)
	if img, err = load_compressed_nrgba(path); err == nil {
		n := now_implementation()
		if err = os.Chtimes(path, n, n); err != nil {
			return nil, err
		}
		return img, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if img, err = render(); err != nil {
		return nil, err
	}
	if err = save_compressed_nrgba(path, img); err != nil {
		return nil, err
	}
	if chmtime_after_creation {
		n := now_implementation()
		if err = os.Chtimes(path, n, n); err != nil {
			return nil, err
		}
	}
	return img, prune_cache(cdir, max_entries)
}
