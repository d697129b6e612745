package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentDecodes = 4

// Handle refers to an image that may still be decoding. It is valid as soon
// as Load returns; Ready flips once the pixels are available.
type Handle struct {
	path string

	mu    sync.Mutex
	ready bool
	src   image.Image
	img   *ebiten.Image
	err   error
}

// NewReadyHandle wraps an already decoded image.
func NewReadyHandle(path string, src image.Image) *Handle {
	return &Handle{path: path, ready: src != nil, src: src}
}

func (h *Handle) Path() string {
	if h == nil {
		return ""
	}
	return h.path
}

// Ready reports whether decoding finished successfully.
func (h *Handle) Ready() bool {
	if h == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ready
}

// Err returns the decode error, if any.
func (h *Handle) Err() error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Bounds returns the decoded image bounds, or an empty rectangle.
func (h *Handle) Bounds() image.Rectangle {
	if h == nil {
		return image.Rectangle{}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.src == nil {
		return image.Rectangle{}
	}
	return h.src.Bounds()
}

// Image returns the GPU image, creating it on first use. Call it from the
// draw goroutine only. Returns nil until the handle is ready.
func (h *Handle) Image() *ebiten.Image {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ready {
		return nil
	}
	if h.img == nil {
		h.img = ebiten.NewImageFromImage(h.src)
	}
	return h.img
}

func (h *Handle) resolve(src image.Image, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.src = src
	h.err = err
	h.ready = err == nil && src != nil
}

// Loader decodes images in the background. Load only blocks while
// maxConcurrentDecodes decodes are already running.
type Loader struct {
	fsys fs.FS

	mu      sync.Mutex
	group   errgroup.Group
	handles map[string]*Handle
}

// NewLoader reads from fsys first and falls back to the working directory.
func NewLoader(fsys fs.FS) *Loader {
	l := &Loader{fsys: fsys, handles: make(map[string]*Handle)}
	l.group.SetLimit(maxConcurrentDecodes)
	return l
}

// Load returns the handle for path, starting a decode the first time a path
// is seen.
func (l *Loader) Load(path string) *Handle {
	l.mu.Lock()
	if h, ok := l.handles[path]; ok {
		l.mu.Unlock()
		return h
	}
	h := &Handle{path: path}
	l.handles[path] = h
	l.mu.Unlock()

	l.group.Go(func() error {
		src, err := l.decode(path)
		h.resolve(src, err)
		if err != nil {
			log.Printf("[assets] load %s: %v", path, err)
			return err
		}
		return nil
	})
	return h
}

// Wait blocks until every started decode finishes and returns the first
// failure.
func (l *Loader) Wait() error {
	return l.group.Wait()
}

func (l *Loader) decode(path string) (image.Image, error) {
	b, err := l.read(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if l.fsys != nil {
		if b, err := fs.ReadFile(l.fsys, clean); err == nil {
			return b, nil
		}
	}
	tried := []string{path, filepath.Join("assets", clean), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("assets: read %s: %w", path, fs.ErrNotExist)
}
