package texture

import (
	"image"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pengfeiw/solar-system/internal/logger"
)

// Uploader turns a decoded image into a texture ID. Called on the GL thread.
type Uploader func(img *image.RGBA) uint32

// Deleter releases a texture ID returned by an Uploader.
type Deleter func(id uint32)

// Handle refers to a texture that may still be loading.
// Its fields are only touched by the goroutine that calls Poll.
type Handle struct {
	path string
	id   uint32
	err  error
}

// ID returns the texture ID, or 0 while the texture is not ready.
// A nil handle is never ready.
func (h *Handle) ID() uint32 {
	if h == nil {
		return 0
	}
	return h.id
}

// Ready reports whether the texture has been uploaded.
func (h *Handle) Ready() bool {
	return h.ID() != 0
}

// Err returns the load error, if loading failed.
func (h *Handle) Err() error {
	return h.err
}

// Path returns the file the handle was requested for.
func (h *Handle) Path() string {
	return h.path
}

type decoded struct {
	handle *Handle
	img    *image.RGBA
	err    error
}

// Loader decodes texture files on background goroutines and uploads them
// when Poll is called from the GL thread.
type Loader struct {
	maxSize int
	upload  Uploader
	release Deleter

	handles map[string]*Handle
	wg      sync.WaitGroup

	mu    sync.Mutex
	ready []decoded
}

// NewLoader creates a loader. release may be nil.
func NewLoader(maxSize int, upload Uploader, release Deleter) *Loader {
	return &Loader{
		maxSize: maxSize,
		upload:  upload,
		release: release,
		handles: make(map[string]*Handle),
	}
}

// Request starts loading path and returns its handle. Requesting the same
// path again returns the same handle.
func (l *Loader) Request(path string) *Handle {
	if h, ok := l.handles[path]; ok {
		return h
	}

	h := &Handle{path: path}
	l.handles[path] = h

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := DecodeFile(path, l.maxSize)

		l.mu.Lock()
		l.ready = append(l.ready, decoded{handle: h, img: img, err: err})
		l.mu.Unlock()
	}()

	logger.Debug("texture requested", zap.String("path", path))
	return h
}

// Poll uploads every texture decoded since the last call and returns the
// combined load errors of this batch.
func (l *Loader) Poll() error {
	l.mu.Lock()
	batch := l.ready
	l.ready = nil
	l.mu.Unlock()

	var errs error
	for _, d := range batch {
		if d.err != nil {
			d.handle.err = d.err
			errs = multierr.Append(errs, d.err)
			continue
		}
		d.handle.id = l.upload(d.img)
		logger.Debug("texture ready",
			zap.String("path", d.handle.path),
			zap.Uint32("id", d.handle.id),
			zap.Int("width", d.img.Bounds().Dx()),
			zap.Int("height", d.img.Bounds().Dy()),
		)
	}
	return errs
}

// Pending returns the number of requested textures that are neither ready
// nor failed.
func (l *Loader) Pending() int {
	n := 0
	for _, h := range l.handles {
		if h.id == 0 && h.err == nil {
			n++
		}
	}
	return n
}

// Wait blocks until every requested file has been decoded.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Close waits for in-flight decodes and releases uploaded textures.
func (l *Loader) Close() {
	l.Wait()
	for _, h := range l.handles {
		if h.id != 0 && l.release != nil {
			l.release(h.id)
		}
		h.id = 0
	}
}
