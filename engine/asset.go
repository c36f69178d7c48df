package engine

import (
	"errors"
	"fmt"
	"image"
	"sync"
)

type AssetState int

const (
	AssetPending AssetState = iota
	AssetLoaded
	AssetFailed
)

func (s AssetState) String() string {
	switch s {
	case AssetPending:
		return "pending"
	case AssetLoaded:
		return "loaded"
	case AssetFailed:
		return "failed"
	}
	return fmt.Sprintf("AssetState(%d)", int(s))
}

// Asset is an image that may still be loading. Pending and Failed are both
// valid permanent states; callers fall back to flat rendering.
type Asset struct {
	name string

	mu     sync.RWMutex
	state  AssetState
	img    image.Image
	source string
	err    error
	done   chan struct{}
}

func NewAsset(name string) *Asset {
	return &Asset{name: name, done: make(chan struct{})}
}

// LoadedAsset wraps an already decoded image.
func LoadedAsset(name string, img image.Image) *Asset {
	a := NewAsset(name)
	a.resolve(img, name, nil)
	return a
}

func (a *Asset) Name() string { return a.name }

func (a *Asset) State() AssetState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// Image returns the image when loaded, nil otherwise.
func (a *Asset) Image() image.Image {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.state != AssetLoaded {
		return nil
	}
	return a.img
}

// Source is the path that resolved the asset.
func (a *Asset) Source() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.source
}

func (a *Asset) Err() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.err
}

// Done is closed once the asset leaves the pending state.
func (a *Asset) Done() <-chan struct{} {
	return a.done
}

func (a *Asset) resolve(img image.Image, source string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != AssetPending {
		return
	}
	if err != nil {
		a.state = AssetFailed
		a.err = err
	} else {
		a.state = AssetLoaded
		a.img = img
		a.source = source
	}
	close(a.done)
}

// LoaderFunc decodes the image stored at path.
type LoaderFunc func(path string) (image.Image, error)

var ErrNoSources = errors.New("asset: no sources")

// LoadAsync resolves an asset in the background, trying each path in order
// until one decodes. onDone, if set, runs on the loading goroutine.
func LoadAsync(name string, load LoaderFunc, paths []string, onDone func(*Asset)) *Asset {
	a := NewAsset(name)
	go func() {
		img, src, err := loadFirst(load, paths)
		a.resolve(img, src, err)
		if onDone != nil {
			onDone(a)
		}
	}()
	return a
}

func loadFirst(load LoaderFunc, paths []string) (image.Image, string, error) {
	if len(paths) == 0 {
		return nil, "", ErrNoSources
	}
	var errs []error
	for _, p := range paths {
		img, err := load(p)
		if err == nil && img != nil {
			return img, p, nil
		}
		if err == nil {
			err = errors.New("empty image")
		}
		errs = append(errs, fmt.Errorf("%s: %w", p, err))
	}
	return nil, "", errors.Join(errs...)
}
