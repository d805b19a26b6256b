package render

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

type imageKey struct {
	typeName string
	imageID  int
}

// Registry caches GPU copies of sprite type images. Keys are the owning type
// name and the image id, so two types may reuse the same ids.
type Registry struct {
	mu      sync.Mutex
	images  map[imageKey]*ebiten.Image
	convert func(image.Image) *ebiten.Image
}

func NewRegistry() *Registry {
	return &Registry{
		images:  make(map[imageKey]*ebiten.Image),
		convert: ebiten.NewImageFromImage,
	}
}

// Image returns the cached copy of src, uploading it the first time the key
// is seen. A nil src yields nil.
func (r *Registry) Image(typeName string, imageID int, src image.Image) *ebiten.Image {
	if src == nil {
		return nil
	}
	if img, ok := src.(*ebiten.Image); ok {
		return img
	}
	key := imageKey{typeName: typeName, imageID: imageID}

	r.mu.Lock()
	defer r.mu.Unlock()
	if img, ok := r.images[key]; ok {
		return img
	}
	img := r.convert(src)
	r.images[key] = img
	return img
}

// Reset drops every cached image. Call it after the catalog is reloaded so
// edited frames are uploaded again.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images = make(map[imageKey]*ebiten.Image)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.images)
}
