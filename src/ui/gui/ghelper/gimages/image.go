package gimages

import (
	"image"

	"jigsaw/src/picture"

	"github.com/hajimehoshi/ebiten/v2"
)

var IconSizes = []int{16, 32, 48, 64}

// Icons renders the built-in picture at every window icon size.
func Icons() map[int]image.Image {
	src := picture.Procedural(128, 128)
	icons := make(map[int]image.Image, len(IconSizes))
	for _, s := range IconSizes {
		icons[s] = picture.Thumbnail(src, s)
	}
	return icons
}

// SurfaceCache keeps one GPU image per piece surface. Surfaces are never
// redrawn after a puzzle is cut, so the source image itself is the key.
type SurfaceCache struct {
	images map[image.Image]*ebiten.Image
}

func NewSurfaceCache() *SurfaceCache {
	return &SurfaceCache{images: make(map[image.Image]*ebiten.Image)}
}

func (sc *SurfaceCache) Get(img image.Image) *ebiten.Image {
	if e, ok := sc.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	sc.images[img] = e
	return e
}

func (sc *SurfaceCache) Len() int {
	return len(sc.images)
}

// Clear frees every cached image; call it when a new puzzle is cut.
func (sc *SurfaceCache) Clear() {
	for k, e := range sc.images {
		e.Deallocate()
		delete(sc.images, k)
	}
}
