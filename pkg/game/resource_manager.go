package game

import (
	"fmt"
	"image"
	"log"

	"github.com/denix666/space-invaders/pkg/config"
	"github.com/denix666/space-invaders/pkg/embedded"
	"github.com/denix666/space-invaders/pkg/types"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of game resources.
// It builds textures from the pixel-art sprite sheet and registers the bundled
// Go fonts, ensuring that every resource is created only once.
//
// Backends convert the cached images and font data into their own types
// (ebiten.Image, text.GoTextFaceSource, terminal colors); the game core only
// ever sees TextureID and FontID handles.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All resources are loaded on the main
// goroutine at startup, before the frame loop begins.
//
// Usage:
//
//	rm, err := NewResourceManagerFromEmbedded()
//	if err != nil {
//	    return err
//	}
//	res, err := rm.LoadResources()
type ResourceManager struct {
	sheet      *config.SpriteSheetConfig
	imageCache map[types.TextureID]*image.RGBA // Cache for built textures: id -> image
	fontCache  map[types.FontID][]byte         // Cache for font data: id -> TTF bytes
}

// fontSources maps font IDs to the bundled Go font files.
var fontSources = map[types.FontID][]byte{
	types.FontGame: goregular.TTF,
	types.FontMono: gomono.TTF,
}

// NewResourceManager creates a ResourceManager backed by the given sprite sheet.
func NewResourceManager(sheet *config.SpriteSheetConfig) *ResourceManager {
	return &ResourceManager{
		sheet:      sheet,
		imageCache: make(map[types.TextureID]*image.RGBA),
		fontCache:  make(map[types.FontID][]byte),
	}
}

// NewResourceManagerFromEmbedded loads the bundled sprite sheet.
// embedded.Init must have been called first.
func NewResourceManagerFromEmbedded() (*ResourceManager, error) {
	data, err := embedded.ReadFile(config.SpriteSheetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet: %w", err)
	}
	sheet, err := config.LoadSpriteSheet(data)
	if err != nil {
		return nil, err
	}
	return NewResourceManager(sheet), nil
}

// LoadTexture builds the texture with the given ID and caches it.
// If the texture has already been built, the cached version is reused.
func (rm *ResourceManager) LoadTexture(id types.TextureID) (types.TextureID, error) {
	if _, exists := rm.imageCache[id]; exists {
		return id, nil
	}

	img, err := rm.sheet.Image(id)
	if err != nil {
		return "", fmt.Errorf("failed to load texture %s: %w", id, err)
	}

	rm.imageCache[id] = img
	return id, nil
}

// TextureImage returns a previously loaded texture, or nil if it is not loaded.
func (rm *ResourceManager) TextureImage(id types.TextureID) image.Image {
	img, ok := rm.imageCache[id]
	if !ok {
		return nil
	}
	return img
}

// TextureSize returns the pixel size of a loaded texture, or zero if it is not loaded.
func (rm *ResourceManager) TextureSize(id types.TextureID) (width, height float64) {
	img, ok := rm.imageCache[id]
	if !ok {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// TextureIDs returns the IDs of every loaded texture.
func (rm *ResourceManager) TextureIDs() []types.TextureID {
	ids := make([]types.TextureID, 0, len(rm.imageCache))
	for id := range rm.imageCache {
		ids = append(ids, id)
	}
	return ids
}

// LoadFont registers a bundled font and caches its data.
func (rm *ResourceManager) LoadFont(id types.FontID) (types.FontID, error) {
	if _, exists := rm.fontCache[id]; exists {
		return id, nil
	}

	data, ok := fontSources[id]
	if !ok {
		return "", fmt.Errorf("unknown font %s", id)
	}

	rm.fontCache[id] = data
	return id, nil
}

// FontData returns the TTF data of a loaded font, or nil if it is not loaded.
func (rm *ResourceManager) FontData(id types.FontID) []byte {
	return rm.fontCache[id]
}

// LoadResources loads every texture and font the game needs and bundles
// the handles into a Resources value shared by all entities.
func (rm *ResourceManager) LoadResources() (*Resources, error) {
	for _, id := range config.RequiredSpriteIDs() {
		if _, err := rm.LoadTexture(id); err != nil {
			return nil, err
		}
	}

	res := &Resources{
		Player:  types.TexturePlayer,
		Block:   types.TextureBlock,
		Bullet:  types.TextureBullet,
		Enemies: make(map[types.EnemyType][]types.TextureID),
		Bombs:   make(map[types.BombType][]types.TextureID),
		Ufo:     types.UfoFrameTextures(),
		sizes:   make(map[types.TextureID]textureSize),
	}
	for _, e := range []types.EnemyType{types.EnemyE, types.EnemyA, types.EnemyB} {
		res.Enemies[e] = e.FrameTextures()
	}
	for b := types.BombType(0); b < types.BombTypeCount; b++ {
		res.Bombs[b] = b.FrameTextures()
	}
	for id := range rm.imageCache {
		w, h := rm.TextureSize(id)
		res.sizes[id] = textureSize{width: w, height: h}
	}

	var err error
	if res.Font, err = rm.LoadFont(types.FontGame); err != nil {
		return nil, err
	}
	if res.MonoFont, err = rm.LoadFont(types.FontMono); err != nil {
		return nil, err
	}

	log.Printf("[ResourceManager] loaded %d textures and %d fonts", len(rm.imageCache), len(rm.fontCache))
	return res, nil
}
