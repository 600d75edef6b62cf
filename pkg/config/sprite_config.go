package config

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/denix666/space-invaders/pkg/types"
	"gopkg.in/yaml.v3"
)

// TransparentPixel 透明像素字符，无需在调色板中声明
const TransparentPixel = "."

// SpriteSheetConfig 像素图集配置
// 每个精灵由若干行字符组成，每个字符通过调色板映射为颜色
type SpriteSheetConfig struct {
	Palette map[string]string       `yaml:"palette"` // 字符 -> "#rrggbb" 或 "#rrggbbaa"
	Sprites map[string]SpriteConfig `yaml:"sprites"` // 贴图ID -> 像素图
}

// SpriteConfig 单个精灵的像素图
type SpriteConfig struct {
	Scale int      `yaml:"scale"` // 每个字符放大为 scale×scale 像素
	Rows  []string `yaml:"rows"`  // 像素行，所有行长度相同
}

// Size 返回精灵放大后的像素尺寸
func (s SpriteConfig) Size() (width, height int) {
	if len(s.Rows) == 0 {
		return 0, 0
	}
	return utf8.RuneCountInString(s.Rows[0]) * s.Scale, len(s.Rows) * s.Scale
}

// RequiredSpriteIDs 返回游戏必须的全部贴图ID
func RequiredSpriteIDs() []types.TextureID {
	ids := []types.TextureID{types.TexturePlayer, types.TextureBlock, types.TextureBullet}
	for _, e := range []types.EnemyType{types.EnemyE, types.EnemyA, types.EnemyB} {
		ids = append(ids, e.FrameTextures()...)
	}
	for b := types.BombType(0); b < types.BombTypeCount; b++ {
		ids = append(ids, b.FrameTextures()...)
	}
	ids = append(ids, types.UfoFrameTextures()...)
	return ids
}

// LoadSpriteSheet 解析 YAML 格式的像素图集
func LoadSpriteSheet(data []byte) (*SpriteSheetConfig, error) {
	var sheet SpriteSheetConfig
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse sprite sheet YAML: %w", err)
	}

	if err := validateSpriteSheet(&sheet); err != nil {
		return nil, fmt.Errorf("invalid sprite sheet: %w", err)
	}

	return &sheet, nil
}

// validateSpriteSheet 验证图集的有效性
func validateSpriteSheet(sheet *SpriteSheetConfig) error {
	if len(sheet.Palette) == 0 {
		return fmt.Errorf("palette cannot be empty")
	}
	for key, value := range sheet.Palette {
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("palette key must be a single character, got %q", key)
		}
		if key == TransparentPixel {
			return fmt.Errorf("palette key %q is reserved for transparency", key)
		}
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("palette key %q: %w", key, err)
		}
	}

	for _, id := range RequiredSpriteIDs() {
		if _, ok := sheet.Sprites[string(id)]; !ok {
			return fmt.Errorf("missing sprite %q", id)
		}
	}

	for id, sprite := range sheet.Sprites {
		if sprite.Scale < 1 {
			return fmt.Errorf("sprite %q: scale must be >= 1, got %d", id, sprite.Scale)
		}
		if len(sprite.Rows) == 0 {
			return fmt.Errorf("sprite %q: rows cannot be empty", id)
		}
		width := utf8.RuneCountInString(sprite.Rows[0])
		if width == 0 {
			return fmt.Errorf("sprite %q: rows cannot be blank", id)
		}
		for i, row := range sprite.Rows {
			if utf8.RuneCountInString(row) != width {
				return fmt.Errorf("sprite %q: row %d has width %d, expected %d",
					id, i, utf8.RuneCountInString(row), width)
			}
			for _, r := range row {
				ch := string(r)
				if ch == TransparentPixel {
					continue
				}
				if _, ok := sheet.Palette[ch]; !ok {
					return fmt.Errorf("sprite %q: row %d uses undefined color %q", id, i, ch)
				}
			}
		}
	}

	return nil
}

// Image 将指定精灵绘制为 RGBA 图像
func (sheet *SpriteSheetConfig) Image(id types.TextureID) (*image.RGBA, error) {
	sprite, ok := sheet.Sprites[string(id)]
	if !ok {
		return nil, fmt.Errorf("sprite %q not found", id)
	}

	width, height := sprite.Size()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for row, line := range sprite.Rows {
		col := 0
		for _, r := range line {
			ch := string(r)
			if ch != TransparentPixel {
				// 调色板已在加载时验证
				c, _ := ParseHexColor(sheet.Palette[ch])
				for dy := 0; dy < sprite.Scale; dy++ {
					for dx := 0; dx < sprite.Scale; dx++ {
						img.SetRGBA(col*sprite.Scale+dx, row*sprite.Scale+dy, c)
					}
				}
			}
			col++
		}
	}

	return img, nil
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}, nil
}
