package config

import (
	"os"
	"strings"
	"testing"

	"github.com/denix666/space-invaders/pkg/types"
)

// TestLoadBundledSpriteSheet 内置图集必须包含全部贴图且尺寸与实体一致
func TestLoadBundledSpriteSheet(t *testing.T) {
	data, err := os.ReadFile("../../" + SpriteSheetPath)
	if err != nil {
		t.Fatalf("failed to read bundled sprite sheet: %v", err)
	}
	sheet, err := LoadSpriteSheet(data)
	if err != nil {
		t.Fatalf("failed to load bundled sprite sheet: %v", err)
	}

	sizes := map[types.TextureID][2]int{
		types.TextureBlock:  {int(BlockSize), int(BlockSize)},
		types.TextureBullet: {int(BulletWidth), int(BulletHeight)},
		"enemy_e_1":         {int(EnemyWidth), int(EnemyHeight)},
		"enemy_b_2":         {int(EnemyWidth), int(EnemyHeight)},
		"bomb_green_1":      {int(BombWidth), int(BombHeight)},
		"ufo_3":             {int(UfoWidth), int(UfoHeight)},
	}
	for id, want := range sizes {
		w, h := sheet.Sprites[string(id)].Size()
		if w != want[0] || h != want[1] {
			t.Errorf("%s: expected %dx%d, got %dx%d", id, want[0], want[1], w, h)
		}
	}
}

func TestLoadSpriteSheetValidation(t *testing.T) {
	// 补齐必需贴图，只让被测字段出错
	withRequired := func(extra string) string {
		var b strings.Builder
		b.WriteString("palette:\n  g: \"#00ff00\"\nsprites:\n")
		for _, id := range RequiredSpriteIDs() {
			b.WriteString("  " + string(id) + ":\n    scale: 1\n    rows: [\"g.\"]\n")
		}
		b.WriteString(extra)
		return b.String()
	}

	tests := []struct {
		name        string
		yamlContent string
		errContains string
	}{
		{
			name:        "empty palette",
			yamlContent: "sprites: {}\n",
			errContains: "palette cannot be empty",
		},
		{
			name:        "missing sprite",
			yamlContent: "palette:\n  g: \"#00ff00\"\nsprites: {}\n",
			errContains: "missing sprite",
		},
		{
			name:        "bad color",
			yamlContent: "palette:\n  g: \"green\"\n",
			errContains: "invalid color",
		},
		{
			name:        "reserved palette key",
			yamlContent: "palette:\n  \".\": \"#000000\"\n",
			errContains: "reserved for transparency",
		},
		{
			name:        "ragged rows",
			yamlContent: withRequired("  extra:\n    scale: 1\n    rows: [\"gg\", \"g\"]\n"),
			errContains: "row 1 has width 1, expected 2",
		},
		{
			name:        "undefined color",
			yamlContent: withRequired("  extra:\n    scale: 1\n    rows: [\"gx\"]\n"),
			errContains: "undefined color \"x\"",
		},
		{
			name:        "zero scale",
			yamlContent: withRequired("  extra:\n    scale: 0\n    rows: [\"g\"]\n"),
			errContains: "scale must be >= 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSpriteSheet([]byte(tt.yamlContent))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestSpriteSheetImage(t *testing.T) {
	sheet := &SpriteSheetConfig{
		Palette: map[string]string{"r": "#ff0000"},
		Sprites: map[string]SpriteConfig{
			"dot": {Scale: 2, Rows: []string{"r.", ".r"}},
		},
	}

	img, err := sheet.Image("dot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("expected 4x4 image, got %v", img.Bounds())
	}
	if c := img.RGBAAt(1, 1); c.R != 0xff || c.A != 0xff {
		t.Errorf("expected red at (1,1), got %v", c)
	}
	if c := img.RGBAAt(2, 0); c.A != 0 {
		t.Errorf("expected transparent at (2,0), got %v", c)
	}
	if c := img.RGBAAt(3, 3); c.R != 0xff {
		t.Errorf("expected red at (3,3), got %v", c)
	}

	if _, err := sheet.Image("missing"); err == nil {
		t.Error("expected error for missing sprite")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		r, a    uint8
	}{
		{in: "#ff8000", r: 0xff, a: 0xff},
		{in: "#10203040", r: 0x10, a: 0x40},
		{in: "ff8000", r: 0xff, a: 0xff},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && (c.R != tt.r || c.A != tt.a) {
				t.Errorf("ParseHexColor(%q) = %v", tt.in, c)
			}
		})
	}
}
