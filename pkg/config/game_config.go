package config

import (
	"fmt"
	"os"

	"github.com/denix666/space-invaders/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 嵌入资源路径
const (
	// GameConfigPath 内置应用配置
	GameConfigPath = "data/game.yaml"
	// SpriteSheetPath 内置像素图集
	SpriteSheetPath = "data/sprites.yaml"
)

// GameConfig 应用配置（窗口、帧率、清理模式、终端后端）
// 玩法数值不在此处配置，见 layout_config.go
type GameConfig struct {
	Window      WindowConfig   `yaml:"window"`      // 窗口设置
	TPS         int            `yaml:"tps"`         // 每秒逻辑帧数
	LegacySweep bool           `yaml:"legacySweep"` // 每帧每个集合只清理一个已销毁实体
	Verbose     bool           `yaml:"verbose"`     // 输出调试日志
	Terminal    TerminalConfig `yaml:"terminal"`    // 终端后端设置
}

// WindowConfig 桌面窗口配置
type WindowConfig struct {
	Title      string  `yaml:"title"`      // 窗口标题（会追加版本号）
	Width      int     `yaml:"width"`      // 逻辑宽度
	Height     int     `yaml:"height"`     // 逻辑高度
	Scale      float64 `yaml:"scale"`      // 窗口缩放倍数
	VSync      bool    `yaml:"vsync"`      // 垂直同步
	Fullscreen bool    `yaml:"fullscreen"` // 启动时全屏
}

// TerminalConfig 终端后端配置
// 逻辑坐标按单元格尺寸映射到字符网格
type TerminalConfig struct {
	TPS           int `yaml:"tps"`           // 终端刷新帧率
	CellWidth     int `yaml:"cellWidth"`     // 每个字符单元对应的逻辑像素宽度
	CellHeight    int `yaml:"cellHeight"`    // 每个字符单元对应的逻辑像素高度
	RepeatDelayMs int `yaml:"repeatDelayMs"` // 终端首次自动重复延迟（毫秒），用于区分按住和重新按下
}

// LoadGameConfig 从 YAML 文件加载应用配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 格式的应用配置
// 未填写的字段使用默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	config := DefaultGameConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(config); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return config, nil
}

// DefaultGameConfig 返回默认应用配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:  "Space Invaders",
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
			Scale:  1.0,
			VSync:  true,
		},
		TPS: 60,
		Terminal: TerminalConfig{
			TPS:           30,
			CellWidth:     10,
			CellHeight:    20,
			RepeatDelayMs: 500,
		},
	}
}

// validateGameConfig 验证配置的有效性
func validateGameConfig(config *GameConfig) error {
	if config.Window.Title == "" {
		return fmt.Errorf("window.title cannot be empty")
	}
	// 逻辑分辨率固定，所有坐标常量都基于它
	if config.Window.Width != GameWindowWidth || config.Window.Height != GameWindowHeight {
		return fmt.Errorf("window size must be %dx%d, got %dx%d",
			GameWindowWidth, GameWindowHeight, config.Window.Width, config.Window.Height)
	}
	if config.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be > 0, got %v", config.Window.Scale)
	}
	if config.TPS < 1 {
		return fmt.Errorf("tps must be >= 1, got %d", config.TPS)
	}
	if config.Terminal.TPS < 1 {
		return fmt.Errorf("terminal.tps must be >= 1, got %d", config.Terminal.TPS)
	}
	if config.Terminal.CellWidth < 1 || config.Terminal.CellHeight < 1 {
		return fmt.Errorf("terminal cell size must be positive, got %dx%d",
			config.Terminal.CellWidth, config.Terminal.CellHeight)
	}
	if config.Terminal.RepeatDelayMs < 0 {
		return fmt.Errorf("terminal.repeatDelayMs must be >= 0, got %d", config.Terminal.RepeatDelayMs)
	}
	return nil
}

// ResolveGameConfig 加载应用配置
// path 非空时从磁盘读取，否则使用内置的 data/game.yaml（需先调用 embedded.Init）
func ResolveGameConfig(path string) (*GameConfig, error) {
	if path != "" {
		return LoadGameConfig(path)
	}
	data, err := embedded.ReadFile(GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return ParseGameConfig(data)
}
