package embedded

import (
	"testing"
	"testing/fstest"
)

// 测试用的内存文件系统，结构与根目录的 data/ 相同
func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"data/game.yaml":    {Data: []byte("tps: 60\n")},
		"data/sprites.yaml": {Data: []byte("palette: {}\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	// 重置状态
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(newTestFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestNotInitialized 测试未初始化时的所有访问函数
func TestNotInitialized(t *testing.T) {
	initialized = false

	const want = "embedded package not initialized, call Init() first"

	if _, err := Open("data/game.yaml"); err == nil || err.Error() != want {
		t.Errorf("Open: unexpected error %v", err)
	}
	if _, err := ReadFile("data/game.yaml"); err == nil || err.Error() != want {
		t.Errorf("ReadFile: unexpected error %v", err)
	}
	if _, err := Glob("data/*.yaml"); err == nil || err.Error() != want {
		t.Errorf("Glob: unexpected error %v", err)
	}
	// Exists 在未初始化时应返回 false（因为内部调用 Open 会出错）
	if Exists("data/game.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestReadFile 测试读取嵌入文件
func TestReadFile(t *testing.T) {
	Init(newTestFS())
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "plain path", path: "data/game.yaml", want: "tps: 60\n"},
		{name: "dot slash prefix", path: "./data/game.yaml", want: "tps: 60\n"},
		{name: "missing file", path: "data/nope.yaml", wantErr: true},
		{name: "invalid prefix", path: "assets/game.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

// TestOpenInvalidPrefix 测试无效路径前缀
func TestOpenInvalidPrefix(t *testing.T) {
	Init(newTestFS())
	defer func() { initialized = false }()

	_, err := Open("invalid/path/test.png")
	if err == nil {
		t.Fatal("Expected error for invalid path prefix")
	}
	if err.Error() != "unknown resource path prefix: invalid/path/test.png (must start with 'data/')" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestExists 测试文件存在性检查
func TestExists(t *testing.T) {
	Init(newTestFS())
	defer func() { initialized = false }()

	if !Exists("data/sprites.yaml") {
		t.Error("Expected data/sprites.yaml to exist")
	}
	if Exists("data/nonexistent.yaml") {
		t.Error("Expected Exists() to return false for non-existent file")
	}
}

// TestGlob 测试模式匹配
func TestGlob(t *testing.T) {
	Init(newTestFS())
	defer func() { initialized = false }()

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches, got %v", matches)
	}
}
