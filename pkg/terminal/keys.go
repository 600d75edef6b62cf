// Package terminal 提供基于 tcell 的终端后端
//
// 终端没有按键松开事件。按键的第一次事件之后在重复延迟内视为按住，
// 自动重复开始后在最后一次事件的 KeyHoldTimeout 内视为按住。
// 距上一次事件超过重复延迟的事件才算新的按下。
// 事件轮询在独立 goroutine 中进行，只通过加锁的 KeyTable 与游戏循环共享数据。
package terminal

import (
	"sync"
	"time"

	"github.com/denix666/space-invaders/pkg/game"
	"github.com/denix666/space-invaders/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// KeyHoldTimeout 自动重复期间，最后一次按键事件后仍视为按住的时长
const KeyHoldTimeout = 150 * time.Millisecond

// DefaultKeyRepeatDelay 默认的终端首次自动重复延迟
const DefaultKeyRepeatDelay = 500 * time.Millisecond

// KeyTable 加锁的按键状态表，实现 game.Input
type KeyTable struct {
	mu          sync.Mutex
	now         func() time.Time
	repeatDelay time.Duration
	lastSeen    map[types.Key]time.Time
	holdUntil   map[types.Key]time.Time
	pending     map[types.Key]bool // 上一帧之后到达的按键
	pressed     map[types.Key]bool // 本帧刚按下的按键
}

// NewKeyTable 创建按键表
// repeatDelay 应不小于终端的首次自动重复延迟，小于 KeyHoldTimeout 时按 KeyHoldTimeout 处理
func NewKeyTable(repeatDelay time.Duration) *KeyTable {
	return newKeyTable(time.Now, repeatDelay)
}

func newKeyTable(now func() time.Time, repeatDelay time.Duration) *KeyTable {
	if repeatDelay < KeyHoldTimeout {
		repeatDelay = KeyHoldTimeout
	}
	return &KeyTable{
		now:         now,
		repeatDelay: repeatDelay,
		lastSeen:    make(map[types.Key]time.Time),
		holdUntil:   make(map[types.Key]time.Time),
		pending:     make(map[types.Key]bool),
		pressed:     make(map[types.Key]bool),
	}
}

// Press 记录一次按键事件，由事件 goroutine 调用
func (k *KeyTable) Press(key types.Key) {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	last, ok := k.lastSeen[key]
	k.lastSeen[key] = now

	if !ok || now.Sub(last) > k.repeatDelay {
		// 新的按下：等待首次自动重复
		k.pending[key] = true
		k.holdUntil[key] = now.Add(k.repeatDelay)
		return
	}

	// 自动重复
	if until := now.Add(KeyHoldTimeout); until.After(k.holdUntil[key]) {
		k.holdUntil[key] = until
	}
}

// BeginFrame 把上一帧之后到达的按键提交为本帧的刚按下状态
func (k *KeyTable) BeginFrame() {
	k.mu.Lock()
	defer k.mu.Unlock()

	for key := range k.pressed {
		delete(k.pressed, key)
	}
	for key := range k.pending {
		k.pressed[key] = true
		delete(k.pending, key)
	}
}

// IsKeyDown 按键仍处于按住期内
func (k *KeyTable) IsKeyDown(key types.Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	until, ok := k.holdUntil[key]
	return ok && k.now().Before(until)
}

// IsKeyPressed 按键在本帧刚按下
func (k *KeyTable) IsKeyPressed(key types.Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.pressed[key]
}

// MapKey 把 tcell 按键事件转换为逻辑按键
func MapKey(ev *tcell.EventKey) (types.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return types.KeyLeft, true
	case tcell.KeyRight:
		return types.KeyRight, true
	case tcell.KeyUp:
		return types.KeyUp, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return types.KeySpace, true
		case 'a', 'A':
			return types.KeyLeft, true
		case 'd', 'D':
			return types.KeyRight, true
		case 'w', 'W':
			return types.KeyUp, true
		}
	}
	return 0, false
}

// IsQuit Esc、Ctrl+C 或 q 退出
func IsQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

var _ game.Input = (*KeyTable)(nil)
