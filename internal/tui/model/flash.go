package model

import (
	"sync"
	"time"
)

// FlashLevel is the severity of a flash message.
type FlashLevel int

const (
	FlashInfo FlashLevel = iota
	FlashWarn
	FlashErr
)

// Display durations per level.
const (
	infoTTL = 5 * time.Second
	warnTTL = 8 * time.Second
	errTTL  = 10 * time.Second
)

// FlashMessage is a transient notification shown in the status bar.
type FlashMessage struct {
	Text    string
	Level   FlashLevel
	Expires time.Time
}

// Flash holds the current notification and fans new ones out to a watcher.
type Flash struct {
	mu      sync.RWMutex
	current FlashMessage
	watchCh chan FlashMessage
	now     func() time.Time
}

// NewFlash creates an empty flash.
func NewFlash() *Flash {
	return &Flash{
		watchCh: make(chan FlashMessage, 8),
		now:     time.Now,
	}
}

// Info shows msg at info level.
func (f *Flash) Info(msg string) { f.set(msg, FlashInfo, infoTTL) }

// Warn shows msg at warn level.
func (f *Flash) Warn(msg string) { f.set(msg, FlashWarn, warnTTL) }

// Err shows err at error level.
func (f *Flash) Err(err error) { f.set(err.Error(), FlashErr, errTTL) }

func (f *Flash) set(msg string, level FlashLevel, d time.Duration) {
	fm := FlashMessage{Text: msg, Level: level, Expires: f.now().Add(d)}
	f.mu.Lock()
	f.current = fm
	f.mu.Unlock()
	select {
	case f.watchCh <- fm:
	default:
	}
}

// Current returns the live message, or nil once it has expired.
func (f *Flash) Current() *FlashMessage {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.current.Text == "" || f.now().After(f.current.Expires) {
		return nil
	}
	m := f.current
	return &m
}

// Watch returns a channel that receives every new message.
func (f *Flash) Watch() <-chan FlashMessage {
	return f.watchCh
}
