package graphics

// KeyLatch gives event-driven backends the sticky key behaviour GLFW
// provides natively: a press stays visible to one Pressed call even when the
// key was released before anyone looked. The zero value is ready to use.
type KeyLatch struct {
	down    map[Key]bool
	latched map[Key]bool
}

func (l *KeyLatch) Press(k Key) {
	if l.down == nil {
		l.down = make(map[Key]bool)
		l.latched = make(map[Key]bool)
	}
	l.down[k] = true
	l.latched[k] = true
}

func (l *KeyLatch) Release(k Key) {
	delete(l.down, k)
}

// Pressed reports whether k is held or was pressed since the last call, and
// clears the latch.
func (l *KeyLatch) Pressed(k Key) bool {
	pressed := l.down[k] || l.latched[k]
	delete(l.latched, k)
	return pressed
}

// Reset forgets all key state.
func (l *KeyLatch) Reset() {
	l.down = nil
	l.latched = nil
}
