package overlay

// ScrollLock couples page scrolling to overlay and alert visibility: the
// viewport must not scroll while any overlay or alert is visible on the
// page. Callers re-sync after every visibility transition, including overlay
// teardown, so a lock can never outlive the condition that created it.
type ScrollLock struct {
	locked bool
}

// Sync applies the lock state for the current visibility condition and
// reports whether the state changed.
func (l *ScrollLock) Sync(anyVisible bool) bool {
	if l.locked == anyVisible {
		return false
	}
	l.locked = anyVisible
	return true
}

// Locked reports whether scrolling is currently disabled
func (l *ScrollLock) Locked() bool {
	return l.locked
}
