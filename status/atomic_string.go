package status

import "sync/atomic"

// MaxStringLen bounds status text so the status bar stays on one line
const MaxStringLen = 24

// AtomicString holds short status text, such as the active treasure name
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the text, cutting it at MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
