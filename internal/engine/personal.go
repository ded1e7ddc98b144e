package engine

import "sync"

// personalState holds the per-(group,user) one-shot effect flags and the
// curse counter. It lives in memory only; a process restart clears it.
// That loss is an accepted trade-off, these flags are short-lived by
// nature and not worth a persistence path.
type personalState struct {
	mu       sync.Mutex
	curses   map[string]int
	nextFail map[string]bool
	freeBait map[string]bool
}

func newPersonalState() *personalState {
	return &personalState{
		curses:   make(map[string]int),
		nextFail: make(map[string]bool),
		freeBait: make(map[string]bool),
	}
}

func (p *personalState) setCurse(key string, count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.curses[key] = count
}

// consumeCurse decrements the key's curse counter and reports whether a
// charge was consumed. The entry is removed when it reaches zero.
func (p *personalState) consumeCurse(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	n, ok := p.curses[key]
	if !ok || n <= 0 {
		return false
	}
	n--
	if n <= 0 {
		delete(p.curses, key)
	} else {
		p.curses[key] = n
	}
	return true
}

func (p *personalState) setNextFail(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextFail[key] = true
}

// consumeNextFail reads and clears the forced-failure flag.
func (p *personalState) consumeNextFail(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.nextFail[key] {
		delete(p.nextFail, key)
		return true
	}
	return false
}

func (p *personalState) setFreeBait(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.freeBait[key] = true
}

// consumeFreeBait reads and clears the free-action flag.
func (p *personalState) consumeFreeBait(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.freeBait[key] {
		delete(p.freeBait, key)
		return true
	}
	return false
}
