package search

// History is the browser history analog: every fetch either pushes a
// new entry (user-initiated) or replaces the current one (programmatic
// and back/forward restores).
type History interface {
	Push(state State, path string)
	Replace(state State, path string)
}

type HistoryEntry struct {
	State State
	Path  string
}

// MemoryHistory is a navigable in-process history stack. Back and
// Forward return the entry to restore, which callers feed to
// Controller.HandlePopState the way a popstate event would.
type MemoryHistory struct {
	entries []HistoryEntry
	idx     int
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{idx: -1}
}

func (h *MemoryHistory) Push(state State, path string) {
	// a push after going back discards the forward entries
	h.entries = append(h.entries[:h.idx+1], HistoryEntry{State: state, Path: path})
	h.idx = len(h.entries) - 1
}

func (h *MemoryHistory) Replace(state State, path string) {
	entry := HistoryEntry{State: state, Path: path}
	if h.idx < 0 {
		h.entries = append(h.entries, entry)
		h.idx = 0
		return
	}
	h.entries[h.idx] = entry
}

func (h *MemoryHistory) Current() (HistoryEntry, bool) {
	if h.idx < 0 {
		return HistoryEntry{}, false
	}
	return h.entries[h.idx], true
}

func (h *MemoryHistory) Back() (HistoryEntry, bool) {
	if h.idx <= 0 {
		return HistoryEntry{}, false
	}
	h.idx--
	return h.entries[h.idx], true
}

func (h *MemoryHistory) Forward() (HistoryEntry, bool) {
	if h.idx+1 >= len(h.entries) {
		return HistoryEntry{}, false
	}
	h.idx++
	return h.entries[h.idx], true
}
