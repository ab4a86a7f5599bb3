package navhistory

import "log/slog"

type record[P any] struct {
	entries []P
	index   int

	// navigating is set by Back/Forward and consumed by the next
	// SelectionChanged for the same document.
	navigating bool
}

type Options struct {
	// Logger receives debug records about recorded, dropped and evicted
	// entries. Nil discards them.
	Logger *slog.Logger
}

// Store maps document ids to their navigation history.
type Store[K comparable, P any] struct {
	docs map[K]*record[P]
	log  *slog.Logger
}

func New[K comparable, P any](opts Options) *Store[K, P] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store[K, P]{
		docs: make(map[K]*record[P]),
		log:  logger,
	}
}

// Close drops the history of doc. Unknown documents are ignored.
func (s *Store[K, P]) Close(doc K) {
	if _, ok := s.docs[doc]; !ok {
		return
	}
	delete(s.docs, doc)
	s.log.Debug("navhistory: document closed", "doc", doc)
}

// SelectionChanged is called by the host whenever the cursor of doc moves.
//
// The first call for a document seeds its history with pos. A call that
// follows Back or Forward on the same document is treated as the echo of that
// navigation and is ignored. Otherwise pos is recorded when diff(pos, last)
// exceeds lim.SpaceBarrier.
//
// It reports whether pos was recorded as a new entry.
func (s *Store[K, P]) SelectionChanged(doc K, pos P, diff LineDiffFunc[P], lim Limits) bool {
	rec := s.docs[doc]
	if rec == nil || len(rec.entries) == 0 {
		s.docs[doc] = &record[P]{entries: []P{pos}}
		return false
	}

	if rec.navigating {
		rec.navigating = false
		return false
	}

	if diff == nil {
		return false
	}
	last := rec.entries[len(rec.entries)-1]
	if dist := diff(pos, last); dist <= lim.SpaceBarrier {
		return false
	}

	// Drop the forward branch: keep everything up to and including the
	// entry the user is currently at.
	keep := clamp(len(rec.entries)+rec.index, 1, len(rec.entries))
	if dropped := len(rec.entries) - keep; dropped > 0 {
		clear(rec.entries[keep:])
		rec.entries = rec.entries[:keep]
		s.log.Debug("navhistory: forward history dropped", "doc", doc, "dropped", dropped)
	}
	rec.index = 0
	rec.entries = append(rec.entries, pos)

	limit := lim.historyLimit()
	if over := len(rec.entries) - limit; over > 0 {
		rec.entries = append(rec.entries[:0:0], rec.entries[over:]...)
		s.log.Debug("navhistory: oldest entries evicted", "doc", doc, "evicted", over)
	}

	s.log.Debug("navhistory: position recorded", "doc", doc, "len", len(rec.entries))
	return true
}

// Back steps one entry back in the history of doc and returns the position
// the host should move to. It returns false when there is no older entry.
func (s *Store[K, P]) Back(doc K) (P, bool) {
	var zero P
	rec := s.docs[doc]
	if !rec.canBack() {
		return zero, false
	}
	rec.navigating = true
	rec.index--
	return rec.current(), true
}

// Forward steps one entry towards the present in the history of doc. It
// returns false when the user is already at the most recent entry.
func (s *Store[K, P]) Forward(doc K) (P, bool) {
	var zero P
	rec := s.docs[doc]
	if !rec.canForward() {
		return zero, false
	}
	rec.navigating = true
	rec.index++
	return rec.current(), true
}

func (s *Store[K, P]) CanBack(doc K) bool { return s.docs[doc].canBack() }

func (s *Store[K, P]) CanForward(doc K) bool { return s.docs[doc].canForward() }

// Has reports whether doc has a seeded history.
func (s *Store[K, P]) Has(doc K) bool {
	rec := s.docs[doc]
	return rec != nil && len(rec.entries) > 0
}

// Len returns the number of recorded entries for doc.
func (s *Store[K, P]) Len(doc K) int {
	if rec := s.docs[doc]; rec != nil {
		return len(rec.entries)
	}
	return 0
}

// Index returns the navigation index of doc: 0 at the most recent entry,
// negative when backed up.
func (s *Store[K, P]) Index(doc K) int {
	if rec := s.docs[doc]; rec != nil {
		return rec.index
	}
	return 0
}

// Entries returns a copy of the recorded entries of doc, oldest first.
func (s *Store[K, P]) Entries(doc K) []P {
	rec := s.docs[doc]
	if rec == nil {
		return nil
	}
	return append([]P(nil), rec.entries...)
}

// Docs returns the number of documents with a history.
func (s *Store[K, P]) Docs() int { return len(s.docs) }

func (r *record[P]) canBack() bool {
	if r == nil || len(r.entries) == 0 {
		return false
	}
	return r.index > -(len(r.entries) - 1)
}

func (r *record[P]) canForward() bool {
	if r == nil || len(r.entries) == 0 {
		return false
	}
	return r.index < 0
}

// current returns the entry the index points at. The returned entry for
// index i is entries[len+i-1]; offsets are clamped into range.
func (r *record[P]) current() P {
	off := clamp(len(r.entries)+r.index-1, 0, len(r.entries)-1)
	return r.entries[off]
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
