package maze

import "slices"

// frontier is the ordered set of live heads. The schedule decides which one
// moves next and which one a branch-death roll removes.
type frontier struct {
	heads    []*head
	cursor   int
	schedule Schedule
}

func newFrontier(s Schedule) *frontier {
	return &frontier{schedule: s}
}

func (f *frontier) len() int { return len(f.heads) }

func (f *frontier) pos() int {
	switch f.schedule {
	case ScheduleNewest:
		return len(f.heads) - 1
	case ScheduleRoundRobin:
		if f.cursor >= len(f.heads) {
			f.cursor = 0
		}
		return f.cursor
	default:
		return 0
	}
}

func (f *frontier) current() *head { return f.heads[f.pos()] }

func (f *frontier) push(h *head) { f.heads = append(f.heads, h) }

// drop removes the scheduled head. Under round-robin the cursor then points
// at the head that followed it.
func (f *frontier) drop() {
	i := f.pos()
	f.heads = slices.Delete(f.heads, i, i+1)
}

// advance hands the turn to the next head after a carve.
func (f *frontier) advance() {
	if f.schedule == ScheduleRoundRobin && len(f.heads) > 0 {
		f.cursor = (f.pos() + 1) % len(f.heads)
	}
}
