package wallpaper

import "image"

// Slot is one of the three carousel positions, left to right.
type Slot int

// Slot constants
const (
	SlotPrevious Slot = iota
	SlotCurrent
	SlotNext
	slotCount
)

// String returns the string representation of a Slot
func (s Slot) String() string {
	switch s {
	case SlotPrevious:
		return "previous"
	case SlotCurrent:
		return "current"
	case SlotNext:
		return "next"
	default:
		return "unknown"
	}
}

// SlotState is the load state of a slot.
type SlotState int

// SlotState constants
const (
	StateEmpty SlotState = iota
	StateLoading
	StateLoaded
)

// String returns the string representation of a SlotState
func (s SlotState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// SlotData is the decoded content of a loaded slot.
type SlotData struct {
	Locator Locator
	Image   image.Image
	Preview image.Image // smart-cropped thumbnail for the side frames
	Bytes   []byte
}

// SlotView is a read-only copy of a slot.
type SlotView struct {
	State      SlotState
	Locator    Locator
	Data       SlotData
	Generation uint64
}

// Loaded reports whether the slot holds a decoded image.
func (v SlotView) Loaded() bool {
	return v.State == StateLoaded
}

// Snapshot is a copy of all three slots, indexed by Slot.
type Snapshot [slotCount]SlotView

// Previous returns the left slot.
func (s Snapshot) Previous() SlotView { return s[SlotPrevious] }

// Current returns the center slot.
func (s Snapshot) Current() SlotView { return s[SlotCurrent] }

// Next returns the right slot.
func (s Snapshot) Next() SlotView { return s[SlotNext] }

type slot struct {
	state   SlotState
	locator Locator
	data    SlotData
	gen     uint64
}

// Carousel holds the previous/current/next slots. It is owned by the UI context and
// is not safe for concurrent use.
//
// Every slot carries a generation number. Begin bumps it and hands it to the loader;
// Fill and Fail only take effect when the generation still matches, so a result for a
// slot that was superseded by a later load or an advance is dropped.
type Carousel struct {
	slots [slotCount]slot
}

// NewCarousel creates a carousel with three empty slots.
func NewCarousel() *Carousel {
	return &Carousel{}
}

// Begin marks s as loading loc and returns the generation the result must present.
func (c *Carousel) Begin(s Slot, loc Locator) uint64 {
	sl := &c.slots[s]
	sl.gen++
	sl.state = StateLoading
	sl.locator = loc
	sl.data = SlotData{}
	return sl.gen
}

// Fill stores data in s if gen is still current. It reports whether the data was applied.
func (c *Carousel) Fill(s Slot, gen uint64, data SlotData) bool {
	sl := &c.slots[s]
	if sl.gen != gen {
		return false
	}
	sl.state = StateLoaded
	sl.locator = data.Locator
	sl.data = data
	return true
}

// Fail empties s if gen is still current. It reports whether the slot was reset.
func (c *Carousel) Fail(s Slot, gen uint64) bool {
	sl := &c.slots[s]
	if sl.gen != gen {
		return false
	}
	sl.state = StateEmpty
	sl.data = SlotData{}
	return true
}

// Generation returns the current generation of s.
func (c *Carousel) Generation(s Slot) uint64 {
	return c.slots[s].gen
}

// Ready reports whether Next is loaded, which is required to advance.
func (c *Carousel) Ready() bool {
	return c.slots[SlotNext].state == StateLoaded
}

// Advance shifts every slot one position left: Previous takes Current, Current takes
// Next and Next becomes empty. The old Previous is discarded. All generations are
// bumped so loads started before the shift cannot land in the wrong position.
func (c *Carousel) Advance() error {
	if !c.Ready() {
		return ErrNotReady
	}

	prev := c.slots[SlotCurrent]
	if prev.state != StateLoaded {
		prev = slot{}
	}
	cur := c.slots[SlotNext]

	c.shiftInto(SlotPrevious, prev)
	c.shiftInto(SlotCurrent, cur)
	c.shiftInto(SlotNext, slot{})
	return nil
}

func (c *Carousel) shiftInto(s Slot, from slot) {
	c.slots[s] = slot{state: from.state, locator: from.locator, data: from.data, gen: c.slots[s].gen + 1}
}

// View returns a copy of s.
func (c *Carousel) View(s Slot) SlotView {
	sl := c.slots[s]
	return SlotView{State: sl.state, Locator: sl.locator, Data: sl.data, Generation: sl.gen}
}

// Snapshot returns a copy of all slots.
func (c *Carousel) Snapshot() Snapshot {
	var snap Snapshot
	for s := SlotPrevious; s < slotCount; s++ {
		snap[s] = c.View(s)
	}
	return snap
}
