// Package witness reserves and fills transaction witness slots for signatures that can only be
// produced once the transaction shape is final.
package witness

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
)

// PlaceholderWidth is the width of a reserved signature slot.
const PlaceholderWidth = 64

// ErrSlotMismatch is returned when a fill does not match the reserved slot.
var ErrSlotMismatch = errors.New("witness slot mismatch")

// Slot is a handle to a reserved witness slot.
type Slot struct {
	index int
	width int
}

// Index returns the witness index the slot occupies.
func (s Slot) Index() int { return s.index }

// Placeholder returns a fresh all-zero placeholder witness.
func Placeholder() []byte {
	return make([]byte, PlaceholderWidth)
}

// IsPlaceholder reports whether w is an unfilled placeholder.
func IsPlaceholder(w []byte) bool {
	return len(w) == PlaceholderWidth && bytes.Count(w, []byte{0}) == PlaceholderWidth
}

// SlotIndex returns the index of the first placeholder in witnesses, or len(witnesses) if there
// is none.
func SlotIndex(witnesses []model.Bytes) int {
	for i, w := range witnesses {
		if IsPlaceholder(w) {
			return i
		}
	}
	return len(witnesses)
}

// Allocate plans n adjacent slots over witnesses without modifying them. The first run of n
// placeholders is reused; a run of placeholders at the end of the list is extended instead.
// Otherwise the slots are placed after the last witness. Allocating again over the reserved
// result yields the same slots.
func Allocate(witnesses []model.Bytes, n int) []Slot {
	slots := make([]Slot, 0, n)
	if n <= 0 {
		return slots
	}

	first := len(witnesses)
	for i := range witnesses {
		run := 0
		for i+run < len(witnesses) && run < n && IsPlaceholder(witnesses[i+run]) {
			run++
		}
		if run == 0 {
			continue
		}
		if run == n || i+run == len(witnesses) {
			first = i
			break
		}
	}
	for i := 0; i < n; i++ {
		slots = append(slots, Slot{index: first + i, width: PlaceholderWidth})
	}
	return slots
}

// Reserve writes placeholders into the planned slots, growing the witness list as needed.
func Reserve(draft *model.TransactionDraft, slots []Slot) error {
	for _, s := range slots {
		switch {
		case s.index < len(draft.Witnesses):
			if !IsPlaceholder(draft.Witnesses[s.index]) {
				return fmt.Errorf("%w: witness %d is not a placeholder", ErrSlotMismatch, s.index)
			}
		case s.index == len(draft.Witnesses):
			draft.Witnesses = append(draft.Witnesses, Placeholder())
		default:
			return fmt.Errorf("%w: witness %d leaves a gap after %d witnesses", ErrSlotMismatch, s.index, len(draft.Witnesses))
		}
	}
	return nil
}

// Fill writes sig into a reserved slot. The slot must still have the reserved width.
func Fill(draft *model.TransactionDraft, s Slot, sig []byte) error {
	if s.width == 0 {
		return fmt.Errorf("%w: slot was not allocated", ErrSlotMismatch)
	}
	if s.index >= len(draft.Witnesses) {
		return fmt.Errorf("%w: witness %d not reserved", ErrSlotMismatch, s.index)
	}
	if len(draft.Witnesses[s.index]) != s.width {
		return fmt.Errorf("%w: witness %d is %d bytes, reserved %d", ErrSlotMismatch, s.index, len(draft.Witnesses[s.index]), s.width)
	}
	if len(sig) != s.width {
		return fmt.Errorf("%w: signature is %d bytes, slot %d holds %d", ErrSlotMismatch, len(sig), s.index, s.width)
	}
	draft.Witnesses[s.index] = bytes.Clone(sig)
	return nil
}
