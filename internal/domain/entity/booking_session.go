package entity

import "time"

// BookingSession is the server-side view state of one appointment form:
// which patient has been resolved, which doctor and date are selected, and
// the slot list those selections produced. SlotSeq increases on every
// selection change so that a slot list fetched for an older selection can be
// recognized and dropped.
type BookingSession struct {
	ID           string    `json:"id"`
	Patient      *Patient  `json:"patient,omitempty"`
	DoctorID     int       `json:"doctorId"`
	Date         string    `json:"date"`
	SelectedTime string    `json:"selectedTime"`
	Slots        []Slot    `json:"slots"`
	SlotSeq      uint64    `json:"slotSeq"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NextSlotSeq marks the current slot list as superseded and returns the
// sequence number the next fetch must carry to be accepted.
func (s *BookingSession) NextSlotSeq() uint64 {
	s.SlotSeq++
	return s.SlotSeq
}

// ApplySlotResult installs a fetched slot list if it is still the newest
// fetch for this session; results of superseded fetches are discarded
// (last write wins). A previously selected time that is absent from the new
// list is cleared so a stale selection is never retained.
func (s *BookingSession) ApplySlotResult(seq uint64, slots []Slot) bool {
	if seq != s.SlotSeq {
		return false
	}
	s.Slots = slots
	if s.SelectedTime != "" && !s.HasSlotTime(s.SelectedTime) {
		s.SelectedTime = ""
	}
	return true
}

// HasSlotTime reports whether the current slot list contains the given time.
func (s *BookingSession) HasSlotTime(t string) bool {
	for _, slot := range s.Slots {
		if slot.Time == t {
			return true
		}
	}
	return false
}
