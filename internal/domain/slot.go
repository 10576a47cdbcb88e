package domain

import "time"

type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SlotList is the resolved availability of one host for one local calendar date.
type SlotList struct {
	HostID   string        `json:"host_id"`
	Date     string        `json:"date"`
	Timezone string        `json:"timezone"`
	Duration time.Duration `json:"duration"`
	Slots    []Slot        `json:"slots"`
}
