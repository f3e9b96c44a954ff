// Package timeline expands a booking into the time blocks shown on the calendar.
package timeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"event-planner/internal/data/entity"
)

const edgeBlock = 30 * time.Minute

const (
	colorEdge    = "#4f46e5"
	colorVendor  = "#0ea5e9"
	colorSegment = "#f59e0b"
)

// untilEnd marks a segment that runs until the booking ends.
const untilEnd = -1

type segment struct {
	title    string
	from, to int // minutes after the booking start
	required bool
}

// Offsets are fixed, not proportional to the booking length.
var templates = map[entity.EventType][]segment{
	entity.EventTypeWedding: {
		{title: "Ceremony", from: 0, to: 60, required: true},
		{title: "Cocktail Hour", from: 60, to: 90},
		{title: "Reception", from: 90, to: untilEnd, required: true},
	},
	entity.EventTypeConference: {
		{title: "Registration & Breakfast", from: 0, to: 60, required: true},
		{title: "Morning Sessions", from: 60, to: 210, required: true},
		{title: "Lunch", from: 210, to: 270},
		{title: "Afternoon Sessions", from: 270, to: untilEnd, required: true},
	},
}

// Generate returns the booking's own time blocks followed by the synthesized
// ones: event start and end, one block per vendor booking and the event type
// segments. The result is not sorted; use SortByStart for display.
func Generate(booking *entity.Booking) []entity.EventTimeBlock {
	blocks := make([]entity.EventTimeBlock, 0, len(booking.TimeBlocks)+2+len(booking.VendorBookings))
	blocks = append(blocks, booking.TimeBlocks...)

	start, end := booking.StartDate, booking.EndDate

	blocks = append(blocks,
		entity.EventTimeBlock{
			ID:         "event-start",
			Title:      "Event Start",
			StartTime:  start,
			EndTime:    minTime(start.Add(edgeBlock), end),
			IsRequired: true,
			Color:      ptr(colorEdge),
		},
		entity.EventTimeBlock{
			ID:         "event-end",
			Title:      "Event End",
			StartTime:  maxTime(end.Add(-edgeBlock), start),
			EndTime:    end,
			IsRequired: true,
			Color:      ptr(colorEdge),
		},
	)

	for _, vb := range booking.VendorBookings {
		if vb.Status == entity.BookingStatusCancelled {
			continue
		}
		from, to, err := ServiceWindow(vb.ServiceDate, vb.StartTime, vb.EndTime)
		if err != nil {
			continue
		}
		blocks = append(blocks, entity.EventTimeBlock{
			ID:          "vendor-" + vb.ID,
			Title:       vb.VendorName + " Service",
			StartTime:   from,
			EndTime:     to,
			IsRequired:  false,
			Color:       ptr(colorVendor),
			Description: ptr(fmt.Sprintf("Package %s", vb.PackageID)),
		})
	}

	for i, seg := range templates[booking.EventType] {
		from := start.Add(time.Duration(seg.from) * time.Minute)
		if !from.Before(end) {
			continue
		}
		to := end
		if seg.to != untilEnd {
			to = minTime(start.Add(time.Duration(seg.to)*time.Minute), end)
		}

		blocks = append(blocks, entity.EventTimeBlock{
			ID:         fmt.Sprintf("%s-%d", booking.EventType, i),
			Title:      seg.title,
			StartTime:  from,
			EndTime:    to,
			IsRequired: seg.required,
			Color:      ptr(colorSegment),
		})
	}

	return blocks
}

// SortByStart returns a copy of blocks ordered by start time. Equal starts
// keep their relative order.
func SortByStart(blocks []entity.EventTimeBlock) []entity.EventTimeBlock {
	sorted := slices.Clone(blocks)
	slices.SortStableFunc(sorted, func(a, b entity.EventTimeBlock) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return sorted
}

// ServiceWindow combines a service date with HH:MM start and end times in
// the date's location.
func ServiceWindow(date time.Time, startHHMM, endHHMM string) (time.Time, time.Time, error) {
	from, err := clock(date, startHHMM)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := clock(date, endHHMM)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("end time %s is not after start time %s", endHHMM, startHHMM)
	}
	return from, to, nil
}

func clock(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time of day %q: %w", hhmm, err)
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func ptr(s string) *string {
	return &s
}
