package pocketbase

import (
	"fmt"
	"strings"

	"timeblock/internal/model"
	pb "timeblock/pkg/pocketbase"
)

// ownerFilter is the user-ownership clause every query carries.
func ownerFilter(sc model.Scope) string {
	return fmt.Sprintf("user='%s'", escape(sc.UserID))
}

// escape guards single quotes in interpolated filter values.
func escape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

func todoFromRecord(rec pb.Record) model.Todo {
	return model.Todo{
		ID:            rec.GetString("id"),
		User:          rec.GetString("user"),
		Name:          rec.GetString("name"),
		Date:          rec.GetTime("date"),
		Priority:      rec.GetString("priority"),
		Done:          rec.GetBool("done"),
		Tags:          rec.GetStringSlice("tags"),
		Recurrence:    model.Recurrence(rec.GetString("recurrence")),
		RecurrenceEnd: rec.GetTime("recurrence_end"),
		ParentID:      rec.GetString("parent"),
		Created:       rec.GetTime("created"),
		Updated:       rec.GetTime("updated"),
	}
}

func eventFromRecord(rec pb.Record) model.Event {
	return model.Event{
		ID:              rec.GetString("id"),
		User:            rec.GetString("user"),
		Title:           rec.GetString("title"),
		Start:           rec.GetTime("start"),
		End:             rec.GetTime("end"),
		Recurrence:      model.Recurrence(rec.GetString("recurrence")),
		RecurrenceEnd:   rec.GetTime("recurrence_end"),
		ParentID:        rec.GetString("parent"),
		CalendarEventID: rec.GetString("calendar_event_id"),
		Created:         rec.GetTime("created"),
		Updated:         rec.GetTime("updated"),
	}
}
