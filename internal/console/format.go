package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/model"
)

const timestampFormat = "2006-01-02 15:04"

func formatDate(t time.Time) string {
	return t.Format(model.DateFormat)
}

func formatOptional(v *float64, unit string) string {
	if v == nil {
		return "not recorded"
	}
	return fmt.Sprintf("%.1f %s", *v, unit)
}

func formatClass(c *model.Class) string {
	return fmt.Sprintf("#%d %s | trainer #%d | %s %s", c.ID, c.Name, c.TrainerID, formatDate(c.Date), c.Interval)
}

func formatWindow(w *model.AvailabilityWindow) string {
	return fmt.Sprintf("#%d trainer #%d | %s %s", w.ID, w.TrainerID, formatDate(w.Date), w.Interval)
}

func formatSession(p *model.PersonalTrainingSession) string {
	trainer := p.TrainerName
	if trainer == "" {
		trainer = fmt.Sprintf("trainer #%d", p.TrainerID)
	}
	return fmt.Sprintf("#%d with %s | %s %s", p.ID, trainer, formatDate(p.Date), p.Interval)
}

func formatGoal(g *model.Goal) string {
	status := "in progress"
	if g.Achieved() {
		status = "achieved " + g.AchievedAt.Format(timestampFormat)
	}

	line := fmt.Sprintf("#%d %s (%s)", g.ID, g.Name, status)
	if g.Description != "" {
		line += "\n    " + g.Description
	}
	return line
}

func formatRoutine(r *model.Routine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s", r.ID, r.Name)
	if r.Description != "" {
		fmt.Fprintf(&b, ": %s", r.Description)
	}
	for _, e := range r.Exercises {
		fmt.Fprintf(&b, "\n    - %s x %d sets", e.Name, e.Sets)
	}
	return b.String()
}

func formatRoom(r *model.Room) string {
	return fmt.Sprintf("Room %d: %s", r.Number, r.Name)
}

func formatBooking(b *model.RoomBooking) string {
	return fmt.Sprintf("#%d room %d | %s %s | booked by staff #%d", b.ID, b.RoomNumber, formatDate(b.Date), b.Interval, b.StaffID)
}

func formatEquipment(e *model.Equipment) string {
	state := "in service"
	if e.UnderMaintenance {
		state = "under maintenance"
	}
	return fmt.Sprintf("#%d %s (%s)", e.ID, e.Name, state)
}

func formatMaintenance(r *model.MaintenanceRecord) string {
	if r.CompletedAt == nil {
		return fmt.Sprintf("#%d started %s, in progress", r.ID, r.StartedAt.Format(timestampFormat))
	}
	return fmt.Sprintf("#%d started %s, completed %s", r.ID, r.StartedAt.Format(timestampFormat), r.CompletedAt.Format(timestampFormat))
}

func formatBill(b *model.Bill) string {
	line := fmt.Sprintf("#%d member #%d | $%.2f | %s since %s", b.Number, b.MemberID, b.Amount, b.Status, b.StatusUpdatedAt.Format(timestampFormat))
	if b.Reference != nil {
		line += " | ref " + b.Reference.String()
	}
	return line
}
