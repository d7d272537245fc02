package console

import (
	"context"
	"fmt"
)

func (s *Session) trainerMenu(ctx context.Context) error {
	return s.loop(ctx, "Trainer menu", []action{
		{"Manage availability", s.manageAvailability},
		{"Search member profile", s.searchMember},
	}, "Logout")
}

func (s *Session) manageAvailability(ctx context.Context) error {
	date, err := s.askDate("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	showWindows := func(ctx context.Context) error {
		windows, err := s.svc.Trainers.Windows(ctx, s.account.ID, date)
		if err != nil {
			return err
		}
		printList(s, "You have no availability on this date.", windows, formatWindow)
		return nil
	}
	if err := showWindows(ctx); err != nil {
		return err
	}

	return s.loop(ctx, fmt.Sprintf("Availability on %s", formatDate(date)), []action{
		{"View availability", showWindows},
		{"Add availability", func(ctx context.Context) error {
			iv, err := s.askInterval()
			if err != nil {
				return err
			}
			w, err := s.svc.Trainers.SetAvailability(ctx, s.account.ID, date, iv)
			if err != nil {
				return err
			}
			s.printf("Availability #%d added: %s.\n", w.ID, w.Interval)
			return nil
		}},
		{"Remove availability", func(ctx context.Context) error {
			windowID, err := s.askID("Availability id: ", "availability id")
			if err != nil {
				return err
			}
			if err := s.svc.Trainers.RemoveWindow(ctx, s.account.ID, windowID); err != nil {
				return err
			}
			s.println("Availability removed.")
			return nil
		}},
	}, "Back")
}

func (s *Session) searchMember(ctx context.Context) error {
	firstName, err := s.askText("Member first name: ", "first name")
	if err != nil {
		return err
	}
	lastName, err := s.askText("Member last name: ", "last name")
	if err != nil {
		return err
	}

	profiles, err := s.svc.Trainers.SearchMembers(ctx, firstName, lastName)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		s.printf("No member named %s %s was found.\n", firstName, lastName)
		return nil
	}

	for _, p := range profiles {
		m := p.Member
		s.printf("\nMember #%d %s\n", m.ID, m.FullName())
		s.printf("Email: %s | Phone: %s | Born: %s\n", m.Email, m.PhoneNumber, formatDate(m.DateOfBirth))
		s.printf("Weight: %s | Body fat: %s\n", formatOptional(m.WeightLbs, "lbs"), formatOptional(m.BodyFatPercentage, "%"))
		s.println("Goals:")
		printList(s, "No goals.", p.Goals, formatGoal)
	}
	return nil
}
