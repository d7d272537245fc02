package console

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/validate"
)

func (s *Session) memberMenu(ctx context.Context) error {
	return s.loop(ctx, "Member menu", []action{
		{"Profile management", s.profileMenu},
		{"Dashboard", s.showDashboard},
		{"Schedule management", s.scheduleMenu},
	}, "Logout")
}

func (s *Session) profileMenu(ctx context.Context) error {
	return s.loop(ctx, "Profile management", []action{
		{"Update personal information", s.updatePersonalInfo},
		{"Update health metrics", s.updateHealthMetrics},
		{"View fitness goals", s.showGoals},
		{"Add a fitness goal", s.addGoal},
		{"Mark a goal as achieved", s.markGoalAchieved},
		{"Create an exercise routine", s.createRoutine},
	}, "Back")
}

var personalFields = []struct {
	field model.PersonalField
	label string
	parse func(string) (string, error)
}{
	{model.FieldFirstName, "First name", func(v string) (string, error) { return validate.Name("first name", v) }},
	{model.FieldLastName, "Last name", func(v string) (string, error) { return validate.Name("last name", v) }},
	{model.FieldEmail, "Email", validate.Email},
	{model.FieldPassword, "Password", validate.Password},
	{model.FieldPhone, "Phone number", validate.Phone},
}

func (s *Session) updatePersonalInfo(ctx context.Context) error {
	labels := make([]string, 0, len(personalFields)+1)
	for _, f := range personalFields {
		labels = append(labels, f.label)
	}
	labels = append(labels, "Back")

	choice, err := s.menu("Which field would you like to update?", labels...)
	if err != nil || choice == len(labels) {
		return err
	}
	f := personalFields[choice-1]

	value, err := ask(s, fmt.Sprintf("New %s: ", f.label), f.parse)
	if err != nil {
		return err
	}

	if err := s.svc.Members.UpdatePersonalInfo(ctx, s.account.ID, f.field, value); err != nil {
		return err
	}
	s.printf("%s updated.\n", f.label)
	return nil
}

func (s *Session) updateHealthMetrics(ctx context.Context) error {
	weight, err := ask(s, "New weight in lbs (press Enter to keep): ", s.validator.Weight)
	if err != nil {
		return err
	}
	bodyFat, err := ask(s, "New body fat percentage (press Enter to keep): ", s.validator.BodyFat)
	if err != nil {
		return err
	}
	if weight == nil && bodyFat == nil {
		s.println("Nothing to update.")
		return nil
	}

	if err := s.svc.Members.UpdateHealthMetrics(ctx, s.account.ID, weight, bodyFat); err != nil {
		return err
	}
	s.println("Health metrics updated.")
	return nil
}

func (s *Session) showGoals(ctx context.Context) error {
	goals, err := s.svc.Members.Goals(ctx, s.account.ID)
	if err != nil {
		return err
	}
	printList(s, "You have no fitness goals yet.", goals, formatGoal)
	return nil
}

func (s *Session) addGoal(ctx context.Context) error {
	name, err := s.askText("Goal name: ", "goal name")
	if err != nil {
		return err
	}
	description, err := s.readLine("Description (optional): ")
	if err != nil {
		return err
	}

	goal, err := s.svc.Members.AddGoal(ctx, s.account.ID, name, description)
	if err != nil {
		return err
	}
	s.printf("Goal #%d added.\n", goal.ID)
	return nil
}

func (s *Session) markGoalAchieved(ctx context.Context) error {
	if err := s.showGoals(ctx); err != nil {
		return err
	}
	goalID, err := s.askID("Goal id: ", "goal id")
	if err != nil {
		return err
	}

	if err := s.svc.Members.MarkGoalAchieved(ctx, s.account.ID, goalID); err != nil {
		return err
	}
	s.println("Congratulations on achieving your goal!")
	return nil
}

func (s *Session) createRoutine(ctx context.Context) error {
	exercises, err := s.svc.Members.Exercises(ctx)
	if err != nil {
		return err
	}
	if len(exercises) == 0 {
		s.println("There are no exercises in the catalogue.")
		return nil
	}

	name, err := s.askText("Routine name: ", "routine name")
	if err != nil {
		return err
	}
	description, err := s.readLine("Description (optional): ")
	if err != nil {
		return err
	}

	s.println("Available exercises:")
	for _, e := range exercises {
		s.printf("#%d %s: %s\n", e.ID, e.Name, e.Description)
	}

	var chosen []model.RoutineExercise
	for {
		id, err := s.askID("Exercise id: ", "exercise id")
		if err != nil {
			return err
		}
		sets, err := ask(s, "Number of sets: ", validate.Sets)
		if err != nil {
			return err
		}
		chosen = append(chosen, model.RoutineExercise{ExerciseID: id, Sets: sets})

		more, err := s.confirm("Add another exercise?")
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	routine, err := s.svc.Members.CreateRoutine(ctx, s.account.ID, name, description, chosen)
	if err != nil {
		return err
	}
	s.printf("Routine #%d created.\n", routine.ID)
	return nil
}

func (s *Session) showDashboard(ctx context.Context) error {
	dash, err := s.svc.Members.Dashboard(ctx, s.account.ID)
	if err != nil {
		return err
	}

	s.println("\nHealth statistics:")
	s.printf("Weight: %s\n", formatOptional(dash.Member.WeightLbs, "lbs"))
	s.printf("Body fat: %s\n", formatOptional(dash.Member.BodyFatPercentage, "%"))

	s.println("\nFitness achievements:")
	printList(s, "No achievements yet.", dash.Achievements, formatGoal)

	s.println("\nExercise routines:")
	printList(s, "No routines yet.", dash.Routines, formatRoutine)
	return nil
}

func (s *Session) scheduleMenu(ctx context.Context) error {
	return s.loop(ctx, "Schedule management", []action{
		{"View all classes", s.showClasses},
		{"View my classes", s.showRegisteredClasses},
		{"View my personal training sessions", s.showSessions},
		{"Register for a class", s.joinClass},
		{"Book a personal training session", s.bookSession},
		{"Leave a class", s.leaveClass},
		{"Cancel a personal training session", s.cancelSession},
	}, "Back")
}

func (s *Session) showClasses(ctx context.Context) error {
	classes, err := s.svc.Schedule.Classes(ctx)
	if err != nil {
		return err
	}
	printList(s, "There are no classes scheduled.", classes, formatClass)
	return nil
}

func (s *Session) showRegisteredClasses(ctx context.Context) error {
	classes, err := s.svc.Schedule.RegisteredClasses(ctx, s.account.ID)
	if err != nil {
		return err
	}
	printList(s, "You are not registered for any classes.", classes, formatClass)
	return nil
}

func (s *Session) showSessions(ctx context.Context) error {
	sessions, err := s.svc.Schedule.Sessions(ctx, s.account.ID)
	if err != nil {
		return err
	}
	printList(s, "You have no personal training sessions.", sessions, formatSession)
	return nil
}

func (s *Session) joinClass(ctx context.Context) error {
	classID, err := s.askID("Class id: ", "class id")
	if err != nil {
		return err
	}

	class, err := s.svc.Schedule.JoinClass(ctx, s.account.ID, classID)
	if err != nil {
		return err
	}
	s.printf("You are registered for %s on %s %s.\n", class.Name, formatDate(class.Date), class.Interval)
	return nil
}

func (s *Session) leaveClass(ctx context.Context) error {
	classID, err := s.askID("Class id: ", "class id")
	if err != nil {
		return err
	}

	if err := s.svc.Schedule.LeaveClass(ctx, s.account.ID, classID); err != nil {
		return err
	}
	s.println("You have left the class.")
	return nil
}

func (s *Session) bookSession(ctx context.Context) error {
	date, err := s.askDate("Session date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	iv, err := s.askInterval()
	if err != nil {
		return err
	}

	trainers, err := s.svc.Schedule.AvailableTrainers(ctx, s.account.ID, date, iv)
	if err != nil {
		return err
	}
	if len(trainers) == 0 {
		s.println("No trainers are available at this time.")
		return nil
	}

	s.println("Available trainers:")
	ids := make(map[int64]bool, len(trainers))
	for _, t := range trainers {
		ids[t.ID] = true
		s.printf("#%d %s\n", t.ID, t.FullName())
	}

	trainerID, err := ask(s, "Trainer id: ", func(line string) (int64, error) {
		id, err := validate.ID("trainer id", line)
		if err != nil {
			return 0, err
		}
		if !ids[id] {
			return 0, apperror.Validation("trainer id", "Please choose one of the trainers listed above.")
		}
		return id, nil
	})
	if err != nil {
		return err
	}

	session, err := s.svc.Schedule.BookSession(ctx, s.account.ID, trainerID, date, iv)
	if err != nil {
		return err
	}
	s.printf("Session #%d booked.\n", session.ID)
	return nil
}

func (s *Session) cancelSession(ctx context.Context) error {
	sessionID, err := s.askID("Session id: ", "session id")
	if err != nil {
		return err
	}

	if err := s.svc.Schedule.CancelSession(ctx, s.account.ID, sessionID); err != nil {
		return err
	}
	s.println("Session cancelled.")
	return nil
}
