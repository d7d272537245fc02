package console

import (
	"context"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/validate"
)

func (s *Session) staffMenu(ctx context.Context) error {
	return s.loop(ctx, "Staff menu", []action{
		{"Room bookings", s.roomMenu},
		{"Equipment maintenance", s.equipmentMenu},
		{"Class schedule", s.classMenu},
		{"Billing and payments", s.billingMenu},
	}, "Logout")
}

func (s *Session) roomMenu(ctx context.Context) error {
	rooms, err := s.svc.Rooms.Rooms(ctx)
	if err != nil {
		return err
	}
	printList(s, "There are no rooms.", rooms, formatRoom)

	return s.loop(ctx, "Room bookings", []action{
		{"View bookings", s.showRoomBookings},
		{"Book a room", s.bookRoom},
		{"Remove a booking", func(ctx context.Context) error {
			bookingID, err := s.askID("Booking id: ", "booking id")
			if err != nil {
				return err
			}
			if err := s.svc.Rooms.RemoveBooking(ctx, bookingID); err != nil {
				return err
			}
			s.println("Booking removed.")
			return nil
		}},
	}, "Back")
}

func (s *Session) showRoomBookings(ctx context.Context) error {
	roomNumber, err := s.askID("Room number: ", "room number")
	if err != nil {
		return err
	}
	date, err := s.askDate("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	bookings, err := s.svc.Rooms.Bookings(ctx, roomNumber, date)
	if err != nil {
		return err
	}
	printList(s, "The room has no bookings on this date.", bookings, formatBooking)
	return nil
}

func (s *Session) bookRoom(ctx context.Context) error {
	roomNumber, err := s.askID("Room number: ", "room number")
	if err != nil {
		return err
	}
	date, err := s.askDate("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	iv, err := s.askInterval()
	if err != nil {
		return err
	}

	booking, err := s.svc.Rooms.BookRoom(ctx, s.account.ID, roomNumber, date, iv)
	if err != nil {
		return err
	}
	s.printf("Booking #%d created.\n", booking.ID)
	return nil
}

func (s *Session) equipmentMenu(ctx context.Context) error {
	return s.loop(ctx, "Equipment maintenance", []action{
		{"View equipment", func(ctx context.Context) error {
			items, err := s.svc.Equipment.Equipment(ctx)
			if err != nil {
				return err
			}
			printList(s, "There is no equipment.", items, formatEquipment)
			return nil
		}},
		{"View maintenance history", func(ctx context.Context) error {
			id, err := s.askID("Equipment id: ", "equipment id")
			if err != nil {
				return err
			}
			records, err := s.svc.Equipment.History(ctx, id)
			if err != nil {
				return err
			}
			printList(s, "This equipment has never been serviced.", records, formatMaintenance)
			return nil
		}},
		{"Start or finish maintenance", func(ctx context.Context) error {
			id, err := s.askID("Equipment id: ", "equipment id")
			if err != nil {
				return err
			}
			item, err := s.svc.Equipment.ToggleMaintenance(ctx, id)
			if err != nil {
				return err
			}
			s.println(formatEquipment(item))
			return nil
		}},
	}, "Back")
}

func (s *Session) classMenu(ctx context.Context) error {
	return s.loop(ctx, "Class schedule", []action{
		{"View all classes", s.showClasses},
		{"Create a class", s.createClass},
		{"Delete a class", func(ctx context.Context) error {
			classID, err := s.askID("Class id: ", "class id")
			if err != nil {
				return err
			}
			if err := s.svc.Classes.DeleteClass(ctx, classID); err != nil {
				return err
			}
			s.println("Class deleted.")
			return nil
		}},
	}, "Back")
}

func (s *Session) createClass(ctx context.Context) error {
	windows, err := s.svc.Classes.TrainerWindows(ctx)
	if err != nil {
		return err
	}
	s.println("Trainer availability:")
	printList(s, "No trainer has declared availability.", windows, formatWindow)

	name, err := s.askText("Class name: ", "class name")
	if err != nil {
		return err
	}
	trainerID, err := s.askID("Trainer id: ", "trainer id")
	if err != nil {
		return err
	}
	date, err := s.askDate("Class date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	iv, err := s.askInterval()
	if err != nil {
		return err
	}

	class, err := s.svc.Classes.CreateClass(ctx, name, trainerID, date, iv)
	if err != nil {
		return err
	}
	s.printf("Class #%d created.\n", class.ID)
	return nil
}

func (s *Session) billingMenu(ctx context.Context) error {
	awaiting := model.BillAwaitingPayment
	paid := model.BillPaid

	transition := func(status *model.BillStatus, empty string, apply func(ctx context.Context, number int64) (*model.Bill, error)) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			bills, err := s.svc.Billing.Bills(ctx, status)
			if err != nil {
				return err
			}
			if len(bills) == 0 {
				s.println(empty)
				return nil
			}
			printList(s, "", bills, formatBill)

			number, err := s.askID("Bill number: ", "bill number")
			if err != nil {
				return err
			}
			bill, err := apply(ctx, number)
			if err != nil {
				return err
			}
			s.println(formatBill(bill))
			return nil
		}
	}

	return s.loop(ctx, "Billing and payments", []action{
		{"Create a bill", s.createBill},
		{"Cancel a bill", transition(&awaiting, `There are no bills awaiting payment.`, s.svc.Billing.CancelBill)},
		{"Process a payment", transition(&awaiting, `There are no bills awaiting payment.`, s.svc.Billing.PayBill)},
		{"Refund a payment", transition(&paid, `There are no paid bills.`, s.svc.Billing.RefundBill)},
		{"View all bills", func(ctx context.Context) error {
			bills, err := s.svc.Billing.Bills(ctx, nil)
			if err != nil {
				return err
			}
			printList(s, "There are no bills.", bills, formatBill)
			return nil
		}},
	}, "Back")
}

func (s *Session) createBill(ctx context.Context) error {
	memberID, err := s.askID("Member id: ", "member id")
	if err != nil {
		return err
	}
	amount, err := ask(s, "Amount in dollars: ", validate.Amount)
	if err != nil {
		return err
	}

	bill, err := s.svc.Billing.CreateBill(ctx, memberID, amount)
	if err != nil {
		return err
	}
	s.printf("Bill #%d created.\n", bill.Number)
	return nil
}
