package model

import "time"

type Room struct {
	Number int64  `json:"number"`
	Name   string `json:"name"`
}

type RoomBooking struct {
	ID         int64        `json:"id"`
	RoomNumber int64        `json:"room_number"`
	Date       time.Time    `json:"date"`
	Interval   TimeInterval `json:"interval"`
	StaffID    int64        `json:"staff_id"`
}
