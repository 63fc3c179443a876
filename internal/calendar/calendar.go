package calendar

import "time"

type Day struct {
	Date      time.Time `json:"date" db:"date"`
	Completed bool      `json:"completed" db:"completed"`
	IsToday   bool      `json:"is_today"`
}

type Response struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Days  []*Day `json:"days"`
}
