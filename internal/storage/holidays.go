package storage

import "time"

// Holiday — праздничный день производственного календаря, привязанный к
// году и месяцу для выборки по периоду.
type Holiday struct {
	Date  time.Time `json:"date"`
	Year  int       `json:"year"`
	Month int       `json:"month"`
}
