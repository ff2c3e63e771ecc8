package dto

// DateTime mirrors the register layout of the DS1307 real-time clock.
type DateTime struct {
	Seconds int
	Minutes int
	Hours   int
	Day     int
	Month   int
	Year    int
}
