package entity

import "fmt"

const (
	// MinutesPerHour is the number of simulation minutes in an hour.
	MinutesPerHour = 60
	// MinutesPerDay is the number of simulation minutes in a day.
	MinutesPerDay = 24 * MinutesPerHour
)

// SimTime is a day/hour/minute triple on the simulation clock.
type SimTime struct {
	Day    int `json:"day" yaml:"day" validate:"gte=0"`
	Hour   int `json:"hour" yaml:"hour" validate:"gte=0,lte=23"`
	Minute int `json:"minute" yaml:"minute" validate:"gte=0,lte=59"`
}

// Minutes converts the triple to an absolute simulation minute.
func (t SimTime) Minutes() int {
	return t.Day*MinutesPerDay + t.Hour*MinutesPerHour + t.Minute
}

// SimTimeFromMinutes splits an absolute simulation minute back into a triple.
func SimTimeFromMinutes(minutes int) SimTime {
	if minutes < 0 {
		minutes = 0
	}

	return SimTime{
		Day:    minutes / MinutesPerDay,
		Hour:   (minutes % MinutesPerDay) / MinutesPerHour,
		Minute: minutes % MinutesPerHour,
	}
}

// String formats the triple as "D<day> HH:MM".
func (t SimTime) String() string {
	return fmt.Sprintf("D%d %02d:%02d", t.Day, t.Hour, t.Minute)
}
