package types

import (
	"sort"
	"time"
)

// UpcomingWindowDays is the inclusive lookahead of the upcoming birthday
// query: today plus the next seven days.
const UpcomingWindowDays = 7

// Upcoming is one entry of the upcoming birthday query. Date is the day
// the birthday is observed, already moved off the weekend.
type Upcoming struct {
	Name string    `json:"name" yaml:"name"`
	Date time.Time `json:"date" yaml:"date"`
}

// DateString renders Date as DD.MM.YYYY.
func (u Upcoming) DateString() string {
	return u.Date.Format(BirthdayLayout)
}

// UpcomingBirthdays returns the contacts whose next birthday is between
// today and today+UpcomingWindowDays inclusive. A birthday falling on a
// Saturday or Sunday is reported on the following Monday; whether a
// contact qualifies is decided before that shift, so a result may lie up
// to nine days out.
//
// Results are ordered by observed date; contacts sharing a date keep the
// order of records.
func UpcomingBirthdays(records []*Record, today time.Time) []Upcoming {
	day := truncateDay(today)
	var out []Upcoming
	for _, r := range records {
		if r == nil {
			continue
		}
		days, ok := r.DaysUntilBirthday(day)
		if !ok || days < 0 || days > UpcomingWindowDays {
			continue
		}
		out = append(out, Upcoming{
			Name: r.Name().String(),
			Date: rollToWeekday(day.AddDate(0, 0, days)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// UpcomingBirthdays runs the upcoming birthday query over the book.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []Upcoming {
	records, _ := b.Records()
	return UpcomingBirthdays(records, today)
}
