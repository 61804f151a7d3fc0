package view

import (
	"strconv"
	"time"

	"github.com/pkordes/trip-planner/web/internal/messages"
)

// Formatter renders dates the way the pages show them, in pt-BR.
type Formatter struct {
	cat *messages.Catalog
	loc *time.Location
}

// NewFormatter returns a Formatter that converts times to loc before
// formatting. A nil loc means UTC.
func NewFormatter(cat *messages.Catalog, loc *time.Location) Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return Formatter{cat: cat, loc: loc}
}

// Day formats t as its day of month: "1".
func (f Formatter) Day(t time.Time) string {
	return strconv.Itoa(t.In(f.loc).Day())
}

// ShortDate formats t as "1 de jun".
func (f Formatter) ShortDate(t time.Time) string {
	t = t.In(f.loc)
	return strconv.Itoa(t.Day()) + " de " + f.cat.MonthShort(t.Month())
}

// LongDate formats t as "15 de jun de 2025".
func (f Formatter) LongDate(t time.Time) string {
	t = t.In(f.loc)
	return f.ShortDate(t) + " de " + strconv.Itoa(t.Year())
}

// Weekday formats t as "sábado".
func (f Formatter) Weekday(t time.Time) string {
	return f.cat.Weekday(t.In(f.loc).Weekday())
}

// Clock formats t as "08:00h".
func (f Formatter) Clock(t time.Time) string {
	return t.In(f.loc).Format("15:04") + "h"
}

// Range formats a trip window as "1 a 15 de jun de 2025"; the day of the
// start date only, the end date in full.
func (f Formatter) Range(start, end time.Time) string {
	return f.Day(start) + " a " + f.LongDate(end)
}

// InputRange formats two <input type="date"> values as
// "1 de jun até 15 de jun de 2025". Values that do not parse are shown as typed.
func (f Formatter) InputRange(start, end string) string {
	s, errS := time.ParseInLocation(time.DateOnly, start, f.loc)
	e, errE := time.ParseInLocation(time.DateOnly, end, f.loc)
	if errS != nil || errE != nil {
		return start + " até " + end
	}
	return f.ShortDate(s) + " até " + f.LongDate(e)
}
