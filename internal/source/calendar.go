package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/oakwood-commons/pagingmenu/internal/paging"
)

const (
	dateLayout  = "2006-01-02"
	titleLayout = "Mon 02 Jan"
	secondsADay = 24 * 60 * 60
)

// Calendar is an unbounded sequence of days. Item ids are ISO dates and
// orders count days since the Unix epoch, so dates compare correctly across
// windows.
type Calendar struct{}

func NewCalendar() *Calendar { return &Calendar{} }

// Day returns the item for the calendar date of t.
func (c *Calendar) Day(t time.Time) paging.Item {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return paging.Item{
		ID:    d.Format(dateLayout),
		Order: int(d.Unix() / secondsADay),
		Title: d.Format(titleLayout),
	}
}

// DateOf parses the date an item stands for.
func DateOf(item paging.Item) (time.Time, error) {
	t, err := time.Parse(dateLayout, item.ID)
	if err != nil {
		return time.Time{}, fmt.Errorf("item %q is not a date: %w", item.ID, err)
	}
	return t, nil
}

func (c *Calendar) ItemBefore(item paging.Item) (paging.Item, bool) {
	return c.shift(item, -1)
}

func (c *Calendar) ItemAfter(item paging.Item) (paging.Item, bool) {
	return c.shift(item, 1)
}

func (c *Calendar) shift(item paging.Item, days int) (paging.Item, bool) {
	t, err := DateOf(item)
	if err != nil {
		return paging.Item{}, false
	}
	return c.Day(t.AddDate(0, 0, days)), true
}

// Lookup accepts an ISO date.
func (c *Calendar) Lookup(ref string) (paging.Item, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(ref))
	if err != nil {
		return paging.Item{}, false
	}
	return c.Day(t), true
}

// Body lists the date in a few long forms.
func (c *Calendar) Body(item paging.Item) (string, bool) {
	t, err := DateOf(item)
	if err != nil {
		return "", false
	}
	_, week := t.ISOWeek()
	return fmt.Sprintf("# %s\n\n%s\n\n* Day %d of the year\n* ISO week %d\n",
		t.Format("Monday"), t.Format("2 January 2006"), t.YearDay(), week), true
}
