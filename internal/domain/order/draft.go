package order

import (
	"regexp"
	"strings"
	"time"

	"course-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z ]*$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// DraftItem is a raw cart entry as submitted by the caller. Price is
// optional; when absent it is filled from the catalog during placement.
type DraftItem struct {
	LessonID int64
	Quantity int32
	Price    *float64
}

// Draft is a fully validated checkout request that has not yet been priced
// against the catalog. All validation happens here, before any seat is
// touched, so a rejected order never mutates the catalog.
type Draft struct {
	name     string
	phone    string
	items    []LineItem
	priced   []bool
	supplied *float64
}

func NewDraft(name, phone string, items []DraftItem, suppliedTotal *float64) (*Draft, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrNameRequired
	}
	if !nameRe.MatchString(name) {
		return nil, errs.ErrInvalidName
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errs.ErrPhoneRequired
	}
	if !phoneRe.MatchString(phone) {
		return nil, errs.ErrInvalidPhone
	}

	if len(items) == 0 {
		return nil, errs.ErrNoItems
	}

	lines := make([]LineItem, len(items))
	priced := make([]bool, len(items))
	for i, it := range items {
		if it.Quantity < 1 {
			return nil, errs.ErrInvalidQuantity
		}
		line := LineItem{LessonID: it.LessonID, Quantity: it.Quantity}
		if it.Price != nil {
			if *it.Price < 0 {
				return nil, errs.ErrNegativePrice
			}
			line.Price = *it.Price
			priced[i] = true
		}
		lines[i] = line
	}

	if suppliedTotal != nil && *suppliedTotal < 0 {
		return nil, errs.ErrNegativeTotal
	}

	return &Draft{
		name:     name,
		phone:    phone,
		items:    lines,
		priced:   priced,
		supplied: suppliedTotal,
	}, nil
}

func (d *Draft) Items() []LineItem {
	items := make([]LineItem, len(d.items))
	copy(items, d.items)
	return items
}

// FillItem copies the title (and, when the caller did not supply one, the
// price) of the referenced lesson into a line item.
func (d *Draft) FillItem(i int, title string, price float64) {
	if i < 0 || i >= len(d.items) {
		return
	}
	d.items[i].Title = title
	if !d.priced[i] {
		d.items[i].Price = price
		d.priced[i] = true
	}
}

// Finalize turns the draft into an immutable order with a fresh id and the
// given creation time. A caller-supplied total is trusted as-is (product
// decision); otherwise the total is sum(price x quantity) over the items.
func (d *Draft) Finalize(now time.Time) *Order {
	total := 0.0
	if d.supplied != nil {
		total = *d.supplied
	} else {
		for _, it := range d.items {
			total += it.Price * float64(it.Quantity)
		}
	}

	items := make([]LineItem, len(d.items))
	copy(items, d.items)

	return &Order{
		id:        uuid.New(),
		name:      d.name,
		phone:     d.phone,
		items:     items,
		total:     total,
		createdAt: now,
	}
}
