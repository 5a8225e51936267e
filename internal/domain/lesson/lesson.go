package lesson

// Lesson is a bookable course with a finite seat count. IDs are stable and
// referenced externally by order line items, so they are assigned by the
// seed list rather than the store.
type Lesson struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Price       float64
	Spaces      int32
	Rating      float64
	Image       string
}

// DecrementSpaces reduces the remaining seats by quantity, clamped at zero.
func (l *Lesson) DecrementSpaces(quantity int32) {
	l.Spaces -= quantity
	if l.Spaces < 0 {
		l.Spaces = 0
	}
}
