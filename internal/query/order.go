package query

import "strings"

// Direction is the sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts "asc" or "desc" (any case). Anything else is Asc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "desc") {
		return Desc
	}
	return Asc
}

// Order is the active sort key and direction. The zero value means no sort:
// the filtered order, which preserves collection order, is kept.
type Order struct {
	Key string    `json:"key,omitempty"`
	Dir Direction `json:"dir,omitempty"`
}

// By returns an ascending order on key.
func By(key string) Order {
	return Order{Key: key}
}

// Reverse returns o with the opposite direction.
func (o Order) Reverse() Order {
	if o.Dir == Desc {
		o.Dir = Asc
	} else {
		o.Dir = Desc
	}
	return o
}

func (o Order) String() string {
	if o.Key == "" {
		return "none"
	}
	return o.Key + " " + o.Dir.String()
}
