package entity

// Status is the delivery lifecycle of an order.
//
//	Confirmed → on-the-way → delivered
//	Confirmed → cancelled
//
// delivered and cancelled are terminal.
type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusOnTheWay  Status = "on-the-way"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var statusTransitions = map[Status][]Status{
	StatusConfirmed: {StatusOnTheWay, StatusCancelled},
	StatusOnTheWay:  {StatusDelivered},
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range statusTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return len(statusTransitions[s]) == 0
}

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusConfirmed, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
