package entity

// Status is the lifecycle stage of a Todo. The numeric values are part of the public API.
type Status uint8

const (
	StatusUninitialized Status = iota
	StatusCreated
	StatusUpdated
	StatusCompleted
)

var statusNames = [...]string{"Uninitialized", "Created", "Updated", "Completed"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "Unknown"
}

// IsValid reports whether s is one of the declared statuses.
func (s Status) IsValid() bool {
	return s <= StatusCompleted
}

type Todo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}
