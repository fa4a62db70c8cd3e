package model

// Page is one zero-based slice of an ordered collection.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
}

// PageWindow returns the [from, to) bounds of page number within total elements.
// Pages past the end yield an empty window at total.
func PageWindow(number, size, total int) (from, to int) {
	if number < 0 || size <= 0 {
		return 0, 0
	}
	if total <= 0 || number > (total-1)/size {
		return max(total, 0), max(total, 0)
	}
	from = number * size
	return from, from + min(size, total-from)
}

func NewPage[T any](content []T, number int, size int, totalElements int64) *Page[T] {
	var totalPages int
	if size > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}
	if content == nil {
		content = make([]T, 0)
	}

	return &Page[T]{
		Content:          content,
		Number:           number,
		Size:             size,
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
	}
}
