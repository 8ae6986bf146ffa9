package dto

// PageSize is the fixed number of rows on every list page.
const PageSize = 10

// PageResult is one page of mapped rows as produced by the service layer.
// Handlers turn it into a ListResponse once request URLs are known.
type PageResult[T any] struct {
	Results  []T
	Count    int64
	Page     int
	NumPages int
}

func (p *PageResult[T]) HasNext() bool     { return p.Page < p.NumPages }
func (p *PageResult[T]) HasPrevious() bool { return p.Page > 1 }

// ListResponse is the paginated envelope returned by every list endpoint.
type ListResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
