package listview

// DefaultPageSize is the page size of the admin tables.
const DefaultPageSize = 10

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_count"`
}

type Page[T any] struct {
	Items []T `json:"items"`
	Meta
}

// TotalPages is ceil(count / size), never less than 1.
func TotalPages(count, size int) int {
	if size < 1 {
		size = 1
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate returns one page of items. A page past the end, which happens when
// the snapshot shrank since the query was built, is clamped to the last page.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}

	total := TotalPages(len(items), size)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * size
	end := min(start+size, len(items))

	out := make([]T, 0, end-start)
	out = append(out, items[start:end]...)

	return Page[T]{
		Items: out,
		Meta: Meta{
			Page:       page,
			PageSize:   size,
			TotalPages: total,
			TotalCount: len(items),
		},
	}
}
