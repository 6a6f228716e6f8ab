package models

// ListParams is the (limit, offset) window applied to list endpoints, bound
// from query parameters. A zero or negative limit selects the default page
// size.
type ListParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
