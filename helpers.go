package cleanblog

import (
	"strconv"
	"strings"
)

// parseID accepts only unsigned decimal ids, the same shape an int route
// converter matches. Anything else is treated as an unknown post.
func parseID(s string) (int64, bool) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// PostURL is the read link for a post; the id travels as a query parameter.
func PostURL(id int64) string {
	return "/post?post_id=" + strconv.FormatInt(id, 10)
}

// EditURL is the edit link for a post; the id is a path segment.
func EditURL(id int64) string {
	return "/edit-post/" + strconv.FormatInt(id, 10)
}

// DeleteURL is the delete link for a post; the id is a path segment.
func DeleteURL(id int64) string {
	return "/delete/" + strconv.FormatInt(id, 10)
}
