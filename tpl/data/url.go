package data

import (
	"net/url"
	"strings"
)

type queryParam struct {
	name  string
	value string
}

// URLBuilder builds a path with a query string whose parameters keep the
// order they were added in.
type URLBuilder struct {
	path  string
	query []queryParam
}

func NewURL(path string) *URLBuilder {
	return &URLBuilder{path: path}
}

func (u *URLBuilder) With(name, value string) *URLBuilder {
	u.query = append(u.query, queryParam{name: name, value: value})
	return u
}

// Query returns the encoded parameters without the leading '?'.
func (u *URLBuilder) Query() string {
	var sb strings.Builder
	for i, p := range u.query {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}

func (u *URLBuilder) String() string {
	if len(u.query) == 0 {
		return u.path
	}
	sep := "?"
	if strings.Contains(u.path, "?") {
		sep = "&"
	}
	return u.path + sep + u.Query()
}
