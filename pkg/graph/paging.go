package graph

import (
	"net/url"
	"strconv"
)

// Cursors holds the opaque before/after cursors of cursor-based paging.
type Cursors struct {
	Before string `json:"before,omitempty" yaml:"before,omitempty"`
	After  string `json:"after,omitempty"  yaml:"after,omitempty"`
}

// PageCursor is the derived view of one cursor URL.
type PageCursor struct {
	URL    string
	Limit  *int
	Offset *int
	Until  string
	Since  string
	Before string
	After  string
}

// Paging carries the previous/next cursor URLs of a paginated container.
//
// Decoding only fills the raw fields. The derived cursors are computed by
// Materialize, which the client runs after every decode of a paginated
// container; accessors materialize on first use otherwise. Materialize is
// not safe to race with itself, so share a Paging only after it has been
// materialized.
type Paging struct {
	Previous string   `json:"previous,omitempty" yaml:"previous,omitempty"`
	Next     string   `json:"next,omitempty"     yaml:"next,omitempty"`
	Cursors  *Cursors `json:"cursors,omitempty"  yaml:"cursors,omitempty"`

	materialized bool
	previous     *PageCursor
	next         *PageCursor
}

// Materialize derives the next/previous cursors from the raw fields. It is
// idempotent.
func (p *Paging) Materialize() {
	if p == nil || p.materialized {
		return
	}

	p.next = parseCursor(p.Next)
	p.previous = parseCursor(p.Previous)
	p.materialized = true
}

// Materialized reports whether the derived state has been computed.
func (p *Paging) Materialized() bool {
	return p != nil && p.materialized
}

// NextCursor returns the next page cursor or nil.
func (p *Paging) NextCursor() *PageCursor {
	if p == nil {
		return nil
	}

	p.Materialize()

	return p.next
}

// PreviousCursor returns the previous page cursor or nil.
func (p *Paging) PreviousCursor() *PageCursor {
	if p == nil {
		return nil
	}

	p.Materialize()

	return p.previous
}

// HasNext reports whether a next page exists.
func (p *Paging) HasNext() bool {
	return p.NextCursor() != nil
}

// HasPrevious reports whether a previous page exists.
func (p *Paging) HasPrevious() bool {
	return p.PreviousCursor() != nil
}

// Limit returns the page size encoded in the next (or previous) cursor.
func (p *Paging) Limit() *int {
	if c := p.NextCursor(); c != nil && c.Limit != nil {
		return c.Limit
	}

	if c := p.PreviousCursor(); c != nil {
		return c.Limit
	}

	return nil
}

// Offset returns the offset of the next page, if the service uses
// offset-based paging for this connection.
func (p *Paging) Offset() *int {
	if c := p.NextCursor(); c != nil {
		return c.Offset
	}

	return nil
}

func parseCursor(raw string) *PageCursor {
	if raw == "" {
		return nil
	}

	cursor := &PageCursor{URL: raw}

	parsed, err := url.Parse(raw)
	if err != nil {
		return cursor
	}

	query := parsed.Query()
	cursor.Limit = parseIntParam(query, "limit")
	cursor.Offset = parseIntParam(query, "offset")
	cursor.Until = query.Get("until")
	cursor.Since = query.Get("since")
	cursor.Before = query.Get("before")
	cursor.After = query.Get("after")

	return cursor
}

func parseIntParam(query url.Values, name string) *int {
	raw := query.Get(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &value
}

// Paginated is implemented by containers that carry a Paging.
type Paginated interface {
	PagingInfo() *Paging
}

// Connection is a page of entities reached through a named relation of a
// parent object.
type Connection[T any] struct {
	Data   []T     `json:"data"             yaml:"data"`
	Count  int64   `json:"count,omitempty"  yaml:"count,omitempty"`
	Paging *Paging `json:"paging,omitempty" yaml:"paging,omitempty"`
}

// PagingInfo implements Paginated.
func (c *Connection[T]) PagingInfo() *Paging {
	if c == nil {
		return nil
	}

	return c.Paging
}

// Comments is the comments connection of an object.
type Comments = Connection[Comment]

// Likes is the likes connection of an object.
type Likes = Connection[Like]

// Feed is a connection of posts.
type Feed = Connection[Post]

// Friends is a connection of users.
type Friends = Connection[User]

// materializer is implemented by containers and entities that hold Paging
// values, directly or nested.
type materializer interface {
	materialize()
}

func (c *Connection[T]) materialize() {
	if c == nil {
		return
	}

	c.Paging.Materialize()

	for i := range c.Data {
		Materialize(&c.Data[i])
	}
}

func (p *Post) materialize() {
	if p == nil {
		return
	}

	p.To.materialize()
	p.Likes.materialize()
	p.Comments.materialize()
}

// Materialize forces derivation of every Paging reachable from v: the paging
// of a container, of its elements, and of connections embedded in entities
// such as Post.Comments. Other values are left untouched.
func Materialize(v any) {
	switch value := v.(type) {
	case materializer:
		value.materialize()
	case Paginated:
		value.PagingInfo().Materialize()
	}
}
