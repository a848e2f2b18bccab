package graph

import (
	"context"
	"fmt"
	"strconv"
)

// ConnectionOptions are the paging parameters of the first fetch of a
// connection. Set fields are emitted as limit, offset, until, since, before,
// after, in that order.
type ConnectionOptions struct {
	Limit  *int
	Offset *int
	Until  string
	Since  string
	Before string
	After  string
}

// Params renders the options in their fixed order.
func (o *ConnectionOptions) Params() Params {
	params := Params{}
	if o == nil {
		return params
	}

	if o.Limit != nil {
		params = params.Add("limit", strconv.Itoa(*o.Limit))
	}

	if o.Offset != nil {
		params = params.Add("offset", strconv.Itoa(*o.Offset))
	}

	if o.Until != "" {
		params = params.Add("until", o.Until)
	}

	if o.Since != "" {
		params = params.Add("since", o.Since)
	}

	if o.Before != "" {
		params = params.Add("before", o.Before)
	}

	if o.After != "" {
		params = params.Add("after", o.After)
	}

	return params
}

// PaginatedPointer constrains PT to a pointer to T that carries paging.
type PaginatedPointer[T any] interface {
	*T
	Paginated
}

// FetchNext fetches the page after current. It returns nil without a
// network call when current has no next cursor. The cursor URL is used as
// is: it already carries the access token, so none is re-attached.
func FetchNext[T any, PT PaginatedPointer[T]](ctx context.Context, transport Transport, current PT) (PT, error) {
	if current == nil {
		return nil, nil
	}

	cursor := current.PagingInfo().NextCursor()
	if cursor == nil {
		return nil, nil
	}

	return fetchCursor[T, PT](ctx, transport, cursor.URL)
}

// FetchPrevious fetches the page before current, or returns nil when there
// is no previous cursor.
func FetchPrevious[T any, PT PaginatedPointer[T]](ctx context.Context, transport Transport, current PT) (PT, error) {
	if current == nil {
		return nil, nil
	}

	cursor := current.PagingInfo().PreviousCursor()
	if cursor == nil {
		return nil, nil
	}

	return fetchCursor[T, PT](ctx, transport, cursor.URL)
}

func fetchCursor[T any, PT PaginatedPointer[T]](ctx context.Context, transport Transport, cursorURL string) (PT, error) {
	body, err := transport.Get(ctx, cursorURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", AsServiceError(err))
	}

	page := PT(new(T))
	if err := Decode(body, page); err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}

	page.PagingInfo().Materialize()

	return page, nil
}

// CollectAll follows the next cursors starting at first and returns every
// item seen, first page included. A maxPages of zero or less means no
// limit; otherwise at most maxPages pages, first included, are read.
func CollectAll[T any](ctx context.Context, transport Transport, first *Connection[T], maxPages int) ([]T, error) {
	if first == nil {
		return nil, nil
	}

	items := append([]T{}, first.Data...)
	current := first

	for pages := 1; maxPages <= 0 || pages < maxPages; pages++ {
		if err := ctx.Err(); err != nil {
			return items, fmt.Errorf("collecting pages: %w", err)
		}

		next, err := FetchNext(ctx, transport, current)
		if err != nil {
			return items, err
		}

		if next == nil || len(next.Data) == 0 {
			break
		}

		items = append(items, next.Data...)
		current = next
	}

	return items, nil
}
