// Package graph provides the types, interfaces and helpers for working with
// the social graph API.
//
// # Overview
//
// The package defines the entities (User, Page, Post, Comment), the FQL row
// types, the Transport capability and the resource client interfaces. A
// concrete client is provided by the fbclient package:
//
//	cli, err := fbclient.NewWithToken(ctx, token)
//	if err != nil { log.Fatal(err) }
//
//	me, err := cli.Users().Me(ctx)
//
// # Decoding
//
// Decode maps a raw body onto a typed value. The service sometimes sends an
// empty object where a list is expected; Decode reads those as empty lists,
// guided by the target type. Multi-id lookups are decoded with DecodeKeyed
// or DecodeOrdered.
//
// # Paging
//
// Connections carry a Paging with previous/next cursor URLs. The derived
// cursor state is computed once by Materialize; FetchNext and FetchPrevious
// follow the cursors and CollectAll gathers every page:
//
//	friends, _ := cli.Connections().Friends(ctx, "me", &graph.ConnectionOptions{Limit: graph.IntPtr(50)})
//	all, err := graph.CollectAll(ctx, cli.Transport(), friends, 0)
//
// # FQL
//
// BuildQuery renders a SELECT statement from a column list, typed criteria
// and a Source. Values are inserted verbatim; pass untrusted input through
// EscapeQueryValue.
//
// # Errors
//
// Failures are *TransportError, *DecodeError or *ServiceError, each matching
// ErrTransport, ErrDecode or ErrService through errors.Is. KindOf,
// IsOAuthError and IsNotFound help branching.
package graph
