// Package fbclient provides the primary entry point for constructing a graph
// API client that implements the graph.Client interface.
//
// It layers configuration and transport selection on top of the resource
// interfaces and types defined in the graph package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/fbgraph/pkg/fbclient"
//	  "github.com/fivetwenty-io/fbgraph/pkg/graph"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := fbclient.NewWithToken(ctx, "EAAB...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a retrying transport:
//	  cli, err = fbclient.New(ctx, &graph.Config{
//	    AccessToken:   "EAAB...",
//	    TransportType: graph.TransportRetryable,
//	    RetryMax:      3,
//	  })
//	  if err != nil { log.Fatal(err) }
//	  defer fbclient.Close(cli)
//
//	  friends, err := cli.Connections().Friends(ctx, "me", nil)
//	  if err != nil { log.Fatal(err) }
//
//	  for page := friends; page != nil; page, err = fbclient.Next(ctx, cli, page) {
//	    _ = page.Data
//	  }
//	}
//
// # Transports
//
// Config.TransportType selects the standard net/http backend, a retrying
// backend or a NATS relay. Config.Transport injects any other
// implementation, which is how tests substitute a fake service.
package fbclient
