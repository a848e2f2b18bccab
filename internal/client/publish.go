package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/fbgraph/internal/constants"
	"github.com/fivetwenty-io/fbgraph/pkg/graph"
)

// PublishClient implements graph.PublishClient.
type PublishClient struct {
	api *api
}

// NewPublishClient creates a new publish client.
func NewPublishClient(a *api) *PublishClient {
	return &PublishClient{api: a}
}

func profileOrMe(profileID string) string {
	if profileID == "" {
		return constants.CurrentProfileID
	}

	return profileID
}

// formParams prefixes the access token to the form fields of options.
func (c *PublishClient) formParams(options any) (graph.Params, error) {
	fields, err := graph.FormParams(options)
	if err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}

	return c.api.authParams(fields...), nil
}

func (c *PublishClient) publish(ctx context.Context, template, profileID string, options any, what string) (*graph.CommonReturnObject, error) {
	params, err := c.formParams(options)
	if err != nil {
		return nil, err
	}

	target := c.api.pathURL(template, constants.PlaceholderProfileID, profileOrMe(profileID))

	return c.api.create(ctx, target, params, what)
}

// WallPost implements graph.PublishClient.WallPost.
func (c *PublishClient) WallPost(ctx context.Context, post graph.WallPost, profileID string) (*graph.CommonReturnObject, error) {
	if post.Message == "" && post.Link == "" {
		return nil, graph.ErrMessageRequired
	}

	return c.publish(ctx, constants.PathProfileFeed, profileID, post, "wall post")
}

// ShareLink implements graph.PublishClient.ShareLink.
func (c *PublishClient) ShareLink(ctx context.Context, share graph.LinkShare, profileID string) (*graph.CommonReturnObject, error) {
	if share.Link == "" {
		return nil, graph.ErrLinkRequired
	}

	return c.publish(ctx, constants.PathProfileLinks, profileID, share, "link")
}

// Comment implements graph.PublishClient.Comment.
func (c *PublishClient) Comment(ctx context.Context, objectID, message string) (*graph.CommonReturnObject, error) {
	if objectID == "" {
		return nil, graph.ErrIDRequired
	}

	if message == "" {
		return nil, graph.ErrMessageRequired
	}

	target := c.api.pathURL(constants.PathObjectComment, constants.PlaceholderObjectID, objectID)
	params := c.api.authParams(graph.Param{Name: constants.ParamMessage, Value: message})

	return c.api.create(ctx, target, params, "comment")
}

// Like implements graph.PublishClient.Like.
func (c *PublishClient) Like(ctx context.Context, objectID string) (bool, error) {
	if objectID == "" {
		return false, graph.ErrIDRequired
	}

	target := c.api.pathURL(constants.PathObjectLikes, constants.PlaceholderObjectID, objectID)

	return c.api.confirm(ctx, methodPost, target, c.api.authParams(), "liking object")
}

// Unlike implements graph.PublishClient.Unlike.
func (c *PublishClient) Unlike(ctx context.Context, objectID string) (bool, error) {
	if objectID == "" {
		return false, graph.ErrIDRequired
	}

	target := c.api.pathURL(constants.PathObjectLikes, constants.PlaceholderObjectID, objectID)

	return c.api.confirm(ctx, methodDelete, target, c.api.authParams(), "unliking object")
}

// Delete implements graph.PublishClient.Delete.
func (c *PublishClient) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, graph.ErrIDRequired
	}

	return c.api.confirm(ctx, methodDelete, c.api.objectURL(id), c.api.authParams(), "deleting object")
}

// CreateNote implements graph.PublishClient.CreateNote.
func (c *PublishClient) CreateNote(ctx context.Context, note graph.Note, profileID string) (*graph.CommonReturnObject, error) {
	if note.Message == "" {
		return nil, graph.ErrMessageRequired
	}

	return c.publish(ctx, constants.PathProfileNotes, profileID, note, "note")
}

// CreateEvent implements graph.PublishClient.CreateEvent.
func (c *PublishClient) CreateEvent(ctx context.Context, event graph.Event, profileID string) (*graph.CommonReturnObject, error) {
	if event.Name == "" {
		return nil, graph.ErrNameRequired
	}

	return c.publish(ctx, constants.PathProfileEvents, profileID, event, "event")
}

// RSVP implements graph.PublishClient.RSVP.
func (c *PublishClient) RSVP(ctx context.Context, eventID string, status graph.RSVPStatus) (bool, error) {
	if eventID == "" {
		return false, graph.ErrIDRequired
	}

	err := status.Validate()
	if err != nil {
		return false, err
	}

	target := c.api.pathURL(constants.PathEventRSVP,
		constants.PlaceholderEventID, eventID,
		constants.PlaceholderStatus, string(status),
	)

	return c.api.confirm(ctx, methodPost, target, c.api.authParams(), "replying to event")
}

// CreateAlbum implements graph.PublishClient.CreateAlbum.
func (c *PublishClient) CreateAlbum(ctx context.Context, album graph.Album, profileID string) (*graph.CommonReturnObject, error) {
	if album.Name == "" {
		return nil, graph.ErrNameRequired
	}

	return c.publish(ctx, constants.PathProfileAlbums, profileID, album, "album")
}
