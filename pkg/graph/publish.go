package graph

import "fmt"

// WallPost is a status update on a profile feed.
type WallPost struct {
	Message     string `form:"message"`
	Picture     string `form:"picture"`
	Link        string `form:"link"`
	Name        string `form:"name"`
	Caption     string `form:"caption"`
	Description string `form:"description"`
	Source      string `form:"source"`
	Privacy     string `form:"privacy"`
}

// LinkShare shares a link on a profile. Picture, Name, Caption and
// Description override the preview the service builds from the link.
type LinkShare struct {
	Message     string `form:"message"`
	Picture     string `form:"picture"`
	Link        string `form:"link"`
	Name        string `form:"name"`
	Caption     string `form:"caption"`
	Description string `form:"description"`
}

// Note is a note published on a profile.
type Note struct {
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// Event is an event created by a profile. Times use TimeLayout or a unix
// timestamp.
type Event struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	StartTime   string `form:"start_time"`
	EndTime     string `form:"end_time"`
	Location    string `form:"location"`
	Privacy     string `form:"privacy"`
}

// Album is a photo album created by a profile.
type Album struct {
	Name    string `form:"name"`
	Message string `form:"message"`
	Privacy string `form:"privacy"`
}

// RSVPStatus is a reply to an event invitation.
type RSVPStatus string

// RSVP replies.
const (
	RSVPAttending RSVPStatus = "attending"
	RSVPMaybe     RSVPStatus = "maybe"
	RSVPDeclined  RSVPStatus = "declined"
)

// Validate reports ErrInvalidRSVPStatus for anything but the three replies.
func (s RSVPStatus) Validate() error {
	switch s {
	case RSVPAttending, RSVPMaybe, RSVPDeclined:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRSVPStatus, string(s))
	}
}
