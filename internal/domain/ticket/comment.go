package ticket

import (
	"fmt"
	"time"
)

// Comment is a collaboration entry on a ticket. Access to comments follows
// the same capability rule as the ticket itself.
type Comment struct {
	id        uint
	ticketID  uint
	userID    uint
	content   string
	images    []string
	isSystem  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(
	ticketID uint,
	userID uint,
	content string,
	images []string,
	isSystem bool,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	if images == nil {
		images = []string{}
	}

	now := time.Now()
	return &Comment{
		ticketID:  ticketID,
		userID:    userID,
		content:   content,
		images:    images,
		isSystem:  isSystem,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	userID uint,
	content string,
	images []string,
	isSystem bool,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	if images == nil {
		images = []string{}
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		content:   content,
		images:    images,
		isSystem:  isSystem,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) UserID() uint         { return c.userID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) IsSystem() bool       { return c.isSystem }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }

func (c *Comment) Images() []string {
	imagesCopy := make([]string, len(c.images))
	copy(imagesCopy, c.images)
	return imagesCopy
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
