package announcement

import (
	"strings"
	"time"
	"unicode/utf8"

	"coworking-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 5000
)

var (
	ErrEmptyTitle      = errs.NewValidation("announcement title cannot be empty")
	ErrTitleTooLong    = errs.NewValidation("announcement title exceeds maximum length")
	ErrEmptyContent    = errs.NewValidation("announcement content cannot be empty")
	ErrContentTooLong  = errs.NewValidation("announcement content exceeds maximum length")
	ErrAdminOnlyAction = errs.NewForbidden("only admins can manage announcements")
)

type Announcement struct {
	id        uuid.UUID
	authorID  uuid.UUID
	title     string
	content   string
	createdAt time.Time
}

func NewAnnouncement(authorID uuid.UUID, title, content string, now time.Time) (*Announcement, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	return &Announcement{
		id:        uuid.New(),
		authorID:  authorID,
		title:     title,
		content:   content,
		createdAt: now,
	}, nil
}

func (a *Announcement) ID() uuid.UUID        { return a.id }
func (a *Announcement) AuthorID() uuid.UUID  { return a.authorID }
func (a *Announcement) Title() string        { return a.title }
func (a *Announcement) Content() string      { return a.content }
func (a *Announcement) CreatedAt() time.Time { return a.createdAt }
