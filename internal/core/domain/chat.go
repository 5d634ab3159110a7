package domain

import "time"

// ChannelType describes who a channel is meant for.
type ChannelType string

const (
	ChannelPublic     ChannelType = "public"
	ChannelPrivate    ChannelType = "private"
	ChannelDepartment ChannelType = "department"
)

// IsValid reports whether t is one of the known channel types.
func (t ChannelType) IsValid() bool {
	switch t {
	case ChannelPublic, ChannelPrivate, ChannelDepartment:
		return true
	default:
		return false
	}
}

// ChatChannel is a chat room. Members is a head count, not a member list.
type ChatChannel struct {
	ChannelID    string      `json:"channelID"`
	Name         string      `json:"name"`
	Type         ChannelType `json:"type"`
	Members      int         `json:"members"`
	Unread       int         `json:"unread"`
	RequiredRole Role        `json:"requiredRole"`
	Department   string      `json:"department,omitempty"`
}

// GetID implements the store identity contract.
func (c ChatChannel) GetID() string { return c.ChannelID }

// SystemAuthor is the author name and role stamped on system notices.
const SystemAuthor = "System"

// ChatMessage is an append-only entry in a channel's history.
type ChatMessage struct {
	MessageID  string    `json:"messageID"`
	ChannelID  string    `json:"channelID"`
	Author     string    `json:"author"`
	AuthorRole string    `json:"authorRole"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sentAt"`
	Avatar     string    `json:"avatar"`
	IsSystem   bool      `json:"isSystem"`
}

// GetID implements the store identity contract.
func (m ChatMessage) GetID() string { return m.MessageID }

// ChannelView is a channel as listed for one user.
type ChannelView struct {
	ChatChannel
	Pinned bool `json:"pinned"`
}
