package domain

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ValidChatRoles is the canonical set of accepted chat turn roles.
var ValidChatRoles = map[ChatRole]bool{
	RoleUser:      true,
	RoleAssistant: true,
}

// ChatTurn is one message in a tutor conversation.
type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
