package tokens

// Role identifies the message sender.
type Role string

// Standard message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single conversation turn. Messages are caller-owned; this
// package only reads them.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewMessage creates a message with the given role and content.
func NewMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}
