package models

// Role identifies the author of a transcript entry.
type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Role Role
	Text string
}
