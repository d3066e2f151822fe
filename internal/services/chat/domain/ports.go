package domain

import "context"

// ServicePort defines the chat workflow contract
type ServicePort interface {
	Send(ctx context.Context, in SendInput) (SendOutput, error)
	Chats(ctx context.Context, q ChatsQuery) ([]Chat, error)
	Messages(ctx context.Context, q MessagesQuery) ([]Message, error)
}
