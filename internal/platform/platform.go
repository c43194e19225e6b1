package platform

import (
	"context"
	"errors"

	"checkpoint-bot/internal/domain"
)

var ErrMemberNotFound = errors.New("member not found")

// Accessor is everything the review workflow needs from the chat platform.
type Accessor interface {
	ResolveMember(ctx context.Context, token string) (domain.Member, error)
	MemberRoles(ctx context.Context, member domain.Member) ([]string, error)
	RoleName(ctx context.Context, roleID string) string
	AddRole(ctx context.Context, member domain.Member, roleID string) error
	RemoveRole(ctx context.Context, member domain.Member, roleID string) error
	PostMessage(ctx context.Context, channelID string, text string) error
}
