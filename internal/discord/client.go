package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"checkpoint-bot/internal/domain"
	"checkpoint-bot/internal/mention"
	"checkpoint-bot/internal/platform"
)

type Config struct {
	Token        string        `env:"DISCORD_TOKEN" env-required:"true"`
	GuildID      string        `env:"DISCORD_GUILD_ID" env-required:"true"`
	AppID        string        `env:"DISCORD_APP_ID"`
	Timeout      time.Duration `env:"DISCORD_REQUEST_TIMEOUT" env-default:"10s"`
	SyncCommands bool          `env:"DISCORD_SYNC_COMMANDS" env-default:"false"`
}

// Client owns the gateway session and implements platform.Accessor for a
// single guild.
type Client struct {
	session *discordgo.Session
	guildID string
	appID   string
	logger  *zap.Logger
	timeout time.Duration

	// guards read-modify-write of cached member roles
	rolesMu sync.Mutex
}

var _ platform.Accessor = (*Client)(nil)

func New(config *Config, logger *zap.Logger) (*Client, error) {
	session, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	return newClient(session, config, logger), nil
}

func newClient(session *discordgo.Session, config *Config, logger *zap.Logger) *Client {
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Connect) {
		logger.Info("discord gateway connected")
	})
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		logger.Warn("discord gateway disconnected, waiting for reconnect")
	})

	return &Client{
		session: session,
		guildID: config.GuildID,
		appID:   config.AppID,
		logger:  logger,
		timeout: config.Timeout,
	}
}

func (c *Client) Open() error {
	err := c.session.Open()
	if err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	c.logger.Info("discord session opened", zap.String("guild_id", c.guildID))
	return nil
}

func (c *Client) Close() error {
	return c.session.Close()
}

func (c *Client) ResolveMember(ctx context.Context, token string) (domain.Member, error) {
	id, ok := mention.UserID(token)
	if !ok {
		return domain.Member{}, fmt.Errorf("%w: %s", platform.ErrMemberNotFound, token)
	}

	m, err := c.session.State.Member(c.guildID, id)
	if err == nil {
		return toMember(m), nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	m, err = c.session.GuildMember(c.guildID, id, discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			c.logger.Warn(platform.ErrMemberNotFound.Error(), zap.String("user_id", id))
			return domain.Member{}, fmt.Errorf("%w: %s", platform.ErrMemberNotFound, token)
		}

		c.logger.Error("failed to fetch member", zap.String("user_id", id), zap.Error(err))
		return domain.Member{}, fmt.Errorf("failed to fetch member %s: %w", id, err)
	}

	m.GuildID = c.guildID
	err = c.session.State.MemberAdd(m)
	if err != nil {
		c.logger.Debug("member not cached", zap.String("user_id", id), zap.Error(err))
	}

	return toMember(m), nil
}

// MemberRoles prefers the cached member, which AddRole and RemoveRole keep
// current, over the roles captured at resolution.
func (c *Client) MemberRoles(_ context.Context, member domain.Member) ([]string, error) {
	c.rolesMu.Lock()
	defer c.rolesMu.Unlock()

	m, err := c.session.State.Member(c.guildID, member.ID)
	if err != nil {
		return slices.Clone(member.Roles), nil
	}
	return slices.Clone(m.Roles), nil
}

// RoleName falls back to the role id when the role is unknown.
func (c *Client) RoleName(ctx context.Context, roleID string) string {
	role, err := c.session.State.Role(c.guildID, roleID)
	if err == nil {
		return role.Name
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	guildRoles, err := c.session.GuildRoles(c.guildID, discordgo.WithContext(ctx))
	if err != nil {
		c.logger.Warn("failed to fetch guild roles", zap.Error(err))
		return roleID
	}

	for _, r := range guildRoles {
		if r.ID == roleID {
			return r.Name
		}
	}
	return roleID
}

func (c *Client) AddRole(ctx context.Context, member domain.Member, roleID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.session.GuildMemberRoleAdd(c.guildID, member.ID, roleID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to add role: %w", err)
	}

	c.updateCachedRoles(member.ID, func(roles []string) []string {
		if slices.Contains(roles, roleID) {
			return roles
		}
		return append(roles, roleID)
	})
	return nil
}

func (c *Client) RemoveRole(ctx context.Context, member domain.Member, roleID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.session.GuildMemberRoleRemove(c.guildID, member.ID, roleID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to remove role: %w", err)
	}

	c.updateCachedRoles(member.ID, func(roles []string) []string {
		return slices.DeleteFunc(roles, func(id string) bool { return id == roleID })
	})
	return nil
}

// updateCachedRoles applies a successful role change to the state cache so
// the next read does not wait for the gateway's member update event.
func (c *Client) updateCachedRoles(memberID string, update func([]string) []string) {
	c.rolesMu.Lock()
	defer c.rolesMu.Unlock()

	m, err := c.session.State.Member(c.guildID, memberID)
	if err != nil {
		return
	}

	updated := *m
	updated.GuildID = c.guildID
	updated.Roles = update(slices.Clone(m.Roles))

	err = c.session.State.MemberAdd(&updated)
	if err != nil {
		c.logger.Warn("failed to update cached member", zap.String("user_id", memberID), zap.Error(err))
	}
}

func (c *Client) PostMessage(ctx context.Context, channelID string, text string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func toMember(m *discordgo.Member) domain.Member {
	member := domain.Member{
		Roles: slices.Clone(m.Roles),
		Name:  m.Nick,
	}

	if m.User != nil {
		member.ID = m.User.ID
		member.Mention = m.User.Mention()
		if member.Name == "" {
			member.Name = m.User.Username
		}
	}

	return member
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Response == nil {
		return false
	}
	return restErr.Response.StatusCode == http.StatusNotFound
}
