package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"checkpoint-bot/internal/command"
	"checkpoint-bot/internal/templates"
)

const (
	optionMentions      = "mentions"
	optionCommentPrefix = "comment"
)

var commentOrdinals = [templates.MaxComments]string{"First", "Second", "Third", "Fourth", "Fifth"}

func applicationCommands(descriptors []command.Descriptor) []*discordgo.ApplicationCommand {
	commands := make([]*discordgo.ApplicationCommand, 0, len(descriptors))

	for _, desc := range descriptors {
		options := []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionMentions,
				Description: "Users to ping (comma-separated, e.g., @user1, @user2)",
				Required:    true,
			},
		}

		if desc.Comments {
			for i, ordinal := range commentOrdinals {
				required := i == 0
				suffix := "(optional)"
				if required {
					suffix = "(required)"
				}

				options = append(options, &discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        fmt.Sprintf("%s%d", optionCommentPrefix, i+1),
					Description: fmt.Sprintf("%s paragraph %s", ordinal, suffix),
					Required:    required,
				})
			}
		}

		commands = append(commands, &discordgo.ApplicationCommand{
			Name:        desc.Name,
			Description: desc.Description,
			Options:     options,
		})
	}

	return commands
}

// RegisterCommands replaces the guild's slash commands with descriptors.
func (c *Client) RegisterCommands(ctx context.Context, descriptors []command.Descriptor) error {
	appID, err := c.applicationID(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	registered, err := c.session.ApplicationCommandBulkOverwrite(appID, c.guildID, applicationCommands(descriptors), discordgo.WithContext(ctx))
	if err != nil {
		c.logger.Error("failed to register commands", zap.String("guild_id", c.guildID), zap.Error(err))
		return fmt.Errorf("failed to register commands: %w", err)
	}

	c.logger.Info("successfully registered commands", zap.String("guild_id", c.guildID), zap.Int("count", len(registered)))
	return nil
}

func (c *Client) applicationID(ctx context.Context) (string, error) {
	if c.appID != "" {
		return c.appID, nil
	}

	if c.session.State.User != nil {
		return c.session.State.User.ID, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	user, err := c.session.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to fetch application id: %w", err)
	}
	return user.ID, nil
}
