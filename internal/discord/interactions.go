package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"checkpoint-bot/internal/command"
	"checkpoint-bot/internal/templates"
)

const msgGuildOnly = "❌ This command can only be used in the server."

type Dispatcher interface {
	Handle(ctx context.Context, inv command.Invocation) (command.Result, error)
}

// HandleInteractions routes slash commands to d until the returned function is
// called. ctx bounds every invocation.
func (c *Client) HandleInteractions(ctx context.Context, d Dispatcher) func() {
	return c.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		c.handleCommand(ctx, d, i.Interaction)
	})
}

func (c *Client) handleCommand(ctx context.Context, d Dispatcher, interaction *discordgo.Interaction) {
	if interaction.GuildID != c.guildID {
		c.respondEphemeral(ctx, interaction, msgGuildOnly)
		return
	}

	inv, ok := invocationFrom(interaction)
	if !ok {
		c.respondEphemeral(ctx, interaction, msgGuildOnly)
		return
	}

	log := c.logger.With(zap.String("command", inv.Command), zap.String("interaction_id", interaction.ID))

	err := c.acknowledge(ctx, interaction)
	if err != nil {
		log.Error("failed to acknowledge interaction", zap.Error(err))
		return
	}

	result, err := d.Handle(ctx, inv)
	if err != nil {
		switch {
		case errors.Is(err, command.ErrPermissionDenied), errors.Is(err, command.ErrValidation):
			log.Warn("command rejected", zap.Error(err))
		default:
			log.Error("command failed", zap.Error(err))
		}
	}

	if result.Private == "" {
		c.clearDeferred(ctx, interaction)
		return
	}

	c.editDeferred(ctx, interaction, result.Private)
}

func (c *Client) acknowledge(ctx context.Context, interaction *discordgo.Interaction) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}, discordgo.WithContext(ctx))
}

func (c *Client) editDeferred(ctx context.Context, interaction *discordgo.Interaction, text string) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.session.InteractionResponseEdit(interaction, &discordgo.WebhookEdit{Content: &text}, discordgo.WithContext(ctx))
	if err != nil {
		c.logger.Error("failed to send private report", zap.String("interaction_id", interaction.ID), zap.Error(err))
	}
}

func (c *Client) clearDeferred(ctx context.Context, interaction *discordgo.Interaction) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.session.InteractionResponseDelete(interaction, discordgo.WithContext(ctx))
	if err != nil {
		c.logger.Warn("failed to delete deferred response", zap.String("interaction_id", interaction.ID), zap.Error(err))
	}
}

func (c *Client) respondEphemeral(ctx context.Context, interaction *discordgo.Interaction, text string) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		c.logger.Error("failed to respond", zap.String("interaction_id", interaction.ID), zap.Error(err))
	}
}

// invocationFrom reads the command name, invoker and string options of a
// guild slash command. Comments after the last non-empty one are dropped.
func invocationFrom(interaction *discordgo.Interaction) (command.Invocation, bool) {
	if interaction.Member == nil || interaction.Member.User == nil {
		return command.Invocation{}, false
	}

	data := interaction.ApplicationCommandData()

	values := make(map[string]string, len(data.Options))
	for _, opt := range data.Options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			values[opt.Name] = opt.StringValue()
		}
	}

	comments := make([]string, 0, templates.MaxComments)
	for n := 1; n <= templates.MaxComments; n++ {
		comments = append(comments, values[fmt.Sprintf("%s%d", optionCommentPrefix, n)])
	}
	for len(comments) > 0 && comments[len(comments)-1] == "" {
		comments = comments[:len(comments)-1]
	}

	return command.Invocation{
		Command:      data.Name,
		ChannelID:    interaction.ChannelID,
		InvokerID:    interaction.Member.User.ID,
		InvokerRoles: interaction.Member.Roles,
		Mentions:     values[optionMentions],
		Comments:     comments,
	}, true
}
