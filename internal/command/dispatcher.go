package command

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"checkpoint-bot/internal/domain"
	"checkpoint-bot/internal/mention"
	"checkpoint-bot/internal/permission"
	"checkpoint-bot/internal/platform"
	"checkpoint-bot/internal/roles"
	"checkpoint-bot/internal/templates"
)

const defaultPingSeparator = " "

type Config struct {
	AllowedRoles   []string `env:"REVIEW_ALLOWED_ROLES" env-separator:"," env-required:"true"`
	PingSeparator  string   `env:"REVIEW_PING_SEPARATOR"`
	WrapComments   bool     `env:"REVIEW_WRAP_COMMENTS" env-default:"true"`
	FirstLineWidth int      `env:"REVIEW_FIRST_LINE_WIDTH" env-default:"36"`
	LineWidth      int      `env:"REVIEW_LINE_WIDTH" env-default:"44"`
	Roles          RolesConfig
}

type Invocation struct {
	Command      string
	ChannelID    string
	InvokerID    string
	InvokerRoles []string
	Mentions     string
	Comments     []string
}

// Result carries the public channel text and the report meant only for the
// invoker. Private is empty when there is nothing to report.
type Result struct {
	Public  string
	Private string
	Outcome *domain.Outcome
}

type Dispatcher struct {
	commands      map[string]Descriptor
	order         []string
	gate          *permission.Gate
	renderer      *templates.Renderer
	engine        *roles.Engine
	accessor      platform.Accessor
	pingSeparator string
	logger        *zap.Logger
}

func NewDispatcher(cfg *Config, accessor platform.Accessor, logger *zap.Logger) *Dispatcher {
	descriptors := Descriptors(cfg.Roles)

	commands := make(map[string]Descriptor, len(descriptors))
	order := make([]string, 0, len(descriptors))
	for _, desc := range descriptors {
		commands[desc.Name] = desc
		order = append(order, desc.Name)
	}

	sep := cfg.PingSeparator
	if sep == "" {
		sep = defaultPingSeparator
	}

	renderer := templates.NewRenderer(templates.Options{
		WrapComments:   cfg.WrapComments,
		FirstLineWidth: cfg.FirstLineWidth,
		LineWidth:      cfg.LineWidth,
	})

	return &Dispatcher{
		commands:      commands,
		order:         order,
		gate:          permission.NewGate(cfg.AllowedRoles),
		renderer:      renderer,
		engine:        roles.NewEngine(accessor, logger),
		accessor:      accessor,
		pingSeparator: sep,
		logger:        logger,
	}
}

func (d *Dispatcher) templateName(id domain.TemplateID) string {
	tmpl, ok := d.renderer.Template(id)
	if !ok {
		return fmt.Sprint(id)
	}
	return tmpl.Name
}

// Commands returns the registered descriptors in declaration order.
func (d *Dispatcher) Commands() []Descriptor {
	out := make([]Descriptor, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.commands[name])
	}
	return out
}

func (d *Dispatcher) Handle(ctx context.Context, inv Invocation) (Result, error) {
	desc, ok := d.commands[inv.Command]
	if !ok {
		d.logger.Warn("Handle: unknown command", zap.String("command", inv.Command))
		return Result{Private: MsgUnknownCommand}, fmt.Errorf("%w: %s", ErrUnknownCommand, inv.Command)
	}

	log := d.logger.With(zap.String("command", desc.Name), zap.String("invoker_id", inv.InvokerID))

	if !d.gate.Allowed(inv.InvokerRoles) {
		log.Warn("Handle: permission denied")
		return Result{Private: MsgPermissionDenied}, ErrPermissionDenied
	}

	body, err := d.renderer.Render(desc.Template, inv.Comments)
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrMissingComment):
			log.Warn("Handle: missing first comment")
			return Result{Private: MsgMissingComment}, fmt.Errorf("%w: %w", ErrValidation, err)

		case errors.Is(err, templates.ErrTooManyComments):
			log.Warn("Handle: too many comments", zap.Int("comments", len(inv.Comments)))
			return Result{Private: MsgTooManyComments}, fmt.Errorf("%w: %w", ErrValidation, err)
		}

		log.Error("Handle: failed to render template", zap.Error(err))
		return Result{Private: MsgRenderFailed}, fmt.Errorf("failed to render %s: %w", desc.Name, err)
	}

	tokens := mention.Parse(inv.Mentions)
	public := templates.Compose(body, tokens, d.pingSeparator)

	err = d.accessor.PostMessage(ctx, inv.ChannelID, public)
	if err != nil {
		log.Error("Handle: failed to post message", zap.String("channel_id", inv.ChannelID), zap.Error(err))
		return Result{Private: MsgPostFailed}, fmt.Errorf("failed to post message: %w", err)
	}

	log.Info("Handle: posted template",
		zap.String("template", d.templateName(desc.Template)),
		zap.String("channel_id", inv.ChannelID),
		zap.Int("mentions", len(tokens)),
	)

	result := Result{Public: public}
	if desc.Transition == nil {
		return result, nil
	}

	outcome := d.engine.Apply(ctx, tokens, *desc.Transition)
	result.Outcome = &outcome
	result.Private = outcome.Report()

	return result, nil
}
