package roles

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"checkpoint-bot/internal/domain"
	"checkpoint-bot/internal/platform"
)

type Engine struct {
	accessor platform.Accessor
	logger   *zap.Logger
}

func NewEngine(accessor platform.Accessor, logger *zap.Logger) *Engine {
	return &Engine{
		accessor: accessor,
		logger:   logger,
	}
}

// Apply runs the transition over every token in order. Failures are recorded
// in the outcome and never stop the batch.
func (e *Engine) Apply(ctx context.Context, tokens []string, transition domain.RoleTransition) domain.Outcome {
	var outcome domain.Outcome

	e.logger.Info("starting role update", zap.Strings("mentions", tokens))

	for _, token := range tokens {
		member, err := e.accessor.ResolveMember(ctx, token)
		if err != nil {
			e.logger.Warn("failed to resolve member", zap.String("token", token), zap.Error(err))
			outcome.Failure(fmt.Sprintf("%s: %s", token, resolutionReason(err)))
			continue
		}

		e.applyMember(ctx, member, transition, &outcome)
	}

	e.logger.Info("role update finished",
		zap.Int("entries", outcome.Len()),
		zap.Int("successes", len(outcome.Successes)),
		zap.Int("failures", len(outcome.Failures)),
	)
	return outcome
}

func (e *Engine) applyMember(ctx context.Context, member domain.Member, transition domain.RoleTransition, outcome *domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("unexpected error updating roles", zap.String("user_id", member.ID), zap.Any("panic", r))
			outcome.Failure(fmt.Sprintf("%s: unexpected error: %v", member.Mention, r))
		}
	}()

	held, err := e.accessor.MemberRoles(ctx, member)
	if err != nil {
		e.logger.Error("failed to read member roles", zap.String("user_id", member.ID), zap.Error(err))
		outcome.Failure(fmt.Sprintf("%s: failed to read roles: %v", member.Mention, err))
		return
	}

	for _, roleID := range transition.Add {
		if slices.Contains(held, roleID) {
			continue
		}

		name := e.accessor.RoleName(ctx, roleID)
		err = e.accessor.AddRole(ctx, member, roleID)
		if err != nil {
			e.logger.Error("failed to add role", zap.String("user_id", member.ID), zap.String("role_id", roleID), zap.Error(err))
			outcome.Failure(fmt.Sprintf("%s: failed to add %s: %v", member.Mention, name, err))
			continue
		}

		held = append(held, roleID)
		e.logger.Info("added role", zap.String("user_id", member.ID), zap.String("role", name))
		outcome.Success(fmt.Sprintf("Added %s to %s", name, member.Mention))
	}

	if transition.Remove == "" || !slices.Contains(held, transition.Remove) {
		return
	}

	name := e.accessor.RoleName(ctx, transition.Remove)
	err = e.accessor.RemoveRole(ctx, member, transition.Remove)
	if err != nil {
		e.logger.Error("failed to remove role", zap.String("user_id", member.ID), zap.String("role_id", transition.Remove), zap.Error(err))
		outcome.Failure(fmt.Sprintf("%s: failed to remove %s: %v", member.Mention, name, err))
		return
	}

	e.logger.Info("removed role", zap.String("user_id", member.ID), zap.String("role", name))
	outcome.Success(fmt.Sprintf("Removed %s from %s", name, member.Mention))
}

func resolutionReason(err error) string {
	if errors.Is(err, platform.ErrMemberNotFound) {
		return "member not found"
	}
	return err.Error()
}
