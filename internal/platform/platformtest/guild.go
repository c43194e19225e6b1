// Package platformtest provides an in-memory guild implementing platform.Accessor.
package platformtest

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"checkpoint-bot/internal/domain"
	"checkpoint-bot/internal/mention"
	"checkpoint-bot/internal/platform"
)

type Message struct {
	ChannelID string
	Text      string
}

type Guild struct {
	mu sync.Mutex

	members   map[string]*domain.Member
	roleNames map[string]string
	messages  []Message

	// Injected failures, keyed by role id or channel id.
	AddErr     map[string]error
	RemoveErr  map[string]error
	PostErr    map[string]error
	RolesErr   map[string]error
	PanicOnAdd map[string]bool

	Calls []string
}

func NewGuild() *Guild {
	return &Guild{
		members:    make(map[string]*domain.Member),
		roleNames:  make(map[string]string),
		AddErr:     make(map[string]error),
		RemoveErr:  make(map[string]error),
		PostErr:    make(map[string]error),
		RolesErr:   make(map[string]error),
		PanicOnAdd: make(map[string]bool),
	}
}

func (g *Guild) AddMember(id, name string, roles ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.members[id] = &domain.Member{
		ID:      id,
		Mention: "<@" + id + ">",
		Name:    name,
		Roles:   slices.Clone(roles),
	}
}

func (g *Guild) NameRole(id, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.roleNames[id] = name
}

func (g *Guild) Roles(memberID string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, ok := g.members[memberID]
	if !ok {
		return nil
	}
	return slices.Clone(m.Roles)
}

func (g *Guild) Messages() []Message {
	g.mu.Lock()
	defer g.mu.Unlock()

	return slices.Clone(g.messages)
}

func (g *Guild) ResolveMember(_ context.Context, token string) (domain.Member, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Calls = append(g.Calls, "resolve "+token)

	id, ok := mention.UserID(token)
	if !ok {
		return domain.Member{}, fmt.Errorf("%w: %s", platform.ErrMemberNotFound, token)
	}

	m, ok := g.members[id]
	if !ok {
		return domain.Member{}, fmt.Errorf("%w: %s", platform.ErrMemberNotFound, token)
	}

	return *m, nil
}

func (g *Guild) MemberRoles(_ context.Context, member domain.Member) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.RolesErr[member.ID]; err != nil {
		return nil, err
	}

	m, ok := g.members[member.ID]
	if !ok {
		return nil, platform.ErrMemberNotFound
	}
	return slices.Clone(m.Roles), nil
}

func (g *Guild) RoleName(_ context.Context, roleID string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if name, ok := g.roleNames[roleID]; ok {
		return name
	}
	return roleID
}

func (g *Guild) AddRole(_ context.Context, member domain.Member, roleID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Calls = append(g.Calls, "add "+roleID+" "+member.ID)

	if g.PanicOnAdd[roleID] {
		panic("add role " + roleID)
	}
	if err := g.AddErr[roleID]; err != nil {
		return err
	}

	m, ok := g.members[member.ID]
	if !ok {
		return platform.ErrMemberNotFound
	}
	if !slices.Contains(m.Roles, roleID) {
		m.Roles = append(m.Roles, roleID)
	}
	return nil
}

func (g *Guild) RemoveRole(_ context.Context, member domain.Member, roleID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Calls = append(g.Calls, "remove "+roleID+" "+member.ID)

	if err := g.RemoveErr[roleID]; err != nil {
		return err
	}

	m, ok := g.members[member.ID]
	if !ok {
		return platform.ErrMemberNotFound
	}
	m.Roles = slices.DeleteFunc(m.Roles, func(id string) bool { return id == roleID })
	return nil
}

func (g *Guild) PostMessage(_ context.Context, channelID string, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Calls = append(g.Calls, "post "+channelID)

	if err := g.PostErr[channelID]; err != nil {
		return err
	}

	g.messages = append(g.messages, Message{ChannelID: channelID, Text: text})
	return nil
}
