package discord

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"checkpoint-bot/internal/domain"
	"checkpoint-bot/internal/platform"
	"checkpoint-bot/internal/roles"
)

const (
	testGuildID = "1"
	roleMember  = "900"
	rolePending = "902"
)

type stubTransport struct {
	mu       sync.Mutex
	requests []string
	respond  func(r *http.Request) (int, string)
}

func (s *stubTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Method+" "+r.URL.Path)
	s.mu.Unlock()

	status, body := http.StatusNoContent, ""
	if s.respond != nil {
		status, body = s.respond(r)
	}

	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    r,
	}, nil
}

func (s *stubTransport) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.requests...)
}

func newStubClient(t *testing.T, transport *stubTransport) *Client {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	session.Client = &http.Client{Transport: transport}

	require.NoError(t, session.State.GuildAdd(&discordgo.Guild{ID: testGuildID}))
	require.NoError(t, session.State.RoleAdd(testGuildID, &discordgo.Role{ID: roleMember, Name: "Member"}))
	require.NoError(t, session.State.RoleAdd(testGuildID, &discordgo.Role{ID: rolePending, Name: "Pending"}))

	return newClient(session, &Config{GuildID: testGuildID, Timeout: time.Second}, zap.NewNop())
}

func cacheMember(t *testing.T, c *Client, id string, roleIDs ...string) {
	t.Helper()

	require.NoError(t, c.session.State.MemberAdd(&discordgo.Member{
		GuildID: testGuildID,
		User:    &discordgo.User{ID: id, Username: "user" + id},
		Roles:   roleIDs,
	}))
}

func TestClient_RoleChangesKeepCacheCurrent(t *testing.T) {
	transport := &stubTransport{}
	c := newStubClient(t, transport)
	cacheMember(t, c, "111", rolePending)

	engine := roles.NewEngine(c, zap.NewNop())
	transition := domain.RoleTransition{Add: []string{roleMember}, Remove: rolePending}

	first := engine.Apply(context.Background(), []string{"<@111>", "<@111>"}, transition)
	assert.Equal(t, []string{"Added Member to <@111>", "Removed Pending from <@111>"}, first.Successes)
	assert.Empty(t, first.Failures)
	assert.Equal(t, []string{
		"PUT /api/v9/guilds/1/members/111/roles/900",
		"DELETE /api/v9/guilds/1/members/111/roles/902",
	}, transport.Requests())

	second := engine.Apply(context.Background(), []string{"<@111>"}, transition)
	assert.Zero(t, second.Len())
	assert.Len(t, transport.Requests(), 2)

	held, err := c.MemberRoles(context.Background(), domain.Member{ID: "111"})
	require.NoError(t, err)
	assert.Equal(t, []string{roleMember}, held)
}

func TestClient_FailedRoleChangeLeavesCache(t *testing.T) {
	transport := &stubTransport{respond: func(*http.Request) (int, string) {
		return http.StatusForbidden, `{"message":"Missing Permissions","code":50013}`
	}}
	c := newStubClient(t, transport)
	cacheMember(t, c, "111", rolePending)

	err := c.AddRole(context.Background(), domain.Member{ID: "111"}, roleMember)
	assert.Error(t, err)

	held, err := c.MemberRoles(context.Background(), domain.Member{ID: "111"})
	require.NoError(t, err)
	assert.Equal(t, []string{rolePending}, held)
}

func TestClient_ResolveMemberFromREST(t *testing.T) {
	transport := &stubTransport{respond: func(r *http.Request) (int, string) {
		if strings.HasSuffix(r.URL.Path, "/members/222") {
			return http.StatusOK, `{"user":{"id":"222","username":"bob"},"roles":["902"]}`
		}
		return http.StatusNotFound, `{"message":"Unknown Member","code":10007}`
	}}
	c := newStubClient(t, transport)

	member, err := c.ResolveMember(context.Background(), "<@222>")
	require.NoError(t, err)
	assert.Equal(t, "<@222>", member.Mention)
	assert.Equal(t, []string{rolePending}, member.Roles)

	_, err = c.ResolveMember(context.Background(), "<@222>")
	require.NoError(t, err)
	assert.Len(t, transport.Requests(), 1, "second lookup is served from the cache")

	_, err = c.ResolveMember(context.Background(), "<@333>")
	assert.ErrorIs(t, err, platform.ErrMemberNotFound)

	_, err = c.ResolveMember(context.Background(), "@nobody")
	assert.ErrorIs(t, err, platform.ErrMemberNotFound)
	assert.Len(t, transport.Requests(), 2)
}
