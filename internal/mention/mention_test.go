package mention

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "only separators", raw: " , ,, ", want: []string{}},
		{name: "drops blank segments", raw: " a , ,b,, c ", want: []string{"a", "b", "c"}},
		{name: "keeps duplicates in order", raw: "<@1>,<@2>,<@1>", want: []string{"<@1>", "<@2>", "<@1>"}},
		{name: "passes malformed tokens through", raw: "@someone, not-a-user", want: []string{"@someone", "not-a-user"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestParse_NeverLongerThanSegments(t *testing.T) {
	inputs := []string{"a,b", ",,,", "x", " , y ,z, ", "<@1>, <@2>"}
	for _, in := range inputs {
		segments := len(splitCount(in))
		assert.LessOrEqual(t, len(Parse(in)), segments, in)
	}
}

func splitCount(s string) []struct{} {
	n := 1
	for _, r := range s {
		if r == ',' {
			n++
		}
	}
	return make([]struct{}, n)
}

func TestUserID(t *testing.T) {
	tests := []struct {
		token string
		id    string
		ok    bool
	}{
		{token: "<@111>", id: "111", ok: true},
		{token: "<@!222>", id: "222", ok: true},
		{token: "333", id: "333", ok: true},
		{token: " <@444> ", id: "444", ok: true},
		{token: "@user", ok: false},
		{token: "<@abc>", ok: false},
		{token: "<@>", ok: false},
		{token: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			id, ok := UserID(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestPingLine(t *testing.T) {
	assert.Equal(t, "<@1> <@2>", PingLine([]string{"<@1>", "<@2>"}, " "))
	assert.Equal(t, "<@1>, <@2>", PingLine([]string{"<@1>", "<@2>"}, ", "))
	assert.Equal(t, "", PingLine(nil, " "))
}
