package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorities(t *testing.T) {
	assert.Equal(t, []string{AuthorityPremium, AuthorityFree}, Authorities(RolePremium))
	assert.Equal(t, []string{AuthorityFree}, Authorities(RoleFree))
	assert.Equal(t, []string{AuthorityFree}, Authorities(Role("unknown")))
}

func TestPrincipal_HasAuthority(t *testing.T) {
	premium := Principal{Authorities: Authorities(RolePremium)}
	free := Principal{Authorities: Authorities(RoleFree)}

	assert.True(t, premium.HasAuthority(AuthorityPremium))
	assert.True(t, premium.HasAuthority(AuthorityFree))
	assert.True(t, free.HasAuthority(AuthorityFree))
	assert.False(t, free.HasAuthority(AuthorityPremium))
	assert.False(t, Principal{}.HasAuthority(AuthorityFree))
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in     string
		want   Role
		wantOK bool
	}{
		{in: "free", want: RoleFree, wantOK: true},
		{in: "FREE", want: RoleFree, wantOK: true},
		{in: " Premium ", want: RolePremium, wantOK: true},
		{in: "admin", wantOK: false},
		{in: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRole(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_JSON(t *testing.T) {
	data, err := json.Marshal(User{Username: "u", Password: "h", Role: RolePremium})
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"u","password":"h","role":"PREMIUM"}`, string(data))

	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"username":"u","role":"FREE"}`), &u))
	assert.Equal(t, RoleFree, u.Role)
	assert.True(t, u.Role.Valid())

	require.NoError(t, json.Unmarshal([]byte(`{"username":"u","role":"ADMIN"}`), &u))
	assert.False(t, u.Role.Valid())
}

func TestAnalysisResult_KeepsRawBody(t *testing.T) {
	body := `{"message":"ok","score":87,"gaps":["go"]}`

	var res AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.Equal(t, "ok", res.Message)

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(out))

	out, err = json.Marshal(AnalysisResult{Message: "plain"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"plain"}`, string(out))
}
