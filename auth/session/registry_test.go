package session

import (
	"sync"
	"testing"

	"clubmanager/auth/users"

	"github.com/stretchr/testify/require"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()
	u := users.User{ID: 7, Username: "novak", Role: users.RolePlayer}

	token, err := r.Create(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, ok := r.Resolve(token)
	require.True(t, ok)
	require.Equal(t, u, got)

	r.Revoke(token)
	_, ok = r.Resolve(token)
	require.False(t, ok)

	// revoking again must stay a no-op
	r.Revoke(token)
}

func TestRegistryResolveUnknown(t *testing.T) {
	r := NewRegistry()
	for _, token := range []string{"", "garbage", "AAAA////not-base64url"} {
		_, ok := r.Resolve(token)
		require.False(t, ok, "token %q", token)
	}
}

func TestRegistryTokensUnique(t *testing.T) {
	r := NewRegistry()
	u := users.User{ID: 1, Username: "novak"}
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := r.Create(u)
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			token, err := r.Create(users.User{ID: id})
			if err != nil {
				t.Error(err)
				return
			}
			if _, ok := r.Resolve(token); !ok {
				t.Errorf("token for user %d not resolvable", id)
			}
			r.Revoke(token)
		}(int64(i))
	}
	wg.Wait()
}
