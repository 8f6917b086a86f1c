//go:build unit

package user_test

import (
	"testing"

	"lab-reservation/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       user.Role
		canReserve bool
		errIs      error
	}{
		{name: "doctor", input: "doctor", want: user.RoleDoctor, canReserve: true},
		{name: "大文字と空白を正規化", input: "  Researcher ", want: user.RoleResearcher, canReserve: true},
		{name: "予約できないロール", input: "technician", want: user.Role("technician"), canReserve: false},
		{name: "空文字はエラー", input: "  ", errIs: user.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := user.NewRole(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.canReserve, got.CanReserve())
		})
	}
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		u, err := user.NewUser("Dr. Salem", user.RoleDoctor)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "Dr. Salem", u.Name())
		assert.True(t, u.CanReserve())
		assert.True(t, u.Role().IsDoctor())
	})

	t.Run("名前が空ならエラー", func(t *testing.T) {
		_, err := user.NewUser(" ", user.RoleResearcher)
		require.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("再構築はIDを保持する", func(t *testing.T) {
		id := uuid.New()
		u := user.ReconstructUser(id, "Lina", user.RoleResearcher)
		assert.Equal(t, id, u.ID())
		assert.False(t, u.Role().IsDoctor())
	})
}
