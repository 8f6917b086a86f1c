//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"lab-reservation/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("connection reset")

	err := infra.WrapRepoErr("failed to get laboratory", cause)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DB_FAILURE: failed to get laboratory")

	nf := infra.WrapRepoErr("laboratory not found", nil, infra.KindNotFound)
	assert.True(t, infra.IsKind(nf, infra.KindNotFound))
	assert.Equal(t, "NOT_FOUND: laboratory not found", nf.Error())

	assert.True(t, infra.IsKind(infra.NotFound("device not found"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}
