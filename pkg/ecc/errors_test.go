package ecc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorUnwrap(t *testing.T) {
	err := NewError("modinv", NotInvertible, "gcd(%d, %d) = %d", 4, 8, 4)

	assert.True(t, errors.Is(err, ErrNotInvertible))
	assert.False(t, errors.Is(err, ErrSingularCurve))
	assert.Equal(t, "modinv: not invertible: gcd(4, 8) = 4", err.Error())

	wrapped := fmt.Errorf("keygen: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotInvertible))
	assert.Equal(t, NotInvertible, KindOf(wrapped))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, SingularCurve, KindOf(ErrSingularCurve))
	assert.Equal(t, InvalidSecretKey, KindOf(fmt.Errorf("x: %w", ErrInvalidSecretKey)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestErrorWithoutDetail(t *testing.T) {
	err := NewError("validate", SingularCurve, "")
	assert.Equal(t, "validate: singular curve", err.Error())
	assert.Equal(t, "unknown error", KindUnknown.String())
}

func TestParameters(t *testing.T) {
	params := DefaultParameters()
	assert.NoError(t, params.Validate())

	params.Loops = MaxLoops + 1
	err := params.Validate()
	assert.True(t, errors.Is(err, ErrInvalidLoopCount))

	params = DefaultParameters()
	params.Curve = "p256"
	assert.Error(t, params.Validate())

	params = DefaultParameters()
	params.Width = 0
	assert.Error(t, params.Validate())

	params = DefaultParameters()
	params.Certainty = 0
	assert.Error(t, params.Validate())
}
