package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(New("boom"), ExitUser),
			want: "boom",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitSystem),
			want: "exit code 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	sentinel := New("underlying")
	err := NewUserError(Wrap(sentinel, "context"), "try again")

	assert.True(t, Is(err, sentinel))

	var exitErr *ExitError
	require.True(t, As(err, &exitErr))
	assert.Equal(t, ExitUser, exitErr.Code)
	assert.Equal(t, "try again", exitErr.Suggestion)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, ExitUser, NewUserError(nil, "").Code)
	assert.Equal(t, ExitSystem, NewSystemError(nil, "").Code)
	assert.Equal(t, ExitUser, NewConfigError(nil).Code)
	assert.NotEmpty(t, NewConfigError(nil).Suggestion)
}
