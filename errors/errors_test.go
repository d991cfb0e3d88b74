package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"muc-lab/domain"
)

func TestClassifyJoin(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected domain.JoinOutcome
	}{
		{"Nil error is success", nil, domain.JoinSuccess},
		{
			"Classified failure keeps its outcome",
			NewJoinError(domain.JoinRegistrationRequired, "lobby", nil),
			domain.JoinRegistrationRequired,
		},
		{
			"Wrapped classified failure is unwrapped",
			fmt.Errorf("joining: %w", NewJoinError(domain.JoinProviderOffline, "lobby", nil)),
			domain.JoinProviderOffline,
		},
		{
			"Unclassified failure is unknown",
			fmt.Errorf("connection reset"),
			domain.JoinUnknownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ClassifyJoin(tt.err))
		})
	}
}

func TestJoinError_Message_Includes_Cause(t *testing.T) {
	req := require.New(t)

	err := NewJoinError(domain.JoinAuthenticationFailed, "lobby", fmt.Errorf("bad password"))
	req.Contains(err.Error(), "lobby")
	req.Contains(err.Error(), "bad password")
	req.ErrorContains(err.Unwrap(), "bad password")
}
