package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecret_Never_Leaks_Through_Formatting(t *testing.T) {
	req := require.New(t)

	secret := SecretFromString("hunter2")
	req.NotContains(fmt.Sprintf("secret=%v", secret), "hunter2")
	req.Equal("******", secret.String())
	req.Equal("", Secret{}.String())
}

func TestSecret_Zero_Wipes_The_Bytes(t *testing.T) {
	req := require.New(t)

	secret := SecretFromString("hunter2")
	secret.Zero()
	req.Equal(make([]byte, 7), secret.Bytes())
}

func TestSecret_Clone_Is_Independent(t *testing.T) {
	req := require.New(t)

	original := SecretFromString("hunter2")
	clone := original.Clone()
	original.Zero()

	req.Equal([]byte("hunter2"), clone.Bytes())
	req.True(Secret{}.Clone().IsEmpty())
}
