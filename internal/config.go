package internal

import (
	"encoding/hex"
	"fmt"
	"time"
)

type Config struct {
	NumberOfJoinWorkers int           `env:"NUMBER_OF_JOIN_WORKERS,required=true"`
	JoinBufferSize      int           `env:"JOIN_BUFFER_SIZE,required=true"`
	RestartInterval     time.Duration `env:"RESTART_INTERVAL,required=true"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel            string        `env:"LOG_LEVEL,required=true"`
	// CredentialKey is the hex-encoded 32-byte secretbox key protecting
	// remembered room passwords at rest.
	CredentialKey string `env:"CREDENTIAL_KEY,required=true"`
}

// DecodeCredentialKey parses the hex key from the environment into the fixed
// size array secretbox expects.
func DecodeCredentialKey(str string) ([32]byte, error) {
	var key [32]byte
	raw, err := hex.DecodeString(str)
	if err != nil {
		return key, fmt.Errorf("CREDENTIAL_KEY must be hex encoded: %w", err)
	}
	if len(raw) != 32 {
		return key, fmt.Errorf("CREDENTIAL_KEY must decode to 32 bytes, got %d", len(raw))
	}
	copy(key[:], raw)
	return key, nil
}
