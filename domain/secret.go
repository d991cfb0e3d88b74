package domain

// Secret holds a room password. Ownership transfers with the value: the
// receiver of a Secret is responsible for calling Zero once it is done with
// it. Replaces passing mutable byte slices between goroutines.
type Secret struct {
	b []byte
}

func NewSecret(b []byte) Secret {
	return Secret{b: b}
}

func SecretFromString(s string) Secret {
	if s == "" {
		return Secret{}
	}
	return Secret{b: []byte(s)}
}

func (s Secret) IsEmpty() bool {
	return len(s.b) == 0
}

// Bytes exposes the underlying slice without copying.
// Callers must not retain it past the Secret's lifetime.
func (s Secret) Bytes() []byte {
	return s.b
}

func (s Secret) Clone() Secret {
	if s.IsEmpty() {
		return Secret{}
	}
	c := make([]byte, len(s.b))
	copy(c, s.b)
	return Secret{b: c}
}

// Zero wipes the underlying bytes.
func (s Secret) Zero() {
	for i := range s.b {
		s.b[i] = 0
	}
}

// String is redacted so a Secret can never leak through logging.
func (s Secret) String() string {
	if s.IsEmpty() {
		return ""
	}
	return "******"
}
