package entity

// Dataset is one upload session. The raw bytes are kept so every interaction
// can re-run load and clean from scratch.
type Dataset struct {
	ID        string
	Filename  string
	Raw       []byte
	CreatedAt int64
	ExpiresAt int64
}

// Expired reports whether the session is past its deadline at now (unix seconds).
func (d Dataset) Expired(now int64) bool {
	return d.ExpiresAt > 0 && now >= d.ExpiresAt
}
