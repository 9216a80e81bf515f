// Package pagination holds the keyset cursor codec used by feed endpoints and
// the helpers that turn a limit+1 fetch into a page.
package pagination

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
)

const cursorSeparator = "|"

// Cursor identifies the last row of a page by its (created_at, id) key.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// EncodeCursor returns an opaque, URL-safe token for c.
func EncodeCursor(c Cursor) string {
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by EncodeCursor. It reports false for
// any malformed input.
func DecodeCursor(token string) (Cursor, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Cursor{}, false
	}

	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return Cursor{}, false
	}

	createdAt, id, found := strings.Cut(string(raw), cursorSeparator)
	if !found {
		return Cursor{}, false
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Cursor{}, false
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return Cursor{}, false
	}

	return Cursor{CreatedAt: ts.UTC(), ID: uid}, true
}
