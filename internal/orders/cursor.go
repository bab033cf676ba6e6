package orders

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tahaxtrex/Scolay/pkg/db/models"
	pkgerrors "github.com/tahaxtrex/Scolay/pkg/errors"
)

const (
	// DefaultPageSize is used when the caller does not ask for a limit.
	DefaultPageSize = 25
	// MaxPageSize caps a single history read.
	MaxPageSize = 100
)

// Page bounds one slice of a guardian's order history. Cursor is the
// opaque token returned with the previous slice, empty for the first.
type Page struct {
	Limit  int
	Cursor string
}

func (p Page) size() int {
	if p.Limit <= 0 {
		return DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		return MaxPageSize
	}
	return p.Limit
}

// historyCursor keys the scan through a user's orders. History is read
// newest first on (created_at, id), so the cursor carries both.
type historyCursor struct {
	placedAt time.Time
	orderID  uuid.UUID
}

func cursorAfter(last models.Order) string {
	raw := last.CreatedAt.UTC().Format(time.RFC3339Nano) + "@" + last.ID.String()
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func parseHistoryCursor(token string) (*historyCursor, error) {
	if strings.TrimSpace(token) == "" {
		return nil, nil
	}
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order cursor is not valid")
	}
	placedAtRaw, idRaw, ok := strings.Cut(string(raw), "@")
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order cursor is malformed")
	}
	placedAt, err := time.Parse(time.RFC3339Nano, placedAtRaw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order cursor timestamp is malformed")
	}
	orderID, err := uuid.Parse(idRaw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order cursor id is malformed")
	}
	return &historyCursor{placedAt: placedAt, orderID: orderID}, nil
}
