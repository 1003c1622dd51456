package client

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTaxID is the placeholder used when a client has no registered tax id
// ("consumidor final").
const DefaultTaxID = "CF"

var (
	ErrNotFound = errors.New("client not found")

	// ErrInUse is returned when deleting a client that sales still reference.
	ErrInUse = errors.New("client is referenced by sales")
)

// Client is a buyer. Name is split into first and last names; both may be
// blank only one at a time.
type Client struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Phone     string
	TaxID     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// FullName joins the name parts, skipping whichever is empty.
func (c *Client) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}
