// Package domain holds identifier types shared across modules. Wrapping
// uuid.UUID in named types keeps a document ID from being passed where a
// client ID belongs.
package domain

import (
	"github.com/google/uuid"

	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
)

func parseUUID(kind, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is required", kind)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is not a valid UUID", kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s must not be the nil UUID", kind)
	}
	return u, nil
}

// ClientID identifies an individual or business client.
type ClientID uuid.UUID

// ParseClientID validates and parses the string form of a client ID.
func ParseClientID(s string) (ClientID, error) {
	u, err := parseUUID("client id", s)
	if err != nil {
		return ClientID{}, err
	}
	return ClientID(u), nil
}

func NewClientID() ClientID { return ClientID(uuid.New()) }

func (c ClientID) String() string { return uuid.UUID(c).String() }
func (c ClientID) IsNil() bool    { return uuid.UUID(c) == uuid.Nil }

// DocumentID identifies a single compliance document.
type DocumentID uuid.UUID

// ParseDocumentID validates and parses the string form of a document ID.
func ParseDocumentID(s string) (DocumentID, error) {
	u, err := parseUUID("document id", s)
	if err != nil {
		return DocumentID{}, err
	}
	return DocumentID(u), nil
}

func NewDocumentID() DocumentID { return DocumentID(uuid.New()) }

func (d DocumentID) String() string { return uuid.UUID(d).String() }
func (d DocumentID) IsNil() bool    { return uuid.UUID(d) == uuid.Nil }

// ReminderID identifies one append-only reminder record.
type ReminderID uuid.UUID

func NewReminderID() ReminderID { return ReminderID(uuid.New()) }

func (r ReminderID) String() string { return uuid.UUID(r).String() }
func (r ReminderID) IsNil() bool    { return uuid.UUID(r) == uuid.Nil }
