package models

import (
	"github.com/go-openapi/strfmt"
)

// TransferType is the closed set of token transfer kinds the API reports.
type TransferType string

const (
	TransferTypeMint     TransferType = "mint"
	TransferTypeBurn     TransferType = "burn"
	TransferTypeTransfer TransferType = "transfer"
)

// TransactionTypePin marks a batch-pinning transaction.
const TransactionTypePin = "pin"

// TransactionRef is the transaction type/id pair embedded in headers and payloads.
type TransactionRef struct {
	Type string `json:"type,omitempty"`
	ID   string `json:"id,omitempty"`
}

type MessageHeader struct {
	ID       string          `json:"id"`
	Author   string          `json:"author,omitempty"`
	Type     string          `json:"type,omitempty"`
	Topic    string          `json:"topic,omitempty"`
	Context  string          `json:"context,omitempty"`
	DataHash string          `json:"datahash,omitempty"`
	Created  strfmt.DateTime `json:"created,omitempty"`
	TX       TransactionRef  `json:"tx,omitempty"`
}

// Message is a fetch-and-display snapshot; it is never mutated locally.
type Message struct {
	Header   MessageHeader `json:"header"`
	Sequence int64         `json:"sequence,omitempty"`
	BatchID  string        `json:"batchID,omitempty"`
}

type Transaction struct {
	ID       string          `json:"id"`
	Sequence int64           `json:"sequence,omitempty"`
	Created  strfmt.DateTime `json:"created,omitempty"`
}

type BatchPayload struct {
	TX TransactionRef `json:"tx,omitempty"`
}

// Batch is fetched on demand to resolve a message's originating transaction.
type Batch struct {
	ID      string       `json:"id"`
	Payload BatchPayload `json:"payload,omitempty"`
}

type TokenAccount struct {
	PoolProtocolID string          `json:"poolProtocolId"`
	TokenIndex     string          `json:"tokenIndex,omitempty"`
	Connector      string          `json:"connector,omitempty"`
	Key            string          `json:"key,omitempty"`
	Balance        string          `json:"balance,omitempty"`
	Updated        strfmt.DateTime `json:"updated,omitempty"`
}

type TokenTransfer struct {
	LocalID string          `json:"localId"`
	Type    TransferType    `json:"type"`
	Amount  string          `json:"amount,omitempty"`
	From    string          `json:"from,omitempty"`
	To      string          `json:"to,omitempty"`
	Created strfmt.DateTime `json:"created,omitempty"`
	TX      TransactionRef  `json:"tx,omitempty"`
}

// TokenTransferList is the paginated transfers response: the server-reported
// total alongside the requested page of items.
type TokenTransferList struct {
	Total int64            `json:"total"`
	Items []*TokenTransfer `json:"items"`
}

type Namespace struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Created     strfmt.DateTime `json:"created,omitempty"`
}
