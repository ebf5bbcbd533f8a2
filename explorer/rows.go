package explorer

import (
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/hyperledger-labs/firefly-explorer/models"
	"github.com/hyperledger-labs/firefly-explorer/util"
)

// CellKind selects how a table cell renders.
type CellKind string

const (
	CellText      CellKind = "text"
	CellTimestamp CellKind = "timestamp"
	CellHash      CellKind = "hash"
	CellIcon      CellKind = "icon"
)

// Placeholder renders where an optional field is absent.
const Placeholder = "—"

type Cell struct {
	Kind  CellKind
	Value string
	// Full holds the untruncated value for hash cells, for the copy affordance.
	Full string
}

// Row is one projected table row. Key is stable across re-projections of the
// same entity so the frontend can key on it.
type Row struct {
	Key   string
	Link  string
	Cells []Cell
}

func textCell(s string) Cell {
	if s == "" {
		return Cell{Kind: CellText, Value: Placeholder}
	}
	return Cell{Kind: CellText, Value: s}
}

func hashCell(s string) Cell {
	if s == "" {
		return Cell{Kind: CellText, Value: Placeholder}
	}
	return Cell{Kind: CellHash, Value: util.TruncateHash(s, 8), Full: s}
}

func timestampCell(t strfmt.DateTime) Cell {
	if time.Time(t).IsZero() {
		return Cell{Kind: CellText, Value: Placeholder}
	}
	return Cell{Kind: CellTimestamp, Value: time.Time(t).UTC().Format("2006-01-02 15:04:05")}
}

// transferIcon maps a transfer type to its icon name. Every arm is explicit;
// a type outside the known set always falls back to "unknown".
func transferIcon(t models.TransferType) string {
	switch t {
	case models.TransferTypeMint:
		return "mint"
	case models.TransferTypeBurn:
		return "burn"
	case models.TransferTypeTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// MessageRows projects messages into dashboard table rows. Projection is pure:
// it never mutates the source list and is re-derived on every render.
func MessageRows(ns string, messages []*models.Message) []Row {
	rows := make([]Row, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, Row{
			Key:  m.Header.ID,
			Link: "/namespaces/" + ns + "/messages/" + m.Header.ID,
			Cells: []Cell{
				hashCell(m.Header.ID),
				textCell(m.Header.Type),
				hashCell(m.Header.Author),
				textCell(m.Header.Topic),
				timestampCell(m.Header.Created),
			},
		})
	}
	return rows
}

// TransactionRows projects transactions into dashboard table rows.
func TransactionRows(ns string, txs []*models.Transaction) []Row {
	rows := make([]Row, 0, len(txs))
	for _, tx := range txs {
		seq := Placeholder
		if tx.Sequence != 0 {
			seq = util.Int64ToString(tx.Sequence)
		}
		rows = append(rows, Row{
			Key:  tx.ID,
			Link: "/namespaces/" + ns + "/transactions/" + tx.ID,
			Cells: []Cell{
				hashCell(tx.ID),
				{Kind: CellText, Value: seq},
				timestampCell(tx.Created),
			},
		})
	}
	return rows
}

// TransferRows projects token transfers into account-page table rows.
func TransferRows(transfers []*models.TokenTransfer) []Row {
	rows := make([]Row, 0, len(transfers))
	for _, tr := range transfers {
		rows = append(rows, Row{
			Key: tr.LocalID,
			Cells: []Cell{
				{Kind: CellIcon, Value: transferIcon(tr.Type)},
				hashCell(tr.TX.ID),
				textCell(tr.Amount),
				hashCell(tr.From),
				hashCell(tr.To),
				timestampCell(tr.Created),
			},
		})
	}
	return rows
}
