package farm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The session is persisted as a JSONL command stream, one command per line:
//
//	{"command":"invest","quantity":10,"unitCost":0.25}
//	{"command":"loot","item":"Divine Orb","quantity":3}
//	{"command":"manual","item":"lucky ring","unitValue":3.5,"quantity":1}
//	{"command":"drop","index":2}
//
// Decoding replays the stream in order: the last invest wins, drop removes
// the line at the given 1-based display index. Encoding writes the canonical
// form back: a single invest followed by one line per loot entry.

// CommandType is a typed string for identifying session commands.
type CommandType string

const (
	CmdInvest CommandType = "invest"
	CmdLoot   CommandType = "loot"
	CmdManual CommandType = "manual"
	CmdDrop   CommandType = "drop"
)

// DecodeSession decodes a session from a stream of JSONL commands.
func DecodeSession(r io.Reader) (*Session, error) {
	session := NewSession()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command on line %d %q: %w", line, string(lineBytes), err)
		}

		switch identifier.Command {
		case CmdInvest:
			var cmd struct {
				Quantity decimal.Decimal `json:"quantity"`
				UnitCost decimal.Decimal `json:"unitCost"`
			}
			if err := json.Unmarshal(lineBytes, &cmd); err != nil {
				return nil, fmt.Errorf("invalid invest command on line %d: %w", line, err)
			}
			session.InvestQuantity = Q(cmd.Quantity)
			session.InvestUnitCost = Exalted(cmd.UnitCost)
		case CmdLoot:
			var cmd struct {
				Item     string          `json:"item"`
				Quantity decimal.Decimal `json:"quantity"`
			}
			if err := json.Unmarshal(lineBytes, &cmd); err != nil {
				return nil, fmt.Errorf("invalid loot command on line %d: %w", line, err)
			}
			session.Lines = append(session.Lines, LootLine{
				Kind:     CatalogLine,
				Item:     cmd.Item,
				Quantity: Q(cmd.Quantity),
			})
		case CmdManual:
			var cmd struct {
				Item      string          `json:"item"`
				UnitValue decimal.Decimal `json:"unitValue"`
				Quantity  decimal.Decimal `json:"quantity"`
			}
			if err := json.Unmarshal(lineBytes, &cmd); err != nil {
				return nil, fmt.Errorf("invalid manual command on line %d: %w", line, err)
			}
			session.Lines = append(session.Lines, LootLine{
				Kind:      ManualLine,
				Item:      cmd.Item,
				Quantity:  Q(cmd.Quantity),
				UnitValue: Exalted(cmd.UnitValue),
			})
		case CmdDrop:
			var cmd struct {
				Index int `json:"index"`
			}
			if err := json.Unmarshal(lineBytes, &cmd); err != nil {
				return nil, fmt.Errorf("invalid drop command on line %d: %w", line, err)
			}
			if cmd.Index < 1 || cmd.Index > len(session.Lines) {
				log.Printf("drop index %d out of range on line %d, ignored", cmd.Index, line)
				continue
			}
			session.Lines = append(session.Lines[:cmd.Index-1], session.Lines[cmd.Index:]...)
		default:
			return nil, fmt.Errorf("unknown command %q on line %d", identifier.Command, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read session stream: %w", err)
	}
	return session, nil
}

// EncodeSession writes the session in canonical form.
func EncodeSession(w io.Writer, s *Session) error {
	if err := EncodeInvest(w, s.InvestQuantity, s.InvestUnitCost); err != nil {
		return err
	}
	for _, line := range s.Lines {
		var err error
		switch line.Kind {
		case ManualLine:
			err = EncodeManual(w, line.Item, line.UnitValue, line.Quantity)
		default:
			err = EncodeLoot(w, line.Item, line.Quantity)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// EncodeInvest appends a single invest command, the cheap path used by the
// CLI mutations so edits do not rewrite the whole file.
func EncodeInvest(w io.Writer, quantity Quantity, unitCost Value) error {
	var jw jsonObjectWriter
	jw.Append("command", CmdInvest)
	jw.Append("quantity", quantity)
	jw.Append("unitCost", unitCost.Decimal())
	return writeCommand(w, &jw)
}

// EncodeLoot appends a single catalog loot command.
func EncodeLoot(w io.Writer, item string, quantity Quantity) error {
	var jw jsonObjectWriter
	jw.Append("command", CmdLoot)
	jw.Append("item", item)
	jw.Append("quantity", quantity)
	return writeCommand(w, &jw)
}

// EncodeManual appends a single manually priced loot command.
func EncodeManual(w io.Writer, item string, unitValue Value, quantity Quantity) error {
	var jw jsonObjectWriter
	jw.Append("command", CmdManual)
	jw.Append("item", item)
	jw.Append("unitValue", unitValue.Decimal())
	jw.Append("quantity", quantity)
	return writeCommand(w, &jw)
}

// EncodeDrop appends a drop command for the given 1-based line index.
func EncodeDrop(w io.Writer, index int) error {
	var jw jsonObjectWriter
	jw.Append("command", CmdDrop)
	jw.Append("index", index)
	return writeCommand(w, &jw)
}

func writeCommand(w io.Writer, jw *jsonObjectWriter) error {
	b, err := jw.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("could not write session line: %w", err)
	}
	return nil
}
