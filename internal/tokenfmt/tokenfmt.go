// Package tokenfmt writes token sequences in human- and machine-readable
// forms.
package tokenfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zephyrtronium/postfix"
)

// Pretty writes one token per line with its index and kind.
func Pretty(w io.Writer, tokens []postfix.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-8s %q\n", i+1, tok.Kind, tok.String()); err != nil {
			return err
		}
	}
	return nil
}

// TokenOutput is the JSON form of a token.
type TokenOutput struct {
	Kind     string   `json:"kind"`
	Text     string   `json:"text"`
	Value    *float64 `json:"value,omitempty"`
	Priority *int     `json:"priority,omitempty"`
}

// JSON writes the tokens as an indented JSON array. Operand values which JSON
// cannot represent, like +Inf, are only present in the text.
func JSON(w io.Writer, tokens []postfix.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.String(),
		}
		switch tok.Kind {
		case postfix.KindOperand:
			if !math.IsInf(tok.Value, 0) && !math.IsNaN(tok.Value) {
				v := tok.Value
				out.Value = &v
			}
		case postfix.KindOperator:
			p := tok.Priority
			out.Priority = &p
		}
		output = append(output, out)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// packedToken is the msgpack form of a token.
type packedToken struct {
	_msgpack struct{} `msgpack:",as_array"`

	Kind     int8
	Value    float64
	Op       byte
	Priority uint8
	Side     int8
}

// Msgpack writes the tokens as a msgpack array.
func Msgpack(w io.Writer, tokens []postfix.Token) error {
	packed := make([]packedToken, len(tokens))
	for i, tok := range tokens {
		prio, err := safecast.Conv[uint8](tok.Priority)
		if err != nil {
			return fmt.Errorf("token %d: priority %d: %w", i+1, tok.Priority, err)
		}
		packed[i] = packedToken{
			Kind:     int8(tok.Kind),
			Value:    tok.Value,
			Op:       tok.Op,
			Priority: prio,
			Side:     int8(tok.Side),
		}
	}
	return msgpack.NewEncoder(w).Encode(packed)
}

// DecodeMsgpack reads a token sequence written by Msgpack.
func DecodeMsgpack(r io.Reader) (postfix.Sequence, error) {
	var packed []packedToken
	if err := msgpack.NewDecoder(r).Decode(&packed); err != nil {
		return nil, fmt.Errorf("decode tokens: %w", err)
	}
	if packed == nil {
		return nil, nil
	}
	seq := make(postfix.Sequence, len(packed))
	for i, p := range packed {
		seq[i] = postfix.Token{
			Kind:     postfix.Kind(p.Kind),
			Value:    p.Value,
			Op:       p.Op,
			Priority: int(p.Priority),
			Side:     postfix.Side(p.Side),
		}
	}
	return seq, nil
}

// Write writes tokens in the named format: pretty, json, or msgpack.
func Write(w io.Writer, format string, tokens []postfix.Token) error {
	switch format {
	case "pretty":
		return Pretty(w, tokens)
	case "json":
		return JSON(w, tokens)
	case "msgpack":
		return Msgpack(w, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
