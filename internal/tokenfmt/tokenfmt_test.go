package tokenfmt

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/postfix"
)

func TestPretty(t *testing.T) {
	var b bytes.Buffer
	if err := Pretty(&b, postfix.Transform("3*6")); err != nil {
		t.Fatal(err)
	}
	want := "  1: Operand  \"3\"\n  2: Operand  \"6\"\n  3: Operator \"*\"\n"
	if b.String() != want {
		t.Errorf("want %q, got %q", want, b.String())
	}
}

func TestJSON(t *testing.T) {
	var b bytes.Buffer
	if err := JSON(&b, postfix.Transform("1/2 + 1"+strings.Repeat("0", 400))); err != nil {
		t.Fatal(err)
	}
	var got []TokenOutput
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, b.String())
	}
	if len(got) != 5 {
		t.Fatalf("want 5 tokens, got %d: %s", len(got), b.String())
	}
	if got[0].Kind != "Operand" || got[0].Value == nil || *got[0].Value != 1 {
		t.Errorf("wrong first token %+v", got[0])
	}
	if got[2].Kind != "Operator" || got[2].Priority == nil || *got[2].Priority != 1 {
		t.Errorf("wrong division token %+v", got[2])
	}
	if got[3].Value != nil || got[3].Text != "+Inf" {
		t.Errorf("infinite operand should have text only: %+v", got[3])
	}
	if got[4].Priority == nil || *got[4].Priority != 0 {
		t.Errorf("wrong addition token %+v", got[4])
	}
}

func TestJSONEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := JSON(&b, postfix.Transform("(1")); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(b.String()); got != "[]" {
		t.Errorf("want empty array, got %q", got)
	}
}

func TestMsgpack(t *testing.T) {
	seq := postfix.Transform("3 * ( 5 + 3 + 5 ) * 6")
	var b bytes.Buffer
	if err := Msgpack(&b, seq); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeMsgpack(&b)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(seq) {
		t.Fatalf("want %v, got %v", seq, got)
	}
	for i := range seq {
		if got[i] != seq[i] {
			t.Errorf("token %d: want %#v, got %#v", i, seq[i], got[i])
		}
	}
	if r := postfix.Evaluate(got); r != 234 {
		t.Errorf("decoded tokens evaluate to %g", r)
	}
}

func TestMsgpackPriorityRange(t *testing.T) {
	bad := []postfix.Token{{Kind: postfix.KindOperator, Op: '+', Priority: -1}}
	if err := Msgpack(new(bytes.Buffer), bad); err == nil {
		t.Error("negative priority encoded without error")
	}
	big := []postfix.Token{{Kind: postfix.KindOperator, Op: '+', Priority: math.MaxUint8 + 1}}
	if err := Msgpack(new(bytes.Buffer), big); err == nil {
		t.Error("oversized priority encoded without error")
	}
}

func TestWriteUnknown(t *testing.T) {
	if err := Write(new(bytes.Buffer), "xml", nil); err == nil {
		t.Error("unknown format accepted")
	}
}
