package types

import (
	"encoding/json"
	"errors"
	"testing"
)

const testNodeIDHex = "a448f24c6d18e575453db13171562b71999873db5b286df957af199ec94617f7"

func TestNodeID(t *testing.T) {
	id, err := ParseNodeID(testNodeIDHex)
	if err != nil {
		t.Fatalf("ParseNodeID() error = %v", err)
	}

	t.Run("String", func(t *testing.T) {
		if id.String() != testNodeIDHex {
			t.Errorf("NodeID.String() = %q, want %q", id.String(), testNodeIDHex)
		}
	})

	t.Run("ShortString", func(t *testing.T) {
		if got := id.ShortString(); got != "a448f24c" {
			t.Errorf("NodeID.ShortString() = %q, want %q", got, "a448f24c")
		}
		if got := EmptyNodeID.ShortString(); got != "00000000" {
			t.Errorf("EmptyNodeID.ShortString() = %q", got)
		}
	})

	t.Run("Base58", func(t *testing.T) {
		b58 := id.Base58()
		back, err := ParseNodeID(b58)
		if err != nil {
			t.Fatalf("ParseNodeID(%q) error = %v", b58, err)
		}
		if back != id {
			t.Errorf("Base58 round trip = %s, want %s", back, id)
		}
	})

	t.Run("Bytes", func(t *testing.T) {
		b := id.Bytes()
		b[0] ^= 0xff
		if id.String() != testNodeIDHex {
			t.Error("Bytes() must return a copy")
		}
	})

	t.Run("IsEmpty", func(t *testing.T) {
		if !EmptyNodeID.IsEmpty() {
			t.Error("EmptyNodeID.IsEmpty() = false, want true")
		}
		if id.IsEmpty() {
			t.Error("id.IsEmpty() = true, want false")
		}
	})

	t.Run("Equal", func(t *testing.T) {
		other := id
		if !id.Equal(other) {
			t.Error("Equal() = false for copies")
		}
		other[31] ^= 1
		if id.Equal(other) {
			t.Error("Equal() = true for different IDs")
		}
	})
}

func TestParseNodeID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"hex", testNodeIDHex, nil},
		{"hex with prefix", "0x" + testNodeIDHex, nil},
		{"empty", "", ErrEmptyNodeID},
		{"short hex", testNodeIDHex[:62], ErrInvalidNodeID},
		{"not base58", "0OIl", ErrInvalidNodeID},
		{"base58 wrong length", "3yZe7d", ErrInvalidNodeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNodeID(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseNodeID(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestNodeIDFromBytes(t *testing.T) {
	if _, err := NodeIDFromBytes(make([]byte, 31)); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("NodeIDFromBytes(31) error = %v", err)
	}
	id, err := NodeIDFromBytes(make([]byte, 32))
	if err != nil || !id.IsEmpty() {
		t.Errorf("NodeIDFromBytes(zeros) = %v, %v", id, err)
	}
}

func TestNodeID_JSON(t *testing.T) {
	id, _ := ParseNodeID(testNodeIDHex)

	data, err := json.Marshal(map[string]NodeID{"id": id})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"id":"`+testNodeIDHex+`"}` {
		t.Errorf("json.Marshal() = %s", data)
	}

	var out map[string]NodeID
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if out["id"] != id {
		t.Errorf("json round trip = %s, want %s", out["id"], id)
	}

	if err := json.Unmarshal([]byte(`{"id":"nope"}`), &out); err == nil {
		t.Error("json.Unmarshal(invalid) should fail")
	}
}
