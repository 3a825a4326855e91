package gameid

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id := New()

	if len(id) != Length {
		t.Errorf("expected %d characters, got %d", Length, len(id))
	}
	if err := Validate(id.String()); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}
	if id.IsZero() {
		t.Error("generated ID should not be zero")
	}
}

func TestNewUnique(t *testing.T) {
	ids := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if ids[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestNewTimeSorted(t *testing.T) {
	var ids []ID
	for i := 0; i < 10; i++ {
		ids = append(ids, New())
		time.Sleep(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1].String(), ids[i].String()) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestFromUUID(t *testing.T) {
	tests := []struct {
		name string
		in   uuid.UUID
		want ID
	}{
		{"nil uuid", uuid.Nil, "00000000000000000000000000"},
		{"max uuid", maxUUID(), "7zzzzzzzzzzzzzzzzzzzzzzzzz"},
		{"low bit", uuid.UUID{15: 1}, "00000000000000000000000001"},
		{"high bit", uuid.UUID{0: 0x80}, "40000000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromUUID(tt.in); got != tt.want {
				t.Errorf("FromUUID() = %s, want %s", got, tt.want)
			}
		})
	}
}

func maxUUID() uuid.UUID {
	var u uuid.UUID
	for i := range u {
		u[i] = 0xff
	}
	return u
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid ID", "01h5n0et5q6mt3v7ms1234abcd", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"first char too high", "81h5n0et5q6mt3v7ms1234abcd", true},
		{"invalid character", "01h5n0et5q6mt3v7ms1234abci", true},
		{"uppercase not allowed", "01H5N0ET5Q6MT3V7MS1234ABCD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAlphabet(t *testing.T) {
	if len(alphabet) != 32 {
		t.Errorf("alphabet should have 32 characters, got %d", len(alphabet))
	}

	seen := make(map[rune]bool)
	for _, char := range alphabet {
		if seen[char] {
			t.Errorf("duplicate character in alphabet: %c", char)
		}
		seen[char] = true
	}

	for _, char := range "ilou" {
		if strings.ContainsRune(alphabet, char) {
			t.Errorf("alphabet should not contain %c", char)
		}
	}
}
