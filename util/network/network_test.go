package network

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		addr        string
		defaultPort uint16
		expected    string
		expectErr   bool
	}{
		{"127.0.0.1", 4096, "127.0.0.1:4096", false},
		{"127.0.0.1:4093", 4096, "127.0.0.1:4093", false},
		{"::1", 3052, "[::1]:3052", false},
		{"[::1]:3050", 3052, "[::1]:3050", false},
		{"seed.example.com", 4096, "seed.example.com:4096", false},
		{"a:b:c:d", 4096, "[a:b:c:d]:4096", false},
		{"", 3050, ":3050", false},
		{"[::1", 4096, "", true},
	}
	for _, test := range tests {
		got, err := NormalizeAddress(test.addr, test.defaultPort)
		if test.expectErr {
			if !errors.Is(err, ErrInvalidAddress) {
				t.Errorf("NormalizeAddress(%q): expected ErrInvalidAddress, got %v", test.addr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeAddress(%q): unexpected error: %s", test.addr, err)
			continue
		}
		if got != test.expected {
			t.Errorf("NormalizeAddress(%q): got %q, want %q", test.addr, got, test.expected)
		}
	}
}

func TestNormalizeAddresses(t *testing.T) {
	addrs := []string{"10.0.0.2:3052", "10.0.0.1", "10.0.0.1:4096", "10.0.0.2:3052"}
	original := append([]string(nil), addrs...)

	got, err := NormalizeAddresses(addrs, 4096)
	if err != nil {
		t.Fatalf("NormalizeAddresses: %s", err)
	}
	expected := []string{"10.0.0.2:3052", "10.0.0.1:4096"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("NormalizeAddresses: got %v, want %v", got, expected)
	}
	if !reflect.DeepEqual(addrs, original) {
		t.Fatalf("NormalizeAddresses modified its input: %v", addrs)
	}

	if _, err := NormalizeAddresses([]string{"10.0.0.1", "[::1"}, 4096); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("NormalizeAddresses: expected ErrInvalidAddress, got %v", err)
	}

	got, err = NormalizeAddresses(nil, 4096)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("NormalizeAddresses(nil): got %v, %v", got, err)
	}
}
