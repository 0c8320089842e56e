package unique

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestCollectionIDToLowercaseAddress(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		want string
	}{
		{"zero", 0, "0x17c4e6453cc49aaaaeaca894e6d9683e00000000"},
		{"one", 1, "0x17c4e6453cc49aaaaeaca894e6d9683e00000001"},
		{"hex digits are lowercase", 0xABCDEF, "0x17c4e6453cc49aaaaeaca894e6d9683e00abcdef"},
		{"max", 0xFFFFFFFF, "0x17c4e6453cc49aaaaeaca894e6d9683effffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CollectionIDToLowercaseAddress(tt.id)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCollectionIDOutOfRange(t *testing.T) {
	for _, id := range []int64{-1, 0x100000000} {
		_, err := CollectionIDToAddress(id)

		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("Expected RangeError for %d, got %v", id, err)
		}
		if rangeErr.Value != id {
			t.Errorf("Expected value %d, got %d", id, rangeErr.Value)
		}
		if !errors.Is(err, ErrCollectionIDRange) {
			t.Errorf("Expected ErrCollectionIDRange for %d", id)
		}
	}
}

func TestAddressToCollectionID(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, id := range []int64{0, 1, 4242, 0xFFFFFFFF} {
			addr, err := CollectionIDToAddress(id)
			if err != nil {
				t.Fatal(err)
			}
			got, err := AddressToCollectionID(addr)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if int64(got) != id {
				t.Errorf("Expected %d, got %d", id, got)
			}
		}
	})

	t.Run("checksummed input", func(t *testing.T) {
		addr := common.HexToAddress("0x17C4E6453CC49AAAAEACA894E6D9683E00000005")
		got, err := AddressToCollectionID(addr)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got != 5 {
			t.Errorf("Expected 5, got %d", got)
		}
	})

	t.Run("foreign address", func(t *testing.T) {
		_, err := AddressToCollectionID(ContractHelpersAddress)
		if !errors.Is(err, ErrNotCollectionAddress) {
			t.Errorf("Expected ErrNotCollectionAddress, got %v", err)
		}
	})
}

func TestTokenAddress(t *testing.T) {
	t.Run("derivation", func(t *testing.T) {
		got, err := TokenAddress(1, 2)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		want := common.HexToAddress("0xf8238ccfff8ed887463fd5e00000000100000002")
		if got != want {
			t.Errorf("Expected %s, got %s", want.Hex(), got.Hex())
		}
	})

	t.Run("token id out of range", func(t *testing.T) {
		_, err := TokenAddress(1, -5)

		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("Expected RangeError, got %v", err)
		}
		if rangeErr.Kind != "token id" {
			t.Errorf("Expected kind 'token id', got %q", rangeErr.Kind)
		}
	})

	t.Run("collection id out of range", func(t *testing.T) {
		_, err := TokenAddress(0x100000000, 1)
		if !errors.Is(err, ErrCollectionIDRange) {
			t.Errorf("Expected ErrCollectionIDRange, got %v", err)
		}
	})
}

func TestCollectionRef(t *testing.T) {
	t.Run("id", func(t *testing.T) {
		ref := CollectionID(7)
		addr, err := ref.Address()
		if err != nil {
			t.Fatal(err)
		}
		want, _ := CollectionIDToAddress(7)
		if addr != want {
			t.Errorf("Expected %s, got %s", want.Hex(), addr.Hex())
		}
		id, err := ref.ID()
		if err != nil || id != 7 {
			t.Errorf("Expected 7, got %d (%v)", id, err)
		}
	})

	t.Run("negative id", func(t *testing.T) {
		if _, err := CollectionID(-1).ID(); !errors.Is(err, ErrCollectionIDRange) {
			t.Errorf("Expected ErrCollectionIDRange, got %v", err)
		}
	})

	t.Run("address is used verbatim", func(t *testing.T) {
		ref := CollectionAddress("0x1234567890123456789012345678901234567890")
		addr, err := ref.Address()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if addr != common.HexToAddress("0x1234567890123456789012345678901234567890") {
			t.Errorf("Unexpected address %s", addr.Hex())
		}
		if _, err := ref.ID(); !errors.Is(err, ErrNotCollectionAddress) {
			t.Errorf("Expected ErrNotCollectionAddress, got %v", err)
		}
	})
}
