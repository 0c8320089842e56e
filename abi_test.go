package unique

import (
	"errors"
	"testing"
)

func TestABINames(t *testing.T) {
	names := ABINames()
	expected := []string{
		CollectionHelpersABI,
		ContractHelpersABI,
		UniqueFungibleABI,
		UniqueNFTABI,
		UniqueRefungibleABI,
		UniqueRefungibleTokenABI,
	}

	if len(names) != len(expected) {
		t.Fatalf("Expected %d artifacts, got %v", len(expected), names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %q at %d, got %q", expected[i], i, names[i])
		}
	}
}

func TestLoadABI(t *testing.T) {
	t.Run("every bundled artifact parses", func(t *testing.T) {
		for _, name := range ABINames() {
			parsed, err := LoadABI(name)
			if err != nil {
				t.Errorf("Expected %s to parse, got %v", name, err)
				continue
			}
			if len(parsed.Methods) == 0 {
				t.Errorf("Expected %s to have methods", name)
			}
		}
	})

	t.Run("unknown artifact", func(t *testing.T) {
		_, err := LoadABI("Nope")

		var abiErr *ABIError
		if !errors.As(err, &abiErr) {
			t.Fatalf("Expected ABIError, got %v", err)
		}
		if !errors.Is(err, ErrUnknownABI) {
			t.Errorf("Expected ErrUnknownABI, got %v", err)
		}
	})

	t.Run("returns a fresh ABI each call", func(t *testing.T) {
		a, _ := LoadABI(UniqueNFTABI)
		b, _ := LoadABI(UniqueNFTABI)

		delete(a.Methods, "name")
		if _, ok := b.Methods["name"]; !ok {
			t.Error("Expected independent ABI values")
		}
	})
}

func TestMustParseABI(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on invalid ABI")
		}
	}()
	MustParseABI("not json")
}
