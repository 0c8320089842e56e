package unique

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

func TestNewFactoryConfig(t *testing.T) {
	t.Run("default binder", func(t *testing.T) {
		cfg := newFactoryConfig(nil)

		if cfg.binder == nil {
			t.Fatal("Expected default binder")
		}
	})

	t.Run("nil binder keeps default", func(t *testing.T) {
		cfg := newFactoryConfig([]Option{WithBinder(nil)})

		if cfg.binder == nil {
			t.Fatal("Expected default binder")
		}
	})

	t.Run("custom binder", func(t *testing.T) {
		called := false
		custom := func(a common.Address, p abi.ABI, b bind.ContractBackend) *bind.BoundContract {
			called = true
			return nil
		}

		cfg := newFactoryConfig([]Option{WithBinder(custom)})
		cfg.binder(common.Address{}, abi.ABI{}, nil)

		if !called {
			t.Error("Expected custom binder to be used")
		}
	})

	t.Run("last option wins", func(t *testing.T) {
		var used int
		first := func(common.Address, abi.ABI, bind.ContractBackend) *bind.BoundContract { used = 1; return nil }
		second := func(common.Address, abi.ABI, bind.ContractBackend) *bind.BoundContract { used = 2; return nil }

		cfg := newFactoryConfig([]Option{WithBinder(first), WithBinder(second)})
		cfg.binder(common.Address{}, abi.ABI{}, nil)

		if used != 2 {
			t.Errorf("Expected second binder, got %d", used)
		}
	})
}
