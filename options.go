package unique

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Binder constructs the bound contract a handle delegates calls to.
type Binder func(address common.Address, contractABI abi.ABI, backend bind.ContractBackend) *bind.BoundContract

// Option configures a factory call.
type Option func(*factoryConfig)

// factoryConfig holds configuration for a single factory call.
type factoryConfig struct {
	binder Binder
}

// newFactoryConfig applies opts over the defaults.
func newFactoryConfig(opts []Option) *factoryConfig {
	cfg := &factoryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.binder == nil {
		cfg.binder = DefaultBinder
	}
	return cfg
}

// DefaultBinder binds through go-ethereum's bind package, using backend
// as caller, transactor and filterer.
func DefaultBinder(address common.Address, contractABI abi.ABI, backend bind.ContractBackend) *bind.BoundContract {
	return bind.NewBoundContract(address, contractABI, backend, backend, backend)
}

// WithBinder overrides the contract-call library used to bind handles.
// A nil binder keeps the default.
func WithBinder(b Binder) Option {
	return func(c *factoryConfig) {
		c.binder = b
	}
}
