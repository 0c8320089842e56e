package unique

import (
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Contract wraps an on-chain contract bound to a backend.
type Contract struct {
	name    string
	address common.Address
	abi     abi.ABI
	bound   *bind.BoundContract
}

// NewContract binds a parsed ABI at address to backend using the options' binder.
func NewContract(name string, address common.Address, contractABI abi.ABI, backend bind.ContractBackend, opts ...Option) *Contract {
	cfg := newFactoryConfig(opts)
	return &Contract{
		name:    name,
		address: address,
		abi:     contractABI,
		bound:   cfg.binder(address, contractABI, backend),
	}
}

// ArtifactName returns the ABI artifact name the contract was built from.
func (c *Contract) ArtifactName() string {
	return c.name
}

// Address returns the contract address.
func (c *Contract) Address() common.Address {
	return c.address
}

// ABI returns the contract ABI.
func (c *Contract) ABI() abi.ABI {
	return c.abi
}

// Bound returns the underlying bound contract.
func (c *Contract) Bound() *bind.BoundContract {
	return c.bound
}

// Invoke creates a Call for the named method with the given arguments.
func (c *Contract) Invoke(methodName string, args ...any) (*Call, error) {
	method, ok := c.abi.Methods[methodName]
	if !ok {
		return nil, &MethodNotFoundError{Contract: c.address, Method: methodName}
	}

	return newCall(c, method, args)
}

// MustInvoke is like Invoke but panics on error.
func (c *Contract) MustInvoke(methodName string, args ...any) *Call {
	call, err := c.Invoke(methodName, args...)
	if err != nil {
		panic(err)
	}
	return call
}

// HasMethod returns true if the contract has a method with the given name.
func (c *Contract) HasMethod(methodName string) bool {
	_, ok := c.abi.Methods[methodName]
	return ok
}

// MethodNames returns all method names in the contract ABI, sorted.
func (c *Contract) MethodNames() []string {
	names := make([]string, 0, len(c.abi.Methods))
	for name := range c.abi.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call performs a read-only call of the named method and returns the decoded outputs.
func (c *Contract) Call(opts *bind.CallOpts, methodName string, args ...any) ([]any, error) {
	if !c.HasMethod(methodName) {
		return nil, &MethodNotFoundError{Contract: c.address, Method: methodName}
	}
	var out []any
	if err := c.bound.Call(opts, &out, methodName, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// Transact sends a transaction invoking the named method.
func (c *Contract) Transact(opts *bind.TransactOpts, methodName string, args ...any) (*types.Transaction, error) {
	if !c.HasMethod(methodName) {
		return nil, &MethodNotFoundError{Contract: c.address, Method: methodName}
	}
	return c.bound.Transact(opts, methodName, args...)
}

// callAs calls a single-output method and converts the result to T.
func callAs[T any](c *Contract, opts *bind.CallOpts, methodName string, args ...any) (T, error) {
	var zero T
	out, err := c.Call(opts, methodName, args...)
	if err != nil {
		return zero, err
	}
	if len(out) == 0 {
		return zero, ErrNoReturnValue
	}
	return *abi.ConvertType(out[0], new(T)).(*T), nil
}
