package unique

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// newHandle loads the named ABI and binds it at address. Every call reloads
// the ABI and resolves the binder again.
func newHandle(name string, address common.Address, backend bind.ContractBackend, opts []Option) (*Contract, error) {
	parsed, err := LoadABI(name)
	if err != nil {
		return nil, err
	}
	return NewContract(name, address, parsed, backend, opts...), nil
}

// NewCollectionHelpers binds the CollectionHelpers contract at its fixed address.
func NewCollectionHelpers(backend bind.ContractBackend, opts ...Option) (*CollectionHelpers, error) {
	c, err := newHandle(CollectionHelpersABI, CollectionHelpersAddress, backend, opts)
	if err != nil {
		return nil, err
	}
	return &CollectionHelpers{Contract: c}, nil
}

// NewContractHelpers binds the ContractHelpers contract at its fixed address.
func NewContractHelpers(backend bind.ContractBackend, opts ...Option) (*ContractHelpers, error) {
	c, err := newHandle(ContractHelpersABI, ContractHelpersAddress, backend, opts)
	if err != nil {
		return nil, err
	}
	return &ContractHelpers{Contract: c}, nil
}

// NewUniqueNFT binds a non-fungible collection.
func NewUniqueNFT(collection CollectionRef, backend bind.ContractBackend, opts ...Option) (*UniqueNFT, error) {
	addr, err := refAddress(collection)
	if err != nil {
		return nil, err
	}
	c, err := newHandle(UniqueNFTABI, addr, backend, opts)
	if err != nil {
		return nil, err
	}
	return &UniqueNFT{nftMethods{c}}, nil
}

// NewUniqueFungible binds a fungible collection.
func NewUniqueFungible(collection CollectionRef, backend bind.ContractBackend, opts ...Option) (*UniqueFungible, error) {
	addr, err := refAddress(collection)
	if err != nil {
		return nil, err
	}
	c, err := newHandle(UniqueFungibleABI, addr, backend, opts)
	if err != nil {
		return nil, err
	}
	return &UniqueFungible{erc20Methods{c}}, nil
}

// NewUniqueRefungible binds a refungible collection.
func NewUniqueRefungible(collection CollectionRef, backend bind.ContractBackend, opts ...Option) (*UniqueRefungible, error) {
	addr, err := refAddress(collection)
	if err != nil {
		return nil, err
	}
	c, err := newHandle(UniqueRefungibleABI, addr, backend, opts)
	if err != nil {
		return nil, err
	}
	return &UniqueRefungible{nftMethods{c}}, nil
}

// NewUniqueRefungibleToken binds the ERC-20 view of one refungible token,
// addressed through its nesting address.
func NewUniqueRefungibleToken(collectionID, tokenID int64, backend bind.ContractBackend, opts ...Option) (*UniqueRefungibleToken, error) {
	addr, err := TokenAddress(collectionID, tokenID)
	if err != nil {
		return nil, err
	}
	c, err := newHandle(UniqueRefungibleTokenABI, addr, backend, opts)
	if err != nil {
		return nil, err
	}
	return &UniqueRefungibleToken{erc20Methods{c}}, nil
}
