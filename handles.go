package unique

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CollectionHelpers creates and inspects collections.
type CollectionHelpers struct {
	*Contract
}

// CollectionCreationFee returns the native amount required to create a collection.
func (h *CollectionHelpers) CollectionCreationFee(opts *bind.CallOpts) (*big.Int, error) {
	return callAs[*big.Int](h.Contract, opts, "collectionCreationFee")
}

// IsCollectionExist reports whether a collection lives at addr.
func (h *CollectionHelpers) IsCollectionExist(opts *bind.CallOpts, addr common.Address) (bool, error) {
	return callAs[bool](h.Contract, opts, "isCollectionExist", addr)
}

// CollectionAddress asks the chain for the address of a collection id.
func (h *CollectionHelpers) CollectionAddress(opts *bind.CallOpts, collectionID uint32) (common.Address, error) {
	return callAs[common.Address](h.Contract, opts, "collectionAddress", collectionID)
}

// CollectionID asks the chain for the id behind a collection address.
func (h *CollectionHelpers) CollectionID(opts *bind.CallOpts, addr common.Address) (uint32, error) {
	return callAs[uint32](h.Contract, opts, "collectionId", addr)
}

// CreateNFTCollection creates a non-fungible collection. opts.Value must cover the creation fee.
func (h *CollectionHelpers) CreateNFTCollection(opts *bind.TransactOpts, name, description, tokenPrefix string) (*types.Transaction, error) {
	return h.Transact(opts, "createNFTCollection", name, description, tokenPrefix)
}

// CreateRFTCollection creates a refungible collection.
func (h *CollectionHelpers) CreateRFTCollection(opts *bind.TransactOpts, name, description, tokenPrefix string) (*types.Transaction, error) {
	return h.Transact(opts, "createRFTCollection", name, description, tokenPrefix)
}

// CreateFTCollection creates a fungible collection.
func (h *CollectionHelpers) CreateFTCollection(opts *bind.TransactOpts, name string, decimals uint8, description, tokenPrefix string) (*types.Transaction, error) {
	return h.Transact(opts, "createFTCollection", name, decimals, description, tokenPrefix)
}

// DestroyCollection destroys the collection at addr.
func (h *CollectionHelpers) DestroyCollection(opts *bind.TransactOpts, addr common.Address) (*types.Transaction, error) {
	return h.Transact(opts, "destroyCollection", addr)
}

// ContractHelpers manages sponsoring and allowlists of user contracts.
type ContractHelpers struct {
	*Contract
}

// ContractOwner returns the owner of a user contract.
func (h *ContractHelpers) ContractOwner(opts *bind.CallOpts, contract common.Address) (common.Address, error) {
	return callAs[common.Address](h.Contract, opts, "contractOwner", contract)
}

// HasSponsor reports whether contract has a confirmed sponsor.
func (h *ContractHelpers) HasSponsor(opts *bind.CallOpts, contract common.Address) (bool, error) {
	return callAs[bool](h.Contract, opts, "hasSponsor", contract)
}

// SponsoringEnabled reports whether sponsoring is enabled for contract.
func (h *ContractHelpers) SponsoringEnabled(opts *bind.CallOpts, contract common.Address) (bool, error) {
	return callAs[bool](h.Contract, opts, "sponsoringEnabled", contract)
}

// Allowed reports whether user is on contract's allowlist.
func (h *ContractHelpers) Allowed(opts *bind.CallOpts, contract, user common.Address) (bool, error) {
	return callAs[bool](h.Contract, opts, "allowed", contract, user)
}

// SelfSponsoredEnable makes contract sponsor its own calls.
func (h *ContractHelpers) SelfSponsoredEnable(opts *bind.TransactOpts, contract common.Address) (*types.Transaction, error) {
	return h.Transact(opts, "selfSponsoredEnable", contract)
}

// ToggleAllowed adds user to or removes it from contract's allowlist.
func (h *ContractHelpers) ToggleAllowed(opts *bind.TransactOpts, contract, user common.Address, allowed bool) (*types.Transaction, error) {
	return h.Transact(opts, "toggleAllowed", contract, user, allowed)
}

// nftMethods are shared by non-fungible and refungible collections.
type nftMethods struct {
	*Contract
}

// Name returns the collection name.
func (h nftMethods) Name(opts *bind.CallOpts) (string, error) {
	return callAs[string](h.Contract, opts, "name")
}

// Symbol returns the collection token prefix.
func (h nftMethods) Symbol(opts *bind.CallOpts) (string, error) {
	return callAs[string](h.Contract, opts, "symbol")
}

// TotalSupply returns the number of live tokens.
func (h nftMethods) TotalSupply(opts *bind.CallOpts) (*big.Int, error) {
	return callAs[*big.Int](h.Contract, opts, "totalSupply")
}

// BalanceOf returns the number of tokens owned by owner.
func (h nftMethods) BalanceOf(opts *bind.CallOpts, owner common.Address) (*big.Int, error) {
	return callAs[*big.Int](h.Contract, opts, "balanceOf", owner)
}

// OwnerOf returns the owner of a token.
func (h nftMethods) OwnerOf(opts *bind.CallOpts, tokenID *big.Int) (common.Address, error) {
	return callAs[common.Address](h.Contract, opts, "ownerOf", tokenID)
}

// TokenURI returns a token's metadata URI.
func (h nftMethods) TokenURI(opts *bind.CallOpts, tokenID *big.Int) (string, error) {
	return callAs[string](h.Contract, opts, "tokenURI", tokenID)
}

// NextTokenID returns the id the next minted token will get.
func (h nftMethods) NextTokenID(opts *bind.CallOpts) (*big.Int, error) {
	return callAs[*big.Int](h.Contract, opts, "nextTokenId")
}

// Property reads a token property.
func (h nftMethods) Property(opts *bind.CallOpts, tokenID *big.Int, key string) ([]byte, error) {
	return callAs[[]byte](h.Contract, opts, "property", tokenID, key)
}

// Mint mints a new token to to.
func (h nftMethods) Mint(opts *bind.TransactOpts, to common.Address) (*types.Transaction, error) {
	return h.Transact(opts, "mint", to)
}

// MintWithTokenURI mints a new token with a metadata URI.
func (h nftMethods) MintWithTokenURI(opts *bind.TransactOpts, to common.Address, tokenURI string) (*types.Transaction, error) {
	return h.Transact(opts, "mintWithTokenURI", to, tokenURI)
}

// Transfer moves a token from the sender to to.
func (h nftMethods) Transfer(opts *bind.TransactOpts, to common.Address, tokenID *big.Int) (*types.Transaction, error) {
	return h.Transact(opts, "transfer", to, tokenID)
}

// TransferFrom moves a token between accounts.
func (h nftMethods) TransferFrom(opts *bind.TransactOpts, from, to common.Address, tokenID *big.Int) (*types.Transaction, error) {
	return h.Transact(opts, "transferFrom", from, to, tokenID)
}

// Burn destroys a token.
func (h nftMethods) Burn(opts *bind.TransactOpts, tokenID *big.Int) (*types.Transaction, error) {
	return h.Transact(opts, "burn", tokenID)
}

// UniqueNFT is a non-fungible collection.
type UniqueNFT struct {
	nftMethods
}

// UniqueRefungible is a refungible collection: NFTs whose ownership is split
// into fungible pieces.
type UniqueRefungible struct {
	nftMethods
}

// TokenContractAddress returns the ERC-20 address of a token's pieces.
func (h *UniqueRefungible) TokenContractAddress(opts *bind.CallOpts, tokenID *big.Int) (common.Address, error) {
	return callAs[common.Address](h.Contract, opts, "tokenContractAddress", tokenID)
}

// erc20Methods are shared by fungible collections and refungible tokens.
type erc20Methods struct {
	*Contract
}

// Name returns the token name.
func (h erc20Methods) Name(opts *bind.CallOpts) (string, error) {
	return callAs[string](h.Contract, opts, "name")
}

// Symbol returns the token symbol.
func (h erc20Methods) Symbol(opts *bind.CallOpts) (string, error) {
	return callAs[string](h.Contract, opts, "symbol")
}

// Decimals returns the number of decimals of an amount.
func (h erc20Methods) Decimals(opts *bind.CallOpts) (uint8, error) {
	return callAs[uint8](h.Contract, opts, "decimals")
}

// TotalSupply returns the total amount in circulation.
func (h erc20Methods) TotalSupply(opts *bind.CallOpts) (*big.Int, error) {
	return callAs[*big.Int](h.Contract, opts, "totalSupply")
}

// BalanceOf returns the amount held by owner.
func (h erc20Methods) BalanceOf(opts *bind.CallOpts, owner common.Address) (*big.Int, error) {
	return callAs[*big.Int](h.Contract, opts, "balanceOf", owner)
}

// Allowance returns how much spender may still move on behalf of owner.
func (h erc20Methods) Allowance(opts *bind.CallOpts, owner, spender common.Address) (*big.Int, error) {
	return callAs[*big.Int](h.Contract, opts, "allowance", owner, spender)
}

// Transfer moves amount from the sender to to.
func (h erc20Methods) Transfer(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error) {
	return h.Transact(opts, "transfer", to, amount)
}

// TransferFrom moves amount from from to to using the sender's allowance.
func (h erc20Methods) TransferFrom(opts *bind.TransactOpts, from, to common.Address, amount *big.Int) (*types.Transaction, error) {
	return h.Transact(opts, "transferFrom", from, to, amount)
}

// Approve lets spender move up to amount of the sender's balance.
func (h erc20Methods) Approve(opts *bind.TransactOpts, spender common.Address, amount *big.Int) (*types.Transaction, error) {
	return h.Transact(opts, "approve", spender, amount)
}

// UniqueFungible is a fungible collection exposed as an ERC-20 token.
type UniqueFungible struct {
	erc20Methods
}

// Mint mints amount to to.
func (h *UniqueFungible) Mint(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error) {
	return h.Transact(opts, "mint", to, amount)
}

// UniqueRefungibleToken is the ERC-20 view of a single refungible token.
type UniqueRefungibleToken struct {
	erc20Methods
}

// Repartition changes the number of pieces the token is split into.
func (h *UniqueRefungibleToken) Repartition(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error) {
	return h.Transact(opts, "repartition", amount)
}
