package domain

import (
	"time"

	"github.com/x-xyz/nftexplorer/base/ctx"
)

type WalletStatus string

const (
	WalletStatusNotConnected WalletStatus = "metamask is not connected"
	WalletStatusConnected    WalletStatus = "metamask is connected"
	WalletStatusNotInstalled WalletStatus = "metamask is not installed"
)

// WalletConnection is supplied by the wallet extension
type WalletConnection struct {
	ChainId         ChainId `json:"chainId" validate:"required"`
	SelectedAddress Address `json:"selectedAddress" validate:"required"`
}

type WalletBalances struct {
	NativeSymbol  string  `json:"nativeSymbol"`
	NativeBalance *string `json:"nativeBalance,omitempty"`
	TokenSymbol   *string `json:"tokenSymbol,omitempty"`
	TokenBalance  *string `json:"tokenBalance,omitempty"`
}

// Session replaces the page-level state of the browser tool: one per inspecting client,
// in memory only, expired after an idle ttl
type Session struct {
	Id         string            `json:"id"`
	Status     WalletStatus      `json:"status"`
	Wallet     *WalletConnection `json:"wallet,omitempty"`
	WalletName *string           `json:"walletName,omitempty"`
	Network    ChainProfile      `json:"network"`
	Balances   WalletBalances    `json:"balances"`
	Query      NFTQuery          `json:"query"`
	Snapshot   NFTSnapshot       `json:"snapshot"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// Connected returns the wallet when the session may issue chain calls
func (s *Session) Connected() (*WalletConnection, error) {
	switch {
	case s.Status == WalletStatusNotInstalled:
		return nil, ErrNotInstalled
	case s.Status != WalletStatusConnected || s.Wallet == nil:
		return nil, ErrNotConnected
	}
	return s.Wallet, nil
}

type SessionRepo interface {
	Create(ctx.Ctx, *Session) error
	FindOne(ctx.Ctx, string) (*Session, error)
	// Update applies fn to the latest stored session under the repo lock
	Update(ctx.Ctx, string, func(*Session)) (*Session, error)
	Delete(ctx.Ctx, string) error
}

type SessionUseCase interface {
	Create(ctx.Ctx) (*Session, error)
	Get(ctx.Ctx, string) (*Session, error)
	Delete(ctx.Ctx, string) error
	// Connect with a nil wallet marks the session as not installed
	Connect(ctx.Ctx, string, *WalletConnection) (*Session, error)
	CheckBalances(ctx.Ctx, string) (*Session, error)
	SetQuery(ctx.Ctx, string, NFTQuery) (*Session, error)
	CheckNFT(ctx.Ctx, string) (*Session, error)
	DisplayNFT(ctx.Ctx, string) (*Session, error)
}
