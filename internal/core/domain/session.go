package domain

import "time"

// WalletSession is the cached view of the connected wallet. The wallet
// provider stays authoritative; a cached session is only a hint.
type WalletSession struct {
	Address       string    `json:"address"`
	ChainID       int64     `json:"chain_id"`
	Authenticated bool      `json:"authenticated"`
	ConnectedAt   time.Time `json:"connected_at"`
	LastSeenAt    time.Time `json:"last_seen_at"`
}
