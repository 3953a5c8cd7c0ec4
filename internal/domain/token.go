package domain

// Token describes one side of the tradable pair.
type Token struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"` // 18 for standard ERC-20 tokens
}

// TokenPair is the currently selected pair. Token0 is the base token (the
// asset being priced), Token1 the quote token (the pricing currency). Either
// slot may be nil while the user has not finished selecting; every derived
// view is undefined until both are set.
type TokenPair struct {
	Token0 *Token
	Token1 *Token
}

// Complete reports whether both tokens of the pair are selected.
func (p TokenPair) Complete() bool {
	return p.Token0 != nil && p.Token1 != nil
}

// Includes reports whether addr is one of the pair's token addresses.
// Always false on an incomplete pair.
func (p TokenPair) Includes(addr string) bool {
	if !p.Complete() {
		return false
	}
	return addr == p.Token0.Address || addr == p.Token1.Address
}
