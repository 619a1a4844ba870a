package covenant

// Collateral formulas for the covenant's issuance and redemption paths.
// All amounts are exact satoshis; callers are responsible for rejecting
// non-positive pair or token counts before calling in.

// IssuanceCollateral returns the satoshis locked when minting pairs against
// the covenant. Each pair is one YES plus one NO token, so both sides'
// collateral shares are posted.
func IssuanceCollateral(pairs, collateralPerToken int64) int64 {
	return pairs * 2 * collateralPerToken
}

// CancellationRefund returns the satoshis released when burning matched pairs.
// Cancelling N pairs refunds exactly what issuing N pairs cost.
func CancellationRefund(pairs, collateralPerToken int64) int64 {
	return pairs * 2 * collateralPerToken
}

// ResolutionRedeemPayout returns the satoshis paid per winning token batch
// after an oracle resolution. A winning token claims the full pair collateral.
func ResolutionRedeemPayout(tokens, collateralPerToken int64) int64 {
	return tokens * 2 * collateralPerToken
}

// ExpiryRedeemPayout returns the satoshis paid when redeeming tokens of a
// market that expired unresolved. Only the side's own collateral share is
// recoverable, so the rate is half the post-resolution one.
func ExpiryRedeemPayout(tokens, collateralPerToken int64) int64 {
	return tokens * collateralPerToken
}
