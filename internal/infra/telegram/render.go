package telegram

import (
	"fmt"
	"strings"

	"github.com/kaiawatch/kaiawatch/internal/account"
	"github.com/kaiawatch/kaiawatch/internal/notify"
	"github.com/kaiawatch/kaiawatch/internal/subscription"
)

const welcomeMessage = `👋 Welcome to Kaia Address Viewer Bot!
Available Commands:
- /balance 0x... : Check Native balance
- /tokens 0x... : List Token holdings
- /nfts 0x... : List NFT holdings
- /track 0x... [label] : Get notified about new transactions
- /untrack 0x... or label : Stop tracking an address
- /list : Show tracked addresses

Example:
/balance 0x5eda3f9ab84dc831aa3c811af73f54c4ca9ec5aa
/track 0x5eda3f9ab84dc831aa3c811af73f54c4ca9ec5aa savings`

func renderBalance(balance account.Balance) string {
	return fmt.Sprintf(`🏦 [ADDRESS BALANCE] 🏦

Address: %s
Balance: %s KAIA ( $%s USD )`,
		balance.Address,
		balance.Balance.String(),
		balance.USDValue.StringFixed(2),
	)
}

func renderTokens(address string, tokens []account.TokenBalance) string {
	if len(tokens) == 0 {
		return "🔍 No tokens found for this wallet."
	}

	lines := make([]string, 0, len(tokens)+1)
	lines = append(lines, "💰 [TOKEN HOLDINGS] 💰\n\nAddress: "+address+"\n")
	for _, token := range tokens {
		lines = append(lines, fmt.Sprintf("- %s: %s %s", token.Name, token.Balance.String(), token.Symbol))
	}

	return strings.Join(lines, "\n")
}

func renderNFTs(holdings account.NFTHoldings) string {
	if len(holdings.KIP17) == 0 && len(holdings.KIP37) == 0 {
		return "🔍 No NFTs found for this address."
	}

	lines := []string{"🖼️ [NFT HOLDINGS] 🖼️\n\nAddress: " + holdings.Address}

	if len(holdings.KIP17) > 0 {
		lines = append(lines, "\n[KIP17]")
		for _, nft := range holdings.KIP17 {
			lines = append(lines, fmt.Sprintf("- %s: %d", nft.Name, nft.TokenCount))
		}
	}

	if len(holdings.KIP37) > 0 {
		lines = append(lines, "\n[KIP37]")
		for _, nft := range holdings.KIP37 {
			lines = append(lines, fmt.Sprintf("- %s: %d (%s)", nft.Name, nft.TokenCount, nft.TokenID))
		}
	}

	return strings.Join(lines, "\n")
}

func renderTracked(sub subscription.Subscription) string {
	if sub.Label != "" {
		return fmt.Sprintf("🔔 Now tracking %s as %q. You will be notified about new transactions.", sub.Address, sub.Label)
	}

	return fmt.Sprintf("🔔 Now tracking %s. You will be notified about new transactions.", sub.Address)
}

func renderSubscriptions(subs []subscription.Subscription) string {
	if len(subs) == 0 {
		return "🔍 You are not tracking any addresses. Use /track 0x... to start."
	}

	lines := make([]string, 0, len(subs)+1)
	lines = append(lines, "📋 [TRACKED ADDRESSES]\n")
	for _, sub := range subs {
		if sub.Label != "" {
			lines = append(lines, fmt.Sprintf("- %s (%s)", sub.Address, sub.Label))
		} else {
			lines = append(lines, "- "+sub.Address)
		}
	}

	return strings.Join(lines, "\n")
}

func renderNotification(n notify.Notification) string {
	name := n.Address
	if n.Label != "" {
		name = fmt.Sprintf("%s (%s)", n.Label, n.Address)
	}

	var headline string
	switch n.Tx.Direction {
	case "out":
		headline = fmt.Sprintf("📤 %s sent %s %s to %s", name, n.Tx.Amount.String(), n.Tx.TokenSymbol, n.Tx.To)
	case "self":
		headline = fmt.Sprintf("🔁 %s sent %s %s to itself", name, n.Tx.Amount.String(), n.Tx.TokenSymbol)
	default:
		headline = fmt.Sprintf("📥 %s received %s %s from %s", name, n.Tx.Amount.String(), n.Tx.TokenSymbol, n.Tx.From)
	}

	return fmt.Sprintf(`🔔 [NEW TRANSACTION] 🔔

%s

Block: %d
Hash: %s`,
		headline,
		n.Tx.BlockNumber,
		n.Tx.Hash,
	)
}
