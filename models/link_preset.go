package models

// LinkPreset names the category of external service a page link points to.
// The set is fixed; unknown values are treated as PresetGeneral by the validator.
type LinkPreset string

const (
	PresetEmail LinkPreset = "email"

	// Chat
	PresetDiscord  LinkPreset = "discord"
	PresetTelegram LinkPreset = "telegram"

	// Social
	PresetTwitter   LinkPreset = "twitter"
	PresetInstagram LinkPreset = "instagram"
	PresetYouTube   LinkPreset = "youtube"
	PresetTikTok    LinkPreset = "tiktok"
	PresetLinkedIn  LinkPreset = "linkedin"

	// Chain analytics, dex and explorer
	PresetDexScreener LinkPreset = "dexscreener"
	PresetUniswap     LinkPreset = "uniswap"
	PresetEtherscan   LinkPreset = "etherscan"

	PresetGeneral LinkPreset = "general"
)

// AllLinkPresets lists every known preset in catalogue order
var AllLinkPresets = []LinkPreset{
	PresetEmail,
	PresetDiscord,
	PresetTelegram,
	PresetTwitter,
	PresetInstagram,
	PresetYouTube,
	PresetTikTok,
	PresetLinkedIn,
	PresetDexScreener,
	PresetUniswap,
	PresetEtherscan,
	PresetGeneral,
}

// IsKnown reports whether p is one of AllLinkPresets
func (p LinkPreset) IsKnown() bool {
	for _, known := range AllLinkPresets {
		if p == known {
			return true
		}
	}
	return false
}

func (p LinkPreset) String() string { return string(p) }
