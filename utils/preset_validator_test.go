package utils

import (
	"testing"

	"github.com/amirphl/linkbio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePresetURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		preset models.LinkPreset
		want   bool
	}{
		// email
		{name: "mailto with address", url: "mailto:me@example.com", preset: models.PresetEmail, want: true},
		{name: "mailto without address", url: "mailto:", preset: models.PresetEmail, want: true},
		{name: "bare address", url: "me@example.com", preset: models.PresetEmail, want: true},
		{name: "no at sign", url: "notanemail", preset: models.PresetEmail, want: false},

		// chat
		{name: "discord invite", url: "https://discord.gg/abc", preset: models.PresetDiscord, want: true},
		{name: "discord lookalike", url: "https://notdiscord.com", preset: models.PresetDiscord, want: false},
		{name: "discord over http", url: "http://discord.gg/abc", preset: models.PresetDiscord, want: false},
		{name: "telegram", url: "https://t.me/somechannel", preset: models.PresetTelegram, want: true},
		{name: "telegram wrong host", url: "https://telegram.org/somechannel", preset: models.PresetTelegram, want: false},

		// social
		{name: "twitter bare", url: "https://twitter.com/someone", preset: models.PresetTwitter, want: true},
		{name: "twitter www", url: "https://www.twitter.com/someone", preset: models.PresetTwitter, want: true},
		{name: "twitter other host", url: "https://twitter.co/someone", preset: models.PresetTwitter, want: false},
		{name: "instagram bare", url: "https://instagram.com/someone", preset: models.PresetInstagram, want: true},
		{name: "instagram www", url: "https://www.instagram.com/someone", preset: models.PresetInstagram, want: true},
		{name: "instagram as twitter", url: "https://twitter.com/someone", preset: models.PresetInstagram, want: false},
		{name: "youtube bare", url: "https://youtube.com/@someone", preset: models.PresetYouTube, want: true},
		{name: "youtube www", url: "https://www.youtube.com/@someone", preset: models.PresetYouTube, want: true},
		{name: "youtube short host", url: "https://youtu.be/xyz", preset: models.PresetYouTube, want: false},
		{name: "tiktok bare", url: "https://tiktok.com/@someone", preset: models.PresetTikTok, want: true},
		{name: "tiktok www", url: "https://www.tiktok.com/@someone", preset: models.PresetTikTok, want: true},
		{name: "tiktok plain text", url: "tiktok someone", preset: models.PresetTikTok, want: false},
		{name: "linkedin bare", url: "https://linkedin.com/in/someone", preset: models.PresetLinkedIn, want: true},
		{name: "linkedin www", url: "https://www.linkedin.com/in/someone", preset: models.PresetLinkedIn, want: true},
		{name: "linkedin lookalike", url: "https://linkedin.co/in/someone", preset: models.PresetLinkedIn, want: false},

		// chain analytics, dex, explorer
		{name: "dexscreener", url: "https://dexscreener.com/ethereum/0xabc", preset: models.PresetDexScreener, want: true},
		{name: "dexscreener www", url: "https://www.dexscreener.com/ethereum/0xabc", preset: models.PresetDexScreener, want: false},
		{name: "uniswap", url: "https://app.uniswap.org/swap", preset: models.PresetUniswap, want: true},
		{name: "uniswap marketing site", url: "https://uniswap.org/", preset: models.PresetUniswap, want: false},
		{name: "etherscan", url: "https://etherscan.io/address/0xabc", preset: models.PresetEtherscan, want: true},
		{name: "etherscan other chain", url: "https://bscscan.com/address/0xabc", preset: models.PresetEtherscan, want: false},

		// general
		{name: "general https", url: "https://example.com/page", preset: models.PresetGeneral, want: true},
		{name: "general http", url: "http://example.com", preset: models.PresetGeneral, want: true},
		{name: "general upper scheme", url: "HTTPS://example.com", preset: models.PresetGeneral, want: true},
		{name: "general plain text", url: "not a url", preset: models.PresetGeneral, want: false},
		{name: "general ftp", url: "ftp://example.com", preset: models.PresetGeneral, want: false},
		{name: "general whitespace in path", url: "https://example.com/a b", preset: models.PresetGeneral, want: false},
		{name: "general missing host", url: "https:///path", preset: models.PresetGeneral, want: false},

		// unknown kind falls back to the generic rule
		{name: "unknown kind valid url", url: "https://example.com", preset: models.LinkPreset("myspace"), want: true},
		{name: "unknown kind invalid url", url: "example", preset: models.LinkPreset("myspace"), want: false},
		{name: "empty kind", url: "https://example.com", preset: models.LinkPreset(""), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePresetURL(tt.url, string(tt.preset)))
		})
	}
}

func TestValidatePresetURL_EmptyAlwaysRejected(t *testing.T) {
	for _, preset := range append(models.AllLinkPresets, models.LinkPreset("unknown")) {
		assert.False(t, ValidatePresetURL("", string(preset)), "preset %s", preset)
	}
}

func TestPresetRules(t *testing.T) {
	rules := PresetRules()
	require.Len(t, rules, len(models.AllLinkPresets))

	for i, rule := range rules {
		assert.Equal(t, models.AllLinkPresets[i], rule.Preset)
		assert.True(t, len(rule.Prefixes) > 0 || rule.Pattern != "", "preset %s has no rule", rule.Preset)
	}

	// every advertised prefix must be accepted by the validator itself
	for _, rule := range rules {
		for _, prefix := range rule.Prefixes {
			assert.True(t, ValidatePresetURL(prefix, string(rule.Preset)), "prefix %q for %s", prefix, rule.Preset)
		}
	}

	// callers cannot mutate the internal table through the returned slices
	rules[1].Prefixes[0] = "https://evil.example/"
	assert.True(t, ValidatePresetURL("https://discord.gg/abc", string(models.PresetDiscord)))
}

func TestSplitNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitNonEmpty(" a, b,,c ,"))
	assert.Nil(t, SplitNonEmpty(""))
}
