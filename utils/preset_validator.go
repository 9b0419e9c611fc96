package utils

import (
	"regexp"
	"strings"

	"github.com/amirphl/linkbio/models"
)

// GenericURLPattern is the fallback rule: an absolute http(s) URL whose host
// starts with a non-whitespace character and which contains no whitespace.
const GenericURLPattern = `(?i)^https?://[^\s/$.?#].[^\s]*$`

var genericURLRegex = regexp.MustCompile(GenericURLPattern)

// presetRule accepts a URL either by prefix or by a structural check.
// Exactly one of prefixes/check is set.
type presetRule struct {
	prefixes []string
	check    func(url string) bool
}

func (r presetRule) accepts(url string) bool {
	if r.check != nil {
		return r.check(url)
	}
	for _, prefix := range r.prefixes {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

var presetRules = map[models.LinkPreset]presetRule{
	models.PresetEmail:       {check: isEmailLink},
	models.PresetDiscord:     {prefixes: []string{"https://discord.gg/"}},
	models.PresetTelegram:    {prefixes: []string{"https://t.me/"}},
	models.PresetTwitter:     {prefixes: []string{"https://twitter.com/", "https://www.twitter.com/"}},
	models.PresetInstagram:   {prefixes: []string{"https://instagram.com/", "https://www.instagram.com/"}},
	models.PresetYouTube:     {prefixes: []string{"https://youtube.com/", "https://www.youtube.com/"}},
	models.PresetTikTok:      {prefixes: []string{"https://tiktok.com/", "https://www.tiktok.com/"}},
	models.PresetLinkedIn:    {prefixes: []string{"https://linkedin.com/", "https://www.linkedin.com/"}},
	models.PresetDexScreener: {prefixes: []string{"https://dexscreener.com/"}},
	models.PresetUniswap:     {prefixes: []string{"https://app.uniswap.org/"}},
	models.PresetEtherscan:   {prefixes: []string{"https://etherscan.io/"}},
	models.PresetGeneral:     {check: IsGenericURL},
}

// ValidatePresetURL reports whether url is acceptable for the given preset kind.
// Empty input is always rejected and unknown kinds fall back to the generic URL rule.
func ValidatePresetURL(url, presetKind string) bool {
	if url == "" {
		return false
	}
	rule, ok := presetRules[models.LinkPreset(presetKind)]
	if !ok {
		rule = presetRules[models.PresetGeneral]
	}
	return rule.accepts(url)
}

// IsGenericURL reports whether s is an absolute http or https URL
func IsGenericURL(s string) bool {
	return genericURLRegex.MatchString(s)
}

// mailto: with an empty address is allowed so a link can be saved before the address is known
func isEmailLink(url string) bool {
	return strings.HasPrefix(url, "mailto:") || strings.Contains(url, "@")
}

// PresetRuleInfo describes a preset's acceptance rule for clients
type PresetRuleInfo struct {
	Preset   models.LinkPreset `json:"preset"`
	Prefixes []string          `json:"prefixes,omitempty"`
	Pattern  string            `json:"pattern,omitempty"`
}

// PresetRules returns the acceptance rules in catalogue order
func PresetRules() []PresetRuleInfo {
	rules := make([]PresetRuleInfo, 0, len(models.AllLinkPresets))
	for _, preset := range models.AllLinkPresets {
		info := PresetRuleInfo{Preset: preset}
		switch preset {
		case models.PresetEmail:
			info.Prefixes = []string{"mailto:"}
			info.Pattern = "@"
		case models.PresetGeneral:
			info.Pattern = GenericURLPattern
		default:
			info.Prefixes = append([]string(nil), presetRules[preset].prefixes...)
		}
		rules = append(rules, info)
	}
	return rules
}
