package domain

import "strings"

// Theme keys written in simple (single color) mode.
const (
	KeyTitleBarActiveBackground     = "titleBar.activeBackground"
	KeyTitleBarActiveForeground     = "titleBar.activeForeground"
	KeyTitleBarInactiveBackground   = "titleBar.inactiveBackground"
	KeyTitleBarInactiveForeground   = "titleBar.inactiveForeground"
	KeyActivityBarBackground        = "activityBar.background"
	KeyActivityBarForeground        = "activityBar.foreground"
	KeyActivityBarInactiveFg        = "activityBar.inactiveForeground"
	KeyTabActiveBackground          = "tab.activeBackground"
	KeyTabActiveForeground          = "tab.activeForeground"
	KeyEditorGroupHeaderTabsBg      = "editorGroupHeader.tabsBackground"
	KeyStatusBarBackground          = "statusBar.background"
	KeyStatusBarForeground          = "statusBar.foreground"
	activityBarPrefix               = "activityBar."
	inactiveForegroundOpacityFactor = 0.6
)

// InactiveForegroundOpacity is the alpha given to synthesized inactive foregrounds.
const InactiveForegroundOpacity = inactiveForegroundOpacityFactor

// knobPrefixes are the key scopes the lightness knob applies to. Title bar keys are exempt.
var knobPrefixes = []string{
	"activityBar.",
	"tab.",
	"editorGroupHeader.",
	"statusBar.",
	"statusBarItem.",
}

// IsActivityBarKey reports whether key belongs to the activity bar scope that branch rules override.
func IsActivityBarKey(key string) bool {
	return strings.HasPrefix(key, activityBarPrefix)
}

// IsKnobScopedKey reports whether the lightness knob applies to key.
func IsKnobScopedKey(key string) bool {
	for _, p := range knobPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// IsBackgroundKey reports whether a theme key or slot name denotes a background.
func IsBackgroundKey(key string) bool {
	return strings.Contains(strings.ToLower(key), "background") ||
		strings.HasSuffix(key, "Bg") || strings.HasSuffix(key, "bg")
}

// IsForegroundKey reports whether a theme key or slot name denotes a foreground.
func IsForegroundKey(key string) bool {
	return strings.Contains(strings.ToLower(key), "foreground") ||
		strings.HasSuffix(key, "Fg") || strings.HasSuffix(key, "fg")
}

// IsInactiveKey reports whether key mentions "inactive" (case-insensitive).
func IsInactiveKey(key string) bool {
	return strings.Contains(strings.ToLower(key), "inactive")
}

// IsActiveKey reports whether key mentions "active" but not "inactive".
func IsActiveKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "active") && !strings.Contains(lower, "inactive")
}

var fgBgPairs = [][2]string{
	{"titleBar.activeBackground", "titleBar.activeForeground"},
	{"titleBar.inactiveBackground", "titleBar.inactiveForeground"},
	{"activityBar.background", "activityBar.foreground"},
	{"activityBarBadge.background", "activityBarBadge.foreground"},
	{"statusBar.background", "statusBar.foreground"},
	{"statusBar.debuggingBackground", "statusBar.debuggingForeground"},
	{"statusBar.noFolderBackground", "statusBar.noFolderForeground"},
	{"statusBarItem.remoteBackground", "statusBarItem.remoteForeground"},
	{"tab.activeBackground", "tab.activeForeground"},
	{"tab.inactiveBackground", "tab.inactiveForeground"},
	{"tab.hoverBackground", "tab.hoverForeground"},
	{"tab.unfocusedActiveBackground", "tab.unfocusedActiveForeground"},
	{"sideBar.background", "sideBar.foreground"},
	{"sideBarTitle.background", "sideBarTitle.foreground"},
	{"commandCenter.background", "commandCenter.foreground"},
	{"commandCenter.activeBackground", "commandCenter.activeForeground"},
	{"panel.background", "panelTitle.activeForeground"},
}

var activeInactivePairs = [][2]string{
	{"titleBar.activeBackground", "titleBar.inactiveBackground"},
	{"titleBar.activeForeground", "titleBar.inactiveForeground"},
	{"tab.activeBackground", "tab.inactiveBackground"},
	{"tab.activeForeground", "tab.inactiveForeground"},
	{"tab.activeBorder", "tab.unfocusedActiveBorder"},
	{"activityBar.activeBackground", "activityBar.background"},
	{"activityBar.foreground", "activityBar.inactiveForeground"},
	{"panelTitle.activeForeground", "panelTitle.inactiveForeground"},
	{"commandCenter.activeBackground", "commandCenter.inactiveBackground"},
	{"commandCenter.activeForeground", "commandCenter.inactiveForeground"},
}

var (
	fgBgLookup           = pairLookup(fgBgPairs)
	activeInactiveLookup = pairLookup(activeInactivePairs)
)

func pairLookup(pairs [][2]string) map[string]string {
	m := make(map[string]string, len(pairs)*2)
	for _, p := range pairs {
		m[p[0]] = p[1]
		m[p[1]] = p[0]
	}
	return m
}

// CorrespondingFgBgKey returns the foreground/background counterpart of key from a fixed table.
func CorrespondingFgBgKey(key string) (string, bool) {
	k, ok := fgBgLookup[key]
	return k, ok
}

// CorrespondingActiveInactiveKey returns the active/inactive counterpart of key from a fixed table.
func CorrespondingActiveInactiveKey(key string) (string, bool) {
	k, ok := activeInactiveLookup[key]
	return k, ok
}

// SwapFgBg swaps the Bg/Fg suffix of a slot name.
func SwapFgBg(slot SlotName) (SlotName, bool) {
	s := string(slot)
	switch {
	case strings.HasSuffix(s, "Bg"):
		return SlotName(strings.TrimSuffix(s, "Bg") + "Fg"), true
	case strings.HasSuffix(s, "Fg"):
		return SlotName(strings.TrimSuffix(s, "Fg") + "Bg"), true
	default:
		return "", false
	}
}

// SwapActiveInactive swaps the Active/Inactive segment of a slot name.
func SwapActiveInactive(slot SlotName) (SlotName, bool) {
	s := string(slot)
	switch {
	case strings.Contains(s, "Inactive"):
		return SlotName(strings.Replace(s, "Inactive", "Active", 1)), true
	case strings.Contains(s, "Active"):
		return SlotName(strings.Replace(s, "Active", "Inactive", 1)), true
	default:
		return "", false
	}
}

// IsCongruous reports whether a slot fits a theme key: same Bg/Fg-ness and same Active/Inactive-ness.
func IsCongruous(slot SlotName, key string) bool {
	s := string(slot)
	return IsBackgroundKey(s) == IsBackgroundKey(key) &&
		IsForegroundKey(s) == IsForegroundKey(key) &&
		IsActiveKey(s) == IsActiveKey(key) &&
		IsInactiveKey(s) == IsInactiveKey(key)
}
