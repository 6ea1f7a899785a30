package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = zerr.New("invalid color")

	// ErrInvalidPattern is returned when a branch pattern is not a valid regular expression.
	ErrInvalidPattern = zerr.New("invalid branch pattern")

	// ErrMissingProfile is returned when a rule or operation references a profile that does not exist.
	ErrMissingProfile = zerr.New("profile not found")

	// ErrDuplicateProfileName is returned when a profile name is already taken.
	ErrDuplicateProfileName = zerr.New("profile name already exists")

	// ErrReservedProfileName is returned when a profile name is itself a color name.
	ErrReservedProfileName = zerr.New("profile name must not be a color name")

	// ErrInvalidProfileName is returned when a profile name is empty or blank.
	ErrInvalidProfileName = zerr.New("profile name must not be empty")

	// ErrProfileInUse is returned when deleting a profile that rules still reference.
	ErrProfileInUse = zerr.New("profile is referenced by rules")

	// ErrMissingBranchTable is returned when a repo rule references an unknown branch table.
	ErrMissingBranchTable = zerr.New("branch table not found")

	// ErrInvalidOpacity is returned when a mapping opacity lies outside [0,1].
	ErrInvalidOpacity = zerr.New("opacity must be between 0 and 1")

	// ErrInvalidSlot is returned when a mapping references an unknown palette slot.
	ErrInvalidSlot = zerr.New("unknown palette slot")

	// ErrEmptyQualifier is returned when a repo rule is added without a qualifier.
	ErrEmptyQualifier = zerr.New("repo qualifier must not be empty")

	// ErrIndexOutOfRange is returned when a rule move references a position outside the list.
	ErrIndexOutOfRange = zerr.New("rule index out of range")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when the config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find configuration file")

	// ErrValidationFailed is returned when validation reports at least one issue.
	ErrValidationFailed = zerr.New("configuration has validation issues")

	// ErrUnknownFormat is returned when an unsupported output format is requested.
	ErrUnknownFormat = zerr.New("unknown output format")

	// ErrWatchFailed is returned when the config watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch configuration")

	// ErrInvalidThemeKind is returned when a theme kind override is not dark, light or highContrast.
	ErrInvalidThemeKind = zerr.New("unknown theme kind")
)
