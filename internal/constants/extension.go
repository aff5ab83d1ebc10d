package constants

// SectionKey is the settings key the Find in Current File extension reads its commands from.
const SectionKey = "findInCurrentFile"

// Command record field names as written by the extension.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldIsRegex     = "isRegex"
	FieldFind        = "find"
	FieldReplace     = "replace"
)
