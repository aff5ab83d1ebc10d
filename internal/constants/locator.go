package constants

// editorVariants are the VS Code channels probed, in priority order.
var editorVariants = []string{"Code", "Code - Insiders", "VSCodium"}

// DefaultBaseDirEnv returns the environment variable that roots the
// editor's user data directory on the given GOOS.
func DefaultBaseDirEnv(goos string) string {
	if goos == "windows" {
		return "APPDATA"
	}
	return "HOME"
}

// DefaultCandidates returns slash-separated settings paths relative to the
// base directory, one per editor variant.
func DefaultCandidates(goos string) []string {
	var prefix string
	switch goos {
	case "windows":
		prefix = ""
	case "darwin":
		prefix = "Library/Application Support/"
	default:
		prefix = ".config/"
	}

	candidates := make([]string, 0, len(editorVariants))
	for _, variant := range editorVariants {
		candidates = append(candidates, prefix+variant+"/User/"+SettingsFilename)
	}
	return candidates
}
