package naming

import "strings"

var (
	defaultVideoExtensions = []string{
		".3g2", ".3gp", ".asf", ".avi", ".divx", ".dvr-ms", ".f4v", ".flv", ".img", ".iso",
		".m2t", ".m2ts", ".m2v", ".m4v", ".mk3d", ".mkv", ".mov", ".mp4", ".mpeg", ".mpg",
		".mts", ".ogg", ".ogm", ".ogv", ".rec", ".rm", ".rmvb", ".strm", ".tp", ".ts",
		".vob", ".webm", ".wmv", ".wtv", ".xvid",
	}

	defaultStubExtensions = []string{".disc"}

	defaultStubTypes = map[string]string{
		"dvd":    "dvd",
		"hddvd":  "hddvd",
		"bluray": "bluray",
		"brrip":  "bluray",
		"bd25":   "bluray",
		"bd50":   "bluray",
		"vhs":    "vhs",
		"tv":     "tv",
		"hdtv":   "tv",
		"dvb":    "tv",
	}

	defaultFormat3DTokens = []string{"fsbs", "hsbs", "sbs", "ftab", "htab", "tab", "sbs3d", "mvc"}
)

// Options controls which names the Parser recognizes.
type Options struct {
	// VideoExtensions are the extensions reported by IsVideoFile, with or without the leading dot.
	VideoExtensions []string
	// StubExtensions mark a file as a placeholder for media stored elsewhere.
	StubExtensions []string
	// StubTypes maps the token preceding a stub extension to its stub kind.
	StubTypes map[string]string
	// Format3DTokens are the tokens that flag a name as stereoscopic.
	Format3DTokens []string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	stubTypes := make(map[string]string, len(defaultStubTypes))
	for k, v := range defaultStubTypes {
		stubTypes[k] = v
	}

	return Options{
		VideoExtensions: append([]string(nil), defaultVideoExtensions...),
		StubExtensions:  append([]string(nil), defaultStubExtensions...),
		StubTypes:       stubTypes,
		Format3DTokens:  append([]string(nil), defaultFormat3DTokens...),
	}
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = struct{}{}
	}
	return set
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}
