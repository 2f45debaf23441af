package naming

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const (
	yearPattern     = `(?:^|[ ._\-(\[])((?:19|20)\d{2})(?:$|[ ._\-)\]])`
	releasePattern  = `(?i)(?:^|[ ._\-(\[])(?:3d|fsbs|hsbs|h-sbs|sbs3d|sbs|ftab|htab|h-tab|tab|mvc|480p|576p|720p|1080[pi]|2160p|4k|uhd|hdr|bluray|blu-ray|brrip|bdrip|bd25|bd50|dvd|dvdrip|hddvd|web-?dl|webrip|hdtv|x264|x265|h264|h265|hevc|remux|extended|unrated|proper|repack)(?:$|[ ._\-)\]])`
	tokenDelimiters = " ._-()[]"
	marker3D        = "3d"
)

var (
	yearRegex    = regexp.MustCompile(yearPattern)
	releaseRegex = regexp.MustCompile(releasePattern)
	spaceRegex   = regexp.MustCompile(`\s+`)
)

// Info is what the Parser can tell about a path from its name alone.
type Info struct {
	Year      *int
	Name      string
	Container string
	IsStub    bool
	StubType  string
	Is3D      bool
	Format3D  string
}

// Parser extracts Info from file and directory names. A Parser is immutable after
// construction and safe for concurrent use.
type Parser struct {
	videoExtensions map[string]struct{}
	stubExtensions  map[string]struct{}
	stubTypes       map[string]string
	format3DTokens  map[string]struct{}
}

// NewParser creates a Parser from the given options
func NewParser(opts Options) Parser {
	stubTypes := make(map[string]string, len(opts.StubTypes))
	for token, kind := range opts.StubTypes {
		stubTypes[strings.ToLower(token)] = strings.ToLower(kind)
	}

	return Parser{
		videoExtensions: extensionSet(opts.VideoExtensions),
		stubExtensions:  extensionSet(opts.StubExtensions),
		stubTypes:       stubTypes,
		format3DTokens:  tokenSet(opts.Format3DTokens),
	}
}

// IsVideoFile reports whether the extension of path is a known video extension
func (p Parser) IsVideoFile(path string) bool {
	_, ok := p.videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ParseFile parses the base name of a file path. It returns false when the path has no usable name.
func (p Parser) ParseFile(path string) (Info, bool) {
	base := baseName(path)
	if base == "" {
		return Info{}, false
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		// dotfiles like ".mkv" have no name to speak of
		return Info{}, false
	}

	info := Info{
		Container: strings.TrimPrefix(strings.ToLower(ext), "."),
	}

	if _, ok := p.stubExtensions[strings.ToLower(ext)]; ok {
		info.IsStub = true
		token := strings.TrimPrefix(strings.ToLower(filepath.Ext(stem)), ".")
		info.StubType = p.stubTypes[token]
	}

	info.Is3D, info.Format3D = p.parse3D(stem)
	info.Name, info.Year = cleanName(stem)

	return info, true
}

// ParseDirectory parses the base name of a directory path. It returns false when the path has no usable name.
func (p Parser) ParseDirectory(path string) (Info, bool) {
	base := baseName(path)
	if base == "" {
		return Info{}, false
	}

	info := Info{}
	info.Is3D, info.Format3D = p.parse3D(base)
	info.Name, info.Year = cleanName(base)

	return info, true
}

// parse3D looks for a known stereo token, optionally preceded by a "3d" token.
// A bare "3d" token flags the name without a format.
func (p Parser) parse3D(name string) (bool, string) {
	is3D := false
	for _, token := range splitTokens(name) {
		lower := strings.ToLower(token)
		if lower == marker3D {
			is3D = true
			continue
		}
		if _, ok := p.format3DTokens[lower]; ok {
			return true, token
		}
	}

	return is3D, ""
}

// cleanName trims release noise from a name and pulls out the production year.
func cleanName(name string) (string, *int) {
	var year *int
	cleaned := name

	// the last year that isn't the start of the name wins, so "2001 A Space Odyssey (1968)" keeps its title
	matches := yearRegex.FindAllStringSubmatchIndex(name, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		if m[2] == 0 {
			continue
		}

		y, err := strconv.Atoi(name[m[2]:m[3]])
		if err != nil {
			continue
		}

		year = &y
		cleaned = name[:m[0]]
		break
	}

	if loc := releaseRegex.FindStringIndex(cleaned); loc != nil && loc[0] > 0 {
		cleaned = cleaned[:loc[0]]
	}

	cleaned = strings.NewReplacer(".", " ", "_", " ").Replace(cleaned)
	cleaned = spaceRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.Trim(cleaned, " -")
	if cleaned == "" {
		cleaned = strings.TrimSpace(name)
	}

	return cleaned, year
}

func splitTokens(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return strings.ContainsRune(tokenDelimiters, r)
	})
}

func baseName(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}

	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return ""
	}

	return base
}
