package video

import (
	"path/filepath"
	"strings"

	"github.com/kasuboski/discern/pkg/naming"
)

const (
	containerShortcut = "strm"
	containerIso      = "iso"
	containerImg      = "img"
)

// NameParser extracts name-based metadata from paths
type NameParser interface {
	ParseFile(path string) (naming.Info, bool)
	ParseDirectory(path string) (naming.Info, bool)
}

// ExtensionMatcher reports whether a path carries a known video extension
type ExtensionMatcher interface {
	IsVideoFile(path string) bool
}

// Child is an immediate child of a directory Entry
type Child struct {
	Name  string
	IsDir bool
}

// Entry is a single filesystem entry to be classified. Children are only considered for directories
// and are scanned in the order given.
type Entry struct {
	Path     string
	IsDir    bool
	Children []Child
}

// Classifier turns entries into Items. It holds no mutable state, so one Classifier can serve
// concurrent callers as long as its collaborators can.
type Classifier struct {
	parser     NameParser
	extensions ExtensionMatcher
}

// NewClassifier creates a Classifier backed by the given parser and extension matcher
func NewClassifier(parser NameParser, extensions ExtensionMatcher) Classifier {
	return Classifier{
		parser:     parser,
		extensions: extensions,
	}
}

// Classify describes entry as a video Item. It returns false when the entry is not a video.
// When parseName is set the Item is named from the parsed metadata, otherwise from the path.
func (c Classifier) Classify(entry Entry, parseName bool) (Item, bool) {
	var item Item
	if !c.classifyInto(&item, entry, parseName) {
		return Item{}, false
	}

	return item, true
}

// Resolve classifies entry into a new T. T is any type whose pointer exposes the Item it
// carries, usually by embedding Item.
func Resolve[T any, PT interface {
	*T
	Video() *Item
}](c Classifier, entry Entry, parseName bool) (*T, bool) {
	t := new(T)
	if !c.classifyInto(PT(t).Video(), entry, parseName) {
		return nil, false
	}

	return t, true
}

func (c Classifier) classifyInto(item *Item, entry Entry, parseName bool) bool {
	if entry.IsDir {
		return c.classifyDirectory(item, entry, parseName)
	}

	return c.classifyFile(item, entry, parseName)
}

func (c Classifier) classifyDirectory(item *Item, entry Entry, parseName bool) bool {
	packaging, ok := discPackaging(entry.Children)
	if !ok {
		return false
	}

	info, ok := c.parser.ParseDirectory(entry.Path)
	if !ok {
		return false
	}

	name := filepath.Base(entry.Path)
	if parseName {
		name = info.Name
	}

	*item = Item{
		Path:           entry.Path,
		Name:           name,
		Packaging:      packaging,
		ProductionYear: copyYear(info.Year),
		StereoFormat:   StereoFormatFromToken(info.Is3D, info.Format3D),
	}

	return true
}

// discPackaging returns the packaging of the first child directory that is a disc marker.
func discPackaging(children []Child) (Packaging, bool) {
	for _, child := range children {
		if !child.IsDir {
			continue
		}

		if IsDvdMarker(child.Name) {
			return PackagingDvd, true
		}
		if IsBluRayMarker(child.Name) {
			return PackagingBluRay, true
		}
	}

	return "", false
}

func (c Classifier) classifyFile(item *Item, entry Entry, parseName bool) bool {
	info, ok := c.parser.ParseFile(entry.Path)
	if !ok {
		return false
	}

	container := strings.ToLower(info.Container)
	isShortcut := container == containerShortcut

	if !c.extensions.IsVideoFile(entry.Path) && !info.IsStub && !isShortcut {
		return false
	}

	packaging := PackagingVideoFile
	if container == containerIso || container == containerImg {
		packaging = PackagingIso
	}

	if info.IsStub {
		packaging = stubPackaging(info.StubType, packaging)
	}

	base := filepath.Base(entry.Path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if parseName {
		name = info.Name
	}

	*item = Item{
		Path:            entry.Path,
		Name:            name,
		Packaging:       packaging,
		ProductionYear:  copyYear(info.Year),
		StereoFormat:    StereoFormatFromToken(info.Is3D, info.Format3D),
		IsInMixedFolder: true,
		IsPlaceholder:   info.IsStub,
		IsShortcut:      isShortcut,
	}

	return true
}

var stubPackagings = map[string]Packaging{
	"dvd":    PackagingDvd,
	"hddvd":  PackagingHdDvd,
	"bluray": PackagingBluRay,
}

// stubPackaging overrides fallback with the packaging named by a stub kind, if any.
func stubPackaging(stubType string, fallback Packaging) Packaging {
	if p, ok := stubPackagings[strings.ToLower(stubType)]; ok {
		return p
	}

	return fallback
}

func copyYear(year *int) *int {
	if year == nil {
		return nil
	}

	y := *year
	return &y
}
