package video

// Packaging is the physical form a video is stored in.
type Packaging string

const (
	PackagingVideoFile Packaging = "VideoFile"
	PackagingIso       Packaging = "Iso"
	PackagingDvd       Packaging = "Dvd"
	PackagingBluRay    Packaging = "BluRay"
	PackagingHdDvd     Packaging = "HdDvd"
)

// StereoFormat is the frame packing used by 3D content. The zero value means the item is not known to be 3D.
type StereoFormat string

const (
	StereoFormatNone             StereoFormat = ""
	StereoFormatFullSideBySide   StereoFormat = "FullSideBySide"
	StereoFormatFullTopAndBottom StereoFormat = "FullTopAndBottom"
	StereoFormatHalfSideBySide   StereoFormat = "HalfSideBySide"
	StereoFormatHalfTopAndBottom StereoFormat = "HalfTopAndBottom"
)

// Item describes a classified library entry
type Item struct {
	Path           string       `json:"path"`
	Name           string       `json:"name"`
	Packaging      Packaging    `json:"packaging"`
	ProductionYear *int         `json:"productionYear,omitempty"`
	StereoFormat   StereoFormat `json:"stereoFormat,omitempty"`
	// IsInMixedFolder is set for single files, which may share a directory with unrelated media.
	IsInMixedFolder bool `json:"isInMixedFolder"`
	// IsPlaceholder is set when the entry is a stub standing in for media stored elsewhere.
	IsPlaceholder bool `json:"isPlaceholder"`
	// IsShortcut is set when the entry references external content.
	IsShortcut bool `json:"isShortcut"`
}

// Video returns the item itself. Types embedding Item get it promoted, which lets
// Resolve fill them in.
func (i *Item) Video() *Item {
	return i
}

// Is3D reports whether a stereo format was detected
func (i Item) Is3D() bool {
	return i.StereoFormat != StereoFormatNone
}
