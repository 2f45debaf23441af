package video

import "strings"

const (
	dvdMarker    = "video_ts"
	bluRayMarker = "bdmv"
)

// IsDvdMarker reports whether a directory name marks a DVD folder structure
func IsDvdMarker(name string) bool {
	return strings.EqualFold(name, dvdMarker)
}

// IsBluRayMarker reports whether a directory name marks a Blu-ray folder structure
func IsBluRayMarker(name string) bool {
	return strings.EqualFold(name, bluRayMarker)
}
