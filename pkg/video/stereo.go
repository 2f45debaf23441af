package video

import "strings"

var stereoFormats = map[string]StereoFormat{
	"fsbs":  StereoFormatFullSideBySide,
	"ftab":  StereoFormatFullTopAndBottom,
	"hsbs":  StereoFormatHalfSideBySide,
	"htab":  StereoFormatHalfTopAndBottom,
	"sbs":   StereoFormatHalfSideBySide,
	"sbs3d": StereoFormatHalfSideBySide,
	"tab":   StereoFormatHalfTopAndBottom,
}

// StereoFormatFromToken maps a 3D token to its stereo format. Unknown tokens, or
// any token when is3D is false, map to StereoFormatNone.
func StereoFormatFromToken(is3D bool, token string) StereoFormat {
	if !is3D {
		return StereoFormatNone
	}

	return stereoFormats[strings.ToLower(token)]
}
