package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkers(t *testing.T) {
	assert.True(t, IsDvdMarker("VIDEO_TS"))
	assert.True(t, IsDvdMarker("video_ts"))
	assert.True(t, IsDvdMarker("Video_Ts"))
	assert.False(t, IsDvdMarker("VIDEO_TS.IFO"))
	assert.False(t, IsDvdMarker("BDMV"))

	assert.True(t, IsBluRayMarker("BDMV"))
	assert.True(t, IsBluRayMarker("bdmv"))
	assert.False(t, IsBluRayMarker(" bdmv"))
	assert.False(t, IsBluRayMarker("VIDEO_TS"))
}
