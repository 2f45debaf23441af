package video

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_video.go github.com/kasuboski/discern/pkg/video NameParser,ExtensionMatcher
