package action

import (
	"github.com/opst/trackboard/pkg/api/types/bookmarks"
	"github.com/opst/trackboard/pkg/api/types/builds"
)

func CreateBuild(b builds.Build) Created[builds.Build] {
	return Created[builds.Build]{Entity: Build, Item: b}
}

func UpdateBuild(b builds.Build) Updated[builds.Build] {
	return Updated[builds.Build]{Entity: Build, Item: b}
}

func DeleteBuild(buildName string) Deleted[string] {
	return Deleted[string]{Entity: Build, Id: buildName}
}

func StopBuild(buildName string) Stopped[string] {
	return Stopped[string]{Entity: Build, Id: buildName}
}

func RequestBuild() Requested {
	return Requested{Entity: Build}
}

func RequestBuilds() Requested {
	return Requested{Entity: Build, Many: true}
}

func ReceiveBuild(b builds.Build) Received[builds.Build] {
	return Received[builds.Build]{Entity: Build, Item: b}
}

func ReceiveBuilds(bs []builds.Build, count int) ReceivedMany[builds.Build] {
	return ReceivedMany[builds.Build]{Entity: Build, Items: bs, Count: count}
}

// ReceiveBookmarkedBuilds unwraps bookmarks and tells builds in them are received.
func ReceiveBookmarkedBuilds(bms []bookmarks.Bookmark[builds.Build], count int) ReceivedMany[builds.Build] {
	return ReceiveBuilds(bookmarks.Contents(bms), count)
}

func BookmarkBuild(buildName string) Bookmarked[string] {
	return Bookmarked[string]{Entity: Build, Id: buildName, Bookmarked: true}
}

func UnbookmarkBuild(buildName string) Bookmarked[string] {
	return Bookmarked[string]{Entity: Build, Id: buildName, Bookmarked: false}
}
