package action

import (
	"github.com/opst/trackboard/pkg/api/types/bookmarks"
	"github.com/opst/trackboard/pkg/api/types/experiments"
)

func CreateExperiment(e experiments.Experiment) Created[experiments.Experiment] {
	return Created[experiments.Experiment]{Entity: Experiment, Item: e}
}

func UpdateExperiment(e experiments.Experiment) Updated[experiments.Experiment] {
	return Updated[experiments.Experiment]{Entity: Experiment, Item: e}
}

func DeleteExperiment(experimentName string) Deleted[string] {
	return Deleted[string]{Entity: Experiment, Id: experimentName}
}

func StopExperiment(experimentName string) Stopped[string] {
	return Stopped[string]{Entity: Experiment, Id: experimentName}
}

func RequestExperiment() Requested {
	return Requested{Entity: Experiment}
}

func RequestExperiments() Requested {
	return Requested{Entity: Experiment, Many: true}
}

func ReceiveExperiment(e experiments.Experiment) Received[experiments.Experiment] {
	return Received[experiments.Experiment]{Entity: Experiment, Item: e}
}

func ReceiveExperiments(es []experiments.Experiment, count int) ReceivedMany[experiments.Experiment] {
	return ReceivedMany[experiments.Experiment]{Entity: Experiment, Items: es, Count: count}
}

func ReceiveBookmarkedExperiments(bms []bookmarks.Bookmark[experiments.Experiment], count int) ReceivedMany[experiments.Experiment] {
	return ReceiveExperiments(bookmarks.Contents(bms), count)
}

func BookmarkExperiment(experimentName string) Bookmarked[string] {
	return Bookmarked[string]{Entity: Experiment, Id: experimentName, Bookmarked: true}
}

func UnbookmarkExperiment(experimentName string) Bookmarked[string] {
	return Bookmarked[string]{Entity: Experiment, Id: experimentName, Bookmarked: false}
}
