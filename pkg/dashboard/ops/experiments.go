package ops

import (
	"context"

	"github.com/opst/trackboard/pkg/api/types/bookmarks"
	"github.com/opst/trackboard/pkg/api/types/experiments"
	"github.com/opst/trackboard/pkg/dashboard/action"
	"github.com/opst/trackboard/pkg/dashboard/names"
)

// FetchExperiments fetches experiments in the project, like "alice.mnist".
func FetchExperiments(projectName string, filter ExperimentFilter) Operation {
	return New("fetch experiments of "+projectName, func(ctx context.Context, rt Runtime) error {
		p, err := names.ParseProject(projectName)
		if err != nil {
			return err
		}
		return fetchList(
			ctx, rt, p.Urlify()+"/experiments", filter.Values(), true,
			action.RequestExperiments(),
			func(es []experiments.Experiment, count int) action.Action {
				return action.ReceiveExperiments(es, count)
			},
		)
	})
}

// FetchBookmarkedExperiments fetches experiments bookmarked by the user.
func FetchBookmarkedExperiments(user string, filter ExperimentFilter) Operation {
	return New("fetch experiments bookmarked by "+user, func(ctx context.Context, rt Runtime) error {
		return fetchBookmarks(
			ctx, rt, "/bookmarks/"+user+"/experiments/", filter.Values(),
			action.RequestExperiments(),
			func(bms []bookmarks.Bookmark[experiments.Experiment], count int) action.Action {
				return action.ReceiveBookmarkedExperiments(bms, count)
			},
		)
	})
}

func FetchExperiment(user, project string, experimentId string) Operation {
	e := names.Experiment{Project: names.Project{User: user, Name: project}, Id: experimentId}
	return New("fetch experiment "+e.UniqueName(), func(ctx context.Context, rt Runtime) error {
		return fetchOne(
			ctx, rt, e.Url(false),
			action.RequestExperiment(),
			func(e experiments.Experiment) action.Action { return action.ReceiveExperiment(e) },
		)
	})
}

// DeleteExperiment deletes the experiment, like "alice.mnist.12".
//
// If redirect is true, it moves to the experiments of the project after deletion.
func DeleteExperiment(experimentName string, redirect bool) Operation {
	return New("delete experiment "+experimentName, func(ctx context.Context, rt Runtime) error {
		e, err := names.ParseExperiment(experimentName)
		if err != nil {
			return err
		}
		if err := del(ctx, rt, e.Url(false), action.DeleteExperiment(experimentName)); err != nil {
			return err
		}
		if redirect {
			rt.Navigator().Push(names.ProjectUrl(e.User, e.Name, true) + "#experiments")
		}
		return nil
	})
}

func StopExperiment(experimentName string) Operation {
	return New("stop experiment "+experimentName, func(ctx context.Context, rt Runtime) error {
		e, err := names.ParseExperiment(experimentName)
		if err != nil {
			return err
		}
		return post(ctx, rt, e.Url(false)+"/stop", action.StopExperiment(experimentName))
	})
}

func BookmarkExperiment(experimentName string) Operation {
	return New("bookmark experiment "+experimentName, func(ctx context.Context, rt Runtime) error {
		e, err := names.ParseExperiment(experimentName)
		if err != nil {
			return err
		}
		return post(ctx, rt, e.Url(false)+"/bookmark", action.BookmarkExperiment(experimentName))
	})
}

func UnbookmarkExperiment(experimentName string) Operation {
	return New("unbookmark experiment "+experimentName, func(ctx context.Context, rt Runtime) error {
		e, err := names.ParseExperiment(experimentName)
		if err != nil {
			return err
		}
		return del(ctx, rt, e.Url(false)+"/unbookmark", action.UnbookmarkExperiment(experimentName))
	})
}

// StopDoneExperiments fetches all pages of experiments of the project, and stops every
// experiment whose status is done.
//
// The location is left as it is. Stop requests are sent concurrently. report, if not nil,
// is called with the unique name of each experiment stopped. It can be called concurrently.
func StopDoneExperiments(projectName string, report func(experimentName string)) Operation {
	return New("stop done experiments of "+projectName, func(ctx context.Context, rt Runtime) error {
		p, err := names.ParseProject(projectName)
		if err != nil {
			return err
		}

		done := []string{}
		filter := ExperimentFilter{}
		for {
			fetched, total := 0, 0
			err := fetchList(
				ctx, rt, p.Urlify()+"/experiments", filter.Values(), false,
				action.RequestExperiments(),
				func(es []experiments.Experiment, count int) action.Action {
					fetched, total = len(es), count
					for _, e := range es {
						if experiments.IsDone(e.LastStatus) {
							done = append(done, e.UniqueName)
						}
					}
					return action.ReceiveExperiments(es, count)
				},
			)
			if err != nil {
				return err
			}
			filter.Offset += fetched
			if fetched == 0 || total <= filter.Offset {
				break
			}
		}

		targets := []Operation{}
		for _, name := range done {
			stop := StopExperiment(name)
			if report != nil {
				stop = New(stop.Name(), func(ctx context.Context, rt Runtime) error {
					if err := StopExperiment(name).Run(ctx, rt); err != nil {
						return err
					}
					report(name)
					return nil
				})
			}
			targets = append(targets, stop)
		}
		return All("stop experiments", targets...).Run(ctx, rt)
	})
}
