package ops

import (
	"context"

	"github.com/opst/trackboard/pkg/api/types/bookmarks"
	"github.com/opst/trackboard/pkg/api/types/builds"
	"github.com/opst/trackboard/pkg/dashboard/action"
	"github.com/opst/trackboard/pkg/dashboard/names"
)

// FetchBuilds fetches builds in the project, like "alice.mnist".
func FetchBuilds(projectName string, filter BuildFilter) Operation {
	return New("fetch builds of "+projectName, func(ctx context.Context, rt Runtime) error {
		p, err := names.ParseProject(projectName)
		if err != nil {
			return err
		}
		return fetchList(
			ctx, rt, p.Urlify()+"/builds", filter.Values(), true,
			action.RequestBuilds(),
			func(bs []builds.Build, count int) action.Action { return action.ReceiveBuilds(bs, count) },
		)
	})
}

// FetchBookmarkedBuilds fetches builds bookmarked by the user.
func FetchBookmarkedBuilds(user string, filter BuildFilter) Operation {
	return New("fetch builds bookmarked by "+user, func(ctx context.Context, rt Runtime) error {
		return fetchBookmarks(
			ctx, rt, "/bookmarks/"+user+"/builds/", filter.Values(),
			action.RequestBuilds(),
			func(bms []bookmarks.Bookmark[builds.Build], count int) action.Action {
				return action.ReceiveBookmarkedBuilds(bms, count)
			},
		)
	})
}

func FetchBuild(user, project string, buildId string) Operation {
	b := names.Build{Project: names.Project{User: user, Name: project}, Id: buildId}
	return New("fetch build "+b.UniqueName(), func(ctx context.Context, rt Runtime) error {
		return fetchOne(
			ctx, rt, b.Url(false),
			action.RequestBuild(),
			func(b builds.Build) action.Action { return action.ReceiveBuild(b) },
		)
	})
}

// DeleteBuild deletes the build, like "alice.mnist.builds.3".
//
// If redirect is true, it moves to the builds of the project after deletion.
func DeleteBuild(buildName string, redirect bool) Operation {
	return New("delete build "+buildName, func(ctx context.Context, rt Runtime) error {
		b, err := names.ParseBuild(buildName)
		if err != nil {
			return err
		}
		if err := del(ctx, rt, b.Url(false), action.DeleteBuild(buildName)); err != nil {
			return err
		}
		if redirect {
			rt.Navigator().Push(names.ProjectUrl(b.User, b.Name, true) + "#builds")
		}
		return nil
	})
}

func StopBuild(buildName string) Operation {
	return New("stop build "+buildName, func(ctx context.Context, rt Runtime) error {
		b, err := names.ParseBuild(buildName)
		if err != nil {
			return err
		}
		return post(ctx, rt, b.Url(false)+"/stop", action.StopBuild(buildName))
	})
}

func BookmarkBuild(buildName string) Operation {
	return New("bookmark build "+buildName, func(ctx context.Context, rt Runtime) error {
		b, err := names.ParseBuild(buildName)
		if err != nil {
			return err
		}
		return post(ctx, rt, b.Url(false)+"/bookmark", action.BookmarkBuild(buildName))
	})
}

func UnbookmarkBuild(buildName string) Operation {
	return New("unbookmark build "+buildName, func(ctx context.Context, rt Runtime) error {
		b, err := names.ParseBuild(buildName)
		if err != nil {
			return err
		}
		return del(ctx, rt, b.Url(false)+"/unbookmark", action.UnbookmarkBuild(buildName))
	})
}
