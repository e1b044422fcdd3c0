package main

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"strconv"

	"github.com/fatih/color"

	"github.com/tikodea/dashboard-go/pkg/analysis"
	"github.com/tikodea/dashboard-go/pkg/export"
	"github.com/tikodea/dashboard-go/pkg/format"
	"github.com/tikodea/dashboard-go/pkg/interfaces/backend"
)

var (
	heading  = color.New(color.FgCyan, color.Bold)
	dim      = color.New(color.FgHiBlack)
	favStar  = color.New(color.FgRed)
	fieldKey = color.New(color.FgGreen)
)

func (a *app) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "substring filter over title/description/transcript")
	favorites := fs.Bool("favorites", false, "only favorite videos")
	tag := fs.String("tag", "", "exact tag filter")
	skip := fs.Int("skip", -1, "pagination offset")
	limit := fs.Int("limit", -1, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := backend.ListVideosParams{
		FavoritesOnly: *favorites,
		Search:        *search,
		Tag:           *tag,
	}
	if *skip >= 0 {
		params.Skip = backend.Int(*skip)
	}
	if *limit >= 0 {
		params.Limit = backend.Int(*limit)
	}

	page, err := a.client.ListVideos(ctx, params)
	if err != nil {
		return err
	}

	heading.Printf("%d of %d videos\n\n", len(page.Videos), page.Total)
	for i := range page.Videos {
		printVideoLine(&page.Videos[i])
	}

	if tags := collectTags(page.Videos); len(tags) > 0 {
		dim.Printf("\ntags: %s\n", joinTags(tags))
	}
	return nil
}

func printVideoLine(v *backend.Video) {
	star := " "
	if v.IsFavorite {
		star = favStar.Sprint("*")
	}
	title := "(untitled)"
	if v.Title != nil && *v.Title != "" {
		title = *v.Title
	}
	fmt.Printf("%s %4d  %-10s  %-40.40s  views %-8s likes %s\n",
		star, v.ID, v.Status, title,
		format.CompactCount(v.ViewCount), format.CompactCount(v.LikeCount))
}

func collectTags(videos []backend.Video) []string {
	seen := map[string]bool{}
	for i := range videos {
		for _, t := range videos[i].Hashtags {
			seen[t] = true
		}
		for _, t := range videos[i].ManualTags {
			seen[t] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func joinTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += " "
		}
		out += "#" + t
	}
	return out
}

func (a *app) show(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	video, err := a.client.GetVideo(ctx, id)
	if err != nil {
		return err
	}

	title := "(untitled)"
	if video.Title != nil {
		title = *video.Title
	}
	heading.Printf("#%d %s\n", video.ID, title)
	fmt.Printf("%s\n", video.TikTokURL)
	if video.Creator != nil {
		fmt.Printf("by @%s\n", *video.Creator)
	}
	fmt.Printf("status: %s", video.Status)
	if video.Status == backend.StatusFailed && video.ErrorMessage != nil {
		fmt.Printf(" (%s)", *video.ErrorMessage)
	}
	fmt.Println()
	fmt.Printf("views %s  likes %s  added %s\n",
		format.CompactCount(video.ViewCount),
		format.CompactCount(video.LikeCount),
		format.Date(video.CreatedAt))
	if len(video.Hashtags) > 0 {
		dim.Printf("hashtags: %s\n", joinTags(video.Hashtags))
	}
	if len(video.ManualTags) > 0 {
		dim.Printf("tags: %s\n", joinTags(video.ManualTags))
	}

	for _, kind := range backend.AnalysisKinds {
		fmt.Println()
		heading.Printf("== %s ==\n", kind.Title())
		printNodes(analysis.Transform(kind.Title(), video.Analysis(kind)))
	}
	return nil
}

func printNodes(nodes []analysis.Node) {
	for _, node := range nodes {
		switch node.Kind {
		case analysis.NodeUnavailable:
			dim.Println("No analysis available")
		case analysis.NodeSummary:
			fmt.Println(node.Text)
		case analysis.NodeField:
			fieldKey.Printf("%s:\n", node.Label)
			switch node.Body {
			case analysis.BodyList:
				for _, item := range node.Items {
					fmt.Printf("  - %s\n", item)
				}
			default:
				fmt.Printf("  %s\n", node.Text)
			}
		}
	}
}

func (a *app) favorite(ctx context.Context, args []string) error {
	if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
		return fmt.Errorf("usage: dashboard favorite <video-id> <on|off>")
	}
	id, err := parseID(args[:1])
	if err != nil {
		return err
	}

	value := args[1] == "on"
	// Show the attempted state immediately; a failure is reported but the
	// display is not rolled back.
	if value {
		favStar.Printf("* video %d marked favorite\n", id)
	} else {
		fmt.Printf("video %d unmarked\n", id)
	}

	if err := a.client.SetFavorite(ctx, id, value); err != nil {
		return err
	}
	return nil
}

func (a *app) export(ctx context.Context, args []string) error {
	return a.deliver(ctx, args, export.ReportFilename, export.GenerateReport)
}

func (a *app) plan(ctx context.Context, args []string) error {
	return a.deliver(ctx, args, export.PlanFilename, export.GeneratePlan)
}

func (a *app) deliver(ctx context.Context, args []string, name func(*backend.Video) string, generate func(*backend.Video) string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dir := fs.String("dir", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(fs.Args())
	if err != nil {
		return err
	}
	video, err := a.client.GetVideo(ctx, id)
	if err != nil {
		return err
	}

	sink := &export.FileSink{Dir: *dir, Logger: a.logger}
	filename := name(video)
	if err := sink.Deliver(filename, generate(video)); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", filename)
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("video id required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid video id %q", args[0])
	}
	return id, nil
}
