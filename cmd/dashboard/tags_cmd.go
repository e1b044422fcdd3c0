package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/tikodea/dashboard-go/pkg/tags"
)

// tags runs a small editing loop over the staged tag collection:
// add/remove edits stay local until save, cancel restores the baseline.
func (a *app) tags(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	video, err := a.client.GetVideo(ctx, id)
	if err != nil {
		return err
	}

	editor := tags.NewEditor(id, video.ManualTags, a.client, a.logger)
	editor.OnSaved(func() {
		a.logger.WithField("video_id", id).Info("Tags saved, video should be refreshed")
	})
	editor.StartEditing()

	fmt.Printf("editing tags for video %d (add <tag>, rm <tag>, save, cancel, quit)\n", id)
	printStaged(editor)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		cmd, rest, _ := strings.Cut(line, " ")

		switch strings.TrimSpace(cmd) {
		case "add":
			if err := editor.AddTag(rest); err != nil {
				color.Red(editor.Err())
				continue
			}
			printStaged(editor)
		case "rm":
			editor.RemoveTag(strings.TrimSpace(rest))
			printStaged(editor)
		case "save":
			if err := editor.Save(ctx); err != nil {
				// staged tags survive a failed save; the user can retry
				color.Red(editor.Err())
				continue
			}
			fmt.Println("saved")
			return nil
		case "cancel":
			editor.Cancel()
			fmt.Println("cancelled")
			return nil
		case "quit", "q":
			return nil
		case "":
			continue
		default:
			fmt.Println("commands: add <tag>, rm <tag>, save, cancel, quit")
		}
	}
}

func printStaged(editor *tags.Editor) {
	staged := editor.StagedTags()
	if len(staged) == 0 {
		dim.Println("(no tags)")
		return
	}
	fmt.Println(joinTags(staged))
}
