package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/tikodea/dashboard-go/pkg/interfaces/backend"
)

// watch polls the video listing on a schedule and reports status
// transitions, so long-running analyses can be followed from the terminal.
func (a *app) watch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	interval := fs.Duration("interval", 0, "poll interval (default 30s)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec := "@every 30s"
	if *interval > 0 {
		spec = fmt.Sprintf("@every %s", interval.String())
	}

	lastStatus := map[int64]backend.VideoStatus{}
	poll := func() {
		page, err := a.client.ListVideos(ctx, backend.ListVideosParams{})
		if err != nil {
			a.logger.WithError(err).Warn("Watch poll failed")
			return
		}
		pending := 0
		for i := range page.Videos {
			v := &page.Videos[i]
			if v.Status == backend.StatusPending || v.Status == backend.StatusProcessing {
				pending++
			}
			prev, seen := lastStatus[v.ID]
			if seen && prev != v.Status {
				a.logger.WithFields(logrus.Fields{
					"video_id": v.ID,
					"from":     prev,
					"to":       v.Status,
				}).Info("Video status changed")
			}
			lastStatus[v.ID] = v.Status
		}
		a.logger.WithFields(logrus.Fields{
			"videos":     len(page.Videos),
			"processing": pending,
		}).Debug("Watch poll complete")
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(spec, poll); err != nil {
		return fmt.Errorf("failed to schedule poll: %w", err)
	}

	poll()
	scheduler.Start()
	defer scheduler.Stop()

	fmt.Printf("watching (%s), ctrl-c to stop\n", spec)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
	case <-ctx.Done():
	}
	return nil
}
