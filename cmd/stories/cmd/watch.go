package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/soapboxsocial/stories/pkg/client"
	"github.com/soapboxsocial/stories/pkg/playback"
)

var watch = &cobra.Command{
	Use:   "watch [owner]",
	Short: "plays the stories of a user in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

var (
	apiURL string
	token  string
	viewer int
)

func init() {
	watch.Flags().StringVar(&apiURL, "url", "http://localhost:8080", "api url")
	watch.Flags().StringVar(&token, "token", "", "session token")
	watch.Flags().IntVar(&viewer, "viewer", 0, "id of the signed in user")
}

func runWatch(_ *cobra.Command, args []string) error {
	owner, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrap(err, "invalid owner")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(apiURL, token, 10*time.Second)

	selection := playback.Selection{UserID: owner}

	groups, err := api.ListVisibleStories(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load stories")
	}

	for _, group := range groups {
		if group.UserID == owner {
			selection = playback.NewSelection(group)
		}
	}

	done := make(chan struct{})
	controller := playback.NewController(api, playback.SystemClock(), viewer, func() {
		close(done)
	})

	defer controller.Wait()

	err = controller.Open(ctx, selection)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			controller.Close()
			fmt.Println()
			return nil
		case <-done:
			fmt.Println()
			return nil
		case now := <-ticker.C:
			state, index := controller.State()
			if state == playback.Closed {
				fmt.Println()
				return nil
			}

			render(controller, state, index, now)
		}
	}
}

func render(controller *playback.Controller, state playback.State, index int, now time.Time) {
	segments := controller.Segments()
	if index >= len(segments) {
		return
	}

	bars := make([]string, 0, len(segments))
	for _, p := range controller.Progress(now) {
		filled := int(p * 10)
		bars = append(bars, strings.Repeat("#", filled)+strings.Repeat("-", 10-filled))
	}

	story := segments[index]
	fmt.Printf(
		"\r%s  %s  %s  [%s]",
		strings.Join(bars, " "),
		playback.AgeLabel(now, story.CreatedAt),
		story.MediaURL,
		state,
	)
}
