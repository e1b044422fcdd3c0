package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/tikodea/dashboard-go/pkg/chat"
	"github.com/tikodea/dashboard-go/pkg/interfaces/backend"
)

// chat runs the research conversation for one video as a terminal REPL.
func (a *app) chat(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	session := chat.NewSession(id, a.client, a.logger)
	session.Load(ctx)

	history := session.Messages()
	if len(history) == 0 {
		dim.Println("Ask questions about this video to research further...")
	}
	for _, msg := range history {
		printMessage(msg)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := scanner.Text()
		if input == "quit" || input == "q" {
			return nil
		}

		before := len(session.Messages())
		if !session.Send(ctx, input) {
			continue
		}
		for _, msg := range session.Messages()[before:] {
			if msg.Role == backend.RoleAssistant {
				printMessage(msg)
			}
		}
	}
}

func printMessage(msg backend.ChatMessage) {
	if msg.Role == backend.RoleUser {
		color.Cyan("you> %s", msg.Content)
		return
	}
	fmt.Printf("ai>  %s\n", msg.Content)
}
