package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tracker "github.com/Harshitvit/codealpha-tasks"
	"github.com/Harshitvit/codealpha-tasks/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.5-flash"

const assistInstruction = `You are a portfolio analyst. The user owns the portfolio
described in the first message, valued at current market prices.
Answer questions about allocation, performance and risk of that portfolio.
You never give personalized investment advice, only factual analysis.`

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask questions about the portfolio" }
func (*assistCmd) Usage() string {
	return `pst assist [question]

  Starts an interactive session with an assistant that has the current
  holdings report as context. With a question argument, answers it and exits.
  Requires Gemini credentials in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, p, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := tracker.Valuate(ctx, p, quoter())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: assistInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, assistModel, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	// The holdings report is the whole context the assistant gets.
	briefing := "Here is my portfolio:\n\n" + renderer.Holdings(report)

	if f.NArg() > 0 {
		question := strings.Join(f.Args(), " ")
		return ask(ctx, chat, briefing+"\n"+question)
	}

	if status := ask(ctx, chat, briefing+"\nGive me a one paragraph overview."); status != subcommands.ExitSuccess {
		return status
	}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" || question == "quit" || question == "exit" {
			break
		}
		if status := ask(ctx, chat, question); status != subcommands.ExitSuccess {
			return status
		}
	}
	return subcommands.ExitSuccess
}

// ask sends one message and renders the answer.
func ask(ctx context.Context, chat *genai.Chat, question string) subcommands.ExitStatus {
	resp, err := chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking assistant:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no response from assistant")
		return subcommands.ExitFailure
	}
	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
