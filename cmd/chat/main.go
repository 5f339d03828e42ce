// Command chat is a terminal client for the LegaLuna API.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/ergochat/readline"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/PJRenu/LegaLuna/pkg/chat"
	"github.com/PJRenu/LegaLuna/pkg/chat/terminal"
	"github.com/PJRenu/LegaLuna/pkg/config"
	"github.com/PJRenu/LegaLuna/pkg/language"
	"github.com/PJRenu/LegaLuna/pkg/legalquery"
	"github.com/PJRenu/LegaLuna/pkg/logger"
)

func main() {
	if err := newRootCmd(run).Execute(); err != nil {
		os.Exit(1)
	}
}

type runFunc func(ctx context.Context, endpoint, apiKey string, lang language.Code) error

// newRootCmd builds the chat command. Settings come from the environment and
// are overridden by any flag given on the command line.
func newRootCmd(runner runFunc) *cobra.Command {
	var endpoint, pageURL, apiKey, lang string

	cmd := &cobra.Command{
		Use:          "chat",
		Short:        "Ask Indian legal questions in English or Hindi",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("endpoint") {
				cfg.Endpoint = endpoint
			}
			if flags.Changed("page-url") {
				cfg.PageURL = pageURL
			}
			if flags.Changed("api-key") {
				cfg.APIKey = apiKey
			}
			if flags.Changed("lang") {
				cfg.Language = lang
			}

			logger.Setup(cfg.LogLevel, "console", cmd.ErrOrStderr())
			code, err := language.Parse(cfg.Language)
			if err != nil {
				return err
			}
			resolved := legalquery.PageResolver(cfg.PageURL)(cfg.Endpoint)
			return runner(cmd.Context(), resolved, cfg.APIKey, code)
		},
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "chat API endpoint (env LEGALUNA_ENDPOINT)")
	cmd.Flags().StringVar(&pageURL, "page-url", "", "URL of the hosting page; an ngrok host overrides the endpoint (env LEGALUNA_PAGE_URL)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "value of the X-API-Key header (env LEGALUNA_API_KEY)")
	cmd.Flags().StringVar(&lang, "lang", "", "initial language, en or hi (env LEGALUNA_LANG)")
	return cmd
}

type lineReader struct{ rl *readline.Instance }

func (r lineReader) Readline() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", terminal.ErrInterrupted
	}
	return line, err
}

func run(ctx context.Context, endpoint, apiKey string, lang language.Code) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	rl, err := readline.NewFromConfig(&readline.Config{Prompt: "> "})
	if err != nil {
		return err
	}
	defer rl.Close()

	client := legalquery.New(endpoint, apiKey, legalquery.WithLogger(logger.For("legalquery")))
	view := terminal.New(os.Stdout, terminal.WithPrompt(rl.SetPrompt))
	ctrl := chat.New(client, view, chat.WithLanguage(lang), chat.WithLogger(logger.For("chat")))

	log.Debug().Str("endpoint", client.Endpoint()).Msg("chat client ready")
	return terminal.NewSession(ctrl, lineReader{rl: rl}, view).Run(ctx)
}
