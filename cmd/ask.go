package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kayan-consulting/kayan/internal/app"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/logging"
)

var askLang string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the AI consultant one question",
	Long: `Ask sends a single question to the consultant and prints the reply.
Without an API key the consultant's apology is printed instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			return fmt.Errorf("question must not be empty")
		}

		lang := askLang
		if lang == "" {
			lang = cfg.Language
		}
		language, err := i18n.Parse(lang)
		if err != nil {
			return err
		}

		content, err := app.LoadContent()
		if err != nil {
			return err
		}
		log := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
		replier := app.NewReplier(cmd.Context(), cfg, content, log)

		fmt.Fprintln(cmd.OutOrStdout(), replier.Reply(cmd.Context(), question, language))
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&askLang, "lang", "", "reply language: ar or en (default from config)")
}
