package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/kayan-consulting/kayan/internal/config"
	"github.com/kayan-consulting/kayan/internal/provider"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the configuration file",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		redacted := cfg.Redacted()
		data, err := redacted.YAML()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", cfg.Path())
		_, err = out.Write(data)
		return err
	},
}

var checkConfigCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config: %s [OK]\n", cfg.Path())
		if cfg.HasAPIKey() {
			fmt.Fprintf(out, "Consultant: %s [OK]\n", cfg.AI.Provider)
		} else {
			fmt.Fprintf(out, "Consultant: %s [NO API KEY] replies will apologise\n", cfg.AI.Provider)
		}
		return nil
	},
}

var initForce bool

var initConfigCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration file interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		if _, err := os.Stat(path); err == nil && !initForce {
			confirm := promptui.Prompt{
				Label:     fmt.Sprintf("%s exists, overwrite", path),
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				return errors.New("aborted")
			}
		}

		cfg := config.Default()

		langSelect := promptui.Select{
			Label: "Default language",
			Items: []string{"ar", "en"},
		}
		_, lang, err := langSelect.Run()
		if err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
		cfg.Language = lang

		providerSelect := promptui.Select{
			Label: "Consultant provider",
			Items: []string{provider.Gemini, provider.OpenAI},
		}
		_, cfg.AI.Provider, err = providerSelect.Run()
		if err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}

		apiKeyPrompt := promptui.Prompt{
			Label: "API Key (empty to use KAYAN_API_KEY)",
			Mask:  '*',
		}
		if cfg.AI.APIKey, err = apiKeyPrompt.Run(); err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}

		defaultModel := provider.DefaultGeminiModel
		if cfg.AI.Provider == provider.OpenAI {
			defaultModel = provider.DefaultOpenAIModel
		}
		modelPrompt := promptui.Prompt{
			Label:   "Model",
			Default: defaultModel,
		}
		if cfg.AI.Model, err = modelPrompt.Run(); err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}

		phonePrompt := promptui.Prompt{
			Label:   "Contact phone",
			Default: cfg.Brand.Phone,
			Validate: func(s string) error {
				if s == "" {
					return errors.New("phone is required")
				}
				return nil
			},
		}
		if cfg.Brand.Phone, err = phonePrompt.Run(); err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}

		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
		return nil
	},
}

func init() {
	initConfigCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file without asking")

	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(checkConfigCmd)
	configCmd.AddCommand(initConfigCmd)
}
