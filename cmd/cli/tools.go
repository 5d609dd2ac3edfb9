package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

var toolArgs string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Invoke privileged assistant tools",
	Long:  "Commands for invoking the backend's privileged tool surface directly.",
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available tool names",
	Run: func(cmd *cobra.Command, args []string) {
		names := []string{
			"create_account",
			"delete_account",
			"update_user_profile",
			"force_logout_all",
			"recover_password",
			"ban_user",
			"create_post",
			"bulk_post",
			"create_comment",
			"add_friend",
			"follow_user",
		}
		for _, n := range names {
			fmt.Println(n)
		}
	},
}

var toolsInvokeCmd = &cobra.Command{
	Use:   "invoke <name>",
	Short: "Invoke a tool by name",
	Long: `Invoke a tool by name with a JSON argument record, for example:

  nexlink tools invoke create_post --args '{"name":"Alice","content":"hi @Everyone"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeTool(args[0], toolArgs)
	},
}

func init() {
	toolsInvokeCmd.Flags().StringVar(&toolArgs, "args", "{}", "Tool arguments as a JSON object")
	toolsCmd.AddCommand(toolsListCmd)
	toolsCmd.AddCommand(toolsInvokeCmd)
}

func invokeTool(name, rawArgs string) error {
	if !json.Valid([]byte(rawArgs)) {
		return fmt.Errorf("--args is not valid JSON")
	}

	payload := map[string]interface{}{
		"name": name,
		"args": json.RawMessage(rawArgs),
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := http.Post(apiURL+"/api/assistant/tools", "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API error: status %d: %s", resp.StatusCode, string(body))
	}

	if output == "json" {
		fmt.Println(string(body))
		return nil
	}

	var result struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		Password string `json:"password,omitempty"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	status := "ok"
	if !result.Success {
		status = "failed"
	}
	fmt.Printf("%s: %s\n", status, result.Message)
	if result.Password != "" {
		fmt.Printf("password: %s\n", result.Password)
	}
	return nil
}
