package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Print the global feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showFeed()
	},
}

func showFeed() error {
	resp, err := http.Get(apiURL + "/api/feed")
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error: status %d: %s", resp.StatusCode, string(body))
	}

	if output == "json" {
		fmt.Println(string(body))
		return nil
	}

	var result struct {
		Posts []struct {
			ID      string   `json:"id"`
			UserID  string   `json:"userId"`
			Content string   `json:"content"`
			Likes   []string `json:"likes"`
		} `json:"posts"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	for _, p := range result.Posts {
		fmt.Printf("[%s] %s (%d likes)\n", p.UserID, p.Content, len(p.Likes))
	}
	return nil
}
