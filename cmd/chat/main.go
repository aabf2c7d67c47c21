package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"tailortalk/config"
)

const requestTimeout = 30 * time.Second

type chatRequest struct {
	Text string `json:"text"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// sendMessage posts one user message to the backend and returns the reply text.
func sendMessage(client *http.Client, backendURL, text string) (string, error) {
	body, err := json.Marshal(chatRequest{Text: text})
	if err != nil {
		return "", err
	}

	resp, err := client.Post(backendURL+"/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var er errorResponse
		if json.Unmarshal(raw, &er) == nil && er.Detail != "" {
			return "", fmt.Errorf("backend returned %d: %s", resp.StatusCode, er.Detail)
		}
		return "", fmt.Errorf("backend returned %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", err
	}
	return cr.Response, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	backendURL := strings.TrimRight(cfg.Chat.BackendURL, "/")
	client := &http.Client{Timeout: requestTimeout}

	fmt.Println("TailorTalk - Appointment Booking Assistant")
	fmt.Printf("Connected to %s\n", backendURL)
	fmt.Println(`Type a message like "book a meeting tomorrow afternoon" (Ctrl+D to quit).`)
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		reply, err := sendMessage(client, backendURL, text)
		if err != nil {
			fmt.Printf("assistant> Sorry, I couldn't reach the booking service: %v\n", err)
			continue
		}
		fmt.Printf("assistant> %s\n", reply)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "input error:", err)
	}
	fmt.Println("\nGoodbye!")
}
