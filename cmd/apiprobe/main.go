package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/debby0330/aqi-analysis/internal/adapters/feed"
	"github.com/debby0330/aqi-analysis/internal/config"
)

// main probes the upstream feed and reports what actually came back: HTTP
// status, content type, payload shape, and the fields of the first record.
// Useful when the ministry changes the envelope or a key stops working.
func main() {
	limit := flag.Int("limit", 5, "number of records to request")
	timeout := flag.Duration("timeout", 30*time.Second, "request deadline")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	apiKey := os.Getenv("AQI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("AQI_API_KEY is required")
	}
	baseURL := config.Get("AQI_API_URL", feed.DefaultBaseURL)

	query := url.Values{}
	query.Set("api_key", apiKey)
	query.Set("format", "json")
	query.Set("limit", strconv.Itoa(*limit))
	probeURL := baseURL + "?" + query.Encode()

	fmt.Printf("GET %s\n", strings.Replace(probeURL, url.QueryEscape(apiKey), "<api_key>", 1))

	client := &http.Client{Timeout: *timeout}
	resp, err := client.Get(probeURL)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("status: %s\n", resp.Status)
	fmt.Printf("content-type: %s\n", resp.Header.Get("Content-Type"))
	fmt.Printf("bytes: %d\n", len(body))

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		fmt.Printf("payload: not JSON (%v)\n", err)
		fmt.Println(excerpt(string(body)))
		return
	}

	describe(payload)
}

func describe(payload any) {
	switch v := payload.(type) {
	case []any:
		fmt.Printf("payload: bare array, %d records\n", len(v))
		printFirst(v)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Printf("payload: object with keys %v\n", keys)

		for _, k := range []string{"records", "value"} {
			if list, ok := v[k].([]any); ok {
				fmt.Printf("%s: %d records\n", k, len(list))
				printFirst(list)
				return
			}
		}
		fmt.Println("no record list under records or value")
	default:
		fmt.Printf("payload: unexpected %T\n", payload)
	}
}

func printFirst(list []any) {
	if len(list) == 0 {
		return
	}
	rec, ok := list[0].(map[string]any)
	if !ok {
		fmt.Printf("first record: unexpected %T\n", list[0])
		return
	}

	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println("first record:")
	for _, k := range keys {
		fmt.Printf("  %-12s = %v\n", k, rec[k])
	}
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
