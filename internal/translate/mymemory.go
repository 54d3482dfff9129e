package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MyMemoryClient queries the free MyMemory translation API.
type MyMemoryClient struct {
	source  string
	target  string
	email   string // optional contact, extends the anonymous quota
	baseURL string
	client  *http.Client
}

func NewMyMemoryClient(source, target, email string) *MyMemoryClient {
	return &MyMemoryClient{
		source:  source,
		target:  target,
		email:   email,
		baseURL: "https://api.mymemory.translated.net",
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *MyMemoryClient) Translate(ctx context.Context, text string) (string, error) {
	q := url.Values{
		"q":        {text},
		"langpair": {c.source + "|" + c.target},
	}
	if c.email != "" {
		q.Set("de", c.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/get?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mymemory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("mymemory status: %s", resp.Status)
	}

	var parsed struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode mymemory: %w", err)
	}

	if parsed.ResponseStatus != 200 {
		return "", fmt.Errorf("mymemory error %d: %s", parsed.ResponseStatus, parsed.ResponseDetails)
	}

	translated := strings.TrimSpace(parsed.ResponseData.TranslatedText)
	// quota warnings come back inside the translation field with a 200 status
	if translated == "" || strings.HasPrefix(translated, "MYMEMORY WARNING") {
		return "", fmt.Errorf("mymemory gave no translation: %s", translated)
	}

	return translated, nil
}
