package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// the endpoint rejects requests above ~200 characters, so longer text is
// fetched in chunks and the MP3 frames are concatenated
const gttsMaxChunkRunes = 200

const gttsUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// GTTSClient speaks text through the Google Translate TTS endpoint.
type GTTSClient struct {
	lang    string
	baseURL string
	httpCli *http.Client
}

func NewGTTSClient(language string) *GTTSClient {
	return &GTTSClient{
		lang:    language,
		baseURL: "https://translate.google.com",
		httpCli: http.DefaultClient,
	}
}

func (t *GTTSClient) Synthesize(ctx context.Context, text, outPath string) error {
	chunks := splitTTSText(text, gttsMaxChunkRunes)
	if len(chunks) == 0 {
		return fmt.Errorf("gtts: empty text")
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	for _, chunk := range chunks {
		if err := t.fetchChunk(ctx, chunk, out); err != nil {
			return err
		}
	}
	return nil
}

func (t *GTTSClient) fetchChunk(ctx context.Context, chunk string, out io.Writer) error {
	q := url.Values{
		"ie":     {"UTF-8"},
		"client": {"tw-ob"},
		"tl":     {t.lang},
		"q":      {chunk},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		t.baseURL+"/translate_tts?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", gttsUserAgent)

	resp, err := t.httpCli.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gtts error: %s: %s", resp.Status, b)
	}

	_, err = io.Copy(out, resp.Body)
	return err
}

// splitTTSText breaks text into chunks of at most maxRunes runes, preferring
// whitespace boundaries. Scripts written without spaces fall back to hard
// rune splits.
func splitTTSText(text string, maxRunes int) []string {
	var chunks []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		runes := []rune(word)

		// oversized single word: hard split
		for len(runes) > maxRunes {
			flush()
			chunks = append(chunks, string(runes[:maxRunes]))
			runes = runes[maxRunes:]
		}
		if len(runes) == 0 {
			continue
		}

		need := len(runes)
		if curLen > 0 {
			need++ // joining space
		}
		if curLen+need > maxRunes {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(string(runes))
		curLen += len(runes)
	}
	flush()

	return chunks
}
