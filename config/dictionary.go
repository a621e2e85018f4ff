package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/domino14/wgs/trie"
)

// dictionaryRetryAttempts and dictionaryRetryDelay bound how hard
// LoadDictionary/LoadWordList retry a failed file open before giving
// up - dictionary/word-list files can live on a slow or
// eventually-consistent mount in some deployments of this core.
const (
	dictionaryRetryAttempts = 3
	dictionaryRetryDelay    = 20 * time.Millisecond
)

func readFileWithRetry(path string) ([]byte, error) {
	return retry.DoWithData(
		func() ([]byte, error) {
			return os.ReadFile(path)
		},
		retry.Attempts(dictionaryRetryAttempts),
		retry.Delay(dictionaryRetryDelay),
		retry.LastErrorOnly(true),
	)
}

// tokenizeWords splits data on whitespace, uppercases each token, and
// drops any token containing a non-letter byte.
func tokenizeWords(data []byte) []string {
	var out []string
	for _, field := range strings.Fields(string(data)) {
		word := strings.ToUpper(field)
		ok := true
		for i := 0; i < len(word); i++ {
			if word[i] < 'A' || word[i] > 'Z' {
				ok = false
				break
			}
		}
		if ok && word != "" {
			out = append(out, word)
		}
	}
	return out
}

// LoadDictionary reads path as a whitespace-separated word list and
// builds a trie from it: uppercase on load, non-letter tokens dropped
// silently.
func LoadDictionary(path string) (*trie.Node, error) {
	data, err := readFileWithRetry(path)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary %q: %w", path, err)
	}

	root := trie.New()
	for _, word := range tokenizeWords(data) {
		root.AddWord(word)
	}
	return root, nil
}

// LoadWordList reads path as a whitespace-separated word list,
// returning the uppercased tokens in file order for use as candidate
// board lines under the WordList generation method.
func LoadWordList(path string) ([]string, error) {
	data, err := readFileWithRetry(path)
	if err != nil {
		return nil, fmt.Errorf("loading word list %q: %w", path, err)
	}
	return tokenizeWords(data), nil
}
