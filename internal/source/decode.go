package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"srfibrowse/internal/models"
)

// infoEntry accepts both the scraper's attribute name and the camel-case alias.
type infoEntry struct {
	Title           string `json:"title"`
	OfficialHTMLURL string `json:"official_html_url"`
	OfficialURL     string `json:"officialUrl"`
}

func (e *infoEntry) info() models.DocumentInfo {
	u := e.OfficialHTMLURL
	if u == "" {
		u = e.OfficialURL
	}
	return models.DocumentInfo{Title: e.Title, OfficialURL: u}
}

// DecodeInfoMap decodes a JSON object of id -> {title, official_html_url},
// keeping the order in which ids appear in the document.
// Entries with missing fields decode to empty strings; entries that are not
// objects make the whole document malformed.
func DecodeInfoMap(r io.Reader) (*models.InfoMap, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	m := models.NewInfoMap()
	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return nil, err
		}
		var entry *infoEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", ErrMalformed, key, err)
		}
		if entry == nil {
			return nil, fmt.Errorf("%w: entry %q is null", ErrMalformed, key)
		}
		m.Set(key, entry.info())
	}

	if err := expectEnd(dec); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeSymbolMap decodes a JSON object of id -> [symbol, ...].
// A null list is kept as a nil slice and means no known symbols.
func DecodeSymbolMap(r io.Reader) (models.SymbolMap, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	m := make(models.SymbolMap)
	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return nil, err
		}
		var symbols []string
		if err := dec.Decode(&symbols); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", ErrMalformed, key, err)
		}
		m[key] = symbols
	}

	if err := expectEnd(dec); err != nil {
		return nil, err
	}
	return m, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrMalformed, want, tok)
	}
	return nil
}

func nextKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: unexpected token %v", ErrMalformed, tok)
	}
	return key, nil
}

// expectEnd consumes the closing brace and rejects trailing data.
func expectEnd(dec *json.Decoder) error {
	if err := expectDelim(dec, '}'); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after object", ErrMalformed)
	}
	return nil
}
