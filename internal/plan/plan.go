package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"adsched/internal/domain"
)

// ErrInvalidEntry is returned when a plan entry cannot be read as a name and
// an integer play count
var ErrInvalidEntry = errors.New("invalid plan entry")

// DefaultAds returns the built-in plan used when no other plan is given
func DefaultAds() []domain.Ad {
	return []domain.Ad{
		{Name: "Ad1", Plays: 60},
		{Name: "Ad2", Plays: 6},
		{Name: "Ad3", Plays: 2},
		{Name: "Ad4", Plays: 3},
	}
}

// ParseArgs parses entries of the form Name=Count or Name:Count, keeping
// their order
func ParseArgs(args []string) ([]domain.Ad, error) {
	ads := make([]domain.Ad, 0, len(args))
	for _, arg := range args {
		ad, err := parseEntry(arg)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, nil
}

func parseEntry(entry string) (domain.Ad, error) {
	sep := strings.LastIndexAny(entry, "=:")
	if sep < 0 {
		return domain.Ad{}, fmt.Errorf("%q: expected Name=Count: %w", entry, ErrInvalidEntry)
	}
	name := strings.TrimSpace(entry[:sep])
	count := strings.TrimSpace(entry[sep+1:])
	if name == "" {
		return domain.Ad{}, fmt.Errorf("%q: missing ad name: %w", entry, ErrInvalidEntry)
	}
	plays, err := strconv.Atoi(count)
	if err != nil {
		return domain.Ad{}, fmt.Errorf("%q: count %q is not an integer: %w", entry, count, ErrInvalidEntry)
	}
	return domain.Ad{Name: name, Plays: plays}, nil
}

// LoadFile reads a JSON plan file. The file holds either an object mapping
// ad names to counts or an array of {"name", "plays"} entries.
func LoadFile(path string) ([]domain.Ad, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	ads, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse plan file %s: %w", path, err)
	}
	return ads, nil
}

// Decode parses a JSON plan. Object keys keep the order they appear in.
func Decode(data []byte) ([]domain.Ad, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty plan: %w", ErrInvalidEntry)
	}
	if trimmed[0] == '[' {
		return decodeList(trimmed)
	}
	return decodeObject(trimmed)
}

type listEntry struct {
	Name  string          `json:"name"`
	Plays json.RawMessage `json:"plays"`
}

func decodeList(data []byte) ([]domain.Ad, error) {
	var entries []listEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode plan list: %w", err)
	}
	ads := make([]domain.Ad, 0, len(entries))
	for _, e := range entries {
		plays, err := toPlays(e.Name, e.Plays)
		if err != nil {
			return nil, err
		}
		ads = append(ads, domain.Ad{Name: e.Name, Plays: plays})
	}
	return ads, nil
}

// decodeObject walks the object token by token since decoding into a map
// would lose key order
func decodeObject(data []byte) ([]domain.Ad, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("plan must be a JSON object or array: %w", ErrInvalidEntry)
	}

	var ads []domain.Ad
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
		name := keyTok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
		plays, err := toPlays(name, value)
		if err != nil {
			return nil, err
		}
		ads = append(ads, domain.Ad{Name: name, Plays: plays})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after plan object: %w", ErrInvalidEntry)
	}
	return ads, nil
}

// toPlays accepts only a JSON number literal holding an integer; quoted
// numbers, null and other kinds are rejected
func toPlays(name string, raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return 0, fmt.Errorf("ad %q: count %s is not a number: %w", name, raw, ErrInvalidEntry)
	}
	plays, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fmt.Errorf("ad %q: count %s is not an integer: %w", name, raw, ErrInvalidEntry)
	}
	return plays, nil
}
