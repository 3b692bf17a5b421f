package folio

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// FetchLine is one investment record coming back from a data-fetch run,
// to be reconciled against the tree with MatchLines.
type FetchLine struct {
	Name     string
	Account  string // provider-side account identifier
	Key      string
	Amount   float64
	Currency string
}

// MatchesLine reports whether this record identifies the given line.
// The line's key wins over its display name when set.
func (fl *FetchLine) MatchesLine(l *Line) bool {
	ref := l.Key()
	if ref == "" {
		ref = l.Name()
	}
	if fl.Key != "" && strings.EqualFold(fl.Key, ref) {
		return true
	}
	return strings.EqualFold(fl.Name, ref)
}

// GenerateLine synthesizes a new tree leaf from this record.
func (fl *FetchLine) GenerateLine() *Line {
	return NewLineWith(fl.Name, fl.Amount, LineOpts{
		Key:      fl.Key,
		Currency: fl.Currency,
	})
}

// DecodeFetchLines reads a provider export and returns its records.
//
// The export is a JSON document with an "accounts" array; each account has
// a "name" and a "lines" array of {name, key, amount, currency} objects.
// Only the fields the reconciliation needs are plucked out, so richer
// provider exports decode fine.
func DecodeFetchLines(r io.Reader) ([]*FetchLine, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid export: %w", err)
	}

	jaccounts, err := jsonpath.Get("$.accounts[*]", jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid export: no accounts: %w", err)
	}
	accounts, ok := jaccounts.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a
		// single answer, normalize to a list.
		accounts = []any{jaccounts}
	}

	var fetched []*FetchLine
	for i, jaccount := range accounts {
		account, ok := jaccount.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid export: account %d is not an object", i)
		}
		accountName, err := jstring(account, "name")
		if err != nil {
			return nil, fmt.Errorf("invalid export: account %d: %w", i, err)
		}
		jlines, _ := account["lines"].([]any)
		for j, jline := range jlines {
			line, ok := jline.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("invalid export: account %q line %d is not an object", accountName, j)
			}
			name, err := jstring(line, "name")
			if err != nil {
				return nil, fmt.Errorf("invalid export: account %q line %d: %w", accountName, j, err)
			}
			amount, err := jfloat(line, "amount")
			if err != nil {
				return nil, fmt.Errorf("invalid export: account %q line %q: %w", accountName, name, err)
			}
			fetched = append(fetched, &FetchLine{
				Name:     name,
				Account:  accountName,
				Key:      joptstring(line, "key"),
				Amount:   amount,
				Currency: joptstring(line, "currency"),
			})
		}
	}
	return fetched, nil
}
