// Package benchmark replays historical claims against the case endpoint and
// measures how far the estimates land from the amounts actually paid.
package benchmark

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	columnDescription = "Hergang"
	columnCustomerNr  = "Kunden-Nr."
	columnCategory    = "SPARTE"
	columnTotal       = "TOTAL SCHADENAUFWAND"
)

// Claim is one historical claim row.
type Claim struct {
	CustomerNr       int      `json:"kundenNr"`
	Description      string   `json:"description"`
	Category         string   `json:"category,omitempty"`
	HistoricalAmount *float64 `json:"historicalAmount"`
}

// Input is a claim ready to be submitted.
type Input struct {
	Claim
	CaseImages []CaseImage `json:"caseImages"`
}

type CaseImage struct {
	ImageID   string `json:"imageId"`
	PublicURL string `json:"publicUrl"`
}

// ReadClaims parses the semicolon separated claims export. Rows whose
// customer number is not an integer are skipped.
func ReadClaims(r io.Reader) ([]Claim, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, required := range []string{columnDescription, columnCustomerNr, columnTotal} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var claims []Claim
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		nr, err := strconv.Atoi(field(rec, columnCustomerNr))
		if err != nil {
			continue
		}
		claims = append(claims, Claim{
			CustomerNr:       nr,
			Description:      field(rec, columnDescription),
			Category:         field(rec, columnCategory),
			HistoricalAmount: ParseAmount(field(rec, columnTotal)),
		})
	}
	return claims, nil
}

func ReadClaimsFile(name string) ([]Claim, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadClaims(f)
}

// ParseAmount reads amounts such as "1 234,50". Empty and "-" mean unknown.
func ParseAmount(s string) *float64 {
	s = strings.Join(strings.Fields(s), "")
	s = strings.Replace(s, ",", ".", 1)
	if s == "" || s == "-" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// FilterClaims keeps the claims whose customer number is wanted, in file order.
func FilterClaims(claims []Claim, wanted []int) []Claim {
	set := make(map[int]struct{}, len(wanted))
	for _, id := range wanted {
		set[id] = struct{}{}
	}
	var out []Claim
	for _, c := range claims {
		if _, ok := set[c.CustomerNr]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ImageSource locates claim photos on disk and maps them to public URLs.
// Photos are named "<nr>.jpg" for the cover and "<nr> - <i>.jpg" for extras.
type ImageSource struct {
	Dir           string
	PublicPrefix  string
	ImageIDPrefix string
}

type indexedFile struct {
	name  string
	index int
}

// Images returns the claim's photos, cover first, then by index.
func (s ImageSource) Images(customerNr int) ([]CaseImage, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}
	rx := regexp.MustCompile(`(?i)^` + strconv.Itoa(customerNr) + `(?: - (\d+))?\.jpe?g$`)

	var files []indexedFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := rx.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		idx := 0
		if m[1] != "" {
			idx, _ = strconv.Atoi(m[1])
		}
		files = append(files, indexedFile{name: e.Name(), index: idx})
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].index < files[j].index })

	images := make([]CaseImage, 0, len(files))
	for _, f := range files {
		images = append(images, CaseImage{
			ImageID:   path.Join(s.ImageIDPrefix, f.name),
			PublicURL: strings.TrimRight(s.PublicPrefix, "/") + "/" + pathEscape(f.name),
		})
	}
	return images, nil
}

// BuildInputs attaches photos to each claim. Claims without photos are kept;
// the service rejects them and the run records the failure.
func (s ImageSource) BuildInputs(claims []Claim) ([]Input, error) {
	inputs := make([]Input, 0, len(claims))
	for _, c := range claims {
		images, err := s.Images(c.CustomerNr)
		if err != nil {
			return nil, fmt.Errorf("images for %d: %w", c.CustomerNr, err)
		}
		inputs = append(inputs, Input{Claim: c, CaseImages: images})
	}
	return inputs, nil
}

func pathEscape(name string) string {
	return strings.ReplaceAll(filepath.ToSlash(name), " ", "%20")
}
