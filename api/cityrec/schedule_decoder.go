package cityrec

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/mfiume/toronto-free-skates/models"
)

// DefaultAgeGroup is attached to rows that omit an age label upstream.
const DefaultAgeGroup = "All Ages"

// scheduleBlock mirrors the upstream payload: a sequence of objects,
// each optionally carrying an "r" array of shorthand session rows.
type scheduleBlock struct {
	Rows []scheduleRow `json:"r"`
}

type scheduleRow struct {
	Activity string `json:"c"`
	Date     string `json:"d"`
	Time     string `json:"t"`
	AgeGroup string `json:"age"`
	Facility string `json:"f"` // unused downstream, kept for completeness
}

// DecodeSchedule turns one rink's raw schedule payload into a list of
// leisure-skate sessions.
//
// The city serves these files UTF-16 little-endian; some mirrors serve
// plain 8-bit text. UTF-16 is tried first, and a failed structural
// parse (not a decoder error) triggers the 8-bit retry: Go's UTF-16
// decoder happily produces garbled text for 8-bit input instead of
// erroring, so the JSON parse is the only reliable fallback signal.
//
// Any failure yields an empty session list. One rink's bad payload must
// never take down the batch.
func DecodeSchedule(raw []byte) []models.Session {
	if blocks, err := parseBlocks(decodeUTF16LE(raw)); err == nil {
		return collectSessions(blocks)
	}

	blocks, err := parseBlocks(string(raw))
	if err != nil {
		return nil
	}
	return collectSessions(blocks)
}

func decodeUTF16LE(raw []byte) string {
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	decoded, err := decoder.Bytes(raw)
	if err != nil {
		return ""
	}
	return string(decoded)
}

func parseBlocks(text string) ([]scheduleBlock, error) {
	// A BOM surviving decoding would break the JSON parse.
	text = strings.TrimPrefix(text, "\ufeff")

	var blocks []scheduleBlock
	if err := json.Unmarshal([]byte(text), &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func collectSessions(blocks []scheduleBlock) []models.Session {
	var sessions []models.Session
	for _, block := range blocks {
		for _, row := range block.Rows {
			if !isLeisureSkate(row.Activity) {
				continue
			}
			age := row.AgeGroup
			if age == "" {
				age = DefaultAgeGroup
			}
			sessions = append(sessions, models.Session{
				Activity: row.Activity,
				Date:     row.Date,
				Time:     row.Time,
				AgeGroup: age,
			})
		}
	}
	return sessions
}

// isLeisureSkate is the sole activity-type filter: only public leisure
// skating survives, matched case-insensitively.
func isLeisureSkate(activity string) bool {
	a := strings.ToLower(activity)
	return strings.Contains(a, "leisure skate") || strings.Contains(a, "leisure ice")
}
