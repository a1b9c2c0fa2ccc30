package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CoercedPlan is the loosely typed draft right after parsing. Days stays
// untyped here; day and stop shapes are validated field by field while the
// plan is assembled.
type CoercedPlan struct {
	Summary string
	Days    []interface{}
}

// CoercePlanText turns whatever text the model produced into a plan skeleton.
// It never fails: fences and chatter are stripped, the outermost JSON object
// is extracted, a summary is synthesized from book_summary when present, and
// anything unusable collapses to an empty plan.
func CoercePlanText(raw string) CoercedPlan {
	empty := CoercedPlan{Summary: "", Days: []interface{}{}}

	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.Trim(s, "`")
		s = strings.TrimSpace(s)
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = strings.TrimSpace(s[4:])
		}
	}

	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first == -1 || last == -1 || last <= first {
		return empty
	}
	s = s[first : last+1]

	var parsed interface{}
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		s2 := strings.NewReplacer("\ufeff", "", "\r", "").Replace(s)
		if err := json.Unmarshal([]byte(s2), &parsed); err != nil {
			return empty
		}
	}

	data, ok := parsed.(map[string]interface{})
	if !ok {
		data = map[string]interface{}{}
	}

	out := CoercedPlan{Days: []interface{}{}}

	if summary, ok := data["summary"].(string); ok {
		out.Summary = summary
	} else if bs, ok := data["book_summary"].(map[string]interface{}); ok {
		title, _ := bs["title"].(string)
		plot, _ := bs["plot"].(string)
		if plot == "" {
			plot, _ = bs["summary"].(string)
		}
		out.Summary = strings.TrimSpace(fmt.Sprintf("%s 기반 여행 요약: %s", title, plot))
	}

	if days, ok := data["days"].([]interface{}); ok {
		out.Days = days
	}
	return out
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}, fallback int) int {
	// encoding/json decodes all numbers as float64.
	if f, ok := v.(float64); ok && f == float64(int(f)) {
		return int(f)
	}
	return fallback
}

func asStringSlice(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
