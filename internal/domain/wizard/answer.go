package wizard

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/schema"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Patch wraps an answer into the partial section object FormData.Merge
// takes, e.g. {"stepCount":{"steps":10000}}.
func (q Question) Patch(value any) (json.RawMessage, error) {
	if len(q.path) == 0 {
		return nil, fmt.Errorf("question %q takes no answer", q.Name)
	}

	var obj any
	if q.Kind == KindDateRange {
		dr, ok := value.(DateRange)
		if !ok || len(q.path) != 2 {
			return nil, fmt.Errorf("question %q expects a date range", q.Name)
		}
		obj = map[string]any{q.path[0]: dr.Start, q.path[1]: dr.End}
	} else {
		obj = value
		for i := len(q.path) - 1; i >= 0; i-- {
			obj = map[string]any{q.path[i]: obj}
		}
	}
	return json.Marshal(obj)
}

// ParseAnswer turns free text typed in a chat into the value shape of q.
// Option questions accept either the option value or its label.
func ParseAnswer(q Question, text string) (any, error) {
	text = strings.TrimSpace(text)
	switch q.Kind {
	case KindNumber:
		n, err := strconv.Atoi(text)
		if err != nil || n <= 0 {
			return nil, errorz.NewFieldError(q.Name, "enter a whole number greater than zero")
		}
		return n, nil
	case KindSelect:
		v, ok := matchOption(q.Options, text)
		if !ok {
			return nil, errorz.NewFieldError(q.Name, "%q is not an available option", text)
		}
		return v, nil
	case KindMultiSelect:
		var out []string
		for _, part := range strings.Split(text, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			v, ok := matchOption(q.Options, part)
			if !ok {
				return nil, errorz.NewFieldError(q.Name, "%q is not an available option", strings.TrimSpace(part))
			}
			if !contains(out, v) {
				out = append(out, v)
			}
		}
		if len(out) == 0 {
			return nil, errorz.NewFieldError(q.Name, "select at least one option")
		}
		return out, nil
	case KindDistance:
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, errorz.NewFieldError(q.Name, "enter a distance like \"5 kilometers\"")
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || v <= 0 {
			return nil, errorz.NewFieldError("distance.value", "must be greater than zero")
		}
		unit, ok := matchOption(q.Options, fields[1])
		if !ok {
			return nil, errorz.NewFieldError("distance.unit", "%q is not an available unit", fields[1])
		}
		return schema.DistanceGoal{Value: v, Unit: unit}, nil
	case KindDateRange:
		fields := strings.Fields(strings.ReplaceAll(text, " - ", " "))
		if len(fields) != 2 {
			return nil, errorz.NewFieldError(q.Name, "enter two dates like \"2026-04-01 2026-04-30\"")
		}
		for _, f := range fields {
			if _, err := parseDate(q.Name, f); err != nil {
				return nil, err
			}
		}
		return DateRange{Start: fields[0], End: fields[1]}, nil
	case KindConfirm:
		return nil, errorz.NewFieldError(q.Name, "use the buttons to continue")
	default:
		if text == "" {
			return nil, errorz.NewFieldError(q.Name, "is required")
		}
		if q.MaxLength > 0 {
			if err := requireText(q.Name, text, q.MaxLength); err != nil {
				return nil, err
			}
		}
		return text, nil
	}
}

func matchOption(opts []Option, text string) (string, bool) {
	text = strings.TrimSpace(text)
	for _, o := range opts {
		if strings.EqualFold(o.Value, text) || strings.EqualFold(o.Label, text) {
			return o.Value, true
		}
	}
	return "", false
}
