package wizard

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/schema"
	"strings"
	"time"
	"unicode/utf8"
)

const dateLayout = time.DateOnly

// Validate runs the gate of a single question. Questions without their own
// rule only need a non-empty answer.
func Validate(q Question, fd schema.FormData) error {
	if q.validate != nil {
		return q.validate(fd)
	}
	if q.Kind == KindConfirm {
		return nil
	}
	return requireValue(q.Name, q.Value(fd))
}

// CanAdvance reports whether Next/Submit is enabled at the cursor.
func CanAdvance(c schema.Cursor, fd schema.FormData) bool {
	return CheckCursor(c, fd) == nil
}

// CheckCursor is CanAdvance with the reason attached.
func CheckCursor(c schema.Cursor, fd schema.FormData) error {
	q, ok := QuestionAt(c, fd)
	if !ok {
		return errorz.NewFieldError("substep", "sub-step %d is out of range", c.SubStep)
	}
	return Validate(q, fd)
}

func requireValue(field string, v any) error {
	switch x := v.(type) {
	case nil:
		return errorz.NewFieldError(field, "is required")
	case string:
		if strings.TrimSpace(x) == "" {
			return errorz.NewFieldError(field, "is required")
		}
	case []string:
		if len(x) == 0 {
			return errorz.NewFieldError(field, "select at least one option")
		}
	case int:
		if x <= 0 {
			return errorz.NewFieldError(field, "must be greater than zero")
		}
	case float64:
		if x <= 0 {
			return errorz.NewFieldError(field, "must be greater than zero")
		}
	}
	return nil
}

func requireOption(field, v string, opts []Option) error {
	if err := requireValue(field, v); err != nil {
		return err
	}
	if !hasOption(opts, v) {
		return errorz.NewFieldError(field, "%q is not an available option", v)
	}
	return nil
}

func requireOptions(field string, values []string, opts []Option) error {
	if err := requireValue(field, values); err != nil {
		return err
	}
	for _, v := range values {
		if !hasOption(opts, v) {
			return errorz.NewFieldError(field, "%q is not an available option", v)
		}
	}
	return nil
}

func requirePositive(field string, v int) error {
	return requireValue(field, v)
}

func requireText(field, v string, maxLen int) error {
	if err := requireValue(field, v); err != nil {
		return err
	}
	if maxLen > 0 && utf8.RuneCountInString(v) > maxLen {
		return errorz.NewFieldError(field, "must be at most %d characters", maxLen)
	}
	return nil
}

func parseDate(field, v string) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return time.Time{}, errorz.NewFieldError(field, "is required")
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, errorz.NewFieldError(field, "must be a date formatted YYYY-MM-DD")
	}
	return t, nil
}

// FirstInvalid walks every question of every section in order and returns
// the cursor of the first one whose gate fails.
func FirstInvalid(fd schema.FormData) (schema.Cursor, error) {
	for step := 0; step < StepCount(); step++ {
		for sub, q := range Questions(step, fd) {
			if err := Validate(q, fd); err != nil {
				return schema.Cursor{Step: step, SubStep: sub}, err
			}
		}
	}
	return schema.Cursor{}, nil
}
