package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"foodtrend/internal/domain/suggestion"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// StripCodeFence removes a surrounding markdown code fence, with or without a
// "json" language tag. Text without a leading fence is returned trimmed.
func StripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	body := strings.TrimPrefix(trimmed, "```")
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	body = strings.TrimPrefix(body, "json")
	return strings.TrimSpace(body)
}

// ParseResult decodes raw model output into a suggestion result. Unknown
// fields, trailing data, and missing or empty required fields are rejected.
// Every failure wraps suggestion.ErrInvalidFormat.
func ParseResult(raw string) (suggestion.Result, error) {
	body := StripCodeFence(raw)
	if body == "" {
		return suggestion.Result{}, fmt.Errorf("%w: response is empty", suggestion.ErrInvalidFormat)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.DisallowUnknownFields()

	var result suggestion.Result
	if err := dec.Decode(&result); err != nil {
		return suggestion.Result{}, fmt.Errorf("%w: %v", suggestion.ErrInvalidFormat, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return suggestion.Result{}, fmt.Errorf("%w: unexpected data after JSON object", suggestion.ErrInvalidFormat)
	}

	if err := validate.Struct(result); err != nil {
		return suggestion.Result{}, fmt.Errorf("%w: %s", suggestion.ErrInvalidFormat, describeValidation(err))
	}

	return result, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
