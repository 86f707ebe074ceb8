package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var ErrParsingError = errors.New("parsing error")

type (
	DataExtractor[T any] func(*http.Request) (T, error)

	parsableValue interface {
		string | int | int64 | bool | uuid.UUID
	}
)

// ParseRequest runs the extractor unless a previous parse step already failed.
func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(r)
}

func PathParameter[T parsableValue](param string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value, ok := mux.Vars(r)[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseValue[T](param, value)
	}
}

func QueryParameter[T parsableValue](param string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: query parameter %s not found", ErrParsingError, param)
		}

		return parseValue[T](param, value)
	}
}

func Header[T parsableValue](key string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.Header.Get(key)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: header %s not found", ErrParsingError, key)
		}

		return parseValue[T](key, value)
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		var result T
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		err := decoder.Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func parseValue[T parsableValue](name, value string) (T, error) {
	var (
		result T
		parsed any
		err    error
	)
	switch any(result).(type) {
	case uuid.UUID:
		parsed, err = uuid.Parse(value)
	case bool:
		parsed, err = strconv.ParseBool(value)
	case int:
		parsed, err = strconv.Atoi(value)
	case int64:
		parsed, err = strconv.ParseInt(value, 10, 64)
	default:
		parsed = strings.TrimSpace(value)
	}
	if err != nil {
		return result, fmt.Errorf("%w: %s: %w", ErrParsingError, name, err)
	}

	converted, ok := parsed.(T)
	if !ok {
		return result, fmt.Errorf("%w: %s: unsupported type %T", ErrParsingError, name, result)
	}

	return converted, nil
}
