package planner

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	errNoJSON      = errors.New("no JSON object in model response")
	errInvalidJSON = errors.New("model response JSON does not decode")
	errNotObject   = errors.New("model response JSON is not an object")
	errNoModel     = errors.New("no generative model configured")
)

// extractObject returns the span from the first '{' to the last '}' of text.
func extractObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return "", errNoJSON
	}
	return text[start : end+1], nil
}

// parseObject strictly validates raw and returns it as a gjson document.
func parseObject(raw string) (gjson.Result, error) {
	if !gjson.Valid(raw) {
		return gjson.Result{}, errInvalidJSON
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return gjson.Result{}, errNotObject
	}
	return doc, nil
}
