package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/domain/validation"
	"github.com/bnema/themehost/internal/logging"
	"github.com/rs/zerolog"
	"github.com/tailscale/hujson"
)

// MaxIncludeDepth bounds the length of an include chain.
const MaxIncludeDepth = 8

// Content is the materialized data of a theme resource.
type Content struct {
	Name                 string
	Type                 string
	Colors               map[string]string
	TokenRules           []entity.TokenRule
	SemanticHighlighting bool
}

type document struct {
	Name                 string                     `json:"name"`
	Type                 string                     `json:"type"`
	Include              string                     `json:"include"`
	Colors               map[string]json.RawMessage `json:"colors"`
	TokenColors          json.RawMessage            `json:"tokenColors"`
	SemanticHighlighting *bool                      `json:"semanticHighlighting"`
}

type tokenFile struct {
	TokenColors json.RawMessage `json:"tokenColors"`
	Settings    json.RawMessage `json:"settings"`
}

type rawRule struct {
	Name     string          `json:"name"`
	Scope    json.RawMessage `json:"scope"`
	Settings rawSettings     `json:"settings"`
}

type rawSettings struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	FontStyle  *string `json:"fontStyle"`
}

// LoadContent reads the theme resource at uri through loader, following
// include chains and tokenColors file references.
func LoadContent(ctx context.Context, loader port.ResourceLoader, uri string) (*Content, error) {
	r := &contentReader{
		loader:   loader,
		log:      logging.FromContext(ctx).With().Str("component", "theme-loader").Logger(),
		visiting: make(map[string]bool),
	}
	out := &Content{Colors: make(map[string]string)}
	if err := r.read(ctx, uri, out, 0); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseContent materializes a theme document held in memory. Includes and
// tokenColors references are resolved through loader relative to uri.
func ParseContent(ctx context.Context, loader port.ResourceLoader, uri string, data []byte) (*Content, error) {
	r := &contentReader{
		loader:   loader,
		log:      logging.FromContext(ctx).With().Str("component", "theme-loader").Logger(),
		visiting: map[string]bool{uri: true},
	}
	out := &Content{Colors: make(map[string]string)}
	if err := r.apply(ctx, uri, data, out, 0); err != nil {
		return nil, err
	}
	return out, nil
}

type contentReader struct {
	loader   port.ResourceLoader
	log      zerolog.Logger
	visiting map[string]bool
}

func (r *contentReader) read(ctx context.Context, uri string, out *Content, depth int) error {
	if depth > MaxIncludeDepth {
		return &ParseError{URI: uri, Err: ErrIncludeDepth}
	}
	if r.visiting[uri] {
		return &ParseError{URI: uri, Err: ErrIncludeCycle}
	}
	r.visiting[uri] = true
	defer delete(r.visiting, uri)

	data, err := r.loader.Read(ctx, uri)
	if err != nil {
		return err
	}
	return r.apply(ctx, uri, data, out, depth)
}

func (r *contentReader) apply(ctx context.Context, uri string, data []byte, out *Content, depth int) error {
	var doc document
	if err := decodeJSONC(uri, data, &doc); err != nil {
		return err
	}

	if doc.Include != "" {
		if err := r.read(ctx, SiblingURI(uri, doc.Include), out, depth+1); err != nil {
			return err
		}
	}

	if doc.Name != "" {
		out.Name = doc.Name
	}
	if doc.Type != "" {
		out.Type = doc.Type
	}
	if doc.SemanticHighlighting != nil {
		out.SemanticHighlighting = *doc.SemanticHighlighting
	}

	for key, raw := range doc.Colors {
		var value *string
		if err := json.Unmarshal(raw, &value); err != nil {
			r.log.Warn().Str("uri", uri).Str("key", key).Msg("color value is not a string, dropped")
			continue
		}
		if value == nil {
			// null clears a colour set by an included theme.
			delete(out.Colors, key)
			continue
		}
		normalized, err := validation.NormalizeColor(*value)
		if err != nil {
			r.log.Warn().Err(err).Str("uri", uri).Str("key", key).Msg("invalid color dropped")
			continue
		}
		out.Colors[key] = normalized
	}

	rules, err := r.tokenRules(ctx, uri, doc.TokenColors)
	if err != nil {
		return err
	}
	out.TokenRules = append(out.TokenRules, rules...)
	return nil
}

func (r *contentReader) tokenRules(ctx context.Context, uri string, raw json.RawMessage) ([]entity.TokenRule, error) {
	raw = json.RawMessage(strings.TrimSpace(string(raw)))
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	if raw[0] == '"' {
		var rel string
		if err := json.Unmarshal(raw, &rel); err != nil {
			return nil, &ParseError{URI: uri, Err: fmt.Errorf("tokenColors: %w", err)}
		}
		return r.tokenFile(ctx, SiblingURI(uri, rel))
	}

	return r.decodeRules(uri, raw)
}

func (r *contentReader) tokenFile(ctx context.Context, uri string) ([]entity.TokenRule, error) {
	data, err := r.loader.Read(ctx, uri)
	if err != nil {
		return nil, err
	}
	std, err := standardize(uri, data)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(std))
	if strings.HasPrefix(trimmed, "[") {
		return r.decodeRules(uri, std)
	}

	var file tokenFile
	if err := json.Unmarshal(std, &file); err != nil {
		return nil, &ParseError{URI: uri, Err: err}
	}
	switch {
	case len(file.TokenColors) > 0:
		return r.decodeRules(uri, file.TokenColors)
	case len(file.Settings) > 0:
		return r.decodeRules(uri, file.Settings)
	default:
		return nil, nil
	}
}

func (r *contentReader) decodeRules(uri string, raw json.RawMessage) ([]entity.TokenRule, error) {
	var rawRules []rawRule
	if err := json.Unmarshal(raw, &rawRules); err != nil {
		return nil, &ParseError{URI: uri, Err: fmt.Errorf("tokenColors: %w", err)}
	}

	rules := make([]entity.TokenRule, 0, len(rawRules))
	for i, rr := range rawRules {
		scope, err := decodeScope(rr.Scope)
		if err != nil {
			return nil, &ParseError{URI: uri, Err: fmt.Errorf("tokenColors[%d].scope: %w", i, err)}
		}
		rule := entity.TokenRule{Name: rr.Name, Scope: scope}
		rule.Settings.Foreground = r.ruleColor(uri, i, "foreground", rr.Settings.Foreground)
		rule.Settings.Background = r.ruleColor(uri, i, "background", rr.Settings.Background)
		if rr.Settings.FontStyle != nil {
			rule.Settings.FontStyle = strings.TrimSpace(*rr.Settings.FontStyle)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (r *contentReader) ruleColor(uri string, index int, field, value string) string {
	if value == "" {
		return ""
	}
	normalized, err := validation.NormalizeColor(value)
	if err != nil {
		r.log.Warn().Err(err).
			Str("uri", uri).
			Int("rule", index).
			Str("field", field).
			Msg("invalid token color dropped")
		return ""
	}
	return normalized
}

func decodeScope(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		var out []string
		for _, part := range strings.Split(single, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, errors.New("expected a string or an array of strings")
	}
	out := make([]string, 0, len(many))
	for _, s := range many {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func standardize(uri string, data []byte) ([]byte, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, &ParseError{URI: uri, Err: err}
	}
	return std, nil
}

func decodeJSONC(uri string, data []byte, v any) error {
	std, err := standardize(uri, data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(std, v); err != nil {
		return &ParseError{URI: uri, Err: err}
	}
	return nil
}
