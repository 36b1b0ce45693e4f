package tokens

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared struct validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate turns the root node of a config document into a Config. It fails
// with a *ValidationError on the first schema violation found.
func Validate(root *yaml.Node) (*Config, error) {
	root = resolve(root)

	fields := make(map[string]*yaml.Node)
	for _, f := range mappingFields(root) {
		if _, seen := fields[f.key]; seen {
			return nil, newValidationError(DuplicateKey, f.key, f.line,
				"%q is defined more than once.", f.key)
		}
		fields[f.key] = f.value
	}

	prefix := fields["prefix"]
	if !isString(prefix) || prefix.Value == "" {
		return nil, newValidationError(MissingPrefix, "prefix", nodeLine(prefix),
			`"prefix" is required and must be a string.`)
	}

	tokensNode := fields["tokens"]
	if !isMapping(tokensNode) {
		return nil, newValidationError(InvalidTokens, "tokens", nodeLine(tokensNode),
			`"tokens" is required and must be an object.`)
	}

	tokensPath, err := optionalPath(fields, "tokensPath", DefaultTokensPath)
	if err != nil {
		return nil, err
	}
	outDir, err := optionalPath(fields, "outDir", DefaultOutDir)
	if err != nil {
		return nil, err
	}

	var tokens Tokens
	for _, f := range mappingFields(tokensNode) {
		category, ok := ParseCategory(f.key)
		if !ok {
			return nil, newValidationError(UnknownCategory, f.key, f.line,
				"Unknown token category %q. Valid categories: %s",
				f.key, strings.Join(CategoryNames(), ", "))
		}
		if tokens.Group(category) != nil {
			return nil, newValidationError(DuplicateKey, f.key, f.line,
				"Token category %q is defined more than once.", f.key)
		}

		group, err := validateGroup(category, f.value, f.line)
		if err != nil {
			return nil, err
		}
		tokens.Set(group)
	}

	cfg := &Config{
		Prefix:     prefix.Value,
		TokensPath: tokensPath,
		OutDir:     outDir,
		Tokens:     tokens,
	}

	if err := validateStruct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// optionalPath reads an optional string setting. Absent, null and empty
// values fall back to def.
func optionalPath(fields map[string]*yaml.Node, key, def string) (string, error) {
	n, ok := fields[key]
	if !ok || isNull(n) {
		return def, nil
	}
	if !isString(n) {
		return "", newValidationError(InvalidField, key, nodeLine(n),
			"%q must be a string.", key)
	}
	if n.Value == "" {
		return def, nil
	}
	return n.Value, nil
}

func validateGroup(category Category, n *yaml.Node, line int) (*Group, error) {
	if !isMapping(n) {
		return nil, newValidationError(InvalidTokens, category.String(), line,
			"Token group %q must be an object.", category.String())
	}

	group := &Group{Category: category}
	seen := make(map[string]bool)
	for _, f := range mappingFields(n) {
		if seen[f.key] {
			return nil, newValidationError(DuplicateKey, describeField(category.String(), f.key, ""), f.line,
				"Token %q is defined more than once.", describeField(category.String(), f.key, ""))
		}
		seen[f.key] = true

		entry, err := validateEntry(category, f.key, f.value, f.line)
		if err != nil {
			return nil, err
		}
		group.Tokens = append(group.Tokens, Token{Key: f.key, Entry: entry})
	}
	return group, nil
}

func validateEntry(category Category, key string, n *yaml.Node, line int) (Entry, error) {
	id := describeField(category.String(), key, "")
	if !isMapping(n) {
		return Entry{}, newValidationError(InvalidTokens, id, line,
			"Token %q must be an object.", id)
	}

	var value, name, slug *yaml.Node
	var hasName, hasSlug bool
	for _, f := range mappingFields(n) {
		switch f.key {
		case "value":
			value = f.value
		case "name":
			name, hasName = f.value, true
		case "slug":
			slug, hasSlug = f.value, true
		}
	}

	if isFalsy(value) {
		return Entry{}, newValidationError(MissingValue, id, line,
			"Token %q is missing a \"value\".", id)
	}
	if !isString(value) {
		field := describeField(category.String(), key, "value")
		return Entry{}, newValidationError(InvalidValue, field, nodeLine(value),
			"Token %q must be a string.", field)
	}

	switch {
	case hasName && !hasSlug:
		return Entry{}, newValidationError(MismatchedPreset, id, line,
			"Token %q has \"name\" but no \"slug\". Both are required together.", id)
	case hasSlug && !hasName:
		return Entry{}, newValidationError(MismatchedPreset, id, line,
			"Token %q has \"slug\" but no \"name\". Both are required together.", id)
	case !hasName:
		return Unnamed(value.Value), nil
	}

	// A present but empty or non-string name or slug passes the pairing
	// rule but cannot address a preset.
	if !isString(name) || name.Value == "" || !isString(slug) || slug.Value == "" {
		return Unnamed(value.Value), nil
	}

	return Named(value.Value, name.Value, slug.Value), nil
}

func validateStruct(s any) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldName(fe)
		message := fmt.Sprintf("%q is invalid.", field)
		if fe.Tag() == "required" {
			message = fmt.Sprintf("%q is required and must be a non-empty string.", field)
		}
		return &ValidationError{Kind: InvalidField, Field: field, Message: message, Err: err}
	}
	return &ValidationError{Kind: InvalidField, Field: "config", Message: err.Error(), Err: err}
}

// fieldName turns a validator namespace ("Config.TokensPath") into the
// config document's key ("tokensPath").
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}
