package config

import (
	"fmt"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// DefaultOverrideFileName is the Lua override file the installer looks for
// next to its own executable when no --config flag is given.
const DefaultOverrideFileName = "sillisetup.lua"

// Parser parses Lua override files into an InstallConfig.
type Parser struct {
	log Logger
}

// NewParser creates a config parser. A nil logger falls back to a no-op.
func NewParser(log Logger) *Parser {
	if log == nil {
		log = defaultLogger()
	}
	return &Parser{log: log}
}

// ParseFile loads a Lua override file and applies it on top of the built-in
// defaults.
func (p *Parser) ParseFile(path string) (*InstallConfig, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	p.log.Debug("parsing config override", "path", path)
	return p.ParseString(string(code))
}

// ParseString parses a Lua override from a string. Useful for tests and
// in-memory configuration.
func (p *Parser) ParseString(luaCode string) (*InstallConfig, error) {
	L := newSandboxedVM()
	defer L.Close()

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return extractConfig(L)
}

// ParseError represents a config parsing error with a friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// extractConfig extracts the override from a Lua state. It expects a global
// "sillisetup" table and applies its fields on top of Default().
func extractConfig(L *lua.LState) (*InstallConfig, error) {
	root := L.GetGlobal("sillisetup")
	if root.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "missing or invalid 'sillisetup' table",
			Detail:  fmt.Sprintf("expected table, got %s", root.Type()),
		}
	}

	cfg := Default()
	table := root.(*lua.LTable)

	stringFields := map[string]*string{
		"app_name":               &cfg.AppName,
		"exe_file_name":          &cfg.ExeFileName,
		"exe_url":                &cfg.ExeURL,
		"expected_sha256":        &cfg.ExpectedSHA256,
		"instructions_file_name": &cfg.InstructionsFileName,
		"instructions_url":       &cfg.InstructionsURL,
		"signature_url":          &cfg.SignatureURL,
		"public_key_path":        &cfg.PublicKeyPath,
	}
	for key, dest := range stringFields {
		if val := table.RawGetString(key); val.Type() == lua.LTString {
			*dest = val.String()
		}
	}

	if val := table.RawGetString("instructions_url_by_locale"); val.Type() == lua.LTTable {
		locales := map[string]string{}
		val.(*lua.LTable).ForEach(func(k, v lua.LValue) {
			if k.Type() != lua.LTString || v.Type() != lua.LTString {
				return
			}
			locales[strings.ToLower(k.String())] = v.String()
		})
		cfg.InstructionsURLByLocale = locales
	}

	return cfg, nil
}

// FormatError formats a ParseError for user display. In verbose mode the raw
// Lua error is shown; otherwise only the most relevant part.
func FormatError(err error, verbose bool) string {
	if parseErr, ok := err.(*ParseError); ok {
		if verbose {
			return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
		}
		detail := parseErr.Detail
		if idx := strings.Index(detail, "stack traceback"); idx > 0 {
			detail = strings.TrimSpace(detail[:idx])
		}
		return fmt.Sprintf("%s: %s", parseErr.Message, detail)
	}
	return err.Error()
}
