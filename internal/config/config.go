// Package config loads the cleanup rule set from defaults, an optional
// .logsweep.yaml in the target root, and LOGSWEEP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Strip policies for emoji-tagged calls. The original cleanup variants
// disagreed on whether warn/error calls were exempt from emoji removal,
// so the policy is explicit configuration here.
const (
	// StripInfo removes emoji-tagged console.log calls only.
	StripInfo = "info"

	// StripAll removes emoji-tagged calls at every level.
	StripAll = "all"
)

// Rules is the full rule set driving the matcher, transformer and walker.
type Rules struct {
	// Extensions lists candidate file extensions, dot included.
	Extensions []string `mapstructure:"extensions"`

	// ExcludeDirs are directory names skipped anywhere on the path.
	ExcludeDirs []string `mapstructure:"exclude_dirs"`

	// ExcludeSuffixes are file name suffixes skipped (test/spec files).
	ExcludeSuffixes []string `mapstructure:"exclude_suffixes"`

	// ExcludeFiles are exact base names never touched.
	ExcludeFiles []string `mapstructure:"exclude_files"`

	// StripLevels selects which call levels emoji removal applies to.
	StripLevels string `mapstructure:"strip_levels"`

	// EmojiRanges are inclusive code point ranges in "1F300-1F9FF" form.
	EmojiRanges []string `mapstructure:"emoji_ranges"`

	// Markers are case-sensitive tokens that mark a call for removal when
	// they appear as a quoted-string prefix.
	Markers []string `mapstructure:"markers"`

	// VerbosePatterns are case-insensitive substrings that mark a call as
	// noise worth removing.
	VerbosePatterns []string `mapstructure:"verbose_patterns"`

	// ImportLine is the exact logger import injected into rewritten files.
	ImportLine string `mapstructure:"import_line"`

	// ImportMarkers are substrings proving the import is already present.
	ImportMarkers []string `mapstructure:"import_markers"`

	// InstanceTemplate builds the logger declaration; the single %s is the
	// file's base name without extension.
	InstanceTemplate string `mapstructure:"instance_template"`
}

// CodeRange is an inclusive range of Unicode code points.
type CodeRange struct {
	Lo rune
	Hi rune
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("extensions", []string{".ts", ".tsx", ".js", ".jsx"})
	v.SetDefault("exclude_dirs", []string{
		"node_modules", ".git", "dist", "build", ".expo", ".next", "coverage", "vendor",
	})
	v.SetDefault("exclude_suffixes", []string{
		".test.ts", ".test.tsx", ".spec.ts", ".spec.tsx", ".test.js", ".spec.js",
	})
	v.SetDefault("exclude_files", []string{"logger.ts"})
	v.SetDefault("strip_levels", StripInfo)
	v.SetDefault("emoji_ranges", []string{
		"1F300-1F9FF", // symbols & pictographs, transport, supplemental
		"2600-26FF",   // miscellaneous symbols
		"2700-27BF",   // dingbats
		"FE00-FE0F",   // variation selectors riding on the above
		"1FA70-1FAFF", // extended pictographs
	})
	v.SetDefault("markers", []string{"DEBUG", "debug", "Testing", "TEST", "temp", "TEMP", "TODO"})
	v.SetDefault("verbose_patterns", []string{
		"Rendering", "Component mounted", "State updated", "Props:", "Data:",
	})
	v.SetDefault("import_line", "import { createLogger } from '@/lib/utils/logger';")
	v.SetDefault("import_markers", []string{
		"from '@/lib/utils/logger'", `from "@/lib/utils/logger"`,
	})
	v.SetDefault("instance_template", "const logger = createLogger('%s');")
}

// Default returns the built-in rule set.
func Default() Rules {
	rules, err := Load("", "")
	if err != nil {
		// Defaults cannot fail validation; reaching this is a programming error.
		panic(err)
	}

	return rules
}

// Load builds the rule set. When file is non-empty that exact config file
// is required; otherwise a .logsweep.yaml in root (when root is non-empty)
// overrides the defaults. LOGSWEEP_* environment variables override both.
func Load(root, file string) (Rules, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("LOGSWEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	switch {
	case file != "":
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return Rules{}, fmt.Errorf("read config: %w", err)
		}

	case root != "":
		v.SetConfigName(".logsweep")
		v.SetConfigType("yaml")
		v.AddConfigPath(root)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Rules{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var rules Rules
	if err := v.Unmarshal(&rules); err != nil {
		return Rules{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}

	return rules, nil
}

// Validate checks invariants the rest of the pipeline relies on.
func (r Rules) Validate() error {
	if r.StripLevels != StripInfo && r.StripLevels != StripAll {
		return fmt.Errorf("strip_levels must be %q or %q, got %q", StripInfo, StripAll, r.StripLevels)
	}

	if !strings.Contains(r.InstanceTemplate, "%s") {
		return fmt.Errorf("instance_template must contain a %%s placeholder")
	}

	if _, err := r.ParsedEmojiRanges(); err != nil {
		return err
	}

	return nil
}

// ParsedEmojiRanges converts the textual ranges into code point pairs.
func (r Rules) ParsedEmojiRanges() ([]CodeRange, error) {
	ranges := make([]CodeRange, 0, len(r.EmojiRanges))

	for _, spec := range r.EmojiRanges {
		lo, hi, ok := strings.Cut(spec, "-")
		if !ok {
			hi = lo
		}

		loVal, err := strconv.ParseUint(strings.TrimSpace(lo), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("emoji range %q: %w", spec, err)
		}

		hiVal, err := strconv.ParseUint(strings.TrimSpace(hi), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("emoji range %q: %w", spec, err)
		}

		if hiVal < loVal {
			return nil, fmt.Errorf("emoji range %q: upper bound below lower bound", spec)
		}

		ranges = append(ranges, CodeRange{Lo: rune(loVal), Hi: rune(hiVal)})
	}

	return ranges, nil
}
